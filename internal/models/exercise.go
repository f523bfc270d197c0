package models

// Exercise is a read-only catalog entry with a reference video link.
// Upper-body and lower-body exercises live in separate catalogs.
type Exercise struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Link string `json:"link"`
}
