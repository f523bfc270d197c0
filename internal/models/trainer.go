package models

// Trainer is a static catalog entry a user can assign themselves to.
// ID 3 ("Self-Training") is the sentinel for users who train alone.
type Trainer struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}
