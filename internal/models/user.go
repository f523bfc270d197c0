package models

import "time"

// User represents a registered account and its biometric profile.
// Biometric fields stay nil until the intake form is submitted.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	Age          *int      `json:"age"`
	Gender       *string   `json:"gender"`
	HeightCM     *float64  `json:"height"`
	WeightKG     *float64  `json:"weight"`
	TrainerID    *int64    `json:"trainerId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProfileComplete reports whether the biometric intake form has been filled.
func (u User) ProfileComplete() bool {
	return u.Age != nil && u.Gender != nil && u.HeightCM != nil && u.WeightKG != nil && u.TrainerID != nil
}
