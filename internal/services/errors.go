package services

import (
	"errors"
	"strings"
)

// Sentinel errors for the distinguishable failure kinds of the user flows.
// Callers match them with errors.Is.
var (
	ErrDuplicateEmail  = errors.New("email is already registered")
	ErrUnknownEmail    = errors.New("email is not registered")
	ErrInvalidPassword = errors.New("password is incorrect")
	ErrUnknownTrainer  = errors.New("trainer does not exist")
	ErrUnknownUser     = errors.New("user does not exist")
	ErrDelivery        = errors.New("email delivery failed")
)

// ValidationError reports which profile form fields failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}
