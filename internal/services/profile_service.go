package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/healthyfi/healthyfi-be/internal/models"
)

// GenderChoices are the accepted values for the intake form's gender field.
var GenderChoices = []string{"Male", "Female"}

// ProfileInput carries the raw intake form values. Fields arrive as strings
// so the service owns the required/numeric validation, not the handler.
type ProfileInput struct {
	Age       string
	Gender    string
	Height    string
	Weight    string
	TrainerID string
}

// FormState is everything the intake view needs: the user's current values
// and the choice lists for the select fields.
type FormState struct {
	User          models.User      `json:"user"`
	GenderChoices []string         `json:"genderChoices"`
	Trainers      []models.Trainer `json:"trainers"`
}

// ProfileServiceProvider defines the interface for the profile intake flow.
type ProfileServiceProvider interface {
	FormState(userID int64) (FormState, error)
	Submit(userID int64, input ProfileInput) (models.User, error)
}

// ProfileService collects and validates the biometric intake form and links
// the user to a trainer.
type ProfileService struct {
	db      *sql.DB
	users   UserServiceProvider
	catalog CatalogServiceProvider
}

// NewProfileService creates a new ProfileService.
func NewProfileService(db *sql.DB, users UserServiceProvider, catalog CatalogServiceProvider) *ProfileService {
	return &ProfileService{db: db, users: users, catalog: catalog}
}

// FormState loads the user and the select-field choices for the intake form.
func (s *ProfileService) FormState(userID int64) (FormState, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return FormState{}, err
	}
	user.PasswordHash = ""

	trainers, err := s.catalog.Trainers()
	if err != nil {
		return FormState{}, err
	}

	return FormState{
		User:          user,
		GenderChoices: GenderChoices,
		Trainers:      trainers,
	}, nil
}

// Submit validates the form and updates the user's biometric fields and
// trainer assignment in a single transaction. A validation failure leaves
// the stored row untouched.
func (s *ProfileService) Submit(userID int64, input ProfileInput) (models.User, error) {
	age, height, weight, trainerID, err := validateProfileInput(input)
	if err != nil {
		return models.User{}, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.User{}, err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow("SELECT 1 FROM trainers WHERE id = ?", trainerID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUnknownTrainer
		}
		return models.User{}, err
	}

	res, err := tx.Exec(
		"UPDATE users SET age = ?, gender = ?, height = ?, weight = ?, trainer_id = ? WHERE id = ?",
		age, input.Gender, height, weight, trainerID, userID,
	)
	if err != nil {
		return models.User{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if affected == 0 {
		return models.User{}, ErrUnknownUser
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, fmt.Errorf("failed to commit profile update: %w", err)
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

func validateProfileInput(input ProfileInput) (age int, height, weight float64, trainerID int64, err error) {
	var bad []string

	age, ageErr := strconv.Atoi(strings.TrimSpace(input.Age))
	if input.Age == "" || ageErr != nil || age <= 0 {
		bad = append(bad, "age")
	}

	if !validGender(input.Gender) {
		bad = append(bad, "gender")
	}

	height, heightErr := strconv.ParseFloat(strings.TrimSpace(input.Height), 64)
	if input.Height == "" || heightErr != nil || height <= 0 {
		bad = append(bad, "height")
	}

	weight, weightErr := strconv.ParseFloat(strings.TrimSpace(input.Weight), 64)
	if input.Weight == "" || weightErr != nil || weight <= 0 {
		bad = append(bad, "weight")
	}

	trainerID, trainerErr := strconv.ParseInt(strings.TrimSpace(input.TrainerID), 10, 64)
	if input.TrainerID == "" || trainerErr != nil {
		bad = append(bad, "trainer")
	}

	if len(bad) > 0 {
		return 0, 0, 0, 0, &ValidationError{Fields: bad}
	}
	return age, height, weight, trainerID, nil
}

func validGender(gender string) bool {
	for _, choice := range GenderChoices {
		if gender == choice {
			return true
		}
	}
	return false
}
