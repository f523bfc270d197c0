package services

import (
	"database/sql"
	"errors"

	"github.com/healthyfi/healthyfi-be/internal/models"
)

// SelfTrainingID is the sentinel trainer for users who train alone.
const SelfTrainingID int64 = 3

// CatalogServiceProvider defines the interface for the static catalogs.
type CatalogServiceProvider interface {
	Trainers() ([]models.Trainer, error)
	TrainerByID(id int64) (models.Trainer, error)
	UpperBody() ([]models.Exercise, error)
	LowerBody() ([]models.Exercise, error)
}

// CatalogService reads the trainer and exercise reference lists. The
// catalogs are seeded at startup and never written through this service.
type CatalogService struct {
	db *sql.DB
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *sql.DB) *CatalogService {
	return &CatalogService{db: db}
}

// Trainers retrieves the full trainer catalog, including the self-training option.
func (s *CatalogService) Trainers() ([]models.Trainer, error) {
	rows, err := s.db.Query("SELECT id, name, age, gender FROM trainers")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainers []models.Trainer
	for rows.Next() {
		var t models.Trainer
		if err := rows.Scan(&t.ID, &t.Name, &t.Age, &t.Gender); err != nil {
			return nil, err
		}
		trainers = append(trainers, t)
	}
	return trainers, rows.Err()
}

// TrainerByID retrieves a single trainer.
func (s *CatalogService) TrainerByID(id int64) (models.Trainer, error) {
	var t models.Trainer
	row := s.db.QueryRow("SELECT id, name, age, gender FROM trainers WHERE id = ?", id)
	if err := row.Scan(&t.ID, &t.Name, &t.Age, &t.Gender); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Trainer{}, ErrUnknownTrainer
		}
		return models.Trainer{}, err
	}
	return t, nil
}

// UpperBody retrieves the upper-body exercise catalog.
func (s *CatalogService) UpperBody() ([]models.Exercise, error) {
	return s.exercises("upper_body_exercises")
}

// LowerBody retrieves the lower-body exercise catalog.
func (s *CatalogService) LowerBody() ([]models.Exercise, error) {
	return s.exercises("lower_body_exercises")
}

func (s *CatalogService) exercises(table string) ([]models.Exercise, error) {
	rows, err := s.db.Query("SELECT id, name, link FROM " + table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Link); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}
