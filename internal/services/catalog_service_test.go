package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainersSeeded(t *testing.T) {
	catalog := NewCatalogService(newTestDB(t))

	trainers, err := catalog.Trainers()
	require.NoError(t, err)
	require.Len(t, trainers, 3)

	names := make([]string, 0, len(trainers))
	for _, tr := range trainers {
		names = append(names, tr.Name)
	}
	assert.Contains(t, names, "Rachel James")
	assert.Contains(t, names, "Steve Harvey")
	assert.Contains(t, names, "Self-Training")
}

func TestTrainerByID(t *testing.T) {
	catalog := NewCatalogService(newTestDB(t))

	trainer, err := catalog.TrainerByID(SelfTrainingID)
	require.NoError(t, err)
	assert.Equal(t, "Self-Training", trainer.Name)

	_, err = catalog.TrainerByID(99)
	assert.ErrorIs(t, err, ErrUnknownTrainer)
}

func TestUpperAndLowerBodyAreIndependentCatalogs(t *testing.T) {
	catalog := NewCatalogService(newTestDB(t))

	upper, err := catalog.UpperBody()
	require.NoError(t, err)
	require.NotEmpty(t, upper)

	lower, err := catalog.LowerBody()
	require.NoError(t, err)
	require.NotEmpty(t, lower)

	upperNames := map[string]bool{}
	for _, e := range upper {
		assert.NotEmpty(t, e.Link)
		upperNames[e.Name] = true
	}
	for _, e := range lower {
		assert.NotEmpty(t, e.Link)
		assert.False(t, upperNames[e.Name], "lower-body catalog must not mirror the upper-body one: %s", e.Name)
	}
}
