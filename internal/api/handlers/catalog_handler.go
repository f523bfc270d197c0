package handlers

import (
	"net/http"

	"github.com/healthyfi/healthyfi-be/internal/models"
	"github.com/healthyfi/healthyfi-be/internal/services"
	"github.com/rs/zerolog/log"
)

// CatalogHandler serves the exercise program views.
type CatalogHandler struct {
	catalog services.CatalogServiceProvider
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog services.CatalogServiceProvider) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Programs serves the program overview.
func (h *CatalogHandler) Programs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"programs": []map[string]string{
			{"name": "Upper Body", "path": "/programs/upper_body"},
			{"name": "Lower Body", "path": "/programs/lower_body"},
		},
	})
}

// UpperBody serves the upper-body exercise catalog.
func (h *CatalogHandler) UpperBody(w http.ResponseWriter, r *http.Request) {
	h.serveCatalog(w, "upper_body", h.catalog.UpperBody)
}

// LowerBody serves the lower-body exercise catalog. Wired to the lower-body
// table, not a copy of the upper-body view.
func (h *CatalogHandler) LowerBody(w http.ResponseWriter, r *http.Request) {
	h.serveCatalog(w, "lower_body", h.catalog.LowerBody)
}

func (h *CatalogHandler) serveCatalog(w http.ResponseWriter, program string, list func() ([]models.Exercise, error)) {
	exercises, err := list()
	if err != nil {
		log.Error().Err(err).Str("program", program).Msg("Failed to load exercise catalog")
		http.Error(w, "Failed to load exercise catalog", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"program":   program,
		"exercises": exercises,
	})
}
