package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/healthyfi/healthyfi-be/internal/services"
	"github.com/rs/zerolog/log"
)

// ProfileHandler handles the biometric intake form and the post-intake
// selection view.
type ProfileHandler struct {
	profiles services.ProfileServiceProvider
	users    services.UserServiceProvider
	catalog  services.CatalogServiceProvider
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles services.ProfileServiceProvider, users services.UserServiceProvider, catalog services.CatalogServiceProvider) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, users: users, catalog: catalog}
}

// EditForm serves the intake form state: current values plus select choices.
func (h *ProfileHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	state, err := h.profiles.FormState(userID)
	if err != nil {
		if errors.Is(err, services.ErrUnknownUser) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "That account no longer exists."})
			return
		}
		log.Error().Err(err).Int64("user_id", userID).Msg("Failed to load profile form")
		http.Error(w, "Failed to load profile form", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notice": r.URL.Query().Get("notice"),
		"form":   state,
	})
}

// SubmitEdit validates and stores the intake form.
func (h *ProfileHandler) SubmitEdit(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	input := services.ProfileInput{
		Age:       r.FormValue("age"),
		Gender:    r.FormValue("gender"),
		Height:    r.FormValue("height"),
		Weight:    r.FormValue("weight"),
		TrainerID: r.FormValue("trainer"),
	}

	_, err := h.profiles.Submit(userID, input)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			redirectWithNotice(w, r, "/edit", "Please correct the following fields: "+strings.Join(verr.Fields, ", "))
		case errors.Is(err, services.ErrUnknownTrainer):
			redirectWithNotice(w, r, "/edit", "Please pick a trainer from the list.")
		case errors.Is(err, services.ErrUnknownUser):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "That account no longer exists."})
		default:
			log.Error().Err(err).Int64("user_id", userID).Msg("Failed to update profile")
			http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/selection", http.StatusSeeOther)
}

// Selection serves the post-intake landing view: the user's profile and, if
// assigned, their trainer.
func (h *ProfileHandler) Selection(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	user, err := h.users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, services.ErrUnknownUser) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "That account no longer exists."})
			return
		}
		log.Error().Err(err).Int64("user_id", userID).Msg("Failed to load user")
		http.Error(w, "Failed to load user", http.StatusInternalServerError)
		return
	}
	user.PasswordHash = ""

	payload := map[string]interface{}{"user": user}
	if user.TrainerID != nil {
		if trainer, err := h.catalog.TrainerByID(*user.TrainerID); err == nil {
			payload["trainer"] = trainer
		}
	}

	writeJSON(w, http.StatusOK, payload)
}
