package handlers

import (
	"errors"
	"net/http"

	"github.com/healthyfi/healthyfi-be/internal/services"
	"github.com/rs/zerolog/log"
)

// SubscriptionHandler triggers the newsletter subscription email.
type SubscriptionHandler struct {
	service services.SubscriptionServiceProvider
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(service services.SubscriptionServiceProvider) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

// Subscribe sends the diet-plan newsletter to the authenticated user. The
// send is a single synchronous attempt; a relay failure is reported to the
// caller as an explicit notice rather than a generic failure page.
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	if err := h.service.Subscribe(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownUser):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "That account no longer exists."})
		case errors.Is(err, services.ErrDelivery):
			log.Error().Err(err).Int64("user_id", userID).Msg("Newsletter delivery failed")
			writeJSON(w, http.StatusBadGateway, map[string]string{
				"error": "We could not send your subscription email right now, please try again later.",
			})
		default:
			log.Error().Err(err).Int64("user_id", userID).Msg("Subscription failed")
			http.Error(w, "Subscription failed", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Thank you for subscribing! Check your inbox for the diet plan.",
	})
}
