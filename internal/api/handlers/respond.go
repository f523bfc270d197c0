package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/healthyfi/healthyfi-be/internal/auth"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// redirectWithNotice sends the browser back to a form page with a
// user-visible notice, the flash-message pattern of the original flow.
func redirectWithNotice(w http.ResponseWriter, r *http.Request, path, notice string) {
	target := path
	if notice != "" {
		target = path + "?notice=" + url.QueryEscape(notice)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// userIDFromRequest pulls the authenticated user's id out of the claims set
// by the session middleware.
func userIDFromRequest(r *http.Request) (int64, bool) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
