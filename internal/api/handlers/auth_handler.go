package handlers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/healthyfi/healthyfi-be/internal/auth"
	"github.com/healthyfi/healthyfi-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	service services.UserServiceProvider
	tokens  *auth.TokenManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{service: service, tokens: tokens}
}

// Home reflects the caller's authentication state.
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	payload := map[string]interface{}{"loggedIn": false}

	if tokenStr := auth.TokenFromRequest(r); tokenStr != "" {
		if claims, err := h.tokens.Validate(tokenStr); err == nil {
			if user, err := h.service.GetUserByID(claims.UserID); err == nil {
				user.PasswordHash = ""
				payload["loggedIn"] = true
				payload["user"] = user
			}
		}
	}

	writeJSON(w, http.StatusOK, payload)
}

// RegisterForm serves the registration form state.
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"notice": r.URL.Query().Get("notice")})
}

// Register handles new user registration. New accounts are not signed in;
// the browser is sent to the login form.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	name := r.FormValue("name")
	password := r.FormValue("password")

	if email == "" || name == "" || password == "" {
		redirectWithNotice(w, r, "/register", "Email, name and password are all required.")
		return
	}

	user, err := h.service.Register(email, name, password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			redirectWithNotice(w, r, "/login", "You've already signed up with that email, log in instead!")
			return
		}
		log.Error().Err(err).Str("email", email).Msg("Failed to register user")
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	log.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("User registered")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginForm serves the login form state.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"notice": r.URL.Query().Get("notice")})
}

// Login handles authentication and session token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.service.Authenticate(email, password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownEmail):
			redirectWithNotice(w, r, "/login", "That email does not exist, please try again.")
		case errors.Is(err, services.ErrInvalidPassword):
			redirectWithNotice(w, r, "/login", "Password incorrect, please try again.")
		default:
			log.Error().Err(err).Str("email", email).Msg("Login failed")
			http.Error(w, "Login failed", http.StatusInternalServerError)
		}
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to generate session token")
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	// Set Secure flag based on environment.
	isProd := os.Getenv("APP_ENV") == "production"

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})

	http.Redirect(w, r, "/edit", http.StatusSeeOther)
}

// Logout expires the session cookie. Idempotent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
