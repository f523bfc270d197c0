package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/healthyfi/healthyfi-be/internal/api/handlers"
	"github.com/healthyfi/healthyfi-be/internal/auth"
	"github.com/healthyfi/healthyfi-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	tokens *auth.TokenManager,
	userService services.UserServiceProvider,
	profileService services.ProfileServiceProvider,
	catalogService services.CatalogServiceProvider,
	subscriptionService services.SubscriptionServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	profileHandler := handlers.NewProfileHandler(profileService, userService, catalogService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)

	// Public routes
	r.Get("/", authHandler.Home)
	r.Get("/register", authHandler.RegisterForm)
	r.Post("/register", authHandler.Register)
	r.Get("/login", authHandler.LoginForm)
	r.Post("/login", authHandler.Login)
	r.Get("/logout", authHandler.Logout)

	// Protected routes: identity comes from the session token only
	r.Group(func(r chi.Router) {
		r.Use(tokens.Middleware())

		r.Get("/edit", profileHandler.EditForm)
		r.Post("/edit", profileHandler.SubmitEdit)
		r.Get("/selection", profileHandler.Selection)

		r.Route("/programs", func(r chi.Router) {
			r.Get("/", catalogHandler.Programs)
			r.Get("/upper_body", catalogHandler.UpperBody)
			r.Get("/lower_body", catalogHandler.LowerBody)
		})

		r.Get("/subscribed", subscriptionHandler.Subscribe)
		r.Post("/subscribed", subscriptionHandler.Subscribe)
	})

	return r
}
