package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/healthyfi/healthyfi-be/internal/api"
	"github.com/healthyfi/healthyfi-be/internal/auth"
	"github.com/healthyfi/healthyfi-be/internal/config"
	"github.com/healthyfi/healthyfi-be/internal/database"
	"github.com/healthyfi/healthyfi-be/internal/logger"
	"github.com/healthyfi/healthyfi-be/internal/mailer"
	"github.com/healthyfi/healthyfi-be/internal/services"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed catalogs: %v", err)
	}

	// Set up the outbound mail relay client
	smtp, err := mailer.NewSMTP(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize mail client: %v", err)
	}

	// Set up session tokens
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	// Set up services
	userService := services.NewUserService(db)
	catalogService := services.NewCatalogService(db)
	profileService := services.NewProfileService(db, userService, catalogService)
	subscriptionService := services.NewSubscriptionService(userService, smtp)

	// Set up router
	router := api.NewRouter(tokens, userService, profileService, catalogService, subscriptionService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
