package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/nishkr/pgmate/internal/auth"
	"github.com/nishkr/pgmate/internal/server"
	"github.com/nishkr/pgmate/internal/service"
	"github.com/nishkr/pgmate/internal/storage/sqlite"
	"github.com/nishkr/pgmate/pkg/logging"
)

const tokenDuration = 24 * time.Hour

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()
	logging.Setup()

	dbPath := getEnv("DB_PATH", "./data/pgmate.db")
	addr := getEnv("HTTP_ADDR", ":8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret-change-me"
		slog.Warn("JWT_SECRET not set, using insecure development secret")
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	logger := slog.Default()
	jwtManager := auth.NewJWTManager(jwtSecret, tokenDuration)

	srv := server.New(
		service.NewAuthService(store, jwtManager, logger),
		service.NewTenancyService(store, logger),
		service.NewBillingService(store, logger),
		service.NewComplaintService(store, logger),
		service.NewNotificationService(store, logger),
		jwtManager,
	)

	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
