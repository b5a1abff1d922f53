// Command superadmin creates the platform administrator account. It reads
// SUPERADMIN_EMAIL, SUPERADMIN_PASSWORD and SUPERADMIN_NAME, or the
// matching flags, and refuses to run twice.
package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"gymcore/internal/apperr"
	"gymcore/internal/config"
	"gymcore/internal/db"
	"gymcore/internal/gym"
	"gymcore/internal/logger"
	"gymcore/internal/user"
)

const minPasswordLength = 8

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init()
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.InitWithLevel(cfg.LogLevel)

	email := flag.String("email", cfg.SuperadminEmail, "superadmin email")
	password := flag.String("password", cfg.SuperadminPassword, "superadmin password")
	name := flag.String("name", cfg.SuperadminName, "superadmin full name")
	flag.Parse()

	if *email == "" || len(*password) < minPasswordLength {
		logger.Fatalf("An email and a password of at least %d characters are required", minPasswordLength)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	svc := user.NewService(user.NewRepository(database), gym.NewRepository(database), nil, cfg.JWTSecret, cfg.RefreshSecret)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	u, err := svc.CreateSuperadmin(ctx, *email, *password, *name)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			logger.Warn("Superadmin not created", "reason", apperr.Message(err))
			return
		}
		logger.Fatalf("Failed to create superadmin: %v", err)
	}

	logger.Info("Superadmin created", "user_id", u.ID, "email", u.Email)
}
