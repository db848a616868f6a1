package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/tandogan/registrar/internal/app/models"
	appRepos "github.com/tandogan/registrar/internal/app/repositories"
	"github.com/tandogan/registrar/internal/config"
	"github.com/tandogan/registrar/internal/pkg/auth"
)

// CreateDefaultAdmin creates the configured admin account if it does not exist.
// Without it a fresh deployment has no account able to manage records.
func CreateDefaultAdmin(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		lgr.Warn().Msg("Admin seed credentials not configured, skipping default admin creation")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.UsernameExists(ctx, cfg.Admin.Username)
	if err != nil {
		return fmt.Errorf("error checking admin account: %w", err)
	}
	if exists {
		lgr.Info().Msg("Admin account already exists, skipping creation")
		return nil
	}

	lgr.Info().Msg("Creating default admin account...")

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	admin := &appModels.User{
		Username: cfg.Admin.Username,
		Password: hashedPassword,
		Role:     appModels.RoleAdmin,
	}

	adminID, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		return fmt.Errorf("error creating admin account: %w", err)
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin account created successfully")
	return nil
}
