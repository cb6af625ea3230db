package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/delis/schoolhub/internal/app/models"
	"github.com/delis/schoolhub/internal/app/repositories"
	"github.com/delis/schoolhub/internal/pkg/auth"
)

// Default admin credentials, intended for first login only.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// CreateDefaultData seeds the default admin user when no user with that
// username exists yet. Seeding failures are reported but are not fatal to
// startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin user...")

	existing, err := userRepo.GetByUsername(ctx, defaultAdminUsername)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin user")
		return err
	}
	if existing != nil {
		lgr.Debug().Msg("Default admin user already present")
		return nil
	}

	hashed, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &models.User{
		Username: defaultAdminUsername,
		Password: hashed,
	}

	created, err := userRepo.Insert(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return err
	}
	if created == nil {
		return errors.New("default admin user insert reported no row")
	}

	lgr.Info().Str("username", defaultAdminUsername).Msg("Default admin user created")
	return nil
}
