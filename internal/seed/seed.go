package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/skilllink/skilllink/internal/app/models"
	appRepos "github.com/skilllink/skilllink/internal/app/repositories"
	"github.com/skilllink/skilllink/internal/config"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
	pkgAuth "github.com/skilllink/skilllink/internal/pkg/auth"
)

// predefinedSkills is the starter catalog inserted on first boot.
var predefinedSkills = []string{
	"Mathematics",
	"English",
	"Spanish",
	"Guitar",
	"Piano",
	"Programming",
	"Photography",
	"Cooking",
	"Chess",
	"Public Speaking",
	"Graphic Design",
	"Yoga",
}

// CreateDefaultData seeds the predefined skill catalog and the default
// admin account. It is idempotent across restarts.
func CreateDefaultData(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var finalErr error

	lgr.Info().Msg("Checking/Creating default data (skills, admin account)...")

	for _, name := range predefinedSkills {
		if _, err := dbPool.Exec(ctx, `
			INSERT INTO skills (name, is_predefined)
			VALUES ($1, TRUE)
			ON CONFLICT (name) DO NOTHING`, name); err != nil {
			lgr.Error().Err(err).Str("skill", name).Msg("Error seeding predefined skill")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Warn().Msg("Admin credentials not configured, skipping admin account seed")
		return finalErr
	}

	userRepo := appRepos.NewUserRepository(dbPool)
	passwords := pkgAuth.NewPasswordService(0)

	hash, err := passwords.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	admin := &appModels.User{
		FullName:      "Administrator",
		Email:         cfg.Admin.Email,
		PasswordHash:  hash,
		Role:          appModels.RoleAdmin,
		IsActive:      true,
		EmailVerified: true,
	}

	if _, err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Debug().Str("email", cfg.Admin.Email).Msg("Admin account already exists")
		} else {
			lgr.Error().Err(err).Msg("Error seeding admin account")
			finalErr = errors.Join(finalErr, err)
		}
	} else {
		lgr.Info().Str("email", cfg.Admin.Email).Msg("Default admin account created")
	}

	return finalErr
}
