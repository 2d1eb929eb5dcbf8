package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/edulink/outreach-admin/internal/app/models"
	appRepos "github.com/edulink/outreach-admin/internal/app/repositories"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
	"github.com/edulink/outreach-admin/internal/pkg/auth"
)

// CreateDefaultData creates the default admin account and a starter sponsor
// directory if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminUserRepository(dbPool)
	sponsorRepo := appRepos.NewSponsorRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default Admin User --- //
	exists, err := adminRepo.ExistsByEmail(ctx, "admin@edulink.dev")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, err := auth.HashPassword("Admin123!")
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.AdminUser{
				Email:        "admin@edulink.dev",
				PasswordHash: hashedPassword,
				Name:         "System Administrator",
				Role:         appModels.RoleAdmin,
			}
			if _, err := adminRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating default admin user")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Str("email", admin.Email).Msg("Default admin user created")
			}
		}
	}

	// --- Starter Sponsors --- //
	sponsors := []*appModels.Sponsor{
		{Name: "Bright Futures Foundation", Kind: appModels.SponsorFoundation, ContactName: "Dana Kim", ContactEmail: "dana@brightfutures.org"},
		{Name: "Northwind Technologies", Kind: appModels.SponsorCompany, ContactName: "Alex Moore", ContactEmail: "alex.moore@northwind.example"},
	}
	for _, sponsor := range sponsors {
		if _, err := sponsorRepo.Create(ctx, sponsor); err != nil && !errors.Is(err, apperrors.ErrSponsorAlreadyExists) {
			lgr.Error().Err(err).Str("name", sponsor.Name).Msg("Error creating starter sponsor")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check complete.")
	return finalErr
}
