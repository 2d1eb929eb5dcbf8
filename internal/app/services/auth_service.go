package services

import (
	"context"
	"errors"
	"time"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/repositories"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
	"github.com/edulink/outreach-admin/internal/pkg/auth"
	"github.com/edulink/outreach-admin/internal/pkg/logger"
)

// AuthService defines the interface for operator authentication
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.AdminUser, *auth.TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.AdminUser, *auth.TokenPair, error)
	GetProfile(ctx context.Context, adminID int64) (*models.AdminUser, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	adminRepo  *repositories.AdminUserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	adminRepo *repositories.AdminUserRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
) AuthService {
	return &authServiceImpl{
		adminRepo:  adminRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

func (s *authServiceImpl) issueTokens(ctx context.Context, admin *models.AdminUser) (*auth.TokenPair, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(admin)
	if err != nil {
		return nil, err
	}

	_, err = s.tokenRepo.Create(ctx, &models.RefreshToken{
		AdminID:   admin.ID,
		Token:     refreshToken,
		ExpiresAt: s.jwtService.GetRefreshTokenExpiry(),
	})
	if err != nil {
		return nil, err
	}

	return &auth.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*models.AdminUser, *auth.TokenPair, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		logger.Warn().Str("email", email).Msg("Failed login attempt")
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, admin)
	if err != nil {
		return nil, nil, err
	}

	return admin, tokens, nil
}

func (s *authServiceImpl) RefreshTokens(ctx context.Context, refreshToken string) (*models.AdminUser, *auth.TokenPair, error) {
	stored, err := s.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, nil, err
	}
	if stored.Revoked {
		return nil, nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, nil, apperrors.ErrTokenExpired
	}

	admin, err := s.adminRepo.GetByID(ctx, stored.AdminID)
	if err != nil {
		return nil, nil, err
	}

	// Rotate: the used refresh token is revoked before a new pair is issued.
	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, nil, err
	}

	tokens, err := s.issueTokens(ctx, admin)
	if err != nil {
		return nil, nil, err
	}

	return admin, tokens, nil
}

func (s *authServiceImpl) GetProfile(ctx context.Context, adminID int64) (*models.AdminUser, error) {
	return s.adminRepo.GetByID(ctx, adminID)
}
