package service

import (
	"context"
	"fmt"

	"health-intel-backend/internal/apperror"
	"health-intel-backend/internal/models"
	"health-intel-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const msgInvalidCredentials = "Invalid email or password"

// AdminStore is the storage AuthService needs
type AdminStore interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error)
}

type AuthService struct {
	validator Validator
	admins    AdminStore
	audit     AuditRecorder
	tokens    *utils.TokenIssuer
}

func NewAuthService(validator Validator, admins AdminStore, audit AuditRecorder, tokens *utils.TokenIssuer) *AuthService {
	return &AuthService{
		validator: validator,
		admins:    admins,
		audit:     audit,
		tokens:    tokens,
	}
}

// Login authenticates an admin and returns a signed access token.
// Unknown emails and wrong passwords fail identically.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	admin, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	// TODO: compare against a dummy hash for unknown emails so response timing does not reveal which emails exist
	if admin == nil || !utils.ComparePassword(admin.PasswordHash, req.Password) {
		return nil, apperror.Unauthorized(msgInvalidCredentials)
	}

	token, err := s.tokens.Issue(admin.ID.String())
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to sign access token: %w", err))
	}

	if err := s.audit.Create(ctx, &admin.ID, models.AuditAdminLogin, fmt.Sprintf("Admin %s logged in", admin.Email)); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to write audit log")
	}

	return &models.LoginResponse{Token: token, User: *admin}, nil
}

// Authenticate verifies a bearer token and returns the admin id it was issued for
func (s *AuthService) Authenticate(token string) (uuid.UUID, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return uuid.Nil, apperror.Unauthorized("Invalid or expired token")
	}

	adminID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperror.Unauthorized("Invalid or expired token")
	}
	return adminID, nil
}

// Me returns the profile of the signed-in admin
func (s *AuthService) Me(ctx context.Context, adminID uuid.UUID) (*models.AdminUser, error) {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		// the account was removed after the token was issued
		return nil, apperror.Unauthorized("")
	}
	return admin, nil
}
