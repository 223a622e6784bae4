package service

import (
	"context"
	"errors"
	"time"

	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/repository"
	"lojamoz/internal/app/loja/util"
	"lojamoz/pkg/logger"
	"lojamoz/pkg/metrics"
)

// AdminService handles console authentication. Admin tokens are short
// lived and re-verified against the database on every request.
type AdminService struct {
	adminRepo    repository.AdminRepository
	tokenManager *util.TokenManager
}

func NewAdminService(adminRepo repository.AdminRepository, tokenManager *util.TokenManager) *AdminService {
	return &AdminService{
		adminRepo:    adminRepo,
		tokenManager: tokenManager,
	}
}

// Login authenticates against active console accounts only and stamps
// the last login time on success.
func (s *AdminService) Login(ctx context.Context, req *entity.AdminLoginRequest) (*entity.Admin, string, error) {
	admin, err := s.adminRepo.GetActiveByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.AdminLogins.WithLabelValues("failed").Inc()
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !util.CheckPassword(req.Password, admin.PasswordHash) {
		metrics.AdminLogins.WithLabelValues("failed").Inc()
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	admin.LastLogin = &now
	if err := s.adminRepo.UpdateLastLogin(ctx, admin); err != nil {
		logger.Warn().Err(err).Uint("admin_id", admin.ID).Msg("failed to stamp admin login")
	}

	token, err := s.tokenManager.GenerateAdminToken(admin.ID)
	if err != nil {
		return nil, "", err
	}

	metrics.AdminLogins.WithLabelValues("success").Inc()
	logger.Info().Uint("admin_id", admin.ID).Msg("admin logged in")
	return admin, token, nil
}

// Verify resolves a token's admin id to a live, active account. A
// deleted or deactivated admin fails even with a valid token.
func (s *AdminService) Verify(ctx context.Context, adminID uint) (*entity.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	if !admin.Active {
		return nil, ErrAdminNotFound
	}

	return admin, nil
}
