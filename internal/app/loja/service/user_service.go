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

// UserService handles shopper accounts: registration, login, profile
// maintenance and the admin-side user listing.
type UserService struct {
	userRepo     repository.UserRepository
	tokenManager *util.TokenManager
}

func NewUserService(userRepo repository.UserRepository, tokenManager *util.TokenManager) *UserService {
	return &UserService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
	}
}

// Signup registers a shopper and returns the account with a fresh
// session token, so the client is logged in right away.
func (s *UserService) Signup(ctx context.Context, req *entity.SignupRequest) (*entity.User, string, error) {
	user := &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		PasswordHash: util.HashPassword(req.Password),
		Gender:       req.Gender,
		AvatarURL:    req.AvatarURL,
		Active:       true,
	}

	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err == nil {
			user.BirthDate = &birthDate
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.tokenManager.GenerateUserToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, "", err
	}

	logger.Info().Uint("user_id", user.ID).Msg("user registered")
	return user, token, nil
}

func (s *UserService) Login(ctx context.Context, req *entity.LoginRequest) (*entity.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.UserLogins.WithLabelValues("failed").Inc()
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if !user.Active {
		metrics.UserLogins.WithLabelValues("inactive").Inc()
		return nil, "", ErrAccountInactive
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		metrics.UserLogins.WithLabelValues("failed").Inc()
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokenManager.GenerateUserToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, "", err
	}

	metrics.UserLogins.WithLabelValues("success").Inc()
	return user, token, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req *entity.UpdateProfileRequest) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.BirthDate != nil {
		if birthDate, err := time.Parse("2006-01-02", *req.BirthDate); err == nil {
			user.BirthDate = &birthDate
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]entity.UserWithOrderCount, error) {
	return s.userRepo.ListWithOrderCounts(ctx)
}

// SetUserActive flips the account flag. Deactivated users keep their
// data and order history but can no longer log in.
func (s *UserService) SetUserActive(ctx context.Context, userID uint, active bool) (*entity.User, error) {
	if err := s.userRepo.SetActive(ctx, userID, active); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}
