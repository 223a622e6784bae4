package repository

import (
	"context"
	"errors"
	"fmt"

	"lojamoz/internal/app/loja/entity"

	"gorm.io/gorm"
)

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates the GORM-backed admin repository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", translateError(err))
	}
	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id uint) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

// GetActiveByUsername resolves login: only active accounts match.
func (r *adminRepository) GetActiveByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.db.WithContext(ctx).
		First(&admin, "username = ? AND ativo = ?", username, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin by username: %w", err)
	}
	return &admin, nil
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Admin{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

func (r *adminRepository) UpdateLastLogin(ctx context.Context, admin *entity.Admin) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Admin{}).
		Where("id = ?", admin.ID).
		Update("ultimo_login", admin.LastLogin)
	if result.Error != nil {
		return fmt.Errorf("failed to update admin last login: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
