package repository

import (
	"context"
	"fmt"

	"lojamoz/internal/app/loja/entity"

	"gorm.io/gorm"
)

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates the GORM-backed favorite repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		return fmt.Errorf("failed to create favorite: %w", translateError(err))
	}
	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Favorite{}).
		Where("usuario_id = ? AND produto_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

func (r *favoriteRepository) DeleteByUserAndProduct(ctx context.Context, userID, productID uint) error {
	result := r.db.WithContext(ctx).
		Where("usuario_id = ? AND produto_id = ?", userID, productID).
		Delete(&entity.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser joins favorites with their products. The inner join skips
// favorites whose product row was removed by a catalog sync.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]entity.FavoriteWithProduct, error) {
	var rows []entity.FavoriteWithProduct
	err := r.db.WithContext(ctx).
		Model(&entity.Favorite{}).
		Select("favorito.*, produto.nome AS produto_nome, produto.preco AS produto_preco, produto.imagem_url AS produto_imagem, produto.estoque AS produto_estoque").
		Joins("INNER JOIN produto ON produto.id = favorito.produto_id").
		Where("favorito.usuario_id = ?", userID).
		Order("favorito.data_favorito DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return rows, nil
}
