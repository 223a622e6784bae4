package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lojamoz/internal/app/loja/entity"

	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates the GORM-backed product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", translateError(err))
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (r *productRepository) GetWithCategory(ctx context.Context, id uint) (*entity.ProductResponse, error) {
	var row entity.ProductResponse
	err := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Select("produto.*, categoria.nome AS categoria_nome").
		Joins("LEFT JOIN categoria ON categoria.id = produto.categoria_id").
		Where("produto.id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &row, nil
}

// List applies the public catalog filters: active flag, category and a
// case-insensitive substring match on the name.
func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]entity.ProductResponse, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Select("produto.*, categoria.nome AS categoria_nome").
		Joins("LEFT JOIN categoria ON categoria.id = produto.categoria_id")

	if filter.ActiveOnly {
		query = query.Where("produto.ativo = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.Where("produto.categoria_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(produto.nome) LIKE ?", pattern)
	}

	var rows []entity.ProductResponse
	if err := query.Order("produto.id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return rows, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ?", product.ID).
		Select("nome", "descricao", "preco", "estoque", "imagem_url", "categoria_id", "ativo").
		Updates(product)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// CountOrderReferences reports how many order items reference the
// product. A referenced product must never be deleted.
func (r *productRepository) CountOrderReferences(ctx context.Context, productID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.OrderItem{}).
		Where("produto_id = ?", productID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count order references: %w", err)
	}
	return count, nil
}

func (r *productRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&entity.Product{}).Error; err != nil {
		return fmt.Errorf("failed to delete products: %w", err)
	}
	return nil
}
