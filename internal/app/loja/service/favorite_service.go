package service

import (
	"context"
	"errors"
	"time"

	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/repository"
	"lojamoz/pkg/metrics"
)

// FavoriteService manages the per-user wishlist.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, productRepo repository.ProductRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
	}
}

// AddFavorite links a product to the user. The unique index resolves
// concurrent duplicates, surfaced as ErrFavoriteExists.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID, productID uint) (*entity.Favorite, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	exists, err := s.favoriteRepo.Exists(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrFavoriteExists
	}

	favorite := &entity.Favorite{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrFavoriteExists
		}
		return nil, err
	}

	metrics.FavoritosAdded.Inc()
	return favorite, nil
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, productID uint) error {
	err := s.favoriteRepo.DeleteByUserAndProduct(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

func (s *FavoriteService) ListFavorites(ctx context.Context, userID uint) ([]entity.FavoriteResponse, error) {
	rows, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	favorites := make([]entity.FavoriteResponse, 0, len(rows))
	for _, row := range rows {
		favorites = append(favorites, entity.FavoriteResponse{
			ID:           row.ID,
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			ProductPrice: row.ProductPrice,
			ProductImage: row.ProductImage,
			ProductStock: row.ProductStock,
			CreatedAt:    row.CreatedAt.Format(time.RFC3339),
		})
	}
	return favorites, nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, productID uint) (bool, error) {
	return s.favoriteRepo.Exists(ctx, userID, productID)
}
