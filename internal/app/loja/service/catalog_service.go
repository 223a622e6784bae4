package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/infrastructure"
	"lojamoz/internal/app/loja/repository"
	"lojamoz/internal/app/loja/seed"
	"lojamoz/internal/app/loja/util"
	"lojamoz/pkg/logger"
	"lojamoz/pkg/metrics"
)

const categoriesCacheTTL = 10 * time.Minute

// CatalogService owns categories, products and the external catalog
// sync. The category listing goes through the Redis cache; everything
// that mutates the catalog invalidates it.
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	redisClient  *util.RedisClient
	fakeStore    infrastructure.FakeStoreClient

	mu       sync.Mutex
	lastSync time.Time
}

func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	redisClient *util.RedisClient,
	fakeStore infrastructure.FakeStoreClient,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		redisClient:  redisClient,
		fakeStore:    fakeStore,
	}
}

func (s *CatalogService) GetAllCategories(ctx context.Context) ([]entity.Category, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.GetCategories(ctx)
		if err != nil {
			metrics.RedisErrors.WithLabelValues("loja", "get").Inc()
			logger.Warn().Err(err).Msg("categories cache read failed")
		} else if cached != nil {
			metrics.RedisCacheHits.WithLabelValues("loja", "categorias").Inc()
			return cached, nil
		} else {
			metrics.RedisCacheMisses.WithLabelValues("loja", "categorias").Inc()
		}
	}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if err := s.redisClient.SetCategories(ctx, categories, categoriesCacheTTL); err != nil {
			metrics.RedisErrors.WithLabelValues("loja", "set").Inc()
			logger.Warn().Err(err).Msg("categories cache write failed")
		}
	}

	return categories, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, req *entity.CreateCategoryRequest) (*entity.Category, error) {
	category := &entity.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.invalidateCategoriesCache(ctx)
	return category, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]entity.ProductResponse, error) {
	return s.productRepo.List(ctx, filter)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*entity.ProductResponse, error) {
	product, err := s.productRepo.GetWithCategory(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req *entity.CreateProductRequest) (*entity.Product, error) {
	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product := &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		Active:      active,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, req *entity.UpdateProductRequest) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct refuses to remove a product that any order item still
// references; order history must keep resolving.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	refs, err := s.productRepo.CountOrderReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrProductInUse
	}

	return s.productRepo.Delete(ctx, id)
}

// SyncExternal replaces the whole catalog with the Fake Store API
// dataset. Category order defines the local category ids.
func (s *CatalogService) SyncExternal(ctx context.Context) error {
	products, err := s.fakeStore.FetchProducts(ctx)
	if err != nil {
		metrics.CatalogSyncs.WithLabelValues("failed").Inc()
		logger.Error().Err(err).Msg("external catalog fetch failed")
		return ErrExternalAPIFailure
	}
	categories, err := s.fakeStore.FetchCategories(ctx)
	if err != nil {
		metrics.CatalogSyncs.WithLabelValues("failed").Inc()
		logger.Error().Err(err).Msg("external categories fetch failed")
		return ErrExternalAPIFailure
	}

	if err := s.wipeCatalog(ctx); err != nil {
		metrics.CatalogSyncs.WithLabelValues("failed").Inc()
		return err
	}

	categoryIDs := make(map[string]uint, len(categories))
	for _, name := range categories {
		category := &entity.Category{
			Name:        titleCase(name),
			Description: fmt.Sprintf("Produtos da categoria %s", titleCase(name)),
		}
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			metrics.CatalogSyncs.WithLabelValues("failed").Inc()
			return err
		}
		categoryIDs[name] = category.ID
	}

	for _, ext := range products {
		categoryID, ok := categoryIDs[ext.Category]
		if !ok && len(categories) > 0 {
			categoryID = categoryIDs[categories[0]]
		}
		product := &entity.Product{
			Name:        ext.Title,
			Description: ext.Description,
			Price:       ext.Price,
			Stock:       seed.DefaultStock,
			ImageURL:    ext.Image,
			CategoryID:  categoryID,
			Active:      true,
		}
		if err := s.productRepo.Create(ctx, product); err != nil {
			metrics.CatalogSyncs.WithLabelValues("failed").Inc()
			return err
		}
	}

	s.markSynced(ctx)
	metrics.CatalogSyncs.WithLabelValues("success").Inc()
	logger.Info().Int("produtos", len(products)).Msg("catalog synced from external api")
	return nil
}

// SyncPortuguese replaces the catalog with the built-in Portuguese
// dataset priced in meticais.
func (s *CatalogService) SyncPortuguese(ctx context.Context) error {
	if err := s.wipeCatalog(ctx); err != nil {
		metrics.CatalogSyncs.WithLabelValues("failed").Inc()
		return err
	}

	if err := seed.LoadCatalog(ctx, s.categoryRepo, s.productRepo); err != nil {
		metrics.CatalogSyncs.WithLabelValues("failed").Inc()
		return err
	}

	s.markSynced(ctx)
	metrics.CatalogSyncs.WithLabelValues("success").Inc()
	logger.Info().Int("produtos", len(seed.Products)).Msg("catalog synced with portuguese dataset")
	return nil
}

// Status never fails: count errors degrade to zeros so the endpoint
// stays useful when the database is struggling.
func (s *CatalogService) Status(ctx context.Context) *entity.StatusResponse {
	resp := &entity.StatusResponse{
		ExternalAPIOnline: s.fakeStore.Ping(ctx),
		LastSync:          "N/A",
	}

	if count, err := s.productRepo.Count(ctx); err == nil {
		resp.LocalProducts = count
	} else {
		logger.Warn().Err(err).Msg("product count failed")
	}
	if count, err := s.categoryRepo.Count(ctx); err == nil {
		resp.LocalCategories = count
	} else {
		logger.Warn().Err(err).Msg("category count failed")
	}

	s.mu.Lock()
	if !s.lastSync.IsZero() {
		resp.LastSync = s.lastSync.Format(time.RFC3339)
	}
	s.mu.Unlock()

	return resp
}

func (s *CatalogService) wipeCatalog(ctx context.Context) error {
	if err := s.productRepo.DeleteAll(ctx); err != nil {
		return err
	}
	return s.categoryRepo.DeleteAll(ctx)
}

func (s *CatalogService) markSynced(ctx context.Context) {
	s.mu.Lock()
	s.lastSync = time.Now()
	s.mu.Unlock()
	s.invalidateCategoriesCache(ctx)
}

func (s *CatalogService) invalidateCategoriesCache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.DeleteCategories(ctx); err != nil {
		metrics.RedisErrors.WithLabelValues("loja", "del").Inc()
		logger.Warn().Err(err).Msg("categories cache invalidation failed")
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
