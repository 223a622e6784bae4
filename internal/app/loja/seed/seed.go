package seed

import (
	"context"
	"fmt"

	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/repository"
	"lojamoz/internal/app/loja/util"
	"lojamoz/pkg/logger"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@loja.com"
	DefaultAdminPassword = "admin123"
)

// EnsureDefaultAdmin creates the bootstrap console account when the
// admin table is empty. Existing admins are never touched.
func EnsureDefaultAdmin(ctx context.Context, adminRepo repository.AdminRepository) error {
	count, err := adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	admin := &entity.Admin{
		Username:     DefaultAdminUsername,
		Email:        DefaultAdminEmail,
		PasswordHash: util.HashPassword(DefaultAdminPassword),
		Active:       true,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	logger.Warn().
		Str("username", DefaultAdminUsername).
		Msg("default admin created, change the password after first login")
	return nil
}

// LoadCatalog writes the built-in Portuguese catalog. The caller is
// responsible for wiping old rows first when a full reload is wanted.
func LoadCatalog(ctx context.Context, categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) error {
	categoryIDs := make(map[string]uint, len(Categories))
	for _, c := range Categories {
		category := &entity.Category{
			Name:        c.Name,
			Description: c.Description,
		}
		if err := categoryRepo.Create(ctx, category); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
		categoryIDs[c.Name] = category.ID
	}

	for _, p := range Products {
		categoryID, ok := categoryIDs[p.Category]
		if !ok {
			categoryID = categoryIDs[Categories[0].Name]
		}
		product := &entity.Product{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Stock:       DefaultStock,
			ImageURL:    p.ImageURL,
			CategoryID:  categoryID,
			Active:      true,
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
	}

	return nil
}

// Run performs startup seeding: the default admin always, the catalog
// only when the category table is empty.
func Run(ctx context.Context, categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, adminRepo repository.AdminRepository) error {
	if err := EnsureDefaultAdmin(ctx, adminRepo); err != nil {
		return err
	}

	count, err := categoryRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := LoadCatalog(ctx, categoryRepo, productRepo); err != nil {
		return err
	}

	logger.Info().
		Int("categorias", len(Categories)).
		Int("produtos", len(Products)).
		Msg("catalog seeded in meticais")
	return nil
}
