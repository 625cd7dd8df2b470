package service

import (
	"context"
	"fmt"
	"strings"

	"bazaar/internal/domain"
)

// CatalogService handles product listing and creation.
type CatalogService struct {
	products domain.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(products domain.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// ListAvailable returns products with stock remaining, most stocked first.
func (s *CatalogService) ListAvailable(ctx context.Context) ([]domain.ProductDetail, error) {
	return s.products.ListAvailable(ctx)
}

// Insert validates and creates a product listing for the seller. A
// description that is empty after trimming is stored as absent.
func (s *CatalogService) Insert(ctx context.Context, sellerID int64, name string, description *string, stock, price int64) (*domain.Product, error) {
	if stock <= 0 {
		return nil, fmt.Errorf("%w: stock must be greater than 0", domain.ErrInvalidInput)
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than 0", domain.ErrInvalidInput)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name can't be empty", domain.ErrInvalidInput)
	}
	if description != nil {
		trimmed := strings.TrimSpace(*description)
		if trimmed == "" {
			description = nil
		} else {
			description = &trimmed
		}
	}

	product := &domain.Product{
		SellerID:    sellerID,
		Name:        name,
		Description: description,
		Stock:       stock,
		Price:       price,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}
