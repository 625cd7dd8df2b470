package domain

import (
	"context"
	"time"
)

// Product is an item listed for sale. Price is in the smallest currency
// unit. Stock never goes below zero; every decrement happens through the
// purchase transaction in PurchaseRepository.
type Product struct {
	ID          int64
	SellerID    int64
	Name        string
	Description *string
	Stock       int64
	Price       int64
	CreatedAt   time.Time
}

// ProductDetail is a product joined with its seller's display name, as
// served by the catalog listing.
type ProductDetail struct {
	Product
	SellerName string
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	// ListAvailable returns products with stock > 0, ordered by
	// descending stock, ties broken by insertion order.
	ListAvailable(ctx context.Context) ([]ProductDetail, error)
}
