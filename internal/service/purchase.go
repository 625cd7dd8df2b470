package service

import (
	"context"
	"fmt"

	"bazaar/internal/domain"
)

// PurchaseService creates purchases and serves purchase history.
type PurchaseService struct {
	purchases domain.PurchaseRepository
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(purchases domain.PurchaseRepository) *PurchaseService {
	return &PurchaseService{purchases: purchases}
}

// Purchase buys quantity units of a product for the buyer. The price is
// snapshotted into the purchase and the stock decrement is atomic with
// the insert; see domain.PurchaseRepository.Create for the guarantees.
func (s *PurchaseService) Purchase(ctx context.Context, buyerID, productID, quantity int64) (*domain.Purchase, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", domain.ErrInvalidInput)
	}

	purchase := &domain.Purchase{
		BuyerID:   buyerID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.purchases.Create(ctx, purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// History returns the buyer's purchases, newest first.
func (s *PurchaseService) History(ctx context.Context, buyerID int64) ([]domain.PurchaseDetail, error) {
	return s.purchases.ListByBuyer(ctx, buyerID)
}
