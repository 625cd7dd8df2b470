package service

import (
	"context"

	"bazaar/internal/domain"
)

// BuyerGroup is one buyer's outstanding purchases from a seller. The
// purchase count feeds bulk settlement's expected-count check.
type BuyerGroup struct {
	BuyerID    int64
	BuyerName  string
	BuyerPhone string
	AmountDue  int64
	Purchases  []domain.PurchaseDetail
}

// SummaryService builds the seller's view of who owes what.
type SummaryService struct {
	purchases domain.PurchaseRepository
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(purchases domain.PurchaseRepository) *SummaryService {
	return &SummaryService{purchases: purchases}
}

// SellerSummary groups the seller's unpaid purchases by buyer. Groups
// appear in first-seen order of the newest-first purchase list, and each
// group keeps its purchases in that fetch order.
func (s *SummaryService) SellerSummary(ctx context.Context, sellerID int64) ([]BuyerGroup, error) {
	unpaid, err := s.purchases.ListUnpaidBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	groups := []BuyerGroup{}
	index := make(map[int64]int)
	for _, p := range unpaid {
		i, ok := index[p.BuyerID]
		if !ok {
			i = len(groups)
			index[p.BuyerID] = i
			groups = append(groups, BuyerGroup{
				BuyerID:    p.BuyerID,
				BuyerName:  p.BuyerName,
				BuyerPhone: p.BuyerPhone,
			})
		}
		groups[i].AmountDue += p.Quantity * p.UnitPrice
		groups[i].Purchases = append(groups[i].Purchases, p)
	}
	return groups, nil
}
