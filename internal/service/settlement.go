package service

import (
	"context"

	"bazaar/internal/domain"
)

// SettlementService marks purchases as paid. Only the seller of the
// purchased product may settle, and settling an already-paid purchase is
// an explicit error rather than a no-op: a second settle means the
// caller acted on a stale view.
type SettlementService struct {
	purchases domain.PurchaseRepository
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(purchases domain.PurchaseRepository) *SettlementService {
	return &SettlementService{purchases: purchases}
}

// Pay settles a single purchase on behalf of the requesting user.
func (s *SettlementService) Pay(ctx context.Context, requesterID, purchaseID int64) error {
	detail, err := s.purchases.GetDetail(ctx, purchaseID)
	if err != nil {
		return err
	}
	if detail.SellerID != requesterID {
		return domain.ErrForbidden
	}
	if detail.PaidAt != nil {
		return domain.ErrPurchaseAlreadyPaid
	}
	return s.purchases.MarkPaid(ctx, purchaseID)
}

// PayBulk settles every unpaid purchase the buyer made on the seller's
// products. expectedCount comes from the seller's last summary view; if
// it no longer matches, nothing is settled.
func (s *SettlementService) PayBulk(ctx context.Context, sellerID, buyerID, expectedCount int64) error {
	return s.purchases.MarkPaidBulk(ctx, sellerID, buyerID, expectedCount)
}
