package service_test

import (
	"context"
	"errors"
	"testing"

	"bazaar/internal/domain"
	"bazaar/internal/service"
)

func TestSummaryService_SellerSummary_GroupsByBuyer(t *testing.T) {
	db := newTestDB(t)
	purchases := service.NewPurchaseService(db.Purchases())
	summary := service.NewSummaryService(db.Purchases())
	seller := createUser(t, db, "Seller", "600000001")
	alice := createUser(t, db, "Alice", "600000002")
	bob := createUser(t, db, "Bob", "600000003")
	product := createProduct(t, db, seller.ID, "Candle", 100, 50)
	ctx := context.Background()

	// Interleave purchases so first-seen grouping order matters: the
	// newest purchase is Alice's, so her group comes first.
	if _, err := purchases.Purchase(ctx, alice.ID, product.ID, 2); err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if _, err := purchases.Purchase(ctx, bob.ID, product.ID, 4); err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if _, err := purchases.Purchase(ctx, alice.ID, product.ID, 3); err != nil {
		t.Fatalf("Purchase: %v", err)
	}

	groups, err := summary.SellerSummary(ctx, seller.ID)
	if err != nil {
		t.Fatalf("SellerSummary: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].BuyerName != "Alice" || groups[1].BuyerName != "Bob" {
		t.Fatalf("expected groups [Alice Bob], got [%s %s]", groups[0].BuyerName, groups[1].BuyerName)
	}
	if groups[0].AmountDue != 5*50 {
		t.Fatalf("expected Alice to owe 250, got %d", groups[0].AmountDue)
	}
	if groups[1].AmountDue != 4*50 {
		t.Fatalf("expected Bob to owe 200, got %d", groups[1].AmountDue)
	}
	if len(groups[0].Purchases) != 2 || len(groups[1].Purchases) != 1 {
		t.Fatalf("expected purchase counts [2 1], got [%d %d]",
			len(groups[0].Purchases), len(groups[1].Purchases))
	}
}

func TestSummaryService_SellerSummary_ExcludesPaid(t *testing.T) {
	db := newTestDB(t)
	purchases := service.NewPurchaseService(db.Purchases())
	settlement := service.NewSettlementService(db.Purchases())
	summary := service.NewSummaryService(db.Purchases())
	seller := createUser(t, db, "Seller", "600000004")
	buyer := createUser(t, db, "Buyer", "600000005")
	product := createProduct(t, db, seller.ID, "Soap", 100, 30)
	ctx := context.Background()

	paid, err := purchases.Purchase(ctx, buyer.ID, product.ID, 1)
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if _, err := purchases.Purchase(ctx, buyer.ID, product.ID, 2); err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if err := settlement.Pay(ctx, seller.ID, paid.ID); err != nil {
		t.Fatalf("Pay: %v", err)
	}

	groups, err := summary.SellerSummary(ctx, seller.ID)
	if err != nil {
		t.Fatalf("SellerSummary: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].AmountDue != 60 {
		t.Fatalf("expected amount due 60 (paid purchase excluded), got %d", groups[0].AmountDue)
	}
}

func TestSummaryService_SellerSummary_Empty(t *testing.T) {
	db := newTestDB(t)
	summary := service.NewSummaryService(db.Purchases())
	seller := createUser(t, db, "Seller", "600000006")

	groups, err := summary.SellerSummary(context.Background(), seller.ID)
	if err != nil {
		t.Fatalf("SellerSummary: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}

// TestMarketplaceScenario walks the full purchase and settlement story:
// limited stock, a rejected overdraw, the seller summary, and a single
// settlement followed by a rejected repeat.
func TestMarketplaceScenario(t *testing.T) {
	db := newTestDB(t)
	purchases := service.NewPurchaseService(db.Purchases())
	settlement := service.NewSettlementService(db.Purchases())
	summary := service.NewSummaryService(db.Purchases())
	seller := createUser(t, db, "Seller", "600000007")
	buyer1 := createUser(t, db, "Buyer One", "600000008")
	buyer2 := createUser(t, db, "Buyer Two", "600000009")
	product := createProduct(t, db, seller.ID, "Lantern", 5, 200)
	ctx := context.Background()

	purchase, err := purchases.Purchase(ctx, buyer1.ID, product.ID, 3)
	if err != nil {
		t.Fatalf("buyer1 purchase: %v", err)
	}
	if purchase.UnitPrice != 200 {
		t.Fatalf("expected unit price 200, got %d", purchase.UnitPrice)
	}

	updated, err := db.Products().GetByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if updated.Stock != 2 {
		t.Fatalf("expected stock 2, got %d", updated.Stock)
	}

	_, err = purchases.Purchase(ctx, buyer2.ID, product.ID, 3)
	if !errors.Is(err, domain.ErrNotEnoughStock) {
		t.Fatalf("expected ErrNotEnoughStock for buyer2, got %v", err)
	}
	updated, err = db.Products().GetByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if updated.Stock != 2 {
		t.Fatalf("expected stock still 2 after failed purchase, got %d", updated.Stock)
	}

	groups, err := summary.SellerSummary(ctx, seller.ID)
	if err != nil {
		t.Fatalf("SellerSummary: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected one group, got %d", len(groups))
	}
	if groups[0].BuyerID != buyer1.ID || groups[0].AmountDue != 600 {
		t.Fatalf("expected buyer1 owing 600, got buyer %d owing %d", groups[0].BuyerID, groups[0].AmountDue)
	}

	if err := settlement.Pay(ctx, seller.ID, purchase.ID); err != nil {
		t.Fatalf("Pay: %v", err)
	}
	err = settlement.Pay(ctx, seller.ID, purchase.ID)
	if !errors.Is(err, domain.ErrPurchaseAlreadyPaid) {
		t.Fatalf("expected ErrPurchaseAlreadyPaid on repeat, got %v", err)
	}
}
