package domain

import (
	"context"
	"time"
)

// Purchase records a buyer taking quantity units of a product. UnitPrice
// is a snapshot of the product price at purchase time and never changes
// afterwards, so historical amounts are stable under later price edits.
// PaidAt transitions from nil to a timestamp exactly once.
type Purchase struct {
	ID          int64
	BuyerID     int64
	ProductID   int64
	Quantity    int64
	UnitPrice   int64
	PurchasedAt time.Time
	PaidAt      *time.Time
}

// PurchaseDetail is a purchase joined with buyer and product rows. The
// join happens in SQL; callers never issue per-purchase lookups.
type PurchaseDetail struct {
	Purchase
	BuyerName    string
	BuyerPhone   string
	ProductName  string
	SellerID     int64
	CurrentPrice int64
}

// PurchaseRepository defines persistence operations for purchases. The
// multi-step operations run inside a single transaction owned by the
// implementation; on any failure no partial effect remains.
type PurchaseRepository interface {
	// Create inserts the purchase and decrements the product's stock in
	// one transaction. Returns ErrNoSuchProduct or ErrNotEnoughStock.
	// On success the purchase's ID, UnitPrice, and PurchasedAt are set.
	Create(ctx context.Context, purchase *Purchase) error
	GetDetail(ctx context.Context, id int64) (*PurchaseDetail, error)
	// ListByBuyer returns the buyer's purchases, newest first.
	ListByBuyer(ctx context.Context, buyerID int64) ([]PurchaseDetail, error)
	// ListUnpaidBySeller returns unpaid purchases of the seller's
	// products, newest first.
	ListUnpaidBySeller(ctx context.Context, sellerID int64) ([]PurchaseDetail, error)
	// MarkPaid sets paid_at on a purchase that is not yet paid. Returns
	// ErrPurchaseAlreadyPaid if paid_at was already set.
	MarkPaid(ctx context.Context, id int64) error
	// MarkPaidBulk settles every unpaid purchase buyerID made on
	// sellerID's products. If the number of settled rows differs from
	// expectedCount the whole transaction rolls back and
	// ErrBulkCountMismatch is returned.
	MarkPaidBulk(ctx context.Context, sellerID, buyerID int64, expectedCount int64) error
}
