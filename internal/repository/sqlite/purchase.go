package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bazaar/internal/domain"
)

// PurchaseRepository implements domain.PurchaseRepository using SQLite.
type PurchaseRepository struct {
	db *sql.DB
}

// NewPurchaseRepository creates a new SQLite-backed PurchaseRepository.
func NewPurchaseRepository(db *DB) *PurchaseRepository {
	return &PurchaseRepository{db: db.SqlDB}
}

// Create inserts the purchase and decrements product stock in one
// transaction. The decrement is conditional on stock >= quantity, so two
// concurrent purchases can never overdraw inventory: the second one sees
// zero rows affected and the whole transaction rolls back.
func (r *PurchaseRepository) Create(ctx context.Context, purchase *domain.Purchase) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var stock, price int64
	err = tx.QueryRowContext(ctx,
		`SELECT stock, price FROM products WHERE id = ?`, purchase.ProductID,
	).Scan(&stock, &price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNoSuchProduct
		}
		return fmt.Errorf("query product: %w", err)
	}

	if stock < purchase.Quantity {
		return domain.ErrNotEnoughStock
	}

	now := time.Now().UTC()
	result, err := tx.ExecContext(ctx,
		`INSERT INTO purchases (buyer_id, product_id, quantity, unit_price, purchased_at, paid_at)
		 VALUES (?, ?, ?, ?, ?, NULL)`,
		purchase.BuyerID, purchase.ProductID, purchase.Quantity, price, now,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	result, err = tx.ExecContext(ctx,
		`UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?`,
		purchase.Quantity, purchase.ProductID, purchase.Quantity,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		// Stock changed under us since the read above.
		return domain.ErrNotEnoughStock
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	purchase.ID = id
	purchase.UnitPrice = price
	purchase.PurchasedAt = now
	purchase.PaidAt = nil
	return nil
}

const detailColumns = `
	pu.id, pu.buyer_id, pu.product_id, pu.quantity, pu.unit_price, pu.purchased_at, pu.paid_at,
	b.name, b.phone_number, pr.name, pr.seller_id, pr.price`

func (r *PurchaseRepository) GetDetail(ctx context.Context, id int64) (*domain.PurchaseDetail, error) {
	d := &domain.PurchaseDetail{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+detailColumns+`
		 FROM purchases pu
		 JOIN users b ON b.id = pu.buyer_id
		 JOIN products pr ON pr.id = pu.product_id
		 WHERE pu.id = ?`, id,
	).Scan(&d.ID, &d.BuyerID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.PurchasedAt, &d.PaidAt,
		&d.BuyerName, &d.BuyerPhone, &d.ProductName, &d.SellerID, &d.CurrentPrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoSuchPurchase
		}
		return nil, fmt.Errorf("query purchase: %w", err)
	}
	return d, nil
}

func (r *PurchaseRepository) ListByBuyer(ctx context.Context, buyerID int64) ([]domain.PurchaseDetail, error) {
	return r.listDetails(ctx,
		`SELECT `+detailColumns+`
		 FROM purchases pu
		 JOIN users b ON b.id = pu.buyer_id
		 JOIN products pr ON pr.id = pu.product_id
		 WHERE pu.buyer_id = ?
		 ORDER BY pu.purchased_at DESC, pu.id DESC`, buyerID)
}

func (r *PurchaseRepository) ListUnpaidBySeller(ctx context.Context, sellerID int64) ([]domain.PurchaseDetail, error) {
	return r.listDetails(ctx,
		`SELECT `+detailColumns+`
		 FROM purchases pu
		 JOIN users b ON b.id = pu.buyer_id
		 JOIN products pr ON pr.id = pu.product_id
		 WHERE pr.seller_id = ? AND pu.paid_at IS NULL
		 ORDER BY pu.purchased_at DESC, pu.id DESC`, sellerID)
}

func (r *PurchaseRepository) listDetails(ctx context.Context, query string, args ...any) ([]domain.PurchaseDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var details []domain.PurchaseDetail
	for rows.Next() {
		var d domain.PurchaseDetail
		if err := rows.Scan(&d.ID, &d.BuyerID, &d.ProductID, &d.Quantity, &d.UnitPrice,
			&d.PurchasedAt, &d.PaidAt, &d.BuyerName, &d.BuyerPhone,
			&d.ProductName, &d.SellerID, &d.CurrentPrice); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// MarkPaid sets paid_at on an unpaid purchase. The WHERE paid_at IS NULL
// guard makes a concurrent double-settle lose cleanly.
func (r *PurchaseRepository) MarkPaid(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE purchases SET paid_at = ? WHERE id = ? AND paid_at IS NULL`,
		time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("mark paid: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrPurchaseAlreadyPaid
	}
	return nil
}

// MarkPaidBulk settles all of buyerID's unpaid purchases of sellerID's
// products in one transaction. expectedCount is the caller's view of how
// many purchases are outstanding; a mismatch means that view was stale
// and the whole batch rolls back rather than partially settling.
func (r *PurchaseRepository) MarkPaidBulk(ctx context.Context, sellerID, buyerID int64, expectedCount int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE purchases SET paid_at = ?
		 WHERE buyer_id = ? AND paid_at IS NULL
		   AND product_id IN (SELECT id FROM products WHERE seller_id = ?)`,
		time.Now().UTC(), buyerID, sellerID,
	)
	if err != nil {
		return fmt.Errorf("bulk mark paid: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected != expectedCount {
		return domain.ErrBulkCountMismatch
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
