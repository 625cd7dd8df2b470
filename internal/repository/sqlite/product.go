package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bazaar/internal/domain"
)

// ProductRepository implements domain.ProductRepository using SQLite.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new SQLite-backed ProductRepository.
func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{db: db.SqlDB}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO products (seller_id, name, description, stock, price, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		product.SellerID, product.Name, product.Description, product.Stock, product.Price, now,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	product.ID = id
	product.CreatedAt = now
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	p := &domain.Product{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, seller_id, name, description, stock, price, created_at
		 FROM products WHERE id = ?`, id,
	).Scan(&p.ID, &p.SellerID, &p.Name, &p.Description, &p.Stock, &p.Price, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoSuchProduct
		}
		return nil, fmt.Errorf("query product by id: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) ListAvailable(ctx context.Context) ([]domain.ProductDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.seller_id, p.name, p.description, p.stock, p.price, p.created_at, u.name
		 FROM products p
		 JOIN users u ON u.id = p.seller_id
		 WHERE p.stock > 0
		 ORDER BY p.stock DESC, p.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list available products: %w", err)
	}
	defer rows.Close()

	var products []domain.ProductDetail
	for rows.Next() {
		var p domain.ProductDetail
		if err := rows.Scan(&p.ID, &p.SellerID, &p.Name, &p.Description,
			&p.Stock, &p.Price, &p.CreatedAt, &p.SellerName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
