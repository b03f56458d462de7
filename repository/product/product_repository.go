package product

import (
	"context"

	"github.com/baraholka/marketplace/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context) ([]model.ProductListItem, error)
	Create(ctx context.Context, data *model.ProductEntity) (int64, error)
	SetSellerVerifiedTx(ctx context.Context, tx *sqlx.Tx, sellerID int64) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	listProductsQuery = `SELECT p.id, p.title, p.price, p.category, p.description,
	p.location, p.image_emoji, p.views, p.verified_seller, p.posted_at,
	u.name AS seller_name, COALESCE(u.rating, 0) AS seller_rating
FROM products p
JOIN users u ON p.seller_id = u.id
ORDER BY p.posted_at DESC`

	insertProductQuery = `INSERT INTO products (title, price, category, description, location, image_emoji, seller_id, verified_seller)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

	setSellerVerifiedQuery = `UPDATE products SET verified_seller = TRUE WHERE seller_id = $1`
)

func (s *SQL) List(ctx context.Context) ([]model.ProductListItem, error) {
	rows, err := s.conn.QueryxContext(ctx, listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) Create(ctx context.Context, data *model.ProductEntity) (int64, error) {
	var id int64
	err := s.conn.QueryRowxContext(ctx, insertProductQuery,
		data.Title, data.Price, data.Category, data.Description, data.Location,
		data.ImageEmoji, data.SellerID, data.VerifiedSeller).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// SetSellerVerifiedTx marks every listing of a seller as verified. Runs inside
// the review transaction so the flag lands together with the user update.
func (s *SQL) SetSellerVerifiedTx(ctx context.Context, tx *sqlx.Tx, sellerID int64) error {
	_, err := tx.ExecContext(ctx, setSellerVerifiedQuery, sellerID)
	return err
}
