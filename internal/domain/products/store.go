package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProductNotFound = errors.New("product not found")

// Store is the read-only data access abstraction for the hosted product
// table. Implemented by Repository (which uses pgxpool.Pool).
type Store interface {
	// ListAll fetches every row whose raw category is in the allow-list,
	// cheapest first. An empty allow-list means no category filter.
	ListAll(ctx context.Context, categories []string) ([]Record, error)

	// List is the paginated variant, returning the true total alongside
	// the page.
	List(ctx context.Context, categories []string, limit, offset int) ([]Record, int, error)

	GetByID(ctx context.Context, id int64) (*Record, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

// recordColumns casts the price columns to text so that rows written by
// older scraper versions (numeric) and newer ones (text) read the same.
const recordColumns = `
	id, name, brand, category,
	current_price::text, regular_price::text,
	is_on_sale, discount_percentage,
	image_url, product_url, stock_status, in_stock,
	description, highlights
`

func (r *Repository) ListAll(ctx context.Context, categories []string) ([]Record, error) {
	q := `
		SELECT ` + recordColumns + `
		FROM products
		WHERE cardinality($1::text[]) = 0 OR category = ANY($1)
		ORDER BY current_price ASC NULLS LAST, id ASC;
	`
	rows, err := r.db.Query(ctx, q, categories)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return out, nil
}

func (r *Repository) List(ctx context.Context, categories []string, limit, offset int) ([]Record, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	if offset < 0 {
		offset = 0
	}

	q := `
		SELECT ` + recordColumns + `,
		       COUNT(*) OVER() AS total_count
		FROM products
		WHERE cardinality($1::text[]) = 0 OR category = ANY($1)
		ORDER BY current_price ASC NULLS LAST, id ASC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, q, categories, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products page: %w", err)
	}
	defer rows.Close()

	recs := make([]Record, 0, limit)
	totalCount := 0
	for rows.Next() {
		rec, total, err := scanRecordWithTotal(rows)
		if err != nil {
			return nil, 0, err
		}
		totalCount = total
		recs = append(recs, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration: %w", err)
	}

	// Paged past the end: no rows, but the total may still be > 0.
	if len(recs) == 0 && offset > 0 {
		countQ := `
			SELECT COUNT(*) FROM products
			WHERE cardinality($1::text[]) = 0 OR category = ANY($1);
		`
		if err := r.db.QueryRow(ctx, countQ, categories).Scan(&totalCount); err != nil {
			return nil, 0, fmt.Errorf("count products: %w", err)
		}
	}

	return recs, totalCount, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Record, error) {
	q := `SELECT ` + recordColumns + ` FROM products WHERE id = $1;`
	row := r.db.QueryRow(ctx, q, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return rec, nil
}

func scanRecord(row pgx.Row) (*Record, error) {
	var (
		rec          Record
		brand        sql.NullString
		currentPrice sql.NullString
		regularPrice sql.NullString
		discountPct  sql.NullFloat64
		imageURL     sql.NullString
		productURL   sql.NullString
		stockStatus  sql.NullString
		inStock      sql.NullBool
		description  sql.NullString
	)
	if err := row.Scan(
		&rec.ID, &rec.Name, &brand, &rec.Category,
		&currentPrice, &regularPrice,
		&rec.IsOnSale, &discountPct,
		&imageURL, &productURL, &stockStatus, &inStock,
		&description, &rec.Highlights,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	assignOptional(&rec, brand, currentPrice, regularPrice, discountPct, imageURL, productURL, stockStatus, inStock, description)
	return &rec, nil
}

func scanRecordWithTotal(rows pgx.Rows) (*Record, int, error) {
	var (
		rec          Record
		brand        sql.NullString
		currentPrice sql.NullString
		regularPrice sql.NullString
		discountPct  sql.NullFloat64
		imageURL     sql.NullString
		productURL   sql.NullString
		stockStatus  sql.NullString
		inStock      sql.NullBool
		description  sql.NullString
		total        int
	)
	if err := rows.Scan(
		&rec.ID, &rec.Name, &brand, &rec.Category,
		&currentPrice, &regularPrice,
		&rec.IsOnSale, &discountPct,
		&imageURL, &productURL, &stockStatus, &inStock,
		&description, &rec.Highlights,
		&total,
	); err != nil {
		return nil, 0, fmt.Errorf("scan product: %w", err)
	}
	assignOptional(&rec, brand, currentPrice, regularPrice, discountPct, imageURL, productURL, stockStatus, inStock, description)
	return &rec, total, nil
}

func assignOptional(
	rec *Record,
	brand, currentPrice, regularPrice sql.NullString,
	discountPct sql.NullFloat64,
	imageURL, productURL, stockStatus sql.NullString,
	inStock sql.NullBool,
	description sql.NullString,
) {
	if brand.Valid {
		s := brand.String
		rec.Brand = &s
	}
	if currentPrice.Valid {
		s := currentPrice.String
		rec.CurrentPrice = &s
	}
	if regularPrice.Valid {
		s := regularPrice.String
		rec.RegularPrice = &s
	}
	if discountPct.Valid {
		v := discountPct.Float64
		rec.DiscountPercentage = &v
	}
	if imageURL.Valid {
		s := imageURL.String
		rec.ImageURL = &s
	}
	if productURL.Valid {
		s := productURL.String
		rec.ProductURL = &s
	}
	if stockStatus.Valid {
		s := stockStatus.String
		rec.StockStatus = &s
	}
	if inStock.Valid {
		b := inStock.Bool
		rec.InStock = &b
	}
	if description.Valid {
		s := description.String
		rec.Description = &s
	}
}
