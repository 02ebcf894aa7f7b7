package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wareline/supplydesk-api/internal/domain"
	"github.com/wareline/supplydesk-api/internal/domain/entity"
	"github.com/wareline/supplydesk-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, category, unit_price, unit_of_measure, quantity_on_hand, description, specifications, created_at, updated_at`

// ProductRepo implements the ProductRepository port on PostgreSQL (usable
// with pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the catalog adapter. Pass a pool or a tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new catalog product.
func (r *ProductRepo) Create(product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Category,
		product.UnitPrice, product.UnitOfMeasure, product.QuantityOnHand,
		product.Description, product.Specifications, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetBySKU fetches a product by SKU, case-insensitively. Returns nil, nil on miss.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE UPPER(sku) = UPPER($1)`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// Search matches the query against name, description and specifications,
// optionally narrowed to one category. Empty query with a category lists
// that category.
func (r *ProductRepo) Search(query, category string) ([]*entity.Product, error) {
	sql := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%' OR specifications ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR category = $2)
		ORDER BY category, name`
	rows, err := r.q.Query(context.Background(), sql, query, category)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListCategories aggregates the catalog per category.
func (r *ProductRepo) ListCategories() ([]entity.CategorySummary, error) {
	query := `
		SELECT category, COUNT(*), MIN(unit_price), MAX(unit_price), COALESCE(SUM(quantity_on_hand), 0)
		FROM products
		GROUP BY category
		ORDER BY category`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []entity.CategorySummary
	for rows.Next() {
		var c entity.CategorySummary
		if err := rows.Scan(&c.Category, &c.ProductCount, &c.MinPrice, &c.MaxPrice, &c.TotalUnits); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Category, &p.UnitPrice, &p.UnitOfMeasure,
		&p.QuantityOnHand, &p.Description, &p.Specifications, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
