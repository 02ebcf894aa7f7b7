package postgres

import (
	"context"
	"fmt"

	"github.com/wareline/supplydesk-api/internal/domain/entity"
	"github.com/wareline/supplydesk-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo is the read-side stock reporting adapter.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// StockLevels lists products with their on-hand quantities, optionally
// narrowed by category or to low-stock rows only.
func (r *InventoryRepo) StockLevels(filter repository.StockFilter) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1 = '' OR category = $1)
		  AND ($2 <= 0 OR quantity_on_hand < $2)
		ORDER BY category, name`
	rows, err := r.q.Query(context.Background(), query, filter.Category, filter.LowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("stock levels: %w", err)
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

// Valuation aggregates the whole catalog into one stock report: totals,
// per-category breakdown, low-stock and out-of-stock lists.
func (r *InventoryRepo) Valuation(lowStockWatermark int64) (*repository.InventoryValuation, error) {
	var v repository.InventoryValuation
	err := r.q.QueryRow(context.Background(), `
		SELECT COUNT(*), COALESCE(SUM(quantity_on_hand), 0), COALESCE(SUM(unit_price * quantity_on_hand), 0)
		FROM products`,
	).Scan(&v.TotalProducts, &v.TotalUnits, &v.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("valuation totals: %w", err)
	}

	catRepo := NewProductRepository(r.q)
	if v.Categories, err = catRepo.ListCategories(); err != nil {
		return nil, err
	}

	below, err := r.StockLevels(repository.StockFilter{LowStockThreshold: lowStockWatermark})
	if err != nil {
		return nil, err
	}
	for _, p := range below {
		if p.QuantityOnHand == 0 {
			v.OutOfStock = append(v.OutOfStock, p)
		} else {
			v.LowStock = append(v.LowStock, p)
		}
	}
	return &v, nil
}
