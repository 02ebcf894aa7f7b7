package repository

import (
	"github.com/shopspring/decimal"

	"github.com/wareline/supplydesk-api/internal/domain/entity"
)

// StockFilter narrows an inventory listing.
type StockFilter struct {
	Category          string // empty = all categories
	LowStockThreshold int64  // >0 = only products with quantity_on_hand below it
}

// InventoryValuation is the aggregate stock report.
type InventoryValuation struct {
	TotalProducts int64
	TotalUnits    int64
	TotalValue    decimal.Decimal // Σ unit_price × quantity_on_hand
	Categories    []entity.CategorySummary
	LowStock      []*entity.Product // below the low-stock watermark
	OutOfStock    []*entity.Product
}

// InventoryRepository is the read-side port for stock reporting.
type InventoryRepository interface {
	StockLevels(filter StockFilter) ([]*entity.Product, error)
	Valuation(lowStockWatermark int64) (*InventoryValuation, error)
}
