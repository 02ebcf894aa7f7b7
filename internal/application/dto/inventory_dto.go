package dto

import "github.com/shopspring/decimal"

// StockLevelResponse is one product's stock position.
type StockLevelResponse struct {
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	QuantityOnHand int64           `json:"quantity_on_hand"`
	UnitOfMeasure  string          `json:"unit_of_measure"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	StockValue     decimal.Decimal `json:"stock_value"` // unit_price × quantity_on_hand
}

// InventorySummaryResponse is the aggregate stock report.
type InventorySummaryResponse struct {
	TotalProducts int64                `json:"total_products"`
	TotalUnits    int64                `json:"total_units"`
	TotalValue    decimal.Decimal      `json:"total_value"`
	Categories    []CategoryResponse   `json:"categories"`
	LowStock      []StockLevelResponse `json:"low_stock,omitempty"`
	OutOfStock    []StockLevelResponse `json:"out_of_stock,omitempty"`
}
