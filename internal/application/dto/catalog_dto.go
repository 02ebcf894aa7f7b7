package dto

import "github.com/shopspring/decimal"

// ProductResponse is one catalog entry.
type ProductResponse struct {
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	UnitOfMeasure  string          `json:"unit_of_measure"`
	QuantityOnHand int64           `json:"quantity_on_hand"`
	Description    string          `json:"description,omitempty"`
	Specifications string          `json:"specifications,omitempty"`
}

// CategoryResponse aggregates one catalog category.
type CategoryResponse struct {
	Category     string          `json:"category"`
	ProductCount int64           `json:"product_count"`
	MinPrice     decimal.Decimal `json:"min_price"`
	MaxPrice     decimal.Decimal `json:"max_price"`
	TotalUnits   int64           `json:"total_units"`
}
