package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one catalog SKU. The billing pipeline treats the catalog as
// ground truth and never mutates it; stock changes belong to fulfilment.
type Product struct {
	ID             string
	SKU            string // unique code, e.g. "PP-ROPE-001"
	Name           string
	Category       string
	UnitPrice      decimal.Decimal
	UnitOfMeasure  string // meter, piece, ...
	QuantityOnHand int64
	Description    string
	Specifications string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CategorySummary aggregates the catalog per category.
type CategorySummary struct {
	Category     string
	ProductCount int64
	MinPrice     decimal.Decimal
	MaxPrice     decimal.Decimal
	TotalUnits   int64
}
