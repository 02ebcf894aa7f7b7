package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a billing document produced by the generation pipeline.
// Invoices are created once and never updated or deleted.
type Invoice struct {
	ID              string
	Number          string // e.g. "INV-000042", from the atomic DB counter
	Date            time.Time
	CustomerName    string
	CustomerAddress string // free text, may span multiple lines
	Subtotal        decimal.Decimal
	DiscountRate    decimal.Decimal
	DiscountAmount  decimal.Decimal
	TaxRate         decimal.Decimal
	TaxAmount       decimal.Decimal
	Total           decimal.Decimal
	PDFPath         string
	CreatedAt       time.Time
}

// InvoiceLine is one resolved item on an invoice, priced from the catalog
// at generation time.
type InvoiceLine struct {
	ID            string
	InvoiceID     string
	LineNo        int // 1-based position within the invoice, request order
	SKU           string
	Name          string
	Description   string
	UnitOfMeasure string
	Quantity      int64
	UnitPrice     decimal.Decimal
	LineTotal     decimal.Decimal
}
