package dto

import "github.com/shopspring/decimal"

// GenerateInvoiceRequest body for POST /api/invoices.
type GenerateInvoiceRequest struct {
	CustomerName    string               `json:"customer_name"`
	CustomerAddress string               `json:"customer_address"` // may contain newlines
	Items           []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest is one requested line: catalog SKU plus quantity.
type InvoiceItemRequest struct {
	SKU      string `json:"sku"`
	Quantity int64  `json:"quantity"`
}

// InvoiceResponse is the success payload of invoice generation, and the body
// of GET /api/invoices/:number.
type InvoiceResponse struct {
	InvoiceNumber  string                `json:"invoice_number"`
	InvoiceDate    string                `json:"invoice_date"` // YYYY-MM-DD
	CustomerName   string                `json:"customer_name"`
	PDFPath        string                `json:"pdf_path"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	DiscountRate   decimal.Decimal       `json:"discount_rate"`
	DiscountAmount decimal.Decimal       `json:"discount_amount"`
	TaxRate        decimal.Decimal       `json:"tax_rate"`
	TaxAmount      decimal.Decimal       `json:"tax_amount"`
	Total          decimal.Decimal       `json:"total"`
	Items          []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse is one resolved line on a generated invoice.
type InvoiceItemResponse struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	LineTotal     decimal.Decimal `json:"line_total"`
}

// InvoiceFailureResponse reports a failed generation run: every error the
// failing step collected, tagged with that step's name.
type InvoiceFailureResponse struct {
	Errors     []string `json:"errors"`
	FailedStep string   `json:"failed_step"` // validate_input | fetch_prices | calculate_totals | generate_pdf
}
