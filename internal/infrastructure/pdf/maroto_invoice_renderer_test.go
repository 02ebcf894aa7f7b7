package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/wareline/supplydesk-api/internal/application/billing"
	"github.com/wareline/supplydesk-api/internal/domain/entity"
)

func sampleInvoice() (*entity.Invoice, []entity.InvoiceLine) {
	inv := &entity.Invoice{
		Number:          "INV-000042",
		Date:            time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		CustomerName:    "John Construction LLC",
		CustomerAddress: "456 Builder Ave\nHouston, TX 77001",
		Subtotal:        decimal.RequireFromString("10000"),
		DiscountRate:    decimal.RequireFromString("0.15"),
		DiscountAmount:  decimal.RequireFromString("1500"),
		TaxRate:         decimal.RequireFromString("0.0825"),
		TaxAmount:       decimal.RequireFromString("701.25"),
		Total:           decimal.RequireFromString("9201.25"),
	}
	lines := []entity.InvoiceLine{
		{SKU: "PP-ROPE-001", Name: "Polypropylene Rope 8mm", UnitOfMeasure: "meter",
			Quantity: 4000, UnitPrice: decimal.RequireFromString("2.50"), LineTotal: decimal.RequireFromString("10000")},
	}
	return inv, lines
}

func TestRender_ProducesPDF(t *testing.T) {
	inv, lines := sampleInvoice()

	doc, err := NewMarotoInvoiceRenderer().Render(inv, lines, appbilling.CompanyInfo{
		Name:    "Warehouse Supply Co.",
		Address: "123 Industrial Park",
		City:    "Dallas, TX 75201",
		Phone:   "(555) 123-4567",
	})
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestRender_NoDiscountRowWhenZero(t *testing.T) {
	inv, lines := sampleInvoice()
	inv.DiscountRate = decimal.Zero
	inv.DiscountAmount = decimal.Zero

	doc, err := NewMarotoInvoiceRenderer().Render(inv, lines, appbilling.CompanyInfo{Name: "Warehouse Supply Co."})
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"2.5":      "$2.50",
		"250":      "$250.00",
		"10825.5":  "$10,825.50",
		"1000000":  "$1,000,000.00",
		"270.625":  "$270.63",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), "input %s", in)
	}
}
