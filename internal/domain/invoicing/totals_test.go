package invoicing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wareline/supplydesk-api/internal/domain/entity"
	"github.com/wareline/supplydesk-api/internal/domain/invoicing"
)

// ──────────────────────────────────────────────────────────────────────────────
// These tests pin the numeric contract of invoicing. If anyone touches the
// tier thresholds, the tax rate or the arithmetic, they fail immediately —
// long before a wrong invoice reaches a customer.
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func linesWithTotal(total string) []entity.InvoiceLine {
	return []entity.InvoiceLine{{SKU: "PP-ROPE-001", Quantity: 1, UnitPrice: d(total), LineTotal: d(total)}}
}

// TestDiscountRate_StepFunction walks the whole tier table, including every
// boundary. Boundaries are inclusive lower bounds: exactly 5000 / 10000 /
// 20000 must map to the higher tier.
func TestDiscountRate_StepFunction(t *testing.T) {
	cases := []struct {
		name     string
		subtotal string
		want     string
	}{
		{"zero", "0", "0"},
		{"small order", "250", "0"},
		{"just below first tier", "4999.99", "0"},
		{"first tier boundary", "5000", "0.10"},
		{"inside first tier", "7500", "0.10"},
		{"just below second tier", "9999.99", "0.10"},
		{"second tier boundary", "10000", "0.15"},
		{"inside second tier", "15000", "0.15"},
		{"just below third tier", "19999.99", "0.15"},
		{"third tier boundary", "20000", "0.20"},
		{"far above third tier", "1000000", "0.20"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := invoicing.DiscountRate(d(tc.subtotal))
			assert.True(t, got.Equal(d(tc.want)),
				"subtotal %s: want rate %s, got %s", tc.subtotal, tc.want, got)
		})
	}
}

// TestComputeTotals_StandardOrder pins the exact scenario from the rate card:
// 100 meters of PP-ROPE-001 at $2.50 → subtotal 250.00, no discount,
// tax 20.625, total 270.625. Decimal arithmetic keeps these exact.
func TestComputeTotals_StandardOrder(t *testing.T) {
	lines := []entity.InvoiceLine{{
		SKU:       "PP-ROPE-001",
		Quantity:  100,
		UnitPrice: d("2.50"),
		LineTotal: invoicing.LineTotal(d("2.50"), 100),
	}}

	totals := invoicing.ComputeTotals(lines)

	assert.True(t, totals.Subtotal.Equal(d("250")), "subtotal: got %s", totals.Subtotal)
	assert.True(t, totals.DiscountRate.IsZero(), "no discount below 5000")
	assert.True(t, totals.DiscountAmount.IsZero())
	assert.True(t, totals.TaxAmount.Equal(d("20.625")), "tax: got %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(d("270.625")), "total: got %s", totals.Total)
}

// TestComputeTotals_VolumeDiscountBoundary: subtotal of exactly 10000 must
// take the 15% rate, not 10%.
func TestComputeTotals_VolumeDiscountBoundary(t *testing.T) {
	totals := invoicing.ComputeTotals(linesWithTotal("10000"))

	require.True(t, totals.DiscountRate.Equal(d("0.15")),
		"boundary 10000 must map to the higher tier, got %s", totals.DiscountRate)
	assert.True(t, totals.DiscountAmount.Equal(d("1500")))
	assert.True(t, totals.TaxableAmount.Equal(d("8500")))
	assert.True(t, totals.TaxAmount.Equal(d("701.25")))
	assert.True(t, totals.Total.Equal(d("9201.25")))
}

// TestComputeTotals_Invariant checks total = (subtotal − discount) × 1.0825
// and discount = subtotal × rate across a spread of magnitudes.
func TestComputeTotals_Invariant(t *testing.T) {
	subtotals := []string{"0.01", "123.45", "4999.99", "5000", "9999.99", "12500", "20000", "987654.32"}
	onePlusTax := d("1.0825")

	for _, s := range subtotals {
		totals := invoicing.ComputeTotals(linesWithTotal(s))

		wantDiscount := totals.Subtotal.Mul(totals.DiscountRate)
		assert.True(t, totals.DiscountAmount.Equal(wantDiscount),
			"subtotal %s: discount mismatch", s)

		wantTotal := totals.Subtotal.Sub(totals.DiscountAmount).Mul(onePlusTax)
		assert.True(t, totals.Total.Equal(wantTotal),
			"subtotal %s: want total %s, got %s", s, wantTotal, totals.Total)
	}
}

// TestComputeTotals_Idempotent: same lines in, same numbers out, every time.
func TestComputeTotals_Idempotent(t *testing.T) {
	lines := []entity.InvoiceLine{
		{SKU: "PP-ROPE-001", Quantity: 1000, UnitPrice: d("2.50"), LineTotal: d("2500")},
		{SKU: "ST-CABLE-001", Quantity: 300, UnitPrice: d("5.50"), LineTotal: d("1650")},
		{SKU: "NY-BAG-001", Quantity: 100, UnitPrice: d("15.00"), LineTotal: d("1500")},
	}

	first := invoicing.ComputeTotals(lines)
	second := invoicing.ComputeTotals(lines)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.DiscountAmount.Equal(second.DiscountAmount))
	assert.True(t, first.TaxAmount.Equal(second.TaxAmount))
	assert.True(t, first.Total.Equal(second.Total))
}

// TestComputeTotals_EmptyLines degenerates to all zeros rather than erroring;
// the validator upstream guarantees this never reaches production.
func TestComputeTotals_EmptyLines(t *testing.T) {
	totals := invoicing.ComputeTotals(nil)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestLineTotal(t *testing.T) {
	assert.True(t, invoicing.LineTotal(d("2.50"), 100).Equal(d("250")))
	assert.True(t, invoicing.LineTotal(d("0.85"), 3).Equal(d("2.55")))
}
