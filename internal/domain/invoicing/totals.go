package invoicing

import (
	"github.com/shopspring/decimal"
	"github.com/wareline/supplydesk-api/internal/domain/entity"
)

// TaxRate is the fixed sales tax applied to the discounted subtotal (8.25%).
var TaxRate = decimal.RequireFromString("0.0825")

// Volume discount tiers: inclusive lower bounds, evaluated highest-first.
// A subtotal of exactly 10000 lands in the 15% tier, not the 10% one.
var (
	tierLarge  = decimal.NewFromInt(20000)
	tierMedium = decimal.NewFromInt(10000)
	tierSmall  = decimal.NewFromInt(5000)

	rateLarge  = decimal.RequireFromString("0.20")
	rateMedium = decimal.RequireFromString("0.15")
	rateSmall  = decimal.RequireFromString("0.10")
)

// DiscountRate maps a subtotal to its volume discount rate. Pure, monotonic
// step function.
func DiscountRate(subtotal decimal.Decimal) decimal.Decimal {
	switch {
	case subtotal.GreaterThanOrEqual(tierLarge):
		return rateLarge
	case subtotal.GreaterThanOrEqual(tierMedium):
		return rateMedium
	case subtotal.GreaterThanOrEqual(tierSmall):
		return rateSmall
	default:
		return decimal.Zero
	}
}

// Totals is the full arithmetic result for a set of resolved lines.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxableAmount  decimal.Decimal
	TaxRate        decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// ComputeTotals derives subtotal, discount, tax and grand total from the
// resolved lines. Pure function: calling it twice on the same lines yields
// identical results.
func ComputeTotals(lines []entity.InvoiceLine) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal)
	}

	rate := DiscountRate(subtotal)
	discount := subtotal.Mul(rate)
	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(TaxRate)

	return Totals{
		Subtotal:       subtotal,
		DiscountRate:   rate,
		DiscountAmount: discount,
		TaxableAmount:  taxable,
		TaxRate:        TaxRate,
		TaxAmount:      tax,
		Total:          taxable.Add(tax),
	}
}

// LineTotal prices one line: unit price times quantity.
func LineTotal(unitPrice decimal.Decimal, quantity int64) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity))
}
