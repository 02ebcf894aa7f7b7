// Package pdf renders the printable invoice document.
//
// Letter page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: INVOICE + number + date                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FROM: company block      │  BILL TO: customer block        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: SKU | Description | Qty | Unit | Unit Price | Total │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / Discount / Tax (8.25%) / TOTAL DUE      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: payment terms                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	appbilling "github.com/wareline/supplydesk-api/internal/application/billing"
	"github.com/wareline/supplydesk-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var usd = message.NewPrinter(language.AmericanEnglish)

var _ appbilling.InvoiceRenderer = (*MarotoInvoiceRenderer)(nil)

// MarotoInvoiceRenderer implements billing.InvoiceRenderer using Maroto v2.
type MarotoInvoiceRenderer struct{}

// NewMarotoInvoiceRenderer builds the renderer.
func NewMarotoInvoiceRenderer() *MarotoInvoiceRenderer { return &MarotoInvoiceRenderer{} }

// Render produces the invoice PDF and returns its bytes.
func (g *MarotoInvoiceRenderer) Render(
	invoice *entity.Invoice,
	lines []entity.InvoiceLine,
	from appbilling.CompanyInfo,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.Number, true).
		WithAuthor(from.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(invoice, from))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: document title left, number and date right.
func headerRow(invoice *entity.Invoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New(invoice.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Date: "+invoice.Date.Format("January 2, 2006"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// partiesRow: From block left, Bill To block right. The customer address is
// free text and may span multiple lines.
func partiesRow(invoice *entity.Invoice, from appbilling.CompanyInfo) core.Row {
	fromLines := []string{from.Name, from.Address, from.City, from.Phone}
	billLines := append([]string{invoice.CustomerName}, strings.Split(invoice.CustomerAddress, "\n")...)

	height := float64(10 + 5*max(len(fromLines), len(billLines)))
	fromCol := col.New(6).Add(text.New("FROM", props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
	}))
	billCol := col.New(6).Add(text.New("BILL TO", props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
	}))

	for i, l := range fromLines {
		if l == "" {
			continue
		}
		fromCol.Add(text.New(l, props.Text{Size: 8, Top: float64(7 + 5*i), Color: colorGray}))
	}
	for i, l := range billLines {
		style := props.Text{Size: 8, Top: float64(7 + 5*i), Color: colorGray}
		if i == 0 {
			style = props.Text{Style: fontstyle.Bold, Size: 9, Top: 7}
		}
		billCol.Add(text.New(l, style))
	}
	return row.New(height).Add(fromCol, billCol)
}

// tableHeaderRow: item table header.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Description", 4, align.Left),
		h("Qty", 1, align.Center),
		h("Unit", 1, align.Center),
		h("Unit Price", 2, align.Right),
		h("Line Total", 2, align.Right),
	)
}

// tableLineRows: one row per invoice line.
func tableLineRows(lines []entity.InvoiceLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(l.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(l.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(l.UnitOfMeasure, props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(formatMoney(l.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatMoney(l.LineTotal), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: right-aligned totals block. The discount row only appears when
// a volume tier applied.
func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	labels := []core.Component{label("Subtotal:", 1)}
	values := []core.Component{value(formatMoney(invoice.Subtotal), 1)}
	top := 6.0
	if invoice.DiscountAmount.IsPositive() {
		pct := invoice.DiscountRate.Mul(decimal.NewFromInt(100))
		labels = append(labels, label(fmt.Sprintf("Volume Discount (%s%%):", pct.StringFixed(0)), top))
		values = append(values, value("-"+formatMoney(invoice.DiscountAmount), top))
		top += 5
	}
	pct := invoice.TaxRate.Mul(decimal.NewFromInt(100))
	labels = append(labels, label(fmt.Sprintf("Tax (%s%%):", pct.String()), top))
	values = append(values, value(formatMoney(invoice.TaxAmount), top))
	top += 6

	labels = append(labels, text.New("TOTAL DUE:", props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 2, Top: top,
	}))
	values = append(values, text.New(formatMoney(invoice.Total), props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 1, Top: top,
	}))

	return row.New(top + 8).Add(
		col.New(4),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
	)
}

func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Payment Terms: Net 30 days. Thank you for your business.", props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 2,
		}),
	))
}

// formatMoney renders a decimal amount as US currency with thousands
// separators, e.g. 10825.5 -> "$10,825.50".
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return usd.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
