package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wareline/supplydesk-api/internal/application/dto"
	"github.com/wareline/supplydesk-api/internal/domain/entity"
	"github.com/wareline/supplydesk-api/pkg/logger"
	"github.com/wareline/supplydesk-api/pkg/metrics"
)

type stubProductRepo struct {
	bySKU map[string]*entity.Product
}

func (r *stubProductRepo) Create(p *entity.Product) error                    { r.bySKU[p.SKU] = p; return nil }
func (r *stubProductRepo) GetBySKU(sku string) (*entity.Product, error)      { return r.bySKU[sku], nil }
func (r *stubProductRepo) Search(string, string) ([]*entity.Product, error)  { return nil, nil }
func (r *stubProductRepo) ListCategories() ([]entity.CategorySummary, error) { return nil, nil }

// TestResolveItems_InsufficientStockStillResolvesLine pins the documented
// current behavior: a line over the available stock produces the error
// string AND a fully priced line. The step failure voids the invoice before
// anything is billed; if the policy ever changes (reject the line, allow
// backorder), this test must change with it.
func TestResolveItems_InsufficientStockStillResolvesLine(t *testing.T) {
	repo := &stubProductRepo{bySKU: map[string]*entity.Product{
		"ST-WIRE-001": {
			SKU: "ST-WIRE-001", Name: "Steel Wire 2mm",
			UnitPrice: decimal.RequireFromString("1.25"), UnitOfMeasure: "meter", QuantityOnHand: 5,
		},
	}}
	uc := NewGenerateInvoiceUseCase(nil, repo, nil, nil, Config{},
		logger.New(logger.Config{Env: "development", Level: "error"}),
		metrics.NewBillingMetrics(nil))

	lines, errs := uc.resolveItems([]dto.InvoiceItemRequest{{SKU: "ST-WIRE-001", Quantity: 10}})

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "insufficient stock (requested: 10, available: 5)")

	require.Len(t, lines, 1, "the line is still resolved")
	assert.True(t, lines[0].LineTotal.Equal(decimal.RequireFromString("12.50")),
		"the over-stock line still contributes its total, got %s", lines[0].LineTotal)
}

// TestResolveItems_UnknownSKUSkipsLine: unknown SKUs are reported and produce
// no resolved line.
func TestResolveItems_UnknownSKUSkipsLine(t *testing.T) {
	repo := &stubProductRepo{bySKU: map[string]*entity.Product{}}
	uc := NewGenerateInvoiceUseCase(nil, repo, nil, nil, Config{},
		logger.New(logger.Config{Env: "development", Level: "error"}),
		metrics.NewBillingMetrics(nil))

	lines, errs := uc.resolveItems([]dto.InvoiceItemRequest{{SKU: "GHOST-001", Quantity: 1}})

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "GHOST-001")
	assert.Empty(t, lines)
}
