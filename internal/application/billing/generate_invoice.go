package billing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wareline/supplydesk-api/internal/application/dto"
	"github.com/wareline/supplydesk-api/internal/domain"
	"github.com/wareline/supplydesk-api/internal/domain/entity"
	"github.com/wareline/supplydesk-api/internal/domain/invoicing"
	"github.com/wareline/supplydesk-api/internal/domain/repository"
	"github.com/wareline/supplydesk-api/pkg/logger"
	"github.com/wareline/supplydesk-api/pkg/metrics"
)

// Pipeline step names, as reported in failure payloads.
const (
	StepValidateInput   = "validate_input"
	StepFetchPrices     = "fetch_prices"
	StepCalculateTotals = "calculate_totals"
	StepGeneratePDF     = "generate_pdf"
)

// StepFailure carries every error collected by the pipeline step that
// stopped the run. Errors are collected within a step; the pipeline stops at
// the first step that reported any (fail-fast between steps).
type StepFailure struct {
	Step   string
	Errors []string
}

func (f *StepFailure) Error() string {
	return fmt.Sprintf("invoice generation failed at %s: %s", f.Step, strings.Join(f.Errors, "; "))
}

// Config for the generator: output location, numbering and the From block.
type Config struct {
	OutputDir    string
	NumberPrefix string // "INV" -> INV-000042
	Company      CompanyInfo
}

// GenerateInvoiceUseCase runs the invoice pipeline:
//
//	validate_input -> fetch_prices -> calculate_totals -> generate_pdf
//
// Each step runs synchronously. Number assignment, persistence and the PDF
// artifact all happen inside one transaction, so a failed run voids the
// whole invoice and leaves no file behind.
type GenerateInvoiceUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	invoiceRepo repository.InvoiceRepository
	renderer    InvoiceRenderer
	cfg         Config
	log         *logger.Logger
	metrics     *metrics.BillingMetrics
}

// NewGenerateInvoiceUseCase wires the pipeline.
func NewGenerateInvoiceUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
	renderer InvoiceRenderer,
	cfg Config,
	log *logger.Logger,
	m *metrics.BillingMetrics,
) *GenerateInvoiceUseCase {
	if cfg.NumberPrefix == "" {
		cfg.NumberPrefix = "INV"
	}
	return &GenerateInvoiceUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		invoiceRepo: invoiceRepo,
		renderer:    renderer,
		cfg:         cfg,
		log:         log,
		metrics:     m,
	}
}

// Generate runs the full pipeline for one request. On success it returns the
// invoice payload; on failure it returns a *StepFailure with the collected
// errors and the step that stopped the run.
func (uc *GenerateInvoiceUseCase) Generate(ctx context.Context, in dto.GenerateInvoiceRequest) (*dto.InvoiceResponse, error) {
	// Step 1: validate input. All violations are collected.
	if errs := invoicing.ValidateInput(in.CustomerName, in.CustomerAddress, toLineRequests(in.Items)); len(errs) > 0 {
		return nil, uc.fail(StepValidateInput, errs)
	}

	// Step 2: resolve catalog prices. All lookup errors are collected; any
	// error voids the invoice and discards the partial lines.
	lines, errs := uc.resolveItems(in.Items)
	if len(errs) > 0 {
		return nil, uc.fail(StepFetchPrices, errs)
	}

	// Step 3: totals. Pure arithmetic, cannot fail on resolved lines.
	totals := invoicing.ComputeTotals(lines)

	now := time.Now()
	inv := &entity.Invoice{
		ID:              uuid.New().String(),
		Date:            now,
		CustomerName:    in.CustomerName,
		CustomerAddress: in.CustomerAddress,
		Subtotal:        totals.Subtotal,
		DiscountRate:    totals.DiscountRate,
		DiscountAmount:  totals.DiscountAmount,
		TaxRate:         totals.TaxRate,
		TaxAmount:       totals.TaxAmount,
		Total:           totals.Total,
		CreatedAt:       now,
	}

	// Step 4: number, persist and render inside one transaction. The counter
	// bump rolls back with everything else, so a render failure does not
	// burn a sequence number.
	var pdfWritten string
	err := uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		counterRepo repository.InvoiceCounterRepository,
	) error {
		seq, err := counterRepo.Next()
		if err != nil {
			return fmt.Errorf("next invoice number: %w", err)
		}
		inv.Number = fmt.Sprintf("%s-%06d", uc.cfg.NumberPrefix, seq)
		inv.PDFPath = filepath.Join(uc.cfg.OutputDir, inv.Number+".pdf")

		for i := range lines {
			lines[i].ID = uuid.New().String()
			lines[i].InvoiceID = inv.ID
			lines[i].LineNo = i + 1
		}

		start := time.Now()
		doc, err := uc.renderer.Render(inv, lines, uc.cfg.Company)
		uc.metrics.ObserveRender(time.Since(start))
		if err != nil {
			return &StepFailure{Step: StepGeneratePDF, Errors: []string{fmt.Sprintf("PDF generation error: %v", err)}}
		}

		if err := invoiceRepo.Create(inv); err != nil {
			return fmt.Errorf("insert invoice: %w", err)
		}
		for i := range lines {
			if err := invoiceRepo.CreateLine(&lines[i]); err != nil {
				return fmt.Errorf("insert invoice line: %w", err)
			}
		}

		if err := os.MkdirAll(uc.cfg.OutputDir, 0o755); err != nil {
			return &StepFailure{Step: StepGeneratePDF, Errors: []string{fmt.Sprintf("create output dir: %v", err)}}
		}
		if err := os.WriteFile(inv.PDFPath, doc, 0o644); err != nil {
			_ = os.Remove(inv.PDFPath) // no partial artifact
			return &StepFailure{Step: StepGeneratePDF, Errors: []string{fmt.Sprintf("write PDF: %v", err)}}
		}
		pdfWritten = inv.PDFPath
		return nil
	})
	if err != nil {
		// If the commit itself failed after the file was written, the rows
		// rolled back; remove the orphaned artifact too.
		if pdfWritten != "" {
			_ = os.Remove(pdfWritten)
		}
		var sf *StepFailure
		if errors.As(err, &sf) {
			return nil, uc.fail(sf.Step, sf.Errors)
		}
		return nil, uc.fail(StepGeneratePDF, []string{err.Error()})
	}

	uc.metrics.IncGenerated()
	uc.log.Info().
		Str("invoice_number", inv.Number).
		Str("customer", inv.CustomerName).
		Str("total", inv.Total.StringFixed(2)).
		Msg("invoice generated")

	return toInvoiceResponse(inv, lines), nil
}

// GetInvoice returns a stored invoice with its lines.
func (uc *GenerateInvoiceUseCase) GetInvoice(ctx context.Context, number string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.invoiceRepo.LinesByInvoiceID(inv.ID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, lines), nil
}

// resolveItems looks up every requested SKU in the catalog. Unknown SKUs are
// reported and skipped. Insufficient stock is reported but the line is still
// resolved and still contributes to the total — the step-level failure voids
// the invoice anyway, so nothing is ever billed from it. Both behaviors are
// pinned by tests.
func (uc *GenerateInvoiceUseCase) resolveItems(items []dto.InvoiceItemRequest) ([]entity.InvoiceLine, []string) {
	var lines []entity.InvoiceLine
	var errs []string

	for _, item := range items {
		product, err := uc.productRepo.GetBySKU(item.SKU)
		if err != nil {
			errs = append(errs, fmt.Sprintf("catalog error: %v", err))
			continue
		}
		if product == nil {
			errs = append(errs, fmt.Sprintf("product with SKU '%s' not found", item.SKU))
			continue
		}
		if product.QuantityOnHand < item.Quantity {
			errs = append(errs, fmt.Sprintf("%s: insufficient stock (requested: %d, available: %d)",
				product.Name, item.Quantity, product.QuantityOnHand))
		}
		lines = append(lines, entity.InvoiceLine{
			SKU:           product.SKU,
			Name:          product.Name,
			Description:   product.Description,
			UnitOfMeasure: product.UnitOfMeasure,
			Quantity:      item.Quantity,
			UnitPrice:     product.UnitPrice,
			LineTotal:     invoicing.LineTotal(product.UnitPrice, item.Quantity),
		})
	}
	return lines, errs
}

func (uc *GenerateInvoiceUseCase) fail(step string, errs []string) *StepFailure {
	uc.metrics.IncFailed(step)
	uc.log.Warn().
		Str("step", step).
		Strs("errors", errs).
		Msg("invoice generation failed")
	return &StepFailure{Step: step, Errors: errs}
}

func toLineRequests(items []dto.InvoiceItemRequest) []invoicing.LineRequest {
	reqs := make([]invoicing.LineRequest, 0, len(items))
	for _, item := range items {
		reqs = append(reqs, invoicing.LineRequest{SKU: item.SKU, Quantity: item.Quantity})
	}
	return reqs
}

func toInvoiceResponse(inv *entity.Invoice, lines []entity.InvoiceLine) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		InvoiceNumber:  inv.Number,
		InvoiceDate:    inv.Date.Format("2006-01-02"),
		CustomerName:   inv.CustomerName,
		PDFPath:        inv.PDFPath,
		Subtotal:       inv.Subtotal,
		DiscountRate:   inv.DiscountRate,
		DiscountAmount: inv.DiscountAmount,
		TaxRate:        inv.TaxRate,
		TaxAmount:      inv.TaxAmount,
		Total:          inv.Total,
		Items:          make([]dto.InvoiceItemResponse, 0, len(lines)),
	}
	for _, line := range lines {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			SKU:           line.SKU,
			Name:          line.Name,
			Description:   line.Description,
			UnitOfMeasure: line.UnitOfMeasure,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			LineTotal:     line.LineTotal,
		})
	}
	return resp
}
