package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wareline/supplydesk-api/internal/domain/entity"
	"github.com/wareline/supplydesk-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persists the invoice header.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, number, date, customer_name, customer_address, subtotal, discount_rate, discount_amount, tax_rate, tax_amount, total, pdf_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Number, invoice.Date, invoice.CustomerName, invoice.CustomerAddress,
		invoice.Subtotal, invoice.DiscountRate, invoice.DiscountAmount,
		invoice.TaxRate, invoice.TaxAmount, invoice.Total,
		invoice.PDFPath, invoice.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number already exists: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateLine persists one invoice line.
func (r *InvoiceRepo) CreateLine(line *entity.InvoiceLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoice_lines (id, invoice_id, line_no, sku, name, description, unit_of_measure, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.InvoiceID, line.LineNo, line.SKU, line.Name, line.Description,
		line.UnitOfMeasure, line.Quantity, line.UnitPrice, line.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("insert invoice line: %w", err)
	}
	return nil
}

// GetByNumber fetches an invoice header by its number. Returns nil, nil on miss.
func (r *InvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	query := `
		SELECT id, number, date, customer_name, customer_address, subtotal, discount_rate, discount_amount, tax_rate, tax_amount, total, pdf_path, created_at
		FROM invoices WHERE number = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, number).Scan(
		&inv.ID, &inv.Number, &inv.Date, &inv.CustomerName, &inv.CustomerAddress,
		&inv.Subtotal, &inv.DiscountRate, &inv.DiscountAmount,
		&inv.TaxRate, &inv.TaxAmount, &inv.Total,
		&inv.PDFPath, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// LinesByInvoiceID fetches the lines of one invoice in line order, as they
// appeared on the request.
func (r *InvoiceRepo) LinesByInvoiceID(invoiceID string) ([]entity.InvoiceLine, error) {
	query := `
		SELECT id, invoice_id, line_no, sku, name, description, unit_of_measure, quantity, unit_price, line_total
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.InvoiceLine
	for rows.Next() {
		var l entity.InvoiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.LineNo, &l.SKU, &l.Name, &l.Description,
			&l.UnitOfMeasure, &l.Quantity, &l.UnitPrice, &l.LineTotal); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

var _ repository.InvoiceCounterRepository = (*InvoiceCounterRepo)(nil)

// InvoiceCounterRepo hands out sequence numbers from the invoice_counters
// row. Next must run inside the same transaction as the invoice insert: the
// row lock taken by UPDATE serializes concurrent generations, and a rollback
// returns the number to the sequence.
type InvoiceCounterRepo struct {
	q Querier
}

// NewInvoiceCounterRepository builds the adapter. Pass the billing tx.
func NewInvoiceCounterRepository(q Querier) *InvoiceCounterRepo {
	return &InvoiceCounterRepo{q: q}
}

// Next atomically bumps and returns the counter.
func (r *InvoiceCounterRepo) Next() (int64, error) {
	var seq int64
	err := r.q.QueryRow(context.Background(),
		`UPDATE invoice_counters SET value = value + 1 WHERE name = 'invoice' RETURNING value`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next invoice number: %w", err)
	}
	return seq, nil
}
