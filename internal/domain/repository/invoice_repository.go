package repository

import "github.com/wareline/supplydesk-api/internal/domain/entity"

// InvoiceRepository persists invoice headers and lines. Create/read only:
// an invoice is never updated or deleted after generation.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateLine(line *entity.InvoiceLine) error
	GetByNumber(number string) (*entity.Invoice, error)
	LinesByInvoiceID(invoiceID string) ([]entity.InvoiceLine, error)
}

// InvoiceCounterRepository hands out invoice sequence numbers. Next must be
// atomic under concurrent callers; implementations bump a dedicated counter
// row inside the caller's transaction.
type InvoiceCounterRepository interface {
	Next() (int64, error)
}
