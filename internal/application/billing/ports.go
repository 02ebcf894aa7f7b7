package billing

import (
	"context"

	"github.com/wareline/supplydesk-api/internal/domain/entity"
	"github.com/wareline/supplydesk-api/internal/domain/repository"
)

// TxRunner runs a function inside one database transaction holding the
// invoice repository and the sequence counter. The counter bump and the
// invoice rows commit or roll back together, so concurrent generations can
// never share a number and a failed run leaves nothing behind.
type TxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		counterRepo repository.InvoiceCounterRepository,
	) error) error
}

// CompanyInfo is the "From" block printed on every invoice.
type CompanyInfo struct {
	Name    string
	Address string
	City    string
	Phone   string
}

// InvoiceRenderer turns a fully computed invoice into a PDF document.
type InvoiceRenderer interface {
	Render(invoice *entity.Invoice, lines []entity.InvoiceLine, from CompanyInfo) ([]byte, error)
}
