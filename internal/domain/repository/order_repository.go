package repository

import "github.com/wareline/supplydesk-api/internal/domain/entity"

// OrderRepository is the read-side port for order tracking.
type OrderRepository interface {
	// GetByIdentifier matches an order id or a tracking number, case-insensitively.
	GetByIdentifier(identifier string) (*entity.Order, error)
	ItemsByOrderID(orderID string) ([]entity.OrderItem, error)
	// HistoryByEmail returns the customer's most recent orders, newest first.
	HistoryByEmail(email string, limit int) ([]*entity.Order, error)
}
