package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wareline/supplydesk-api/internal/domain/entity"
	"github.com/wareline/supplydesk-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `
	o.order_id, o.customer_id, c.name, c.email, c.company,
	o.order_date, o.status, o.total_amount,
	COALESCE(o.tracking_number, ''), COALESCE(o.carrier, ''),
	o.estimated_delivery, o.actual_delivery, o.shipping_address`

// OrderRepo implements the read-side OrderRepository port on PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the adapter. Pass a pool or a tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// GetByIdentifier matches an order id or a tracking number, case-insensitively.
// Returns nil, nil on miss.
func (r *OrderRepo) GetByIdentifier(identifier string) (*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE LOWER(o.order_id) = LOWER($1) OR LOWER(o.tracking_number) = LOWER($1)`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// ItemsByOrderID lists the product lines of one order.
func (r *OrderRepo) ItemsByOrderID(orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_name, quantity, unit_price, total_price
		FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// HistoryByEmail returns the customer's most recent orders, newest first.
func (r *OrderRepo) HistoryByEmail(email string, limit int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE LOWER(c.email) = LOWER($1)
		ORDER BY o.order_date DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, email, limit)
	if err != nil {
		return nil, fmt.Errorf("list order history: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.OrderID, &o.CustomerID, &o.CustomerName, &o.CustomerEmail, &o.CustomerCompany,
		&o.OrderDate, &o.Status, &o.TotalAmount,
		&o.TrackingNumber, &o.Carrier,
		&o.EstimatedDelivery, &o.ActualDelivery, &o.ShippingAddress,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
