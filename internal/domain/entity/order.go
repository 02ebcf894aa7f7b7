package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses follow the fulfilment lifecycle.
const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusInTransit  = "in_transit"
	OrderStatusDelivered  = "delivered"
)

// Order is a fulfilment order header, joined with customer identity for display.
type Order struct {
	OrderID           string // human-readable, e.g. "ORD-2024-001"
	CustomerID        string
	CustomerName      string
	CustomerEmail     string
	CustomerCompany   string
	OrderDate         time.Time
	Status            string
	TotalAmount       decimal.Decimal
	TrackingNumber    string
	Carrier           string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	ShippingAddress   string
}

// OrderItem is one product line within an order.
type OrderItem struct {
	ID          int64
	OrderID     string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}
