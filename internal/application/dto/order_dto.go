package dto

import "github.com/shopspring/decimal"

// OrderResponse is one order with delivery info and (optionally) its items.
type OrderResponse struct {
	OrderID           string              `json:"order_id"`
	CustomerName      string              `json:"customer_name"`
	CustomerEmail     string              `json:"customer_email"`
	CustomerCompany   string              `json:"customer_company,omitempty"`
	OrderDate         string              `json:"order_date"`
	Status            string              `json:"status"`
	TotalAmount       decimal.Decimal     `json:"total_amount"`
	TrackingNumber    string              `json:"tracking_number,omitempty"`
	Carrier           string              `json:"carrier,omitempty"`
	EstimatedDelivery string              `json:"estimated_delivery,omitempty"`
	ActualDelivery    string              `json:"actual_delivery,omitempty"`
	ShippingAddress   string              `json:"shipping_address,omitempty"`
	Items             []OrderItemResponse `json:"items,omitempty"`
}

// OrderItemResponse is one product line within an order.
type OrderItemResponse struct {
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}
