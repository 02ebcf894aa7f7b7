package orders

import (
	"github.com/wareline/supplydesk-api/internal/application/dto"
	"github.com/wareline/supplydesk-api/internal/domain"
	"github.com/wareline/supplydesk-api/internal/domain/entity"
	"github.com/wareline/supplydesk-api/internal/domain/repository"
)

const defaultHistoryLimit = 5

// OrdersUseCase is the read side of order fulfilment: tracking and history.
type OrdersUseCase struct {
	orderRepo repository.OrderRepository
}

// NewOrdersUseCase builds the orders use case.
func NewOrdersUseCase(orderRepo repository.OrderRepository) *OrdersUseCase {
	return &OrdersUseCase{orderRepo: orderRepo}
}

// Track finds one order by order id or tracking number and returns it with
// its items.
func (uc *OrdersUseCase) Track(identifier string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.ItemsByOrderID(order.OrderID)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(order)
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return &resp, nil
}

// History lists the customer's most recent orders, newest first.
func (uc *OrdersUseCase) History(email string, limit int) ([]dto.OrderResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	list, err := uc.orderRepo.HistoryByEmail(email, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		OrderID:         o.OrderID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerCompany: o.CustomerCompany,
		OrderDate:       o.OrderDate.Format("2006-01-02"),
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		TrackingNumber:  o.TrackingNumber,
		Carrier:         o.Carrier,
		ShippingAddress: o.ShippingAddress,
	}
	if o.EstimatedDelivery != nil {
		resp.EstimatedDelivery = o.EstimatedDelivery.Format("2006-01-02")
	}
	if o.ActualDelivery != nil {
		resp.ActualDelivery = o.ActualDelivery.Format("2006-01-02")
	}
	return resp
}
