package orders_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wareline/supplydesk-api/internal/application/orders"
	"github.com/wareline/supplydesk-api/internal/domain"
	"github.com/wareline/supplydesk-api/internal/domain/entity"
)

type fakeOrderRepo struct {
	orders    []*entity.Order
	items     map[string][]entity.OrderItem
	lastLimit int
}

func (r *fakeOrderRepo) GetByIdentifier(identifier string) (*entity.Order, error) {
	for _, o := range r.orders {
		if strings.EqualFold(o.OrderID, identifier) || strings.EqualFold(o.TrackingNumber, identifier) {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) ItemsByOrderID(orderID string) ([]entity.OrderItem, error) {
	return r.items[orderID], nil
}

func (r *fakeOrderRepo) HistoryByEmail(email string, limit int) ([]*entity.Order, error) {
	r.lastLimit = limit
	var out []*entity.Order
	for _, o := range r.orders {
		if strings.EqualFold(o.CustomerEmail, email) {
			out = append(out, o)
		}
	}
	return out, nil
}

func seededRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: []*entity.Order{
			{
				OrderID:        "ORD-2026-0001",
				CustomerName:   "John Smith",
				CustomerEmail:  "john.smith@email.com",
				OrderDate:      time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC),
				Status:         entity.OrderStatusInTransit,
				TotalAmount:    decimal.RequireFromString("165.10"),
				TrackingNumber: "TRK-US-001234",
				Carrier:        "FastFreight",
			},
		},
		items: map[string][]entity.OrderItem{
			"ORD-2026-0001": {
				{ProductName: "Polypropylene Rope 12mm", Quantity: 25,
					UnitPrice: decimal.RequireFromString("3.75"), TotalPrice: decimal.RequireFromString("93.75")},
			},
		},
	}
}

func TestTrack_ByOrderID(t *testing.T) {
	uc := orders.NewOrdersUseCase(seededRepo())

	resp, err := uc.Track("ord-2026-0001") // case-insensitive
	require.NoError(t, err)
	assert.Equal(t, "ORD-2026-0001", resp.OrderID)
	assert.Equal(t, "2026-08-10", resp.OrderDate)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Polypropylene Rope 12mm", resp.Items[0].ProductName)
}

func TestTrack_ByTrackingNumber(t *testing.T) {
	uc := orders.NewOrdersUseCase(seededRepo())

	resp, err := uc.Track("TRK-US-001234")
	require.NoError(t, err)
	assert.Equal(t, "ORD-2026-0001", resp.OrderID)
}

func TestTrack_NotFound(t *testing.T) {
	uc := orders.NewOrdersUseCase(seededRepo())

	_, err := uc.Track("ORD-9999-9999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistory_DefaultLimit(t *testing.T) {
	repo := seededRepo()
	uc := orders.NewOrdersUseCase(repo)

	list, err := uc.History("john.smith@email.com", 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 5, repo.lastLimit, "a non-positive limit falls back to the default")
}
