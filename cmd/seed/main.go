// seed loads a sample catalog, customers and orders for local development.
//
// Usage: go run ./cmd/seed
// Idempotent: existing SKUs, emails and order ids are skipped.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wareline/supplydesk-api/internal/domain"
	"github.com/wareline/supplydesk-api/internal/domain/entity"
	"github.com/wareline/supplydesk-api/internal/infrastructure/postgres"
	"github.com/wareline/supplydesk-api/pkg/config"
	"github.com/wareline/supplydesk-api/pkg/logger"
)

type seedProduct struct {
	sku, name, category string
	unitPrice           string
	unit                string
	onHand              int64
	description, specs  string
}

var products = []seedProduct{
	{"PP-ROPE-001", "Polypropylene Rope 8mm", "Ropes", "2.50", "meter", 1500,
		"High-strength polypropylene rope suitable for general purpose use",
		"Diameter: 8mm, Breaking strength: 800kg, UV resistant"},
	{"PP-ROPE-002", "Polypropylene Rope 12mm", "Ropes", "3.75", "meter", 800,
		"Heavy-duty polypropylene rope for industrial applications",
		"Diameter: 12mm, Breaking strength: 1500kg, UV resistant"},
	{"NY-ROPE-001", "Nylon Rope 10mm", "Ropes", "4.20", "meter", 650,
		"Premium nylon rope with excellent elasticity and strength",
		"Diameter: 10mm, Breaking strength: 1200kg, Shock absorbing"},
	{"ST-WIRE-001", "Steel Wire 2mm", "Wire", "1.25", "meter", 2000,
		"Galvanized steel wire for light-duty applications",
		"Diameter: 2mm, Tensile strength: 400MPa, Corrosion resistant"},
	{"ST-WIRE-002", "Steel Wire 4mm", "Wire", "2.10", "meter", 1200,
		"Heavy-duty galvanized steel wire",
		"Diameter: 4mm, Tensile strength: 500MPa, Corrosion resistant"},
	{"ST-CABLE-001", "Steel Cable 6mm", "Wire", "5.50", "meter", 450,
		"Flexible steel cable for heavy lifting",
		"Diameter: 6mm, Breaking strength: 3000kg, 7x19 construction"},
	{"NY-BAG-001", "Nylon Storage Bag Large", "Bags", "15.00", "piece", 200,
		"Durable nylon storage bag for warehouse organization",
		"Dimensions: 60x40x30cm, Capacity: 70L, Water resistant"},
	{"NY-BAG-002", "Nylon Storage Bag Medium", "Bags", "12.00", "piece", 350,
		"Medium-sized nylon storage bag",
		"Dimensions: 45x30x25cm, Capacity: 35L, Water resistant"},
	{"PP-BAG-001", "Polypropylene Bag Heavy Duty", "Bags", "8.50", "piece", 500,
		"Heavy-duty woven polypropylene bag",
		"Dimensions: 50x80cm, Load capacity: 25kg, Reusable"},
	{"HOOK-001", "Steel S-Hook 5cm", "Accessories", "1.80", "piece", 800,
		"Heavy-duty steel S-hook",
		"Size: 5cm, Load capacity: 50kg, Zinc plated"},
	{"CLIP-001", "Carabiner Clip Large", "Accessories", "3.20", "piece", 600,
		"Aluminum carabiner with screw lock",
		"Size: 10cm, Load capacity: 250kg, Lightweight"},
	{"THIMBLE-001", "Wire Rope Thimble", "Accessories", "0.85", "piece", 1000,
		"Galvanized steel thimble for wire rope",
		"For 6mm wire rope, Prevents wear at termination points"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	now := time.Now()
	seeded := 0
	for _, sp := range products {
		err := productRepo.Create(&entity.Product{
			ID:             uuid.New().String(),
			SKU:            sp.sku,
			Name:           sp.name,
			Category:       sp.category,
			UnitPrice:      decimal.RequireFromString(sp.unitPrice),
			UnitOfMeasure:  sp.unit,
			QuantityOnHand: sp.onHand,
			Description:    sp.description,
			Specifications: sp.specs,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err == domain.ErrDuplicate {
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("sku", sp.sku).Msg("seed product")
		}
		seeded++
	}
	log.Info().Int("seeded", seeded).Int("total", len(products)).Msg("catalog seeded")

	seedOrders(ctx, pool, log)
}

// seedOrders inserts a couple of customers with order history so the
// tracking endpoints have data to serve.
func seedOrders(ctx context.Context, q postgres.Querier, log *logger.Logger) {
	custSmith := uuid.New().String()
	custJohnson := uuid.New().String()

	customers := []struct {
		id, name, email, phone, company, address string
	}{
		{custSmith, "John Smith", "john.smith@email.com", "+1-555-0101",
			"Smith Construction", "789 Harbor Blvd\nGalveston, TX 77550"},
		{custJohnson, "Sarah Johnson", "sarah.j@techcorp.com", "+1-555-0102",
			"TechCorp Industries", "321 Commerce St\nAustin, TX 78701"},
	}
	for _, c := range customers {
		_, err := q.Exec(ctx, `
			INSERT INTO customers (id, name, email, phone, company, address)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (email) DO NOTHING`,
			c.id, c.name, c.email, c.phone, c.company, c.address)
		if err != nil {
			log.Fatal().Err(err).Msg("seed customer")
		}
	}

	est := time.Now().AddDate(0, 0, 3)
	orders := []struct {
		orderID, customerID, status string
		total                       string
		tracking, carrier           string
		estimated                   *time.Time
		address                     string
	}{
		{"ORD-2026-0001", custSmith, entity.OrderStatusDelivered, "165.10",
			"TRK-US-001234", "FastFreight", nil, "789 Harbor Blvd, Galveston, TX 77550"},
		{"ORD-2026-0015", custSmith, entity.OrderStatusInTransit, "288.90",
			"TRK-US-005678", "FastFreight", &est, "789 Harbor Blvd, Galveston, TX 77550"},
		{"ORD-2026-0008", custJohnson, entity.OrderStatusProcessing, "412.50",
			"", "", nil, "321 Commerce St, Austin, TX 78701"},
	}
	for _, o := range orders {
		var tracking, carrier any
		if o.tracking != "" {
			tracking, carrier = o.tracking, o.carrier
		}
		_, err := q.Exec(ctx, `
			INSERT INTO orders (order_id, customer_id, order_date, status, total_amount, tracking_number, carrier, estimated_delivery, shipping_address)
			VALUES ($1, $2, now() - interval '7 days', $3, $4, $5, $6, $7, $8)
			ON CONFLICT (order_id) DO NOTHING`,
			o.orderID, o.customerID, o.status, decimal.RequireFromString(o.total),
			tracking, carrier, o.estimated, o.address)
		if err != nil {
			log.Fatal().Err(err).Str("order", o.orderID).Msg("seed order")
		}
	}

	items := []struct {
		orderID, productName string
		quantity             int64
		unitPrice, total     string
	}{
		{"ORD-2026-0001", "Polypropylene Rope 12mm", 25, "3.75", "93.75"},
		{"ORD-2026-0001", "Steel Cable 6mm", 10, "5.50", "55.00"},
		{"ORD-2026-0001", "Wire Rope Thimble", 19, "0.85", "16.15"},
		{"ORD-2026-0015", "Nylon Rope 10mm", 50, "4.20", "210.00"},
		{"ORD-2026-0015", "Carabiner Clip Large", 20, "3.20", "64.00"},
		{"ORD-2026-0008", "Nylon Storage Bag Large", 25, "15.00", "375.00"},
	}
	for _, it := range items {
		_, err := q.Exec(ctx, `
			INSERT INTO order_items (order_id, product_name, quantity, unit_price, total_price)
			SELECT $1, $2, $3, $4, $5
			WHERE NOT EXISTS (
				SELECT 1 FROM order_items WHERE order_id = $1 AND product_name = $2
			)`,
			it.orderID, it.productName, it.quantity,
			decimal.RequireFromString(it.unitPrice), decimal.RequireFromString(it.total))
		if err != nil {
			log.Fatal().Err(err).Str("order", it.orderID).Msg("seed order item")
		}
	}

	log.Info().Msg("sample customers and orders seeded")
}
