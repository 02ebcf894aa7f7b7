package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wareline/supplydesk-api/internal/application/auth"
	"github.com/wareline/supplydesk-api/internal/application/billing"
	"github.com/wareline/supplydesk-api/internal/application/catalog"
	"github.com/wareline/supplydesk-api/internal/application/inventory"
	"github.com/wareline/supplydesk-api/internal/application/orders"
	"github.com/wareline/supplydesk-api/internal/domain/entity"
)

// RouterDeps are the router's dependencies.
type RouterDeps struct {
	GenerateInvoice *billing.GenerateInvoiceUseCase
	CatalogUC       *catalog.CatalogUseCase
	OrdersUC        *orders.OrdersUseCase
	InventoryUC     *inventory.InventoryUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catalog
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/", productHandler.Search)
	products.Get("/categories", productHandler.Categories) // before /:sku
	products.Get("/:sku", productHandler.GetBySKU)

	// Orders
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrdersUC)
	ordersGroup.Get("/", orderHandler.History)
	ordersGroup.Get("/:identifier", orderHandler.Track)

	// Inventory reporting
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.Levels)
	// valuation report is management-only
	invGroup.Get("/summary", RequireRole(entity.RoleAdmin), inventoryHandler.Summary)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.GenerateInvoice)
	invoices.Post("/", invoiceHandler.Generate)
	invoices.Get("/:number", invoiceHandler.GetByNumber)
	invoices.Get("/:number/pdf", invoiceHandler.DownloadPDF)
}
