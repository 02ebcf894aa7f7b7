package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/wareline/supplydesk-api/internal/application/dto"
	"github.com/wareline/supplydesk-api/internal/domain/entity"
	"github.com/wareline/supplydesk-api/internal/domain/repository"
)

// DefaultLowStockWatermark flags products running low in the summary report.
const DefaultLowStockWatermark = 100

// InventoryUseCase is the read side of stock reporting.
type InventoryUseCase struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryUseCase builds the inventory use case.
func NewInventoryUseCase(inventoryRepo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{inventoryRepo: inventoryRepo}
}

// StockLevels lists per-product stock positions, optionally narrowed by
// category or to rows under a low-stock threshold.
func (uc *InventoryUseCase) StockLevels(category string, lowStockThreshold int64) ([]dto.StockLevelResponse, error) {
	products, err := uc.inventoryRepo.StockLevels(repository.StockFilter{
		Category:          category,
		LowStockThreshold: lowStockThreshold,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockLevelResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toStockLevel(p))
	}
	return out, nil
}

// Summary builds the aggregate stock report: totals, category breakdown and
// the low/out-of-stock lists.
func (uc *InventoryUseCase) Summary() (*dto.InventorySummaryResponse, error) {
	v, err := uc.inventoryRepo.Valuation(DefaultLowStockWatermark)
	if err != nil {
		return nil, err
	}
	resp := &dto.InventorySummaryResponse{
		TotalProducts: v.TotalProducts,
		TotalUnits:    v.TotalUnits,
		TotalValue:    v.TotalValue,
	}
	for _, c := range v.Categories {
		resp.Categories = append(resp.Categories, dto.CategoryResponse{
			Category:     c.Category,
			ProductCount: c.ProductCount,
			MinPrice:     c.MinPrice,
			MaxPrice:     c.MaxPrice,
			TotalUnits:   c.TotalUnits,
		})
	}
	for _, p := range v.LowStock {
		resp.LowStock = append(resp.LowStock, toStockLevel(p))
	}
	for _, p := range v.OutOfStock {
		resp.OutOfStock = append(resp.OutOfStock, toStockLevel(p))
	}
	return resp, nil
}

func toStockLevel(p *entity.Product) dto.StockLevelResponse {
	return dto.StockLevelResponse{
		SKU:            p.SKU,
		Name:           p.Name,
		Category:       p.Category,
		QuantityOnHand: p.QuantityOnHand,
		UnitOfMeasure:  p.UnitOfMeasure,
		UnitPrice:      p.UnitPrice,
		StockValue:     p.UnitPrice.Mul(decimal.NewFromInt(p.QuantityOnHand)),
	}
}
