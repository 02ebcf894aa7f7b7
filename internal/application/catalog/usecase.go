package catalog

import (
	"github.com/wareline/supplydesk-api/internal/application/dto"
	"github.com/wareline/supplydesk-api/internal/domain"
	"github.com/wareline/supplydesk-api/internal/domain/entity"
	"github.com/wareline/supplydesk-api/internal/domain/repository"
)

// CatalogUseCase is the read side of the product catalog: search, point
// lookup and the category breakdown.
type CatalogUseCase struct {
	productRepo repository.ProductRepository
}

// NewCatalogUseCase builds the catalog use case.
func NewCatalogUseCase(productRepo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo}
}

// Search matches products by name, description or specifications, optionally within one
// category.
func (uc *CatalogUseCase) Search(query, category string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.Search(query, category)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetBySKU fetches one product by exact SKU.
func (uc *CatalogUseCase) GetBySKU(sku string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// Categories aggregates the catalog per category.
func (uc *CatalogUseCase) Categories() ([]dto.CategoryResponse, error) {
	cats, err := uc.productRepo.ListCategories()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoryResponse{
			Category:     c.Category,
			ProductCount: c.ProductCount,
			MinPrice:     c.MinPrice,
			MaxPrice:     c.MaxPrice,
			TotalUnits:   c.TotalUnits,
		})
	}
	return out, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		SKU:            p.SKU,
		Name:           p.Name,
		Category:       p.Category,
		UnitPrice:      p.UnitPrice,
		UnitOfMeasure:  p.UnitOfMeasure,
		QuantityOnHand: p.QuantityOnHand,
		Description:    p.Description,
		Specifications: p.Specifications,
	}
}
