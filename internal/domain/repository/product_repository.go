package repository

import "github.com/wareline/supplydesk-api/internal/domain/entity"

// ProductRepository is the persistence port for the product catalog.
// The billing pipeline only ever does point lookups by exact SKU.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetBySKU(sku string) (*entity.Product, error)
	Search(query, category string) ([]*entity.Product, error)
	ListCategories() ([]entity.CategorySummary, error)
}
