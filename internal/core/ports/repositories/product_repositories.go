package repositories

import (
	"context"
	"time"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a specific product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves multiple products keyed by ID. Missing IDs
	// are silently absent from the returned map.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves every product ordered by name.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product's details.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product. Line items keep their copied
	// description and price, so deletion never cascades.
	DeleteProduct(ctx context.Context, productID string, deletedBy string, deletedAt time.Time) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
