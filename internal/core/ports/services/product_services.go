package services

import (
	"context"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/dto"
)

// ProductReaderSvc defines read operations for product data
type ProductReaderSvc interface {
	// GetProductByID retrieves a specific product by its ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves every product ordered by name.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for product data
type ProductWriterSvc interface {
	// CreateProduct creates a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// UpdateProduct updates an existing product's details.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, requestingUserID string) (*domain.Product, error)

	// DeleteProduct removes a product. Existing line items keep the
	// description and price they copied at creation time.
	DeleteProduct(ctx context.Context, productID string, requestingUserID string) error
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
