package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/apperrors"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/dto"
)

// productService provides catalog product operations.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct creates a new product.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	if req.Price.IsNegative() {
		return nil, apperrors.NewValidationError("price", "price cannot be negative")
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID:      uuid.NewString(),
		Code:           req.Code,
		Description:    req.Description,
		Unit:           req.Unit,
		Price:          req.Price,
		Cost:           req.Cost,
		QuantityOnHand: req.QuantityOnHand,
		Category:       req.Category,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: product code %s is already taken", apperrors.ErrConflict, req.Code)
		}
		s.LogError(ctx, err, "Failed to save product", "code", req.Code)
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.LogInfo(ctx, "Product created", "product_id", product.ProductID, "code", req.Code)
	return &product, nil
}

// GetProductByID retrieves a specific product by its ID.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product by ID", "product_id", productID)
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	return product, nil
}

// ListProducts retrieves every product ordered by name.
func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// UpdateProduct updates an existing product's details. Line items that copied
// earlier values are untouched.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, requestingUserID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}

	updated := false
	if req.Code != nil {
		product.Code = *req.Code
		updated = true
	}
	if req.Description != nil {
		product.Description = *req.Description
		updated = true
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
		updated = true
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperrors.NewValidationError("price", "price cannot be negative")
		}
		product.Price = *req.Price
		updated = true
	}
	if req.Cost != nil {
		product.Cost = *req.Cost
		updated = true
	}
	if req.QuantityOnHand != nil {
		product.QuantityOnHand = *req.QuantityOnHand
		updated = true
	}
	if req.Category != nil {
		product.Category = *req.Category
		updated = true
	}
	if !updated {
		return product, nil
	}

	now := time.Now().UTC()
	product.LastUpdatedAt = now
	product.LastUpdatedBy = requestingUserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", "product_id", productID)
		return nil, fmt.Errorf("failed to update product %s: %w", productID, err)
	}

	s.LogInfo(ctx, "Product updated", "product_id", productID)
	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (s *productService) DeleteProduct(ctx context.Context, productID string, requestingUserID string) error {
	now := time.Now().UTC()
	if err := s.productRepo.DeleteProduct(ctx, productID, requestingUserID, now); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete product", "product_id", productID)
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	s.LogInfo(ctx, "Product deleted", "product_id", productID)
	return nil
}
