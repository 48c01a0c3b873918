package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
)

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	Code           string          `json:"code" binding:"required"`
	Description    string          `json:"description" binding:"required"`
	Unit           string          `json:"unit"`
	Price          decimal.Decimal `json:"price"`
	Cost           decimal.Decimal `json:"cost"`
	QuantityOnHand decimal.Decimal `json:"quantityOnHand"`
	Category       string          `json:"category"`
}

// UpdateProductRequest defines the data allowed for updating a product.
type UpdateProductRequest struct {
	Code           *string          `json:"code"`
	Description    *string          `json:"description"`
	Unit           *string          `json:"unit"`
	Price          *decimal.Decimal `json:"price"`
	Cost           *decimal.Decimal `json:"cost"`
	QuantityOnHand *decimal.Decimal `json:"quantityOnHand"`
	Category       *string          `json:"category"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID      string          `json:"productID"`
	Code           string          `json:"code"`
	Description    string          `json:"description"`
	Unit           string          `json:"unit,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Cost           decimal.Decimal `json:"cost"`
	QuantityOnHand decimal.Decimal `json:"quantityOnHand"`
	Category       string          `json:"category,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// ListProductsResponse wraps the list of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:      p.ProductID,
		Code:           p.Code,
		Description:    p.Description,
		Unit:           p.Unit,
		Price:          p.Price,
		Cost:           p.Cost,
		QuantityOnHand: p.QuantityOnHand,
		Category:       p.Category,
		CreatedAt:      p.CreatedAt,
		CreatedBy:      p.CreatedBy,
	}
}

// ToListProductsResponse converts a slice of domain.Product to the list DTO.
func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(&p)
	}
	return ListProductsResponse{Products: responses}
}
