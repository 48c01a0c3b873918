package mapping

import (
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:      d.ProductID,
		Code:           d.Code,
		Description:    d.Description,
		Unit:           d.Unit,
		Price:          d.Price,
		Cost:           d.Cost,
		QuantityOnHand: d.QuantityOnHand,
		Category:       d.Category,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:      m.ProductID,
		Code:           m.Code,
		Description:    m.Description,
		Unit:           m.Unit,
		Price:          m.Price,
		Cost:           m.Cost,
		QuantityOnHand: m.QuantityOnHand,
		Category:       m.Category,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products to domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
