package domain

import "github.com/shopspring/decimal"

// Product is a catalog item line items may reference for default description
// and pricing.
type Product struct {
	ProductID      string          `json:"productID"` // Primary Key (UUID)
	Code           string          `json:"code"`      // Unique
	Description    string          `json:"description"`
	Unit           string          `json:"unit"`
	Price          decimal.Decimal `json:"price"`
	Cost           decimal.Decimal `json:"cost"`
	QuantityOnHand decimal.Decimal `json:"quantityOnHand"`
	Category       string          `json:"category"`
	AuditFields
}
