package models

import "github.com/shopspring/decimal"

// Product represents a catalog item row.
type Product struct {
	ProductID      string          `db:"product_id"`
	Code           string          `db:"code"`
	Description    string          `db:"description"`
	Unit           string          `db:"unit"`
	Price          decimal.Decimal `db:"price"`
	Cost           decimal.Decimal `db:"cost"`
	QuantityOnHand decimal.Decimal `db:"quantity_on_hand"`
	Category       string          `db:"category"`
	AuditFields
}
