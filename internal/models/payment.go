package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a row of the payments table. Payments are append-only:
// no update or delete path exists once a row is written.
type Payment struct {
	PaymentID  string          `db:"payment_id"`
	PartyID    string          `db:"party_id"`
	DocumentID *string         `db:"document_id"`
	Date       time.Time       `db:"date"`
	Amount     decimal.Decimal `db:"amount"`
	Method     string          `db:"method"`
	Reference  string          `db:"reference"`
	Notes      string          `db:"notes"`
	AuditFields
}
