package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is an immutable record of money received from a customer or paid to
// a vendor. It belongs to a party and optionally applies to exactly one
// document of the matching kind; with no document it is an unapplied payment
// recorded against the party only.
type Payment struct {
	PaymentID  string          `json:"paymentID"` // Primary Key (UUID)
	PartyID    string          `json:"partyID"`
	DocumentID *string         `json:"documentID,omitempty"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"` // Always > 0
	Method     string          `json:"method"`
	Reference  string          `json:"reference"`
	Notes      string          `json:"notes"`
	AuditFields
}
