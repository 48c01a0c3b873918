package domain

import "github.com/shopspring/decimal"

// PartyKind distinguishes the two directions of the ledger.
type PartyKind string

const (
	Customer PartyKind = "CUSTOMER"
	Vendor   PartyKind = "VENDOR"
)

// Party is a customer or vendor, the counterpart of documents and payments.
type Party struct {
	PartyID       string          `json:"partyID"` // Primary Key (UUID)
	Kind          PartyKind       `json:"kind"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	TaxID         string          `json:"taxID"`
	CreditLimit   decimal.Decimal `json:"creditLimit"`   // Customers only
	AccountNumber string          `json:"accountNumber"` // Vendors only
	AuditFields
}
