package models

import "github.com/shopspring/decimal"

// PartyKind distinguishes customers from vendors.
type PartyKind string

const (
	Customer PartyKind = "CUSTOMER"
	Vendor   PartyKind = "VENDOR"
)

// Party represents a customer or vendor row.
type Party struct {
	PartyID       string          `db:"party_id"`
	Kind          PartyKind       `db:"kind"`
	Name          string          `db:"name"`
	Address       string          `db:"address"`
	Phone         string          `db:"phone"`
	Email         string          `db:"email"`
	TaxID         string          `db:"tax_id"`
	CreditLimit   decimal.Decimal `db:"credit_limit"`
	AccountNumber string          `db:"account_number"`
	AuditFields
}
