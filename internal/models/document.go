package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind discriminates the four document variants sharing one table.
type DocumentKind string

const (
	KindInvoice       DocumentKind = "INVOICE"
	KindBill          DocumentKind = "BILL"
	KindQuote         DocumentKind = "QUOTE"
	KindPurchaseOrder DocumentKind = "PURCHASE_ORDER"
)

// DocumentStatus is the persisted status column.
type DocumentStatus string

// Document represents a row of the kind-discriminated documents table.
// Number is unique within a kind (enforced by a partial unique index).
type Document struct {
	DocumentID string          `db:"document_id"`
	Kind       DocumentKind    `db:"kind"`
	Number     string          `db:"number"`
	Date       time.Time       `db:"date"`
	DueDate    *time.Time      `db:"due_date"`
	PartyID    *string         `db:"party_id"`
	Subtotal   decimal.Decimal `db:"subtotal"`
	Tax        decimal.Decimal `db:"tax"`
	Total      decimal.Decimal `db:"total"`
	Status     DocumentStatus  `db:"status"`
	Terms      string          `db:"terms"`
	Notes      string          `db:"notes"`
	InvoiceID  *string         `db:"invoice_id"` // Quote back-reference
	POType     string          `db:"po_type"`    // Purchase orders only
	AuditFields
}

// LineItem represents a row of the line_items table. Rows are owned by their
// document and replaced wholesale on edit.
type LineItem struct {
	LineItemID  string          `db:"line_item_id"`
	DocumentID  string          `db:"document_id"`
	ProductID   *string         `db:"product_id"`
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Amount      decimal.Decimal `db:"amount"`
	Unit        string          `db:"unit"`
	Position    int             `db:"position"`
}
