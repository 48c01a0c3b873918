package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind discriminates the four financial document variants.
type DocumentKind string

const (
	KindInvoice       DocumentKind = "INVOICE"
	KindBill          DocumentKind = "BILL"
	KindQuote         DocumentKind = "QUOTE"
	KindPurchaseOrder DocumentKind = "PURCHASE_ORDER"
)

// IsBalanceTracked reports whether payments apply against this kind of
// document, i.e. whether the balance/status engine governs it.
func (k DocumentKind) IsBalanceTracked() bool {
	return k == KindInvoice || k == KindBill
}

// PaymentPartyKind returns the party direction whose payments attach to
// documents of this kind.
func (k DocumentKind) PaymentPartyKind() PartyKind {
	if k == KindBill {
		return Vendor
	}
	return Customer
}

// DocumentStatus is the lifecycle state of a document. Invoices and bills use
// the derived vocabulary (open/partial/paid/overdue); quotes and purchase
// orders use operator-driven vocabularies.
type DocumentStatus string

const (
	StatusOpen    DocumentStatus = "open"
	StatusPartial DocumentStatus = "partial"
	StatusPaid    DocumentStatus = "paid"
	StatusOverdue DocumentStatus = "overdue"

	StatusDraft    DocumentStatus = "draft"
	StatusSent     DocumentStatus = "sent"
	StatusAccepted DocumentStatus = "accepted"
	StatusRejected DocumentStatus = "rejected"
	StatusInvoiced DocumentStatus = "invoiced"
	StatusClosed   DocumentStatus = "closed"
)

// OperatorStatuses lists the statuses an operator may set directly for the
// given kind. Invoices and bills return nil: their status is always derived.
// StatusInvoiced is excluded for quotes; only conversion sets it.
func OperatorStatuses(kind DocumentKind) []DocumentStatus {
	switch kind {
	case KindQuote:
		return []DocumentStatus{StatusDraft, StatusSent, StatusAccepted, StatusRejected}
	case KindPurchaseOrder:
		return []DocumentStatus{StatusDraft, StatusSent, StatusClosed}
	default:
		return nil
	}
}

// POType distinguishes vendor-side and customer-side purchase orders.
type POType string

const (
	POTypeVendor   POType = "vendor"
	POTypeCustomer POType = "customer"
)

// Document is an invoice, bill, quote, or purchase order header with its
// owned line items. Subtotal is always the sum of item amounts and total is
// always subtotal plus tax; both are recomputed on every item mutation.
type Document struct {
	DocumentID string          `json:"documentID"` // Primary Key (UUID)
	Kind       DocumentKind    `json:"kind"`
	Number     string          `json:"number"` // Unique within kind
	Date       time.Time       `json:"date"`
	DueDate    *time.Time      `json:"dueDate,omitempty"`
	PartyID    *string         `json:"partyID,omitempty"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	Status     DocumentStatus  `json:"status"`
	Terms      string          `json:"terms"`
	Notes      string          `json:"notes"`

	// InvoiceID is the quote-only converted-from back-reference. Once set it
	// is permanent: no re-conversion and no un-conversion.
	InvoiceID *string `json:"invoiceID,omitempty"`

	// POType is set for purchase orders only.
	POType POType `json:"poType,omitempty"`

	Items []LineItem `json:"items,omitempty"` // Often loaded separately
	AuditFields
}

// LineItem is one row of a document. Amount is always quantity times unit
// price, never trusted from input.
type LineItem struct {
	LineItemID  string          `json:"lineItemID"` // Primary Key (UUID)
	DocumentID  string          `json:"documentID"`
	ProductID   *string         `json:"productID,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
	Unit        string          `json:"unit,omitempty"`
}
