package repositories

import (
	"context"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByParty retrieves a paginated list of a party's payments
	// using token-based pagination.
	ListPaymentsByParty(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.Payment, *string, error)

	// ListPaymentsByDocument retrieves every payment applied to a document,
	// newest first.
	ListPaymentsByDocument(ctx context.Context, documentID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment appends a payment. When the payment applies to a document,
	// the document row is locked and its status re-evaluated from the fresh
	// payment sum inside the same transaction, so no reader ever observes the
	// payment without its effect on the document's status. Payments are never
	// updated or deleted.
	SavePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
