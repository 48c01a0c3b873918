package services

import (
	"context"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a specific payment by its ID.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByParty retrieves a paginated list of a party's payments.
	ListPaymentsByParty(ctx context.Context, partyID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)

	// ListPaymentsByDocument retrieves every payment applied to a document.
	ListPaymentsByDocument(ctx context.Context, documentID string) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// RecordPayment persists an immutable payment. When the payment applies
	// to a document, the document's balance and status are re-derived in the
	// same transaction. Payments are never edited or deleted afterwards.
	RecordPayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
