package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/apperrors"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/dto"
)

// paymentService provides payment recording and lookup operations.
type paymentService struct {
	BaseService
	paymentRepo  portsrepo.PaymentRepositoryFacade
	documentRepo portsrepo.DocumentReader
	partyRepo    portsrepo.PartyReader

	// now is swappable in tests
	now func() time.Time
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, documentRepo portsrepo.DocumentReader, partyRepo portsrepo.PartyReader) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:  paymentRepo,
		documentRepo: documentRepo,
		partyRepo:    partyRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment appends an immutable payment. A payment applied to a document
// re-derives the document's status inside the same transaction as the insert.
// Corrections are made by recording an adjusting entry, never by editing.
func (s *paymentService) RecordPayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("amount", "payment amount must be positive")
	}

	party, err := s.partyRepo.FindPartyByID(ctx, req.PartyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("partyID", "unknown party "+req.PartyID)
		}
		return nil, fmt.Errorf("failed to fetch party %s: %w", req.PartyID, err)
	}

	if req.DocumentID != nil {
		doc, err := s.documentRepo.FindDocumentByID(ctx, *req.DocumentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("documentID", "unknown document "+*req.DocumentID)
			}
			return nil, fmt.Errorf("failed to fetch document %s: %w", *req.DocumentID, err)
		}
		if !doc.Kind.IsBalanceTracked() {
			return nil, apperrors.NewValidationError("documentID", fmt.Sprintf("payments cannot be applied to a %s", doc.Kind))
		}
		if doc.Kind.PaymentPartyKind() != party.Kind {
			return nil, apperrors.NewValidationError("documentID", fmt.Sprintf("a %s payment cannot apply to a %s", party.Kind, doc.Kind))
		}
		if doc.PartyID == nil || *doc.PartyID != req.PartyID {
			return nil, apperrors.NewValidationError("documentID", "document does not belong to the paying party")
		}
	}

	now := s.now()
	payment := domain.Payment{
		PaymentID:  uuid.NewString(),
		PartyID:    req.PartyID,
		DocumentID: req.DocumentID,
		Date:       req.Date,
		Amount:     req.Amount,
		Method:     req.Method,
		Reference:  req.Reference,
		Notes:      req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", "party_id", req.PartyID)
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	s.LogInfo(ctx, "Payment recorded", "payment_id", payment.PaymentID, "party_id", req.PartyID, "amount", req.Amount.String())
	return &payment, nil
}

// GetPaymentByID retrieves a specific payment by its ID.
func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment by ID", "payment_id", paymentID)
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}
	return payment, nil
}

// ListPaymentsByParty retrieves a paginated list of a party's payments.
func (s *paymentService) ListPaymentsByParty(ctx context.Context, partyID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	payments, nextToken, err := s.paymentRepo.ListPaymentsByParty(ctx, partyID, limit, token)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", "party_id", partyID)
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}

	next := ""
	if nextToken != nil {
		next = *nextToken
	}
	resp := dto.ToListPaymentsResponse(payments, next)
	return &resp, nil
}

// ListPaymentsByDocument retrieves every payment applied to a document.
func (s *paymentService) ListPaymentsByDocument(ctx context.Context, documentID string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPaymentsByDocument(ctx, documentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments for document", "document_id", documentID)
		return nil, fmt.Errorf("failed to retrieve payments for document %s: %w", documentID, err)
	}
	return payments, nil
}
