package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
)

// CreatePaymentRequest defines the data needed to record a payment.
// DocumentID is optional; without it the payment is unapplied and recorded
// against the party only.
type CreatePaymentRequest struct {
	PartyID    string          `json:"partyID" binding:"required"`
	DocumentID *string         `json:"documentID"`
	Date       time.Time       `json:"date" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Method     string          `json:"method"`
	Reference  string          `json:"reference"`
	Notes      string          `json:"notes"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID  string          `json:"paymentID"`
	PartyID    string          `json:"partyID"`
	DocumentID *string         `json:"documentID,omitempty"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method,omitempty"`
	Reference  string          `json:"reference,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"`
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// ListPaymentsResponse wraps a page of payments.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:  p.PaymentID,
		PartyID:    p.PartyID,
		DocumentID: p.DocumentID,
		Date:       p.Date,
		Amount:     p.Amount,
		Method:     p.Method,
		Reference:  p.Reference,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
		CreatedBy:  p.CreatedBy,
	}
}

// ToListPaymentsResponse converts a page of domain payments to the list DTO.
func ToListPaymentsResponse(payments []domain.Payment, nextToken string) ListPaymentsResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(&p)
	}
	return ListPaymentsResponse{
		Payments:  responses,
		NextToken: nextToken,
	}
}
