package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
)

// CreatePartyRequest defines the data needed to create a customer or vendor.
// The kind comes from the route.
type CreatePartyRequest struct {
	Name          string          `json:"name" binding:"required"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email" binding:"omitempty,email"`
	TaxID         string          `json:"taxID"`
	CreditLimit   decimal.Decimal `json:"creditLimit"`
	AccountNumber string          `json:"accountNumber"`
}

// UpdatePartyRequest defines the data allowed for updating a party.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePartyRequest struct {
	Name          *string          `json:"name"`
	Address       *string          `json:"address"`
	Phone         *string          `json:"phone"`
	Email         *string          `json:"email"`
	TaxID         *string          `json:"taxID"`
	CreditLimit   *decimal.Decimal `json:"creditLimit"`
	AccountNumber *string          `json:"accountNumber"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID       string           `json:"partyID"`
	Kind          domain.PartyKind `json:"kind"`
	Name          string           `json:"name"`
	Address       string           `json:"address,omitempty"`
	Phone         string           `json:"phone,omitempty"`
	Email         string           `json:"email,omitempty"`
	TaxID         string           `json:"taxID,omitempty"`
	CreditLimit   decimal.Decimal  `json:"creditLimit"`
	AccountNumber string           `json:"accountNumber,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	CreatedBy     string           `json:"createdBy"`
}

// ListPartiesResponse wraps the list of parties.
type ListPartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:       p.PartyID,
		Kind:          p.Kind,
		Name:          p.Name,
		Address:       p.Address,
		Phone:         p.Phone,
		Email:         p.Email,
		TaxID:         p.TaxID,
		CreditLimit:   p.CreditLimit,
		AccountNumber: p.AccountNumber,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
	}
}

// ToListPartiesResponse converts a slice of domain.Party to the list DTO.
func ToListPartiesResponse(parties []domain.Party) ListPartiesResponse {
	responses := make([]PartyResponse, len(parties))
	for i, p := range parties {
		responses[i] = ToPartyResponse(&p)
	}
	return ListPartiesResponse{Parties: responses}
}
