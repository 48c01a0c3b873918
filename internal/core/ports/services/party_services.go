package services

import (
	"context"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/dto"
)

// PartyReaderSvc defines read operations for party data
type PartyReaderSvc interface {
	// GetPartyByID retrieves a specific party by its ID.
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves every party of one kind ordered by name.
	ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)
}

// PartyWriterSvc defines write operations for party data
type PartyWriterSvc interface {
	// CreateParty creates a new customer or vendor.
	CreateParty(ctx context.Context, kind domain.PartyKind, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error)

	// UpdateParty updates an existing party's details.
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, requestingUserID string) (*domain.Party, error)

	// DeleteParty removes a party that owns no documents and no payments.
	DeleteParty(ctx context.Context, partyID string, requestingUserID string) error
}

// PartySvcFacade combines all party-related service interfaces
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
}
