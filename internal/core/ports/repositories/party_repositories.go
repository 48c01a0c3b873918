package repositories

import (
	"context"
	"time"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
)

// PartyReader defines read operations for party data
type PartyReader interface {
	// FindPartyByID retrieves a specific party by its unique identifier.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListPartiesByKind retrieves every party of one kind ordered by name.
	ListPartiesByKind(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data
type PartyWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// UpdateParty updates an existing party's details.
	UpdateParty(ctx context.Context, party domain.Party) error

	// DeleteParty removes a party after verifying, under the same
	// transaction, that it owns no documents and no payments. A party with
	// either returns apperrors.ErrPrecondition.
	DeleteParty(ctx context.Context, partyID string, deletedBy string, deletedAt time.Time) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
