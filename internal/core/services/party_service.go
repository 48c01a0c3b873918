package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/apperrors"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/dto"
)

// partyService provides customer and vendor operations.
type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

// CreateParty creates a new customer or vendor.
func (s *partyService) CreateParty(ctx context.Context, kind domain.PartyKind, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	now := time.Now().UTC()
	party := domain.Party{
		PartyID:       uuid.NewString(),
		Kind:          kind,
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		TaxID:         req.TaxID,
		CreditLimit:   req.CreditLimit,
		AccountNumber: req.AccountNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save party", "kind", string(kind))
		return nil, fmt.Errorf("failed to save party: %w", err)
	}

	s.LogInfo(ctx, "Party created", "party_id", party.PartyID, "kind", string(kind))
	return &party, nil
}

// GetPartyByID retrieves a specific party by its ID.
func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find party by ID", "party_id", partyID)
		}
		return nil, fmt.Errorf("failed to find party %s: %w", partyID, err)
	}
	return party, nil
}

// ListParties retrieves every party of one kind ordered by name.
func (s *partyService) ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListPartiesByKind(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties", "kind", string(kind))
		return nil, fmt.Errorf("failed to retrieve parties: %w", err)
	}
	return parties, nil
}

// UpdateParty updates an existing party's details.
func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, requestingUserID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find party %s: %w", partyID, err)
	}

	updated := false
	if req.Name != nil {
		party.Name = *req.Name
		updated = true
	}
	if req.Address != nil {
		party.Address = *req.Address
		updated = true
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
		updated = true
	}
	if req.Email != nil {
		party.Email = *req.Email
		updated = true
	}
	if req.TaxID != nil {
		party.TaxID = *req.TaxID
		updated = true
	}
	if req.CreditLimit != nil {
		party.CreditLimit = *req.CreditLimit
		updated = true
	}
	if req.AccountNumber != nil {
		party.AccountNumber = *req.AccountNumber
		updated = true
	}
	if !updated {
		return party, nil
	}

	now := time.Now().UTC()
	party.LastUpdatedAt = now
	party.LastUpdatedBy = requestingUserID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		s.LogError(ctx, err, "Failed to update party", "party_id", partyID)
		return nil, fmt.Errorf("failed to update party %s: %w", partyID, err)
	}

	s.LogInfo(ctx, "Party updated", "party_id", partyID)
	return party, nil
}

// DeleteParty removes a party that owns no documents and no payments. The
// repository verifies both conditions inside the deleting transaction.
func (s *partyService) DeleteParty(ctx context.Context, partyID string, requestingUserID string) error {
	now := time.Now().UTC()
	if err := s.partyRepo.DeleteParty(ctx, partyID, requestingUserID, now); err != nil {
		if errors.Is(err, apperrors.ErrPrecondition) || errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete party", "party_id", partyID)
		return fmt.Errorf("failed to delete party %s: %w", partyID, err)
	}
	s.LogInfo(ctx, "Party deleted", "party_id", partyID)
	return nil
}
