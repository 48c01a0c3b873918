package mapping

import (
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/models"
)

// ToModelParty converts a domain Party to a model Party
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:       d.PartyID,
		Kind:          models.PartyKind(d.Kind),
		Name:          d.Name,
		Address:       d.Address,
		Phone:         d.Phone,
		Email:         d.Email,
		TaxID:         d.TaxID,
		CreditLimit:   d.CreditLimit,
		AccountNumber: d.AccountNumber,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:       m.PartyID,
		Kind:          domain.PartyKind(m.Kind),
		Name:          m.Name,
		Address:       m.Address,
		Phone:         m.Phone,
		Email:         m.Email,
		TaxID:         m.TaxID,
		CreditLimit:   m.CreditLimit,
		AccountNumber: m.AccountNumber,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPartySlice converts a slice of model Parties to domain Parties
func ToDomainPartySlice(ms []models.Party) []domain.Party {
	ds := make([]domain.Party, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParty(m)
	}
	return ds
}
