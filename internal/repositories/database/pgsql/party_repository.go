package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/apperrors"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/models"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/mapping"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for party data.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

const partyColumns = `party_id, kind, name, address, phone, email, tax_id, credit_limit, account_number,
	       created_at, created_by, last_updated_at, last_updated_by`

func scanPartyRow(row rowScanner) (*models.Party, error) {
	var m models.Party
	err := row.Scan(
		&m.PartyID, &m.Kind, &m.Name, &m.Address, &m.Phone, &m.Email,
		&m.TaxID, &m.CreditLimit, &m.AccountNumber,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveParty persists a new party.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO parties (
			party_id, kind, name, address, phone, email, tax_id, credit_limit, account_number,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PartyID, m.Kind, m.Name, m.Address, m.Phone, m.Email,
		m.TaxID, m.CreditLimit, m.AccountNumber,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert party "+m.PartyID, err)
	}
	return nil
}

// FindPartyByID retrieves a party by its ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_id = $1;`

	m, err := scanPartyRow(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find party by ID "+partyID, err)
	}

	party := mapping.ToDomainParty(*m)
	return &party, nil
}

// ListPartiesByKind retrieves every party of one kind ordered by name,
// case-insensitively.
func (r *PgxPartyRepository) ListPartiesByKind(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE kind = $1 ORDER BY LOWER(name);`

	rows, err := r.Pool.Query(ctx, query, string(kind))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query parties of kind "+string(kind), err)
	}
	defer rows.Close()

	parties := []models.Party{}
	for rows.Next() {
		m, scanErr := scanPartyRow(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan party row of kind "+string(kind), scanErr)
		}
		parties = append(parties, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating party rows of kind "+string(kind), err)
	}

	return mapping.ToDomainPartySlice(parties), nil
}

// UpdateParty updates an existing party's details.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		UPDATE parties
		SET name = $2,
		    address = $3,
		    phone = $4,
		    email = $5,
		    tax_id = $6,
		    credit_limit = $7,
		    account_number = $8,
		    last_updated_at = $9,
		    last_updated_by = $10
		WHERE party_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.PartyID, m.Name, m.Address, m.Phone, m.Email,
		m.TaxID, m.CreditLimit, m.AccountNumber,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update party "+m.PartyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("party " + m.PartyID + " not found for update")
	}
	return nil
}

// DeleteParty removes a party after verifying, inside the deleting
// transaction, that no document or payment references it.
func (r *PgxPartyRepository) DeleteParty(ctx context.Context, partyID string, deletedBy string, deletedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var exists string
	if err := tx.QueryRow(ctx, `SELECT party_id FROM parties WHERE party_id = $1 FOR UPDATE;`, partyID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock party "+partyID, err)
	}

	var docCount int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM documents WHERE party_id = $1;`, partyID).Scan(&docCount); err != nil {
		return apperrors.NewAppError(500, "failed to count documents for party "+partyID, err)
	}
	if docCount > 0 {
		return apperrors.NewPreconditionError("party owns documents and cannot be deleted")
	}

	var paymentCount int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM payments WHERE party_id = $1;`, partyID).Scan(&paymentCount); err != nil {
		return apperrors.NewAppError(500, "failed to count payments for party "+partyID, err)
	}
	if paymentCount > 0 {
		return apperrors.NewPreconditionError("party has recorded payments and cannot be deleted")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM parties WHERE party_id = $1;`, partyID); err != nil {
		return apperrors.NewAppError(500, "failed to delete party "+partyID, err)
	}

	return r.Commit(ctx, tx)
}
