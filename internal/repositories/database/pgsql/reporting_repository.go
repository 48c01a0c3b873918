package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/apperrors"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for reporting projections.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// ListOpenDocumentBalances returns one row per non-paid document of the kind
// with its remaining balance. The query runs in a repeatable read, read-only
// transaction so a payment committing mid-report cannot skew one row against
// another.
func (r *PgxReportingRepository) ListOpenDocumentBalances(ctx context.Context, kind domain.DocumentKind) ([]domain.OpenDocumentBalance, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin reporting transaction", err)
	}
	defer r.Rollback(ctx, tx)

	query := `
		SELECT d.document_id,
		       d.number,
		       d.date,
		       d.due_date,
		       d.party_id,
		       COALESCE(p.name, ''),
		       d.total - COALESCE(SUM(pay.amount), 0) AS balance
		FROM documents d
		LEFT JOIN parties p ON p.party_id = d.party_id
		LEFT JOIN payments pay ON pay.document_id = d.document_id
		WHERE d.kind = $1
		GROUP BY d.document_id, d.number, d.date, d.due_date, d.party_id, d.total, p.name
		ORDER BY d.date, d.created_at;
	`
	rows, err := tx.Query(ctx, query, string(kind))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query open balances for "+string(kind), err)
	}
	defer rows.Close()

	balances := []domain.OpenDocumentBalance{}
	for rows.Next() {
		var b domain.OpenDocumentBalance
		if err := rows.Scan(&b.DocumentID, &b.Number, &b.Date, &b.DueDate, &b.PartyID, &b.PartyName, &b.Balance); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan open balance row for "+string(kind), err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating open balance rows for "+string(kind), err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return balances, nil
}
