package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/apperrors"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/billing"
)

type PgxNumberingRepository struct {
	BaseRepository
}

// newPgxNumberingRepository creates a new repository for document number counters.
func newPgxNumberingRepository(pool *pgxpool.Pool) portsrepo.NumberingRepositoryFacade {
	return &PgxNumberingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.NumberingRepositoryFacade = (*PgxNumberingRepository)(nil)

// AllocateNextValue advances the series counter with one atomic
// read-modify-write. Two concurrent allocators serialize on the counter row,
// so each sees a distinct value. On first use the counter is seeded from the
// existing documents of the kind.
func (r *PgxNumberingRepository) AllocateNextValue(ctx context.Context, kind domain.DocumentKind, style billing.SeriesStyle) (int64, error) {
	advance := `
		UPDATE document_counters
		SET last_value = last_value + 1
		WHERE kind = $1
		RETURNING last_value;
	`

	var value int64
	err := r.Pool.QueryRow(ctx, advance, string(kind)).Scan(&value)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, apperrors.NewAppError(500, "failed to advance counter for "+string(kind), err)
	}

	// First allocation for this kind: seed the counter row, then advance it.
	// ON CONFLICT DO NOTHING makes concurrent seeding harmless; whoever loses
	// the race advances the winner's row.
	seed, err := r.seedValue(ctx, kind, style)
	if err != nil {
		return 0, err
	}
	insert := `INSERT INTO document_counters (kind, last_value) VALUES ($1, $2) ON CONFLICT (kind) DO NOTHING;`
	if _, err := r.Pool.Exec(ctx, insert, string(kind), seed); err != nil {
		return 0, apperrors.NewAppError(500, "failed to seed counter for "+string(kind), err)
	}

	if err := r.Pool.QueryRow(ctx, advance, string(kind)).Scan(&value); err != nil {
		return 0, apperrors.NewAppError(500, "failed to advance counter for "+string(kind), err)
	}
	return value, nil
}

// PeekNextValue returns the value the next allocation would produce without
// reserving it.
func (r *PgxNumberingRepository) PeekNextValue(ctx context.Context, kind domain.DocumentKind, style billing.SeriesStyle) (int64, error) {
	var last int64
	err := r.Pool.QueryRow(ctx, `SELECT last_value FROM document_counters WHERE kind = $1;`, string(kind)).Scan(&last)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			seed, seedErr := r.seedValue(ctx, kind, style)
			if seedErr != nil {
				return 0, seedErr
			}
			return seed + 1, nil
		}
		return 0, apperrors.NewAppError(500, "failed to read counter for "+string(kind), err)
	}
	return last + 1, nil
}

// seedValue derives the initial counter value from the newest document of the
// kind by creation order. A parseable number seeds its numeric value; a
// malformed number falls back to the row count, which is always at least as
// large as any sequence position handed out so far.
func (r *PgxNumberingRepository) seedValue(ctx context.Context, kind domain.DocumentKind, style billing.SeriesStyle) (int64, error) {
	var number string
	err := r.Pool.QueryRow(ctx, `SELECT number FROM documents WHERE kind = $1 ORDER BY created_at DESC LIMIT 1;`, string(kind)).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, apperrors.NewAppError(500, "failed to read newest document number for "+string(kind), err)
	}

	if value, ok := billing.ParseNumber(number, style); ok {
		return value, nil
	}

	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM documents WHERE kind = $1;`, string(kind)).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count documents for "+string(kind), err)
	}
	return count, nil
}
