package repositories

import (
	"context"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/billing"
)

// NumberingRepositoryFacade manages the per-series counter rows backing
// document number allocation.
type NumberingRepositoryFacade interface {
	// AllocateNextValue advances the series counter with a single atomic
	// read-modify-write and returns the allocated value. On first use the
	// counter is seeded from the newest existing document of the kind by
	// creation order, parsing the numeric suffix of its number in the given
	// style, or from the document's row id when the number is malformed.
	AllocateNextValue(ctx context.Context, kind domain.DocumentKind, style billing.SeriesStyle) (int64, error)

	// PeekNextValue returns the value the next allocation would produce
	// without reserving it. Used to pre-fill forms; the result is advisory
	// and re-validated at commit.
	PeekNextValue(ctx context.Context, kind domain.DocumentKind, style billing.SeriesStyle) (int64, error)
}
