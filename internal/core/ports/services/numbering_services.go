package services

import (
	"context"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
)

// NumberingSvcFacade defines operations on per-kind document number sequences
type NumberingSvcFacade interface {
	// NextNumber returns the formatted number the next saved document of
	// this kind is expected to receive. Advisory only: nothing is reserved
	// until a document commits, so two callers may see the same value.
	NextNumber(ctx context.Context, kind domain.DocumentKind) (string, error)

	// AllocateNumber consumes and returns the next number in the kind's
	// sequence. Callers use it inside the same transaction that persists
	// the document taking the number.
	AllocateNumber(ctx context.Context, kind domain.DocumentKind) (string, error)
}
