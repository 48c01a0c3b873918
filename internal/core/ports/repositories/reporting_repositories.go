package repositories

import (
	"context"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
)

// ReportingReader defines read operations for reporting projections
type ReportingReader interface {
	// ListOpenDocumentBalances retrieves one row per non-paid balance-tracked
	// document of the given kind, with party name and the remaining balance
	// already computed against applied payments. Rows are read inside a
	// repeatable read snapshot so concurrent payment writes cannot produce a
	// torn report.
	ListOpenDocumentBalances(ctx context.Context, kind domain.DocumentKind) ([]domain.OpenDocumentBalance, error)
}

// ReportingRepositoryFacade combines all reporting-related repository interfaces
type ReportingRepositoryFacade interface {
	ReportingReader
}
