package services

import (
	"context"
	"time"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
)

// ReportingService defines operations for generating ledger reports
type ReportingService interface {
	// ReceivablesAging buckets unpaid invoice balances by days past due as
	// of a specific date, grouped per customer.
	ReceivablesAging(ctx context.Context, asOf time.Time) (*domain.AgingReport, error)

	// PayablesAging buckets unpaid bill balances by days past due as of a
	// specific date, grouped per vendor.
	PayablesAging(ctx context.Context, asOf time.Time) (*domain.AgingReport, error)
}
