package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/billing"
)

// reportingService builds the receivables and payables aging reports.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingService {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// ReceivablesAging buckets unpaid invoice balances by days past due.
func (s *reportingService) ReceivablesAging(ctx context.Context, asOf time.Time) (*domain.AgingReport, error) {
	return s.buildAging(ctx, domain.KindInvoice, asOf)
}

// PayablesAging buckets unpaid bill balances by days past due.
func (s *reportingService) PayablesAging(ctx context.Context, asOf time.Time) (*domain.AgingReport, error) {
	return s.buildAging(ctx, domain.KindBill, asOf)
}

// buildAging groups open balances per party and per bucket. Documents without
// a party accumulate into one anonymous row rather than being dropped, so the
// report total always matches the sum of open balances.
func (s *reportingService) buildAging(ctx context.Context, kind domain.DocumentKind, asOf time.Time) (*domain.AgingReport, error) {
	balances, err := s.reportingRepo.ListOpenDocumentBalances(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list open balances", "kind", string(kind))
		return nil, fmt.Errorf("failed to retrieve open balances: %w", err)
	}

	report := &domain.AgingReport{Kind: kind, AsOf: asOf}
	rows := make(map[string]*domain.AgingRow)

	for _, bal := range balances {
		if bal.Balance.LessThanOrEqual(billing.PaidEpsilon) {
			continue
		}

		key := keyOf(bal.PartyID)
		row, ok := rows[key]
		if !ok {
			row = &domain.AgingRow{PartyID: bal.PartyID, PartyName: bal.PartyName}
			rows[key] = row
		}

		bucket := billing.BucketFor(billing.DaysPastDue(bal.Date, bal.DueDate, asOf))
		row.Add(bucket, bal.Balance)
		report.Buckets.Add(bucket, bal.Balance)
	}

	report.Rows = make([]domain.AgingRow, 0, len(rows))
	for _, row := range rows {
		report.Rows = append(report.Rows, *row)
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		ni := strings.ToLower(report.Rows[i].PartyName)
		nj := strings.ToLower(report.Rows[j].PartyName)
		if ni != nj {
			return ni < nj
		}
		// Rows come out of a map; tie-break on party ID so equal names keep
		// a fixed order across runs.
		return keyOf(report.Rows[i].PartyID) < keyOf(report.Rows[j].PartyID)
	})

	s.LogDebug(ctx, "Aging report built", "kind", string(kind), "rows", len(report.Rows))
	return report, nil
}

// keyOf flattens an optional party ID for ordering; the nil key is empty.
func keyOf(partyID *string) string {
	if partyID == nil {
		return ""
	}
	return *partyID
}
