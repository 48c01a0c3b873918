package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
)

// AgingBucketsResponse carries one balance per days-past-due bucket plus the
// row total. The JSON keys match the bucket labels used across the API.
type AgingBucketsResponse struct {
	Current  decimal.Decimal `json:"current"`
	Days130  decimal.Decimal `json:"1_30"`
	Days3160 decimal.Decimal `json:"31_60"`
	Days6190 decimal.Decimal `json:"61_90"`
	Days90   decimal.Decimal `json:"90_plus"`
	Total    decimal.Decimal `json:"total"`
}

// AgingRowResponse represents one party's line of the aging report. PartyID
// is null for balances carried by documents without a party.
type AgingRowResponse struct {
	PartyID   *string              `json:"partyID"`
	PartyName string               `json:"partyName"`
	Buckets   AgingBucketsResponse `json:"buckets"`
}

// AgingReportResponse represents the receivables or payables aging report.
type AgingReportResponse struct {
	Kind   domain.DocumentKind  `json:"kind"`
	AsOf   string               `json:"asOf"`
	Totals AgingBucketsResponse `json:"totals"`
	Rows   []AgingRowResponse   `json:"rows"`
}

// AgingReportParams defines query parameters for the aging report.
type AgingReportParams struct {
	AsOf string `form:"asOf"` // YYYY-MM-DD, defaults to today
}

func toAgingBucketsResponse(t domain.AgingTotals) AgingBucketsResponse {
	return AgingBucketsResponse{
		Current:  t.Current,
		Days130:  t.Days130,
		Days3160: t.Days3160,
		Days6190: t.Days6190,
		Days90:   t.Days90,
		Total:    t.Total,
	}
}

// ToAgingReportResponse converts a domain aging report to a DTO response.
func ToAgingReportResponse(report *domain.AgingReport) AgingReportResponse {
	response := AgingReportResponse{
		Kind:   report.Kind,
		AsOf:   report.AsOf.Format(time.DateOnly),
		Totals: toAgingBucketsResponse(report.Buckets),
		Rows:   make([]AgingRowResponse, len(report.Rows)),
	}
	for i, row := range report.Rows {
		response.Rows[i] = AgingRowResponse{
			PartyID:   row.PartyID,
			PartyName: row.PartyName,
			Buckets:   toAgingBucketsResponse(row.AgingTotals),
		}
	}
	return response
}
