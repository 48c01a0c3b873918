package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgingBucket labels one days-past-due range of the aging report.
type AgingBucket string

const (
	BucketCurrent AgingBucket = "current"
	Bucket1To30   AgingBucket = "1_30"
	Bucket31To60  AgingBucket = "31_60"
	Bucket61To90  AgingBucket = "61_90"
	Bucket90Plus  AgingBucket = "90_plus"
)

// AgingTotals accumulates one balance per bucket plus the row total.
type AgingTotals struct {
	Current  decimal.Decimal `json:"current"`
	Days130  decimal.Decimal `json:"1_30"`
	Days3160 decimal.Decimal `json:"31_60"`
	Days6190 decimal.Decimal `json:"61_90"`
	Days90   decimal.Decimal `json:"90_plus"`
	Total    decimal.Decimal `json:"total"`
}

// Add accumulates balance into the given bucket and the total.
func (t *AgingTotals) Add(bucket AgingBucket, balance decimal.Decimal) {
	switch bucket {
	case BucketCurrent:
		t.Current = t.Current.Add(balance)
	case Bucket1To30:
		t.Days130 = t.Days130.Add(balance)
	case Bucket31To60:
		t.Days3160 = t.Days3160.Add(balance)
	case Bucket61To90:
		t.Days6190 = t.Days6190.Add(balance)
	case Bucket90Plus:
		t.Days90 = t.Days90.Add(balance)
	}
	t.Total = t.Total.Add(balance)
}

// AgingRow is the per-party line of the aging report. PartyID is nil for
// documents with no owning party; those are grouped, not dropped.
type AgingRow struct {
	PartyID   *string `json:"partyID"`
	PartyName string  `json:"partyName"`
	AgingTotals
}

// AgingReport buckets every unpaid invoice (or bill) balance by days past
// due as of AsOf. Rows are sorted by party name, case-insensitively; the
// nil-party row carries an empty name and therefore sorts first under Go's
// byte-wise string comparison.
type AgingReport struct {
	Kind    DocumentKind `json:"kind"`
	AsOf    time.Time    `json:"asOf"`
	Buckets AgingTotals  `json:"buckets"`
	Rows    []AgingRow   `json:"rows"`
}

// OpenDocumentBalance is the reporting projection of one unpaid document:
// the snapshot a single aging pass consumes.
type OpenDocumentBalance struct {
	DocumentID string
	Number     string
	Date       time.Time
	DueDate    *time.Time
	PartyID    *string
	PartyName  string
	Balance    decimal.Decimal
}
