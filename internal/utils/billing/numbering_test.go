package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/billing"
)

func TestFormatNumber(t *testing.T) {
	styles := billing.DefaultSeriesStyles()

	assert.Equal(t, "INV-000007", billing.FormatNumber(7, styles[domain.KindInvoice]))
	assert.Equal(t, "Q-000123", billing.FormatNumber(123, styles[domain.KindQuote]))
	assert.Equal(t, "0042", billing.FormatNumber(42, styles[domain.KindBill]))
	// Values wider than the pad width keep all their digits.
	assert.Equal(t, "12345", billing.FormatNumber(12345, styles[domain.KindPurchaseOrder]))
}

func TestParseNumber(t *testing.T) {
	invoiceStyle := billing.SeriesStyle{Prefix: "INV-", Width: 6}
	plainStyle := billing.SeriesStyle{Width: 4}

	tests := []struct {
		name   string
		number string
		style  billing.SeriesStyle
		want   int64
		wantOK bool
	}{
		{name: "prefixed", number: "INV-000007", style: invoiceStyle, want: 7, wantOK: true},
		{name: "digits only", number: "0042", style: plainStyle, want: 42, wantOK: true},
		{name: "surrounding whitespace", number: "  INV-000009 ", style: invoiceStyle, want: 9, wantOK: true},
		{name: "foreign prefix still yields its digits", number: "OLD-15", style: invoiceStyle, want: 15, wantOK: true},
		{name: "no digits at all", number: "DRAFT", style: invoiceStyle, wantOK: false},
		{name: "empty", number: "", style: plainStyle, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := billing.ParseNumber(tt.number, tt.style)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "20260315", billing.DigitsOnly("2026-03-15"))
	assert.Equal(t, "", billing.DigitsOnly("no digits"))
	assert.Equal(t, "7", billing.DigitsOnly(" INV-7 "))
}
