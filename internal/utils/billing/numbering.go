package billing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
)

// SeriesStyle configures how one document series formats its numbers:
// an optional fixed prefix and the zero-padded width of the numeric part.
type SeriesStyle struct {
	Prefix string
	Width  int
}

// DefaultSeriesStyles matches the numbering the application has always used:
// plain four-digit sequences for manually-editable series and a prefixed
// six-digit sequence for system-assigned quote numbers.
func DefaultSeriesStyles() map[domain.DocumentKind]SeriesStyle {
	return map[domain.DocumentKind]SeriesStyle{
		domain.KindInvoice:       {Prefix: "INV-", Width: 6},
		domain.KindBill:          {Prefix: "", Width: 4},
		domain.KindQuote:         {Prefix: "Q-", Width: 6},
		domain.KindPurchaseOrder: {Prefix: "", Width: 4},
	}
}

// DigitsOnly strips every non-digit rune from value.
func DigitsOnly(value string) string {
	var b strings.Builder
	for _, c := range strings.TrimSpace(value) {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// ParseNumber extracts the numeric part of a document number, tolerating a
// fixed prefix or a digit-only style. It reports false for numbers with no
// digits at all (malformed legacy entries).
func ParseNumber(number string, style SeriesStyle) (int64, bool) {
	trimmed := strings.TrimSpace(number)
	if style.Prefix != "" {
		trimmed = strings.TrimPrefix(trimmed, style.Prefix)
	}
	digits := DigitsOnly(trimmed)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatNumber renders a sequence value in the series' style.
func FormatNumber(n int64, style SeriesStyle) string {
	return fmt.Sprintf("%s%0*d", style.Prefix, style.Width, n)
}
