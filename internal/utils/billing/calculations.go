package billing

import (
	"time"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/apperrors"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaidEpsilon is the tolerance under which a balance counts as fully paid.
// Repeated decimal operations can leave a residual cent; balances at or below
// one cent are treated as zero.
var PaidEpsilon = decimal.RequireFromString("0.01")

// EvaluateStatus derives the balance and status of an invoice or bill from
// its total, the sum of applied payments, and its due date. It is pure: the
// same inputs always produce the same outputs, and it is re-run after every
// payment, every totals-changing edit, and lazily on read so open documents
// flip to overdue as time passes.
func EvaluateStatus(total, appliedPayments decimal.Decimal, dueDate *time.Time, today time.Time) (decimal.Decimal, domain.DocumentStatus) {
	balance := total.Sub(appliedPayments)
	switch {
	case balance.LessThanOrEqual(PaidEpsilon):
		return balance, domain.StatusPaid
	case appliedPayments.GreaterThan(decimal.Zero):
		return balance, domain.StatusPartial
	case dueDate != nil && dueDate.Before(truncateToDay(today)):
		return balance, domain.StatusOverdue
	default:
		return balance, domain.StatusOpen
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysPastDue counts whole days between the reference date (due date, or
// issue date when none) and asOf. Zero or negative means not yet due.
func DaysPastDue(date time.Time, dueDate *time.Time, asOf time.Time) int {
	ref := date
	if dueDate != nil {
		ref = *dueDate
	}
	return int(truncateToDay(asOf).Sub(truncateToDay(ref)).Hours() / 24)
}

// BucketFor maps a days-past-due count to its aging bucket.
func BucketFor(daysPastDue int) domain.AgingBucket {
	switch {
	case daysPastDue <= 0:
		return domain.BucketCurrent
	case daysPastDue <= 30:
		return domain.Bucket1To30
	case daysPastDue <= 60:
		return domain.Bucket31To60
	case daysPastDue <= 90:
		return domain.Bucket61To90
	default:
		return domain.Bucket90Plus
	}
}

// ItemRow is one candidate line item as submitted by a caller. Pointer fields
// distinguish "absent" from zero so blank rows can be filtered.
type ItemRow struct {
	Description string
	Quantity    *decimal.Decimal
	UnitPrice   *decimal.Decimal
	Unit        string
	ProductID   *string
}

func (r ItemRow) isBlank() bool {
	return r.Description == "" && r.Quantity == nil && r.UnitPrice == nil && r.ProductID == nil
}

// BuildLineItems validates candidate rows and computes their amounts and the
// subtotal. All-blank rows are skipped. A non-blank row must carry a
// description, quantity and unit price; description and price may instead be
// resolved from a referenced catalog product. The first missing field aborts
// the whole build, and an empty result after blank-row filtering is rejected:
// no partial item list is ever produced.
func BuildLineItems(rows []ItemRow, products map[string]domain.Product) ([]domain.LineItem, decimal.Decimal, error) {
	items := make([]domain.LineItem, 0, len(rows))
	subtotal := decimal.Zero

	for _, row := range rows {
		if row.isBlank() {
			continue
		}

		description := row.Description
		unitPrice := row.UnitPrice
		unit := row.Unit

		if row.ProductID != nil {
			product, ok := products[*row.ProductID]
			if !ok {
				return nil, decimal.Zero, apperrors.NewValidationError("productID", "unknown product "+*row.ProductID)
			}
			if description == "" {
				description = product.Description
			}
			if unitPrice == nil {
				price := product.Price
				unitPrice = &price
			}
			if unit == "" {
				unit = product.Unit
			}
		}

		if description == "" {
			return nil, decimal.Zero, apperrors.NewValidationError("description", "each item must include a description")
		}
		if row.Quantity == nil {
			return nil, decimal.Zero, apperrors.NewValidationError("quantity", "each item must include a quantity")
		}
		if row.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, decimal.Zero, apperrors.NewValidationError("quantity", "quantity must be positive")
		}
		if unitPrice == nil {
			return nil, decimal.Zero, apperrors.NewValidationError("unitPrice", "each item must include a unit price")
		}
		if unitPrice.IsNegative() {
			return nil, decimal.Zero, apperrors.NewValidationError("unitPrice", "unit price cannot be negative")
		}

		amount := row.Quantity.Mul(*unitPrice)
		subtotal = subtotal.Add(amount)

		items = append(items, domain.LineItem{
			ProductID:   row.ProductID,
			Description: description,
			Quantity:    *row.Quantity,
			UnitPrice:   *unitPrice,
			Amount:      amount,
			Unit:        unit,
		})
	}

	if len(items) == 0 {
		return nil, decimal.Zero, apperrors.NewValidationError("items", "add at least one item")
	}

	return items, subtotal, nil
}
