package repositories

import (
	"context"
	"time"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DocumentReader defines read operations for document data
type DocumentReader interface {
	// FindDocumentByID retrieves a document header by its unique identifier.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// FindLineItemsByDocumentID retrieves a document's line items in display order.
	FindLineItemsByDocumentID(ctx context.Context, documentID string) ([]domain.LineItem, error)

	// ListDocumentsByKind retrieves a paginated list of documents of one kind
	// using token-based pagination. It returns the documents, a token for the
	// next page, and an error.
	ListDocumentsByKind(ctx context.Context, kind domain.DocumentKind, limit int, nextToken *string) ([]domain.Document, *string, error)

	// SumPaymentsForDocument returns the sum of payment amounts applied to the
	// document. Balances are always derived from this fresh sum, never cached.
	SumPaymentsForDocument(ctx context.Context, documentID string) (decimal.Decimal, error)

	// CountPaymentsForDocument returns the number of payments applied to the document.
	CountPaymentsForDocument(ctx context.Context, documentID string) (int64, error)
}

// DocumentWriter defines write operations for document data
type DocumentWriter interface {
	// SaveDocument persists a new document together with its line items in a
	// single transaction. A duplicate number within the kind surfaces as
	// apperrors.ErrConflict.
	SaveDocument(ctx context.Context, doc domain.Document, items []domain.LineItem) error

	// ReplaceDocumentItems updates the document header and replaces its entire
	// line item set in one transaction. For invoices and bills the status is
	// re-evaluated inside the same transaction against the fresh payment sum,
	// so no reader ever observes totals and status out of step.
	ReplaceDocumentItems(ctx context.Context, doc domain.Document, items []domain.LineItem) error

	// UpdateDocumentStatus sets the persisted status column. Used for the lazy
	// open-to-overdue flip and for operator transitions on quotes and POs.
	UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, updatedBy string, updatedAt time.Time) error

	// DeleteDocument removes a document and its line items after re-checking
	// the lifecycle guards under a row lock: an invoice or bill with payments,
	// or a quote that has been converted, returns apperrors.ErrPrecondition.
	DeleteDocument(ctx context.Context, documentID string) error

	// CreateInvoiceFromQuote atomically persists the new invoice (with its
	// copied line items) and marks the quote converted. The quote row is
	// locked and its invoice_id re-checked inside the transaction; a quote
	// already converted returns apperrors.ErrPrecondition and nothing is
	// written.
	CreateInvoiceFromQuote(ctx context.Context, quoteID string, invoice domain.Document, items []domain.LineItem) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
