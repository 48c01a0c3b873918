package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/dto"
)

// DocumentReaderSvc defines read operations for document data
type DocumentReaderSvc interface {
	// GetDocumentByID retrieves a document with its line items. Viewing an
	// open invoice or bill whose due date has passed flips it to overdue.
	GetDocumentByID(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.Document, error)

	// ListDocuments retrieves a paginated list of documents of one kind.
	ListDocuments(ctx context.Context, kind domain.DocumentKind, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error)

	// GetDocumentBalance returns the remaining balance of an invoice or bill.
	GetDocumentBalance(ctx context.Context, kind domain.DocumentKind, documentID string) (decimal.Decimal, error)
}

// DocumentWriterSvc defines write operations for document data
type DocumentWriterSvc interface {
	// CreateDocument persists a new document with its line items, assigning
	// the next number in the kind's sequence when none is supplied.
	CreateDocument(ctx context.Context, kind domain.DocumentKind, req dto.CreateDocumentRequest, creatorUserID string) (*domain.Document, error)

	// UpdateDocument updates header fields and optionally replaces the full
	// line item set, recomputing totals and derived status.
	UpdateDocument(ctx context.Context, kind domain.DocumentKind, documentID string, req dto.UpdateDocumentRequest, requestingUserID string) (*domain.Document, error)

	// UpdateDocumentStatus sets an operator-driven status on a quote or
	// purchase order. Invoices and bills reject direct status writes.
	UpdateDocumentStatus(ctx context.Context, kind domain.DocumentKind, documentID string, status domain.DocumentStatus, requestingUserID string) (*domain.Document, error)

	// DeleteDocument removes a document and its line items. Documents with
	// applied payments and converted quotes refuse deletion.
	DeleteDocument(ctx context.Context, kind domain.DocumentKind, documentID string, requestingUserID string) error
}

// DocumentConversionSvc defines the quote to invoice conversion
type DocumentConversionSvc interface {
	// ConvertQuoteToInvoice creates an invoice from an accepted quote,
	// copying its lines and linking the quote to the new invoice. A quote
	// converts at most once.
	ConvertQuoteToInvoice(ctx context.Context, quoteID string, requestingUserID string) (*domain.Document, error)
}

// DocumentSvcFacade combines all document-related service interfaces
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
	DocumentConversionSvc
}
