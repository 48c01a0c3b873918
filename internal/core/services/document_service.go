package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/apperrors"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/dto"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/billing"
)

var (
	ErrNotBalanceTracked = errors.New("balances apply to invoices and bills only")
	ErrStatusDerived     = errors.New("invoice and bill statuses are derived from payments and cannot be set directly")
)

// defaultInvoiceTermDays is the due date offset applied to invoices created
// by quote conversion.
const defaultInvoiceTermDays = 30

// documentService provides core document and line item operations.
type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
	partyRepo    portsrepo.PartyReader
	productRepo  portsrepo.ProductReader
	numberingSvc portssvc.NumberingSvcFacade

	// now is swappable in tests
	now func() time.Time
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade, partyRepo portsrepo.PartyReader, productRepo portsrepo.ProductReader, numberingSvc portssvc.NumberingSvcFacade) portssvc.DocumentSvcFacade {
	return &documentService{
		documentRepo: documentRepo,
		partyRepo:    partyRepo,
		productRepo:  productRepo,
		numberingSvc: numberingSvc,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// validateParty checks that the referenced party exists and sits on the right
// side of the ledger for this document kind.
func (s *documentService) validateParty(ctx context.Context, kind domain.DocumentKind, poType domain.POType, partyID *string) error {
	if partyID == nil {
		return nil
	}
	party, err := s.partyRepo.FindPartyByID(ctx, *partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("partyID", "unknown party "+*partyID)
		}
		return fmt.Errorf("failed to fetch party %s: %w", *partyID, err)
	}

	expected := kind.PaymentPartyKind()
	if kind == domain.KindPurchaseOrder {
		expected = domain.Vendor
		if poType == domain.POTypeCustomer {
			expected = domain.Customer
		}
	}
	if party.Kind != expected {
		return apperrors.NewValidationError("partyID", fmt.Sprintf("party %s is a %s, expected a %s", *partyID, party.Kind, expected))
	}
	return nil
}

// buildItems resolves product references and computes per-line amounts and
// the subtotal from user-submitted rows.
func (s *documentService) buildItems(ctx context.Context, inputs []dto.LineItemInput) ([]domain.LineItem, decimal.Decimal, error) {
	rows := make([]billing.ItemRow, len(inputs))
	productIDs := make([]string, 0, len(inputs))
	for i, in := range inputs {
		rows[i] = billing.ItemRow{
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Unit:        in.Unit,
			ProductID:   in.ProductID,
		}
		if in.ProductID != nil {
			productIDs = append(productIDs, *in.ProductID)
		}
	}

	var products map[string]domain.Product
	if len(productIDs) > 0 {
		var err error
		products, err = s.productRepo.FindProductsByIDs(ctx, uniqueStrings(productIDs))
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("failed to fetch products for line items: %w", err)
		}
	}

	return billing.BuildLineItems(rows, products)
}

// CreateDocument creates a new document with its line items after validation.
// Implements portssvc.DocumentSvcFacade
func (s *documentService) CreateDocument(ctx context.Context, kind domain.DocumentKind, req dto.CreateDocumentRequest, creatorUserID string) (*domain.Document, error) {
	if req.Tax.IsNegative() {
		return nil, apperrors.NewValidationError("tax", "tax cannot be negative")
	}
	if kind == domain.KindPurchaseOrder && req.POType == "" {
		req.POType = domain.POTypeVendor
	}
	if kind != domain.KindPurchaseOrder {
		req.POType = ""
	}

	if err := s.validateParty(ctx, kind, req.POType, req.PartyID); err != nil {
		return nil, err
	}

	items, subtotal, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	total := subtotal.Add(req.Tax)

	// Quote numbers are system-assigned; other kinds accept a user-edited
	// number and treat the allocator as a prefill.
	number := req.Number
	if kind == domain.KindQuote && number != "" {
		return nil, apperrors.NewValidationError("number", "quote numbers are system-assigned")
	}
	if number == "" {
		number, err = s.numberingSvc.AllocateNumber(ctx, kind)
		if err != nil {
			return nil, err
		}
	}

	now := s.now()
	documentID := uuid.NewString()

	status := domain.StatusDraft
	if kind.IsBalanceTracked() {
		_, status = billing.EvaluateStatus(total, decimal.Zero, req.DueDate, now)
	}

	doc := domain.Document{
		DocumentID: documentID,
		Kind:       kind,
		Number:     number,
		Date:       req.Date,
		DueDate:    req.DueDate,
		PartyID:    req.PartyID,
		Subtotal:   subtotal,
		Tax:        req.Tax,
		Total:      total,
		Status:     status,
		Terms:      req.Terms,
		Notes:      req.Notes,
		POType:     req.POType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	for i := range items {
		items[i].LineItemID = uuid.NewString()
		items[i].DocumentID = documentID
	}

	if err := s.documentRepo.SaveDocument(ctx, doc, items); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: number %s is already taken for %s", apperrors.ErrConflict, number, kind)
		}
		s.LogError(ctx, err, "Failed to save document", "kind", string(kind))
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	s.LogInfo(ctx, "Document created", "document_id", documentID, "kind", string(kind), "number", number)
	doc.Items = items
	return &doc, nil
}

// GetDocumentByID retrieves a document with its items. Viewing an open
// invoice or bill whose due date has passed persists the overdue flip, so
// statuses age without a background job.
func (s *documentService) GetDocumentByID(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.Document, error) {
	doc, err := s.findDocumentOfKind(ctx, kind, documentID)
	if err != nil {
		return nil, err
	}

	items, err := s.documentRepo.FindLineItemsByDocumentID(ctx, documentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch line items", "document_id", documentID)
		return nil, fmt.Errorf("failed to retrieve line items for document %s: %w", documentID, err)
	}
	doc.Items = items

	if doc.Kind.IsBalanceTracked() {
		paid, err := s.documentRepo.SumPaymentsForDocument(ctx, documentID)
		if err != nil {
			return nil, fmt.Errorf("failed to sum payments for document %s: %w", documentID, err)
		}
		now := s.now()
		_, status := billing.EvaluateStatus(doc.Total, paid, doc.DueDate, now)
		if status != doc.Status {
			if err := s.documentRepo.UpdateDocumentStatus(ctx, documentID, status, doc.LastUpdatedBy, now); err != nil {
				// The stored status will be re-derived on the next read.
				s.LogWarn(ctx, "Failed to persist status flip", "document_id", documentID, "status", string(status), "error", err.Error())
			}
			doc.Status = status
		}
	}

	return doc, nil
}

// findDocumentOfKind fetches a document and hides it behind ErrNotFound when
// the kind in the route does not match.
func (s *documentService) findDocumentOfKind(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find document by ID", "document_id", documentID)
		}
		return nil, fmt.Errorf("failed to find document %s: %w", documentID, err)
	}
	if doc.Kind != kind {
		return nil, apperrors.ErrNotFound
	}
	return doc, nil
}

// GetDocumentBalance returns the remaining balance of an invoice or bill.
func (s *documentService) GetDocumentBalance(ctx context.Context, kind domain.DocumentKind, documentID string) (decimal.Decimal, error) {
	if !kind.IsBalanceTracked() {
		return decimal.Zero, ErrNotBalanceTracked
	}
	doc, err := s.findDocumentOfKind(ctx, kind, documentID)
	if err != nil {
		return decimal.Zero, err
	}
	paid, err := s.documentRepo.SumPaymentsForDocument(ctx, documentID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments for document %s: %w", documentID, err)
	}
	return doc.Total.Sub(paid), nil
}

// ListDocuments retrieves a paginated list of documents of one kind.
func (s *documentService) ListDocuments(ctx context.Context, kind domain.DocumentKind, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	docs, nextToken, err := s.documentRepo.ListDocumentsByKind(ctx, kind, limit, token)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents", "kind", string(kind))
		return nil, fmt.Errorf("failed to retrieve documents: %w", err)
	}

	next := ""
	if nextToken != nil {
		next = *nextToken
	}
	resp := dto.ToListDocumentsResponse(docs, next)
	s.LogDebug(ctx, "Documents listed", "kind", string(kind), "count", len(docs))
	return &resp, nil
}

// UpdateDocument updates header fields and optionally replaces the full line
// item set. Totals and derived status are recomputed in the same transaction
// as the item rewrite.
func (s *documentService) UpdateDocument(ctx context.Context, kind domain.DocumentKind, documentID string, req dto.UpdateDocumentRequest, requestingUserID string) (*domain.Document, error) {
	doc, err := s.findDocumentOfKind(ctx, kind, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Kind == domain.KindQuote && doc.InvoiceID != nil {
		return nil, apperrors.NewPreconditionError("quote has been converted to an invoice and can no longer be edited")
	}

	if req.Date != nil {
		doc.Date = *req.Date
	}
	if req.DueDate != nil {
		doc.DueDate = req.DueDate
	}
	if req.PartyID != nil {
		if *req.PartyID == "" {
			doc.PartyID = nil
		} else {
			doc.PartyID = req.PartyID
		}
	}
	if req.Tax != nil {
		if req.Tax.IsNegative() {
			return nil, apperrors.NewValidationError("tax", "tax cannot be negative")
		}
		doc.Tax = *req.Tax
	}
	if req.Terms != nil {
		doc.Terms = *req.Terms
	}
	if req.Notes != nil {
		doc.Notes = *req.Notes
	}

	if err := s.validateParty(ctx, doc.Kind, doc.POType, doc.PartyID); err != nil {
		return nil, err
	}

	var items []domain.LineItem
	if req.Items != nil {
		var subtotal decimal.Decimal
		items, subtotal, err = s.buildItems(ctx, req.Items)
		if err != nil {
			return nil, err
		}
		doc.Subtotal = subtotal
		for i := range items {
			items[i].LineItemID = uuid.NewString()
			items[i].DocumentID = documentID
		}
	} else {
		items, err = s.documentRepo.FindLineItemsByDocumentID(ctx, documentID)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve line items for document %s: %w", documentID, err)
		}
	}
	doc.Total = doc.Subtotal.Add(doc.Tax)

	now := s.now()
	doc.LastUpdatedAt = now
	doc.LastUpdatedBy = requestingUserID

	if err := s.documentRepo.ReplaceDocumentItems(ctx, *doc, items); err != nil {
		s.LogError(ctx, err, "Failed to update document", "document_id", documentID)
		return nil, fmt.Errorf("failed to update document %s: %w", documentID, err)
	}

	s.LogInfo(ctx, "Document updated", "document_id", documentID, "kind", string(kind))
	return s.GetDocumentByID(ctx, kind, documentID)
}

// UpdateDocumentStatus sets an operator-driven status on a quote or purchase
// order. Invoices and bills reject direct status writes.
func (s *documentService) UpdateDocumentStatus(ctx context.Context, kind domain.DocumentKind, documentID string, status domain.DocumentStatus, requestingUserID string) (*domain.Document, error) {
	allowed := domain.OperatorStatuses(kind)
	if allowed == nil {
		return nil, ErrStatusDerived
	}
	valid := false
	for _, st := range allowed {
		if st == status {
			valid = true
			break
		}
	}
	if !valid {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("status %s is not valid for %s", status, kind))
	}

	doc, err := s.findDocumentOfKind(ctx, kind, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Kind == domain.KindQuote && doc.InvoiceID != nil {
		return nil, apperrors.NewPreconditionError("quote has been converted to an invoice and its status is frozen")
	}

	now := s.now()
	if err := s.documentRepo.UpdateDocumentStatus(ctx, documentID, status, requestingUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to update document status", "document_id", documentID)
		return nil, fmt.Errorf("failed to update status for document %s: %w", documentID, err)
	}

	doc.Status = status
	doc.LastUpdatedAt = now
	doc.LastUpdatedBy = requestingUserID
	s.LogInfo(ctx, "Document status updated", "document_id", documentID, "status", string(status))
	return doc, nil
}

// DeleteDocument removes a document and its line items. An invoice or bill
// with applied payments, or a converted quote, refuses deletion; the
// repository re-checks both guards under a row lock.
func (s *documentService) DeleteDocument(ctx context.Context, kind domain.DocumentKind, documentID string, requestingUserID string) error {
	doc, err := s.findDocumentOfKind(ctx, kind, documentID)
	if err != nil {
		return err
	}

	if doc.Kind.IsBalanceTracked() {
		count, err := s.documentRepo.CountPaymentsForDocument(ctx, documentID)
		if err != nil {
			return fmt.Errorf("failed to count payments for document %s: %w", documentID, err)
		}
		if count > 0 {
			return apperrors.NewPreconditionError(fmt.Sprintf("document has %d applied payments; record-keeping forbids deleting it", count))
		}
	}
	if doc.Kind == domain.KindQuote && doc.InvoiceID != nil {
		return apperrors.NewPreconditionError("quote has been converted to an invoice and cannot be deleted")
	}

	if err := s.documentRepo.DeleteDocument(ctx, documentID); err != nil {
		if errors.Is(err, apperrors.ErrPrecondition) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete document", "document_id", documentID)
		return fmt.Errorf("failed to delete document %s: %w", documentID, err)
	}

	s.LogInfo(ctx, "Document deleted", "document_id", documentID, "kind", string(kind))
	return nil
}

// ConvertQuoteToInvoice creates an invoice from a quote, copying its lines,
// and links the quote to the new invoice. An empty or already-converted quote
// is refused. The insert and the quote update commit together; a quote
// converts at most once.
func (s *documentService) ConvertQuoteToInvoice(ctx context.Context, quoteID string, requestingUserID string) (*domain.Document, error) {
	quote, err := s.findDocumentOfKind(ctx, domain.KindQuote, quoteID)
	if err != nil {
		return nil, err
	}

	quoteItems, err := s.documentRepo.FindLineItemsByDocumentID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve line items for quote %s: %w", quoteID, err)
	}
	if len(quoteItems) == 0 {
		return nil, apperrors.NewPreconditionError("quote has no line items to convert")
	}
	if quote.InvoiceID != nil {
		return nil, apperrors.NewPreconditionError("quote has already been converted to an invoice")
	}

	number, err := s.numberingSvc.AllocateNumber(ctx, domain.KindInvoice)
	if err != nil {
		return nil, err
	}

	now := s.now()
	invoiceID := uuid.NewString()
	dueDate := now.AddDate(0, 0, defaultInvoiceTermDays)

	_, status := billing.EvaluateStatus(quote.Total, decimal.Zero, &dueDate, now)
	invoice := domain.Document{
		DocumentID: invoiceID,
		Kind:       domain.KindInvoice,
		Number:     number,
		Date:       now,
		DueDate:    &dueDate,
		PartyID:    quote.PartyID,
		Subtotal:   quote.Subtotal,
		Tax:        quote.Tax,
		Total:      quote.Total,
		Status:     status,
		Terms:      quote.Terms,
		Notes:      quote.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	items := make([]domain.LineItem, len(quoteItems))
	for i, item := range quoteItems {
		items[i] = item
		items[i].LineItemID = uuid.NewString()
		items[i].DocumentID = invoiceID
	}

	if err := s.documentRepo.CreateInvoiceFromQuote(ctx, quoteID, invoice, items); err != nil {
		if errors.Is(err, apperrors.ErrPrecondition) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to convert quote to invoice", "quote_id", quoteID)
		return nil, fmt.Errorf("failed to convert quote %s: %w", quoteID, err)
	}

	s.LogInfo(ctx, "Quote converted to invoice", "quote_id", quoteID, "invoice_id", invoiceID, "number", number)
	invoice.Items = items
	return &invoice, nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
