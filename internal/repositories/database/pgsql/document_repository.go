package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/apperrors"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/models"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/billing"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/mapping"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/pagination"
)

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a new repository for document and line item data.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

const documentColumns = `document_id, kind, number, date, due_date, party_id, subtotal, tax, total,
	       status, terms, notes, invoice_id, po_type,
	       created_at, created_by, last_updated_at, last_updated_by`

const insertDocumentQuery = `
	INSERT INTO documents (
		document_id, kind, number, date, due_date, party_id, subtotal, tax, total,
		status, terms, notes, invoice_id, po_type,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
`

const insertLineItemQuery = `
	INSERT INTO line_items (line_item_id, document_id, product_id, description, quantity, unit_price, amount, unit, position)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`

func documentInsertArgs(m models.Document) []any {
	return []any{
		m.DocumentID, m.Kind, m.Number, m.Date, m.DueDate, m.PartyID,
		m.Subtotal, m.Tax, m.Total, m.Status, m.Terms, m.Notes,
		m.InvoiceID, m.POType,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func queueLineItems(batch *pgx.Batch, items []domain.LineItem) {
	for i, item := range items {
		m := mapping.ToModelLineItem(item, i)
		batch.Queue(insertLineItemQuery,
			m.LineItemID, m.DocumentID, m.ProductID, m.Description,
			m.Quantity, m.UnitPrice, m.Amount, m.Unit, m.Position,
		)
	}
}

// SaveDocument persists a new document together with its line items in a
// single transaction. A duplicate number within the kind maps to ErrConflict.
func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document, items []domain.LineItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDocument(doc)
	if _, err := tx.Exec(ctx, insertDocumentQuery, documentInsertArgs(m)...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to insert document "+m.DocumentID, err)
	}

	batch := &pgx.Batch{}
	queueLineItems(batch, items)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert line items for document "+m.DocumentID, err)
	}

	return r.Commit(ctx, tx)
}

// FindDocumentByID retrieves a document header by its ID.
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1;`

	m, err := scanDocumentRow(r.Pool.QueryRow(ctx, query, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find document by ID "+documentID, err)
	}

	doc := mapping.ToDomainDocument(*m)
	return &doc, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocumentRow(row rowScanner) (*models.Document, error) {
	var m models.Document
	err := row.Scan(
		&m.DocumentID, &m.Kind, &m.Number, &m.Date, &m.DueDate, &m.PartyID,
		&m.Subtotal, &m.Tax, &m.Total, &m.Status, &m.Terms, &m.Notes,
		&m.InvoiceID, &m.POType,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindLineItemsByDocumentID retrieves a document's line items in display order.
func (r *PgxDocumentRepository) FindLineItemsByDocumentID(ctx context.Context, documentID string) ([]domain.LineItem, error) {
	query := `
		SELECT line_item_id, document_id, product_id, description, quantity, unit_price, amount, unit, position
		FROM line_items
		WHERE document_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query line items for document "+documentID, err)
	}
	defer rows.Close()

	items := []models.LineItem{}
	for rows.Next() {
		var m models.LineItem
		if err := rows.Scan(&m.LineItemID, &m.DocumentID, &m.ProductID, &m.Description, &m.Quantity, &m.UnitPrice, &m.Amount, &m.Unit, &m.Position); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line item row for document "+documentID, err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line item rows for document "+documentID, err)
	}

	return mapping.ToDomainLineItemSlice(items), nil
}

// ListDocumentsByKind retrieves a paginated list of documents of one kind
// using token-based pagination, newest first.
func (r *PgxDocumentRepository) ListDocumentsByKind(ctx context.Context, kind domain.DocumentKind, limit int, nextToken *string) ([]domain.Document, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + documentColumns + ` FROM documents WHERE kind = $1`
	orderByClause := `ORDER BY date DESC, created_at DESC`

	args := []any{string(kind)}
	query := baseQuery

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query documents of kind "+string(kind), err)
	}
	defer rows.Close()

	modelDocs := make([]models.Document, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanDocumentRow(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan document row of kind "+string(kind), scanErr)
		}
		modelDocs = append(modelDocs, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating document rows of kind "+string(kind), err)
	}

	var nextTokenVal *string
	results := modelDocs
	if len(modelDocs) > limit {
		last := modelDocs[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		nextTokenVal = &token
		results = modelDocs[:limit]
	}

	docs := make([]domain.Document, len(results))
	for i, m := range results {
		docs[i] = mapping.ToDomainDocument(m)
	}
	return docs, nextTokenVal, nil
}

// SumPaymentsForDocument returns the fresh sum of payments applied to the document.
func (r *PgxDocumentRepository) SumPaymentsForDocument(ctx context.Context, documentID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE document_id = $1;`
	if err := r.Pool.QueryRow(ctx, query, documentID).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum payments for document "+documentID, err)
	}
	return sum, nil
}

// CountPaymentsForDocument returns the number of payments applied to the document.
func (r *PgxDocumentRepository) CountPaymentsForDocument(ctx context.Context, documentID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM payments WHERE document_id = $1;`
	if err := r.Pool.QueryRow(ctx, query, documentID).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count payments for document "+documentID, err)
	}
	return count, nil
}

// ReplaceDocumentItems updates the header and replaces the whole line item
// set in one transaction. For invoices and bills the status is re-derived
// against the fresh payment sum before commit, so totals and status never go
// out of step.
func (r *PgxDocumentRepository) ReplaceDocumentItems(ctx context.Context, doc domain.Document, items []domain.LineItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// Lock the document row for the duration of the rewrite.
	var lockedID string
	if err := tx.QueryRow(ctx, `SELECT document_id FROM documents WHERE document_id = $1 FOR UPDATE;`, doc.DocumentID).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock document "+doc.DocumentID, err)
	}

	m := mapping.ToModelDocument(doc)

	if doc.Kind.IsBalanceTracked() {
		var paid decimal.Decimal
		if err := tx.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE document_id = $1;`, doc.DocumentID).Scan(&paid); err != nil {
			return apperrors.NewAppError(500, "failed to sum payments for document "+doc.DocumentID, err)
		}
		_, status := billing.EvaluateStatus(doc.Total, paid, doc.DueDate, doc.LastUpdatedAt)
		m.Status = models.DocumentStatus(status)
	}

	updateQuery := `
		UPDATE documents
		SET date = $2,
		    due_date = $3,
		    party_id = $4,
		    subtotal = $5,
		    tax = $6,
		    total = $7,
		    status = $8,
		    terms = $9,
		    notes = $10,
		    last_updated_at = $11,
		    last_updated_by = $12
		WHERE document_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery,
		m.DocumentID, m.Date, m.DueDate, m.PartyID,
		m.Subtotal, m.Tax, m.Total, m.Status, m.Terms, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
	); err != nil {
		return apperrors.NewAppError(500, "failed to update document "+m.DocumentID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM line_items WHERE document_id = $1;`, doc.DocumentID); err != nil {
		return apperrors.NewAppError(500, "failed to clear line items for document "+doc.DocumentID, err)
	}

	batch := &pgx.Batch{}
	queueLineItems(batch, items)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert line items for document "+doc.DocumentID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateDocumentStatus sets the persisted status column.
func (r *PgxDocumentRepository) UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE documents
		SET status = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE document_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, documentID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for document "+documentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("document " + documentID + " not found for status update")
	}
	return nil
}

// DeleteDocument removes a document and its line items after re-checking the
// lifecycle guards under a row lock.
func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var kind models.DocumentKind
	var invoiceID *string
	lockQuery := `SELECT kind, invoice_id FROM documents WHERE document_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, documentID).Scan(&kind, &invoiceID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock document "+documentID, err)
	}

	if kind == models.KindQuote && invoiceID != nil {
		return apperrors.NewPreconditionError("quote has been converted to an invoice and cannot be deleted")
	}

	var paymentCount int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM payments WHERE document_id = $1;`, documentID).Scan(&paymentCount); err != nil {
		return apperrors.NewAppError(500, "failed to count payments for document "+documentID, err)
	}
	if paymentCount > 0 {
		return apperrors.NewPreconditionError("document has applied payments and cannot be deleted")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM line_items WHERE document_id = $1;`, documentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete line items for document "+documentID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM documents WHERE document_id = $1;`, documentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete document "+documentID, err)
	}

	return r.Commit(ctx, tx)
}

// CreateInvoiceFromQuote atomically persists the new invoice with its copied
// line items and marks the quote converted. The quote row is locked and its
// invoice_id re-checked inside the transaction, so a quote converts at most
// once even under concurrent requests.
func (r *PgxDocumentRepository) CreateInvoiceFromQuote(ctx context.Context, quoteID string, invoice domain.Document, items []domain.LineItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var existingInvoiceID *string
	lockQuery := `SELECT invoice_id FROM documents WHERE document_id = $1 AND kind = $2 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, quoteID, string(models.KindQuote)).Scan(&existingInvoiceID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock quote "+quoteID, err)
	}
	if existingInvoiceID != nil {
		return apperrors.NewPreconditionError("quote has already been converted to an invoice")
	}

	m := mapping.ToModelDocument(invoice)
	if _, err := tx.Exec(ctx, insertDocumentQuery, documentInsertArgs(m)...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to insert invoice "+m.DocumentID, err)
	}

	batch := &pgx.Batch{}
	queueLineItems(batch, items)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert line items for invoice "+m.DocumentID, err)
	}

	markQuery := `
		UPDATE documents
		SET status = $2,
		    invoice_id = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE document_id = $1;
	`
	if _, err := tx.Exec(ctx, markQuery, quoteID, string(domain.StatusInvoiced), m.DocumentID, m.LastUpdatedAt, m.LastUpdatedBy); err != nil {
		return apperrors.NewAppError(500, "failed to mark quote "+quoteID+" converted", err)
	}

	return r.Commit(ctx, tx)
}
