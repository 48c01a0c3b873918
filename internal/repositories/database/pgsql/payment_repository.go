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

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, party_id, document_id, date, amount, method, reference, notes,
	       created_at, created_by, last_updated_at, last_updated_by`

const insertPaymentQuery = `
	INSERT INTO payments (
		payment_id, party_id, document_id, date, amount, method, reference, notes,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

// SavePayment appends a payment. For a payment applied to a document, the
// document row is locked and its status re-derived from the fresh payment sum
// inside the same transaction. Payments have no update or delete path.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	args := []any{
		m.PaymentID, m.PartyID, m.DocumentID, m.Date, m.Amount,
		m.Method, m.Reference, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}

	if payment.DocumentID == nil {
		if _, err := r.Pool.Exec(ctx, insertPaymentQuery, args...); err != nil {
			return apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
		}
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	documentID := *payment.DocumentID

	var total decimal.Decimal
	var dueDate *time.Time
	lockQuery := `SELECT total, due_date FROM documents WHERE document_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, documentID).Scan(&total, &dueDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock document "+documentID, err)
	}

	if _, err := tx.Exec(ctx, insertPaymentQuery, args...); err != nil {
		return apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}

	var paid decimal.Decimal
	if err := tx.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE document_id = $1;`, documentID).Scan(&paid); err != nil {
		return apperrors.NewAppError(500, "failed to sum payments for document "+documentID, err)
	}

	_, status := billing.EvaluateStatus(total, paid, dueDate, payment.CreatedAt)
	statusQuery := `
		UPDATE documents
		SET status = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE document_id = $1;
	`
	if _, err := tx.Exec(ctx, statusQuery, documentID, string(status), m.CreatedAt, m.CreatedBy); err != nil {
		return apperrors.NewAppError(500, "failed to update status for document "+documentID, err)
	}

	return r.Commit(ctx, tx)
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	var m models.Payment
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&m.PaymentID, &m.PartyID, &m.DocumentID, &m.Date, &m.Amount,
		&m.Method, &m.Reference, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID "+paymentID, err)
	}

	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// ListPaymentsByParty retrieves a paginated list of a party's payments using
// token-based pagination, newest first.
func (r *PgxPaymentRepository) ListPaymentsByParty(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + paymentColumns + ` FROM payments WHERE party_id = $1`
	orderByClause := `ORDER BY date DESC, created_at DESC`

	args := []any{partyID}
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
		return nil, nil, apperrors.NewAppError(500, "failed to query payments for party "+partyID, err)
	}
	defer rows.Close()

	modelPayments, err := scanPaymentRows(rows, fetchLimit)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan payment rows for party "+partyID, err)
	}

	var nextTokenVal *string
	results := modelPayments
	if len(modelPayments) > limit {
		last := modelPayments[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		nextTokenVal = &token
		results = modelPayments[:limit]
	}

	return mapping.ToDomainPaymentSlice(results), nextTokenVal, nil
}

// ListPaymentsByDocument retrieves every payment applied to a document, newest first.
func (r *PgxPaymentRepository) ListPaymentsByDocument(ctx context.Context, documentID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE document_id = $1 ORDER BY date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for document "+documentID, err)
	}
	defer rows.Close()

	modelPayments, err := scanPaymentRows(rows, 0)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan payment rows for document "+documentID, err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

func scanPaymentRows(rows pgx.Rows, capacity int) ([]models.Payment, error) {
	payments := make([]models.Payment, 0, capacity)
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID, &m.PartyID, &m.DocumentID, &m.Date, &m.Amount,
			&m.Method, &m.Reference, &m.Notes,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, err
		}
		payments = append(payments, m)
	}
	return payments, rows.Err()
}
