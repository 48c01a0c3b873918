package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/apperrors"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/models"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/mapping"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for product data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, code, description, unit, price, cost, quantity_on_hand, category,
	       created_at, created_by, last_updated_at, last_updated_by`

func scanProductRow(row rowScanner) (*models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID, &m.Code, &m.Description, &m.Unit, &m.Price, &m.Cost,
		&m.QuantityOnHand, &m.Category,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveProduct persists a new product. A duplicate code maps to ErrConflict.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (
			product_id, code, description, unit, price, cost, quantity_on_hand, category,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.Code, m.Description, m.Unit, m.Price, m.Cost,
		m.QuantityOnHand, m.Category,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to insert product "+m.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	m, err := scanProductRow(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find product by ID "+productID, err)
	}

	product := mapping.ToDomainProduct(*m)
	return &product, nil
}

// FindProductsByIDs retrieves multiple products keyed by ID. Missing IDs are
// absent from the map rather than an error.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products by IDs", err)
	}
	defer rows.Close()

	products := make(map[string]domain.Product, len(productIDs))
	for rows.Next() {
		m, scanErr := scanProductRow(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row during batch fetch", scanErr)
		}
		products[m.ProductID] = mapping.ToDomainProduct(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows during batch fetch", err)
	}

	return products, nil
}

// ListProducts retrieves every product ordered by description.
func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY LOWER(description);`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		m, scanErr := scanProductRow(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", scanErr)
		}
		products = append(products, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}

	return mapping.ToDomainProductSlice(products), nil
}

// UpdateProduct updates an existing product's details.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		UPDATE products
		SET code = $2,
		    description = $3,
		    unit = $4,
		    price = $5,
		    cost = $6,
		    quantity_on_hand = $7,
		    category = $8,
		    last_updated_at = $9,
		    last_updated_by = $10
		WHERE product_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.Code, m.Description, m.Unit, m.Price, m.Cost,
		m.QuantityOnHand, m.Category,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to update product "+m.ProductID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("product " + m.ProductID + " not found for update")
	}
	return nil
}

// DeleteProduct removes a product. Line items keep the description and price
// they copied, so no cascade is needed; their product reference is detached.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string, deletedBy string, deletedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `UPDATE line_items SET product_id = NULL WHERE product_id = $1;`, productID); err != nil {
		return apperrors.NewAppError(500, "failed to detach line items from product "+productID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete product "+productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
