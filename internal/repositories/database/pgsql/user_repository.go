package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/apperrors"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/models"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/mapping"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/pagination"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, email, name, is_admin,
	       created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanUserRow(row rowScanner) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID, &m.Username, &m.Email, &m.Name, &m.IsAdmin,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveUser persists a new user with its password hash. A duplicate username
// maps to ErrDuplicate.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User, passwordHash string) error {
	query := `
		INSERT INTO users (
			user_id, username, email, password_hash, name, is_admin,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID, user.Username, user.Email, passwordHash, user.Name, user.IsAdmin,
		user.CreatedAt, user.CreatedBy, user.LastUpdatedAt, user.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert user "+user.UserID, err)
	}
	return nil
}

// FindUserByID retrieves a user by ID, excluding soft-deleted users.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`

	m, err := scanUserRow(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by ID "+userID, err)
	}

	user := mapping.ToDomainUser(*m)
	return &user, nil
}

// FindUserByUsername retrieves a user by username, excluding soft-deleted users.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND deleted_at IS NULL;`

	m, err := scanUserRow(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by username", err)
	}

	user := mapping.ToDomainUser(*m)
	return &user, nil
}

// FindPasswordHashByUsername retrieves the stored password hash for login
// verification. The hash never rides along on the user struct.
func (r *PgxUserRepository) FindPasswordHashByUsername(ctx context.Context, username string) (string, error) {
	var hash string
	query := `SELECT password_hash FROM users WHERE username = $1 AND deleted_at IS NULL;`
	if err := r.Pool.QueryRow(ctx, query, username).Scan(&hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to find credentials by username", err)
	}
	return hash, nil
}

// ListUsers retrieves users with token-based pagination, newest first.
func (r *PgxUserRepository) ListUsers(ctx context.Context, limit int, nextToken string) ([]domain.User, string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL`
	orderByClause := `ORDER BY created_at DESC`

	args := []any{}
	query := baseQuery

	if nextToken != "" {
		_, lastCreatedAt, decodeErr := pagination.DecodeToken(nextToken)
		if decodeErr != nil {
			return nil, "", apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND created_at < $1`
		args = append(args, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()

	users := make([]models.User, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanUserRow(rows)
		if scanErr != nil {
			return nil, "", apperrors.NewAppError(500, "failed to scan user row", scanErr)
		}
		users = append(users, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", apperrors.NewAppError(500, "error iterating user rows", err)
	}

	next := ""
	results := users
	if len(users) > limit {
		last := users[limit-1]
		next = pagination.EncodeToken(last.CreatedAt, last.CreatedAt)
		results = users[:limit]
	}

	return mapping.ToDomainUserSlice(results), next, nil
}

// UpdateUser updates an existing user's details.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET name = $2,
		    email = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		user.UserID, user.Name, user.Email, user.LastUpdatedAt, user.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update user "+user.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + user.UserID + " not found for update")
	}
	return nil
}

// UpdateUserPassword replaces the stored password hash.
func (r *PgxUserRepository) UpdateUserPassword(ctx context.Context, userID string, passwordHash string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE users
		SET password_hash = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, passwordHash, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update password for user "+userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + userID + " not found for password update")
	}
	return nil
}

// DeleteUser soft-deletes a user.
func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string, deletedBy string, deletedAt time.Time) error {
	query := `
		UPDATE users
		SET deleted_at = $2,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, deletedAt, deletedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete user "+userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
