package repositories

import (
	"context"
	"time"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by ID, excluding soft-deleted users.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username for login flows.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindPasswordHashByUsername retrieves the stored bcrypt hash for
	// credential verification. The hash never leaves the service layer.
	FindPasswordHashByUsername(ctx context.Context, username string) (string, error)

	// ListUsers retrieves users with cursor pagination.
	ListUsers(ctx context.Context, limit int, nextToken string) ([]domain.User, string, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user with its password hash.
	SaveUser(ctx context.Context, user domain.User, passwordHash string) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateUserPassword replaces the stored password hash.
	UpdateUserPassword(ctx context.Context, userID string, passwordHash string, updatedBy string, updatedAt time.Time) error

	// DeleteUser soft-deletes a user.
	DeleteUser(ctx context.Context, userID string, deletedBy string, deletedAt time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
