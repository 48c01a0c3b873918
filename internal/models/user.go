package models

import "time"

// User represents a user of the application.
// Includes username and password hash for authentication.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Name         string `db:"name"`
	IsAdmin      bool   `db:"is_admin"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"` // Soft delete
}
