package domain

import "time"

// User represents a user of the application in the domain.
type User struct {
	UserID   string `json:"userID"` // Primary Key (UUID)
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"isAdmin"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
