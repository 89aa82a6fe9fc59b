package repositories

import (
	"context"
	"errors"

	"officedesk/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already taken")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// UserFilter narrows List results.
type UserFilter struct {
	Role   string
	Search string // case-insensitive match on name or email
	Offset int
	Limit  int
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	// Create creates a new user in the database
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by their ID
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail retrieves a user by their email address
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Update updates an existing user's information
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user from the database
	Delete(ctx context.Context, id string) error

	// IncrementTokenVersion invalidates every token issued so far
	IncrementTokenVersion(ctx context.Context, userID string) error

	// List retrieves users matching the filter, newest first, with the total count
	List(ctx context.Context, filter UserFilter) ([]*models.User, int64, error)

	// CountByRole counts users holding a role
	CountByRole(ctx context.Context, role string) (int64, error)
}

// UserCache is the cache used by the user repository.
type UserCache interface {
	CacheUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, key string) (*models.User, error)
	InvalidateUser(ctx context.Context, user *models.User) error
}
