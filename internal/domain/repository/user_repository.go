package repository

import (
	"context"

	"aeon/internal/domain/entity"
)

// UserRepository defines the interface for login account persistence.
type UserRepository interface {
	// List returns all users without password hashes, newest first.
	List(ctx context.Context) ([]*entity.User, error)

	// FindByUsername returns the user including its password hash, or errors.ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername reports whether username is already taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create inserts the user. A non-zero ID is stored as given.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites the password hash and role of the user with user.ID.
	Update(ctx context.Context, user *entity.User) error
}
