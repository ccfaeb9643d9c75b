package user

//go:generate mockgen -source=repository.go -destination=../../mocks/mock_user_repository.go -package=mocks

import "context"

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	// FindByID retrieves a user, failing with ErrUserNotFound when absent.
	FindByID(ctx context.Context, id int64) (*User, error)

	// Exists reports whether a user with the given id is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// ListAll retrieves every user ordered by id.
	ListAll(ctx context.Context) ([]*User, error)

	// Save persists a new user and returns it with its assigned id.
	Save(ctx context.Context, u *User) (*User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *User) error

	// Delete removes a user, failing with ErrUserNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
