package user

import (
	"strings"

	"github.com/shareit-hub/service-shareit/internal/domain"
)

var (
	// ErrUserNotFound is returned when no user has the requested id.
	ErrUserNotFound = domain.NewError(domain.KindNotFound, "USER_NOT_FOUND", "user not found")

	// ErrEmailAlreadyExists is returned when another user already holds the email.
	ErrEmailAlreadyExists = domain.NewError(domain.KindConflict, "EMAIL_ALREADY_EXISTS", "email already exists")
)

// NewNotFoundError reports a missing user.
func NewNotFoundError(id int64) error {
	return ErrUserNotFound.Withf("user with id=%d not found", id)
}

// User is a registered participant: an item owner, a booker or a requestor.
type User struct {
	id    int64
	name  string
	email string
}

// NewUser creates a User that has not been persisted yet.
func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, domain.NewValidationError("user name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("user email is required")
	}
	return &User{name: name, email: email}, nil
}

// ReconstructUser rebuilds a User from persistence data (no validation).
func ReconstructUser(id int64, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

// ID returns the identifier assigned by the store, zero before the first save.
func (u *User) ID() int64 { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the unique email address.
func (u *User) Email() string { return u.email }

// Rename replaces the name when the new value is not blank.
func (u *User) Rename(name string) {
	if name = strings.TrimSpace(name); name != "" {
		u.name = name
	}
}

// ChangeEmail replaces the email when the new value is not blank.
func (u *User) ChangeEmail(email string) {
	if email = strings.TrimSpace(email); email != "" {
		u.email = email
	}
}
