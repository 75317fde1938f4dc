package ports

import (
	"context"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
)

// UserRepository is the user directory.
type UserRepository interface {
	// Add persists a new user and assigns the generated id to it.
	Add(ctx context.Context, user *identity.User) error

	// Get returns errs.ObjectNotFoundError when no user has the id.
	Get(ctx context.Context, id kernel.ID) (*identity.User, error)

	// FindByEmail returns errs.ObjectNotFoundError when no user has the e-mail.
	FindByEmail(ctx context.Context, email string) (*identity.User, error)

	// FindRoleByName returns errs.ObjectNotFoundError for an unknown role.
	FindRoleByName(ctx context.Context, name string) (identity.Role, error)
}
