package commands

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

var ErrEmailIsAlreadyRegistered = errs.NewValueIsInvalidError("email is already registered")

// SignUpUserCommandHandler stores a new user with a hashed password and the
// requested role.
type SignUpUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewSignUpUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) SignUpUserCommandHandler {
	return SignUpUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h *SignUpUserCommandHandler) Handle(ctx context.Context, cmd SignUpUserCommand) (*identity.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	_, err := repo.FindByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return nil, ErrEmailIsAlreadyRegistered
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	role, err := repo.FindRoleByName(ctx, cmd.RoleName())
	if err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(cmd.Username(), cmd.Email(), hash, role.ID)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
