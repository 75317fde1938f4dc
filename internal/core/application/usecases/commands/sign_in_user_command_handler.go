package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/ports"
)

// SignInResult is the issued token and the account it belongs to.
type SignInResult struct {
	Token     string
	ExpiresAt time.Time
	User      *identity.User
}

// SignInUserCommandHandler checks credentials and issues a token. An unknown
// e-mail yields errs.ObjectNotFoundError, a wrong password
// errs.NotAuthenticatedError.
type SignInUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

func NewSignInUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) SignInUserCommandHandler {
	return SignInUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Handle reads outside of a transaction; nothing is written.
func (h *SignInUserCommandHandler) Handle(ctx context.Context, cmd SignInUserCommand) (SignInResult, error) {
	if err := cmd.Validate(); err != nil {
		return SignInResult{}, err
	}

	user, err := h.uowFactory.Create().UserRepository().FindByEmail(ctx, cmd.Email())
	if err != nil {
		return SignInResult{}, err
	}

	if err = h.hasher.Compare(user.PasswordHash(), cmd.Password()); err != nil {
		return SignInResult{}, err
	}

	token, expiresAt, err := h.issuer.Issue(user.Principal())
	if err != nil {
		return SignInResult{}, err
	}

	return SignInResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
