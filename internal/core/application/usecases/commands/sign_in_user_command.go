package commands

import (
	"errors"
	"strings"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrSignInUserCommandIsNotConstructed = errors.New(
	"SignInUserCommand must be created via NewSignInUserCommand constructor",
)

// SignInUserCommand exchanges credentials for a bearer token.
type SignInUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewSignInUserCommand(email, password string) (SignInUserCommand, error) {
	var problems []error
	if strings.TrimSpace(email) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(problems...); err != nil {
		return SignInUserCommand{}, err
	}

	return SignInUserCommand{
		email:    strings.TrimSpace(email),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SignInUserCommand) Validate() error {
	return c.guard.Validate(ErrSignInUserCommandIsNotConstructed)
}

func (c SignInUserCommand) Email() string {
	return c.email
}

func (c SignInUserCommand) Password() string {
	return c.password
}
