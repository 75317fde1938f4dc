package commands

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrSignUpUserCommandIsNotConstructed = errors.New(
		"SignUpUserCommand must be created via NewSignUpUserCommand constructor",
	)
	ErrPasswordsDoNotMatch = errs.NewValueIsInvalidError("passwords do not match")
)

// SignUpUserCommand registers a new account.
type SignUpUserCommand struct { //nolint:recvcheck //using for validation
	username string
	email    string
	password string
	roleName string

	guard guard.ConstructorGuard
}

// NewSignUpUserCommand checks that every field is present and both passwords
// match. An empty role means "user".
func NewSignUpUserCommand(username, email, password, confirmPassword, role string) (SignUpUserCommand, error) {
	var problems []error
	for _, field := range []struct{ name, value string }{
		{"username", username},
		{"email", email},
		{"password", password},
		{"confirm_password", confirmPassword},
	} {
		if strings.TrimSpace(field.value) == "" {
			problems = append(problems, errs.NewValueIsRequiredError(field.name))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return SignUpUserCommand{}, err
	}

	if password != confirmPassword {
		return SignUpUserCommand{}, ErrPasswordsDoNotMatch
	}

	roleName, err := identity.ParseRoleName(role)
	if err != nil {
		return SignUpUserCommand{}, err
	}

	return SignUpUserCommand{
		username: strings.TrimSpace(username),
		email:    strings.TrimSpace(email),
		password: password,
		roleName: roleName,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SignUpUserCommand) Validate() error {
	return c.guard.Validate(ErrSignUpUserCommandIsNotConstructed)
}

func (c SignUpUserCommand) Username() string {
	return c.username
}

func (c SignUpUserCommand) Email() string {
	return c.email
}

func (c SignUpUserCommand) Password() string {
	return c.password
}

func (c SignUpUserCommand) RoleName() string {
	return c.roleName
}
