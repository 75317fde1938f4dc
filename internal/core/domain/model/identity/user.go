package identity

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	ErrUserIsNotConstructed = errors.New("user must be created via NewUser constructor")
	ErrIDIsAlreadyAssigned  = errors.New("user id is already assigned")
)

// User is a registered account. The password is only ever held as a hash.
type User struct {
	id           kernel.ID
	username     string
	email        string
	passwordHash string
	roleID       kernel.ID

	isConstructed bool
}

func NewUser(username, email, passwordHash string, roleID kernel.ID) (*User, error) {
	u := &User{
		username:      strings.TrimSpace(username),
		email:         strings.TrimSpace(email),
		passwordHash:  passwordHash,
		roleID:        roleID,
		isConstructed: true,
	}

	var problems []error
	if u.username == "" {
		problems = append(problems, errs.NewValueIsRequiredError("username"))
	}
	if u.email == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	if passwordHash == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	if err := roleID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("role_id", err))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return u, nil
}

func RestoreUser(id kernel.ID, username, email, passwordHash string, roleID kernel.ID) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	u, err := NewUser(username, email, passwordHash, roleID)
	if err != nil {
		return nil, err
	}
	u.id = id
	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if u.id != 0 {
		return ErrIDIsAlreadyAssigned
	}
	u.id = id
	return nil
}

func (u *User) ID() kernel.ID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) RoleID() kernel.ID {
	return u.roleID
}

func (u *User) IsAdmin() bool {
	return u.roleID == RoleAdmin
}

func (u *User) Principal() Principal {
	return Principal{UserID: u.id, Email: u.email, RoleID: u.roleID}
}
