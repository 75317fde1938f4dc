package identity

import (
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// Seeded role keys.
const (
	RoleUser  kernel.ID = 1
	RoleAdmin kernel.ID = 2
)

const (
	RoleNameUser  = "user"
	RoleNameAdmin = "admin"
)

// Role is a row of the role directory.
type Role struct {
	ID   kernel.ID
	Name string
}

// ParseRoleName accepts "admin" or "user"; an empty value means "user".
func ParseRoleName(name string) (string, error) {
	switch name {
	case "":
		return RoleNameUser, nil
	case RoleNameUser, RoleNameAdmin:
		return name, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not one of %q, %q", name, RoleNameUser, RoleNameAdmin),
		)
	}
}
