package identity

import "shipping/internal/core/domain/model/kernel"

// Principal is the caller identity carried by a verified bearer token. It is
// trusted as is; the user row is not read again.
type Principal struct {
	UserID kernel.ID
	Email  string
	RoleID kernel.ID
}

func (p Principal) IsAdmin() bool {
	return p.RoleID == RoleAdmin
}

// CanAccess reports whether p may read or write data owned by ownerID.
func (p Principal) CanAccess(ownerID kernel.ID) bool {
	return p.IsAdmin() || p.UserID == ownerID
}
