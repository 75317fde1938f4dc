package ports

import (
	"time"

	"shipping/internal/core/domain/model/identity"
)

// PasswordHasher hashes and checks passwords. Compare returns
// errs.NotAuthenticatedError on mismatch.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues a bearer token for a principal and reports when it expires.
type TokenIssuer interface {
	Issue(principal identity.Principal) (token string, expiresAt time.Time, err error)
}

// TokenVerifier decodes a bearer token. Missing, malformed, tampered and
// expired tokens all yield errs.NotAuthenticatedError.
type TokenVerifier interface {
	Verify(token string) (identity.Principal, error)
}
