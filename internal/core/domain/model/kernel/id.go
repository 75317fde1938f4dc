package kernel

import (
	"strconv"

	"shipping/internal/pkg/errs"
)

// ID is a database-assigned surrogate key. Zero means "not assigned yet".
type ID int64

// NewID validates a raw key coming from a request or a row.
func NewID(raw int64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate rejects zero and negative keys.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id must be a positive integer")
	}
	return nil
}

// Int64 returns the raw key.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
