package types

import "errors"

var (
	ErrNotFound = errors.New("requested item not found")
	ErrConflict = errors.New("item already exists or conflict")
	// ErrBadReference means a referenced row (farm, panel, customer) does not exist.
	ErrBadReference = errors.New("referenced item does not exist")
)
