package personnel

import "errors"

var (
	ErrPersonnelNotFound = errors.New("personnel not found")
	ErrEmailExists       = errors.New("personnel email already registered")
)
