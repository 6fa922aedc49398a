package generationlogs

import "errors"

// ErrInvalidInput indicates a record is missing its id or owner.
var ErrInvalidInput = errors.New("invalid input")
