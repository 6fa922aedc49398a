package resumes

import "errors"

var (
	// ErrNotFound indicates the resume does not exist or was deleted.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden indicates the resume belongs to another user.
	ErrForbidden = errors.New("forbidden")

	// ErrExportUnsupported indicates the export format is not enabled on this server.
	ErrExportUnsupported = errors.New("export format not enabled")
)
