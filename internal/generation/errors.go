package generation

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrUnauthenticated indicates no owner identity was supplied.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidInput indicates the form failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGenerationService indicates the AI call failed or timed out.
	ErrGenerationService = errors.New("generation service failed")

	// ErrMalformedResponse indicates no parse strategy produced a JSON object.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrSchemaValidation indicates the reply parsed but has the wrong shape.
	ErrSchemaValidation = errors.New("model response failed schema validation")
)

// FieldError is one schema violation in the model reply.
type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// SchemaValidationError carries every violation found in the reply.
type SchemaValidationError struct {
	Fields []FieldError
}

func (e *SchemaValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Description)
	}
	return ErrSchemaValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *SchemaValidationError) Is(target error) bool { return target == ErrSchemaValidation }

// ErrorCode maps err to the stable code stored in generation_logs.error_code
// and the failure metric label.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, context.DeadlineExceeded):
		return "generation_timeout"
	case errors.Is(err, ErrGenerationService):
		return "generation_service"
	case errors.Is(err, ErrSchemaValidation):
		return "schema_validation"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	default:
		return "internal_error"
	}
}
