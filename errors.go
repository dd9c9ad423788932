package fireconv

import (
	"fmt"

	"github.com/m-mizutani/fireconv/pkg/domain/model"
)

var (
	ErrNonStringKey          = model.ErrNonStringKey
	ErrUnsupportedFieldValue = model.ErrUnsupportedFieldValue
	ErrUnknownKind           = model.ErrUnknownKind
	ErrDocumentNotFound      = model.ErrDocumentNotFound
)

// OperationError represents a failed document operation
type OperationError struct {
	Path      string
	Operation string
	Cause     error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed for document %s: %v", e.Operation, e.Path, e.Cause)
}

func (e *OperationError) Unwrap() error {
	return e.Cause
}

// ValidationError represents an invalid document
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error in field %s: %s", e.Field, e.Message)
}
