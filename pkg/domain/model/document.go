package model

import (
	"errors"
	"time"

	"github.com/m-mizutani/fireconv/pkg/domain/field"
)

var (
	// ErrNonStringKey is returned when a variant map with a non-string key is
	// converted to a field value. Firestore only supports string keys.
	ErrNonStringKey = errors.New("map key is not a string")

	// ErrUnsupportedFieldValue is returned for merge-only field values that
	// have no lossless variant representation.
	ErrUnsupportedFieldValue = errors.New("unsupported field value")

	// ErrUnknownKind is returned for a value tag outside the closed set.
	ErrUnknownKind = errors.New("unknown value kind")

	// ErrDocumentNotFound is returned by stores when a document does not exist.
	ErrDocumentNotFound = errors.New("document not found")
)

// Document is a stored Firestore document
type Document struct {
	// Path relative to the database root, e.g. "cities/SF"
	Path       string
	Data       map[string]field.Value
	CreateTime time.Time
	UpdateTime time.Time
}
