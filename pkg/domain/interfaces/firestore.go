package interfaces

import (
	"context"

	"github.com/m-mizutani/fireconv/pkg/domain/field"
	"github.com/m-mizutani/fireconv/pkg/domain/model"
)

//go:generate task mock

// ReferenceResolver builds document references bound to a database
type ReferenceResolver interface {
	// Document returns a reference to the document at path, relative to the
	// database root
	Document(path string) field.DocumentReference
}

// DocumentStore is the interface for Firestore document operations
type DocumentStore interface {
	ReferenceResolver

	// GetDocument returns model.ErrDocumentNotFound (wrapped) if the document
	// does not exist
	GetDocument(ctx context.Context, path string) (*model.Document, error)
	SetDocument(ctx context.Context, path string, data map[string]field.Value, merge bool) error
	// UpdateDocument updates fields of an existing document
	UpdateDocument(ctx context.Context, path string, updates []model.FieldUpdate) error
	DeleteDocument(ctx context.Context, path string) error
	// ListDocuments returns up to limit documents of a collection. A limit of
	// zero or less returns all of them.
	ListDocuments(ctx context.Context, collection string, limit int) ([]*model.Document, error)

	Close() error
}
