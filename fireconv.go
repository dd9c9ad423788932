package fireconv

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/fireconv/pkg/adapter/firestore"
	"github.com/m-mizutani/fireconv/pkg/domain/field"
	"github.com/m-mizutani/fireconv/pkg/domain/interfaces"
	"github.com/m-mizutani/fireconv/pkg/domain/model"
	"github.com/m-mizutani/fireconv/pkg/domain/variant"
	"github.com/m-mizutani/fireconv/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

// Snapshot is a document read from Firestore with its data as a variant
type Snapshot = usecase.Snapshot

// FieldDiff is a single field-level difference between two documents
type FieldDiff = model.FieldDiff

// DiffAction represents the type of change
type DiffAction = model.DiffAction

const (
	ActionAdd    = model.ActionAdd
	ActionModify = model.ActionModify
	ActionDelete = model.ActionDelete
)

// Client is the main client for fireconv operations
type Client struct {
	projectID string
	store     interfaces.DocumentStore
	document  *usecase.Document
	options   *options
	logger    *slog.Logger
}

// New creates a new fireconv client bound to a Firestore database
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Client, error) {
	options := applyOptions(opts)

	// Validate required parameters
	if projectID == "" {
		return nil, goerr.New("project ID is required")
	}
	if databaseID == "" {
		return nil, goerr.New("database ID is required")
	}

	// Create Firestore client
	authConfig := firestore.AuthConfig{
		ProjectID:   projectID,
		DatabaseID:  databaseID,
		Credentials: options.CredentialsFile,
	}

	firestoreClient, err := firestore.NewClient(ctx, authConfig)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client")
	}

	client := newClient(firestoreClient, options)
	client.projectID = projectID
	return client, nil
}

func newClient(store interfaces.DocumentStore, options *options) *Client {
	var docOpts []usecase.DocumentOption
	if options.DryRun {
		docOpts = append(docOpts, usecase.DocumentWithDryRun())
	}

	return &Client{
		store:    store,
		document: usecase.NewDocument(store, options.Logger, docOpts...),
		options:  options,
		logger:   options.Logger,
	}
}

// Close closes the client
func (c *Client) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}

// Converter returns a converter whose document references are bound to the
// client's database
func (c *Client) Converter() *Converter {
	return &Converter{conv: c.document.Converter()}
}

// Put creates or overwrites the document at path. data must be a map.
func (c *Client) Put(ctx context.Context, path string, data variant.Value) error {
	if err := c.document.Put(ctx, path, data, false); err != nil {
		return &OperationError{Path: path, Operation: "put", Cause: err}
	}
	return nil
}

// Merge writes the fields of data into the document at path, keeping fields
// that data does not mention. The document is created if missing.
func (c *Client) Merge(ctx context.Context, path string, data variant.Value) error {
	if err := c.document.Put(ctx, path, data, true); err != nil {
		return &OperationError{Path: path, Operation: "merge", Cause: err}
	}
	return nil
}

// Update changes fields of an existing document. Keys of updates are
// dot-separated field paths.
func (c *Client) Update(ctx context.Context, path string, updates variant.Value) error {
	if err := c.document.Update(ctx, path, updates); err != nil {
		return &OperationError{Path: path, Operation: "update", Cause: err}
	}
	return nil
}

// UpdateFields changes fields of an existing document with field values,
// which can carry merge-only operations such as field.ArrayUnion,
// field.ArrayRemove and field.IncrementInteger. Keys are dot-separated field
// paths.
func (c *Client) UpdateFields(ctx context.Context, path string, fields map[string]field.Value) error {
	if err := c.document.UpdateFields(ctx, path, fields); err != nil {
		return &OperationError{Path: path, Operation: "update", Cause: err}
	}
	return nil
}

// Get reads the document at path. A missing document yields an error
// wrapping ErrDocumentNotFound.
func (c *Client) Get(ctx context.Context, path string) (variant.Value, error) {
	v, err := c.document.Get(ctx, path)
	if err != nil {
		return variant.Value{}, &OperationError{Path: path, Operation: "get", Cause: err}
	}
	return v, nil
}

// GetAll reads several documents concurrently. Results follow the order of
// paths.
func (c *Client) GetAll(ctx context.Context, paths ...string) ([]*Snapshot, error) {
	snapshots, err := c.document.GetAll(ctx, paths)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get documents", goerr.V("count", len(paths)))
	}
	return snapshots, nil
}

// List reads up to limit documents of a collection; limit <= 0 reads all
func (c *Client) List(ctx context.Context, collection string, limit int) ([]*Snapshot, error) {
	snapshots, err := c.document.List(ctx, collection, limit)
	if err != nil {
		return nil, &OperationError{Path: collection, Operation: "list", Cause: err}
	}
	return snapshots, nil
}

// Delete removes the document at path
func (c *Client) Delete(ctx context.Context, path string) error {
	if err := c.document.Delete(ctx, path); err != nil {
		return &OperationError{Path: path, Operation: "delete", Cause: err}
	}
	return nil
}

// Diff compares the stored document at path against desired. A missing
// document is treated as empty.
func (c *Client) Diff(ctx context.Context, path string, desired variant.Value) ([]FieldDiff, error) {
	if err := ValidateDocument(desired); err != nil {
		return nil, err
	}

	diffs, err := c.document.Diff(ctx, path, desired)
	if err != nil {
		return nil, &OperationError{Path: path, Operation: "diff", Cause: err}
	}
	return diffs, nil
}
