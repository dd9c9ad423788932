package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/googleapis/gax-go/v2"
	"github.com/m-mizutani/fireconv/pkg/domain/field"
	"github.com/m-mizutani/fireconv/pkg/domain/interfaces"
	"github.com/m-mizutani/fireconv/pkg/domain/model"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ interfaces.DocumentStore = (*Client)(nil)

// maxReadAttempts bounds retries of a single document read
const maxReadAttempts = 4

// Client is the Firestore client wrapper
type Client struct {
	client     *firestore.Client
	projectID  string
	databaseID string
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	ProjectID   string
	DatabaseID  string
	Credentials string // Service account key file path (optional)
}

// NewClient creates a new Firestore client
func NewClient(ctx context.Context, config AuthConfig) (*Client, error) {
	// Use ADC or explicit credentials
	var opts []option.ClientOption
	if config.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(config.Credentials))
	}

	if config.DatabaseID == "" {
		config.DatabaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, config.ProjectID, config.DatabaseID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &Client{
		client:     client,
		projectID:  config.ProjectID,
		databaseID: config.DatabaseID,
	}, nil
}

// Close closes the client
func (c *Client) Close() error {
	return c.client.Close()
}

// Document returns a reference to the document at path
func (c *Client) Document(path string) field.DocumentReference {
	return &DocumentRef{path: path, ref: c.client.Doc(path)}
}

// GetDocument reads a document. Transient errors are retried.
func (c *Client) GetDocument(ctx context.Context, path string) (*model.Document, error) {
	ref, err := c.doc(path)
	if err != nil {
		return nil, err
	}

	var snapshot *firestore.DocumentSnapshot
	err = gax.Invoke(ctx, func(ctx context.Context, _ gax.CallSettings) error {
		var err error
		snapshot, err = ref.Get(ctx)
		return err
	}, gax.WithRetry(newReadRetryer))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%s: %w", path, model.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return toDocument(snapshot)
}

// SetDocument writes a whole document, or only the given fields with merge
func (c *Client) SetDocument(ctx context.Context, path string, data map[string]field.Value, merge bool) error {
	ref, err := c.doc(path)
	if err != nil {
		return err
	}

	native, err := ToNativeMap(data, c.client.Doc)
	if err != nil {
		return err
	}

	var opts []firestore.SetOption
	if merge {
		opts = append(opts, firestore.MergeAll)
	}

	if _, err := ref.Set(ctx, native, opts...); err != nil {
		return fmt.Errorf("failed to set document: %w", err)
	}
	return nil
}

// UpdateDocument updates fields of an existing document. Each update is
// addressed by its path segments, so field names may contain dots.
func (c *Client) UpdateDocument(ctx context.Context, path string, updates []model.FieldUpdate) error {
	ref, err := c.doc(path)
	if err != nil {
		return err
	}

	fsUpdates := make([]firestore.Update, 0, len(updates))
	for _, u := range updates {
		native, err := ToNative(u.Value, c.client.Doc)
		if err != nil {
			return fmt.Errorf("failed to convert field %s: %w", u.Path, err)
		}
		fsUpdates = append(fsUpdates, firestore.Update{FieldPath: firestore.FieldPath(u.Path), Value: native})
	}

	if _, err := ref.Update(ctx, fsUpdates); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%s: %w", path, model.ErrDocumentNotFound)
		}
		return fmt.Errorf("failed to update document: %w", err)
	}
	return nil
}

// DeleteDocument deletes a document. Deleting a missing document succeeds.
func (c *Client) DeleteDocument(ctx context.Context, path string) error {
	ref, err := c.doc(path)
	if err != nil {
		return err
	}

	// Note: subcollections are not deleted
	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// ListDocuments lists documents of a collection
func (c *Client) ListDocuments(ctx context.Context, collection string, limit int) ([]*model.Document, error) {
	col := c.client.Collection(collection)
	if col == nil {
		return nil, fmt.Errorf("invalid collection path: %s", collection)
	}

	query := col.Query
	if limit > 0 {
		query = query.Limit(limit)
	}

	it := query.Documents(ctx)
	defer it.Stop()

	var docs []*model.Document
	for {
		snapshot, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list documents: %w", err)
		}

		doc, err := toDocument(snapshot)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func (c *Client) doc(path string) (*firestore.DocumentRef, error) {
	ref := c.client.Doc(path)
	if ref == nil {
		return nil, fmt.Errorf("invalid document path: %q", path)
	}
	return ref, nil
}

func toDocument(snapshot *firestore.DocumentSnapshot) (*model.Document, error) {
	data, err := FromNativeMap(snapshot.Data())
	if err != nil {
		return nil, fmt.Errorf("failed to convert document %s: %w", snapshot.Ref.ID, err)
	}

	return &model.Document{
		Path:       relativePath(snapshot.Ref),
		Data:       data,
		CreateTime: snapshot.CreateTime,
		UpdateTime: snapshot.UpdateTime,
	}, nil
}

// readRetryer retries transient read errors a bounded number of times
type readRetryer struct {
	gax.Retryer
	attempts int
}

func newReadRetryer() gax.Retryer {
	return &readRetryer{
		Retryer: gax.OnCodes([]codes.Code{codes.Unavailable, codes.ResourceExhausted}, gax.Backoff{
			Initial:    100 * time.Millisecond,
			Max:        2 * time.Second,
			Multiplier: 2,
		}),
	}
}

func (r *readRetryer) Retry(err error) (time.Duration, bool) {
	r.attempts++
	if r.attempts >= maxReadAttempts {
		return 0, false
	}
	return r.Retryer.Retry(err)
}
