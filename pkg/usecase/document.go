package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/m-mizutani/fireconv/pkg/domain/field"
	"github.com/m-mizutani/fireconv/pkg/domain/interfaces"
	"github.com/m-mizutani/fireconv/pkg/domain/model"
	"github.com/m-mizutani/fireconv/pkg/domain/variant"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentReads limits parallel document reads in GetAll
const maxConcurrentReads = 5

// Document handles reading and writing Firestore documents as variants
type Document struct {
	store     interfaces.DocumentStore
	converter *Converter
	logger    *slog.Logger
	dryRun    bool
}

// DocumentOption configures Document
type DocumentOption func(*Document)

// DocumentWithDryRun logs writes instead of applying them
func DocumentWithDryRun() DocumentOption {
	return func(d *Document) {
		d.dryRun = true
	}
}

// NewDocument creates a new Document use case
func NewDocument(store interfaces.DocumentStore, logger *slog.Logger, opts ...DocumentOption) *Document {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d := &Document{
		store:     store,
		converter: NewConverter(store, logger),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Converter returns the converter bound to the store
func (d *Document) Converter() *Converter {
	return d.converter
}

// Snapshot is a document read from the store
type Snapshot struct {
	Path       string
	Data       variant.Value
	CreateTime time.Time
	UpdateTime time.Time
}

// Put creates or overwrites the document at path. With merge, only the given
// fields are written and the rest of the document is kept.
func (d *Document) Put(ctx context.Context, path string, data variant.Value, merge bool) error {
	fields, err := d.toFields(data)
	if err != nil {
		return goerr.Wrap(err, "invalid document data", goerr.V("path", path))
	}

	if d.dryRun {
		d.logger.Info("Would set document",
			slog.String("path", path),
			slog.Int("fields", len(fields)),
			slog.Bool("merge", merge))
		return nil
	}

	d.logger.Info("Setting document",
		slog.String("path", path),
		slog.Int("fields", len(fields)),
		slog.Bool("merge", merge))

	if err := d.store.SetDocument(ctx, path, fields, merge); err != nil {
		return goerr.Wrap(err, "failed to set document", goerr.V("path", path))
	}
	return nil
}

// Update changes fields of an existing document. Keys of updates are
// dot-separated field paths, so nested fields can be changed without
// overwriting their parent map.
func (d *Document) Update(ctx context.Context, path string, updates variant.Value) error {
	fields, err := d.toFields(updates)
	if err != nil {
		return goerr.Wrap(err, "invalid update data", goerr.V("path", path))
	}
	return d.UpdateFields(ctx, path, fields)
}

// UpdateFields is Update with field values instead of a variant. It is the
// way to write merge-only values such as field.ArrayUnion or
// field.IncrementInteger, which variants cannot express.
func (d *Document) UpdateFields(ctx context.Context, path string, fields map[string]field.Value) error {
	if len(fields) == 0 {
		return goerr.New("no fields to update", goerr.V("path", path))
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	updates := make([]model.FieldUpdate, 0, len(keys))
	for _, k := range keys {
		fieldPath, err := parseFieldPath(k)
		if err != nil {
			return goerr.Wrap(err, "invalid update data", goerr.V("path", path))
		}
		updates = append(updates, model.FieldUpdate{Path: fieldPath, Value: fields[k]})
	}

	return d.update(ctx, path, updates)
}

func (d *Document) update(ctx context.Context, path string, updates []model.FieldUpdate) error {
	if d.dryRun {
		d.logger.Info("Would update document",
			slog.String("path", path),
			slog.Int("fields", len(updates)))
		return nil
	}

	d.logger.Info("Updating document",
		slog.String("path", path),
		slog.Int("fields", len(updates)))

	if err := d.store.UpdateDocument(ctx, path, updates); err != nil {
		return goerr.Wrap(err, "failed to update document", goerr.V("path", path))
	}
	return nil
}

// Get reads the document at path
func (d *Document) Get(ctx context.Context, path string) (variant.Value, error) {
	snapshot, err := d.get(ctx, path)
	if err != nil {
		return variant.Value{}, err
	}
	return snapshot.Data, nil
}

// GetAll reads several documents concurrently. Results follow the order of
// paths.
func (d *Document) GetAll(ctx context.Context, paths []string) ([]*Snapshot, error) {
	results := make([]*Snapshot, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxConcurrentReads)

	for i, path := range paths {
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			snapshot, err := d.get(ctx, path)
			if err != nil {
				return err
			}
			results[i] = snapshot
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (d *Document) get(ctx context.Context, path string) (*Snapshot, error) {
	d.logger.Debug("Reading document", slog.String("path", path))

	doc, err := d.store.GetDocument(ctx, path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get document", goerr.V("path", path))
	}
	return d.toSnapshot(doc)
}

// List reads up to limit documents of a collection; limit <= 0 reads all
func (d *Document) List(ctx context.Context, collection string, limit int) ([]*Snapshot, error) {
	docs, err := d.store.ListDocuments(ctx, collection, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list documents", goerr.V("collection", collection))
	}

	snapshots := make([]*Snapshot, 0, len(docs))
	for _, doc := range docs {
		snapshot, err := d.toSnapshot(doc)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	d.logger.Debug("Listed documents",
		slog.String("collection", collection),
		slog.Int("count", len(snapshots)))
	return snapshots, nil
}

// Delete removes the document at path
func (d *Document) Delete(ctx context.Context, path string) error {
	if d.dryRun {
		d.logger.Info("Would delete document", slog.String("path", path))
		return nil
	}

	d.logger.Info("Deleting document", slog.String("path", path))
	if err := d.store.DeleteDocument(ctx, path); err != nil {
		return goerr.Wrap(err, "failed to delete document", goerr.V("path", path))
	}
	return nil
}

// Diff compares the stored document at path with desired. A missing
// document is treated as empty.
func (d *Document) Diff(ctx context.Context, path string, desired variant.Value) ([]model.FieldDiff, error) {
	if desired.Kind() != variant.KindMap {
		return nil, goerr.New("document data must be a map", goerr.V("kind", desired.Kind().String()))
	}

	current := variant.Map()
	snapshot, err := d.get(ctx, path)
	switch {
	case err == nil:
		current = snapshot.Data
	case errors.Is(err, model.ErrDocumentNotFound):
		d.logger.Debug("Document does not exist yet", slog.String("path", path))
	default:
		return nil, err
	}

	return DiffDocuments(current, desired), nil
}

// Apply makes the stored document at path equal to desired, writing only
// the fields that differ. A missing document is created. The applied diffs
// are returned.
func (d *Document) Apply(ctx context.Context, path string, desired variant.Value) ([]model.FieldDiff, error) {
	if _, err := d.toFields(desired); err != nil {
		return nil, goerr.Wrap(err, "invalid document data", goerr.V("path", path))
	}

	snapshot, err := d.get(ctx, path)
	if err != nil {
		if !errors.Is(err, model.ErrDocumentNotFound) {
			return nil, err
		}

		diffs := DiffDocuments(variant.Map(), desired)
		if err := d.Put(ctx, path, desired, false); err != nil {
			return nil, err
		}
		return diffs, nil
	}

	diffs := DiffDocuments(snapshot.Data, desired)
	if len(diffs) == 0 {
		d.logger.Info("Document is up to date", slog.String("path", path))
		return nil, nil
	}

	updates := make([]model.FieldUpdate, 0, len(diffs))
	for _, diff := range diffs {
		value := field.Delete()
		if diff.Action != model.ActionDelete {
			value, err = d.converter.ToFieldValue(diff.Desired)
			if err != nil {
				return nil, goerr.Wrap(err, "invalid document data",
					goerr.V("path", path), goerr.V("field", diff.Path))
			}
		}
		updates = append(updates, model.FieldUpdate{Path: diff.FieldPath, Value: value})
	}

	if err := d.update(ctx, path, updates); err != nil {
		return nil, err
	}
	return diffs, nil
}

func (d *Document) toFields(data variant.Value) (map[string]field.Value, error) {
	if data.Kind() != variant.KindMap {
		return nil, goerr.New("document data must be a map", goerr.V("kind", data.Kind().String()))
	}

	converted, err := d.converter.ToFieldValue(data)
	if err != nil {
		return nil, err
	}
	if converted.Kind() != field.KindMap {
		return nil, goerr.New("document data must not be a special value",
			goerr.V("kind", converted.Kind().String()))
	}
	return converted.MapValue(), nil
}

func (d *Document) toSnapshot(doc *model.Document) (*Snapshot, error) {
	data, err := d.converter.ToVariant(field.Map(doc.Data))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to convert document", goerr.V("path", doc.Path))
	}
	return &Snapshot{
		Path:       doc.Path,
		Data:       data,
		CreateTime: doc.CreateTime,
		UpdateTime: doc.UpdateTime,
	}, nil
}
