package firestore

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/fireconv/pkg/domain/field"
	"github.com/m-mizutani/fireconv/pkg/domain/model"
	"google.golang.org/genproto/googleapis/type/latlng"
)

// DocFunc resolves a relative document path to a Firestore reference,
// typically (*firestore.Client).Doc
type DocFunc func(path string) *firestore.DocumentRef

// DocumentRef is a field.DocumentReference backed by a Firestore reference
type DocumentRef struct {
	path string
	ref  *firestore.DocumentRef
}

// NewDocumentRef wraps a Firestore reference
func NewDocumentRef(ref *firestore.DocumentRef) *DocumentRef {
	return &DocumentRef{path: relativePath(ref), ref: ref}
}

// Path returns the path relative to the database root
func (r *DocumentRef) Path() string { return r.path }

// Native returns the underlying Firestore reference. It is nil when the path
// was not a valid document path.
func (r *DocumentRef) Native() *firestore.DocumentRef { return r.ref }

// relativePath strips "projects/{p}/databases/{d}/documents/" from the full
// reference path
func relativePath(ref *firestore.DocumentRef) string {
	if ref == nil {
		return ""
	}
	const marker = "/documents/"
	if i := strings.Index(ref.Path, marker); i >= 0 {
		return ref.Path[i+len(marker):]
	}
	return ref.Path
}

// ToNativeMap converts document fields into the form accepted by the
// Firestore Go client
func ToNativeMap(fields map[string]field.Value, doc DocFunc) (map[string]any, error) {
	result := make(map[string]any, len(fields))
	for k, v := range fields {
		native, err := ToNative(v, doc)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", k, err)
		}
		result[k] = native
	}
	return result, nil
}

// ToNative converts a field value into the form accepted by the Firestore Go
// client. Sentinels and merge-only operations map to their client
// counterparts.
func ToNative(v field.Value, doc DocFunc) (any, error) {
	switch v.Kind() {
	case field.KindNull:
		return nil, nil
	case field.KindBoolean:
		return v.BooleanValue(), nil
	case field.KindInteger:
		return v.IntegerValue(), nil
	case field.KindDouble:
		return v.DoubleValue(), nil
	case field.KindString:
		return v.StringValue(), nil
	case field.KindBlob:
		return v.BlobValue(), nil

	case field.KindArray:
		return toNativeSlice(v.ArrayValue(), doc)
	case field.KindMap:
		return ToNativeMap(v.MapValue(), doc)

	case field.KindTimestamp:
		return v.TimestampValue().Time(), nil
	case field.KindGeoPoint:
		gp := v.GeoPointValue()
		return &latlng.LatLng{Latitude: gp.Latitude, Longitude: gp.Longitude}, nil
	case field.KindReference:
		return toNativeRef(v.ReferenceValue(), doc)

	case field.KindDelete:
		return firestore.Delete, nil
	case field.KindServerTimestamp:
		return firestore.ServerTimestamp, nil

	case field.KindArrayUnion:
		elems, err := toNativeSlice(v.Operands(), doc)
		if err != nil {
			return nil, err
		}
		return firestore.ArrayUnion(elems...), nil
	case field.KindArrayRemove:
		elems, err := toNativeSlice(v.Operands(), doc)
		if err != nil {
			return nil, err
		}
		return firestore.ArrayRemove(elems...), nil
	case field.KindIncrementInteger:
		return firestore.Increment(v.Operands()[0].IntegerValue()), nil
	case field.KindIncrementDouble:
		return firestore.Increment(v.Operands()[0].DoubleValue()), nil
	}

	return nil, fmt.Errorf("field value kind %d: %w", int(v.Kind()), model.ErrUnknownKind)
}

func toNativeSlice(items []field.Value, doc DocFunc) ([]any, error) {
	result := make([]any, len(items))
	for i, item := range items {
		native, err := ToNative(item, doc)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		result[i] = native
	}
	return result, nil
}

func toNativeRef(ref field.DocumentReference, doc DocFunc) (*firestore.DocumentRef, error) {
	if ref == nil {
		return nil, fmt.Errorf("document reference is nil")
	}
	if r, ok := ref.(*DocumentRef); ok && r.ref != nil {
		return r.ref, nil
	}

	native := doc(ref.Path())
	if native == nil {
		return nil, fmt.Errorf("invalid document reference path: %q", ref.Path())
	}
	return native, nil
}

// FromNativeMap converts document data returned by the Firestore Go client
func FromNativeMap(data map[string]any) (map[string]field.Value, error) {
	result := make(map[string]field.Value, len(data))
	for k, x := range data {
		v, err := FromNative(x)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", k, err)
		}
		result[k] = v
	}
	return result, nil
}

// FromNative converts a value returned by the Firestore Go client
func FromNative(x any) (field.Value, error) {
	switch v := x.(type) {
	case nil:
		return field.Null(), nil
	case bool:
		return field.Boolean(v), nil
	case int64:
		return field.Integer(v), nil
	case int:
		return field.Integer(int64(v)), nil
	case float64:
		return field.Double(v), nil
	case string:
		return field.String(v), nil
	case []byte:
		return field.Blob(v), nil

	case []any:
		items := make([]field.Value, len(v))
		for i, item := range v {
			converted, err := FromNative(item)
			if err != nil {
				return field.Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = converted
		}
		return field.Array(items...), nil

	case map[string]any:
		fields, err := FromNativeMap(v)
		if err != nil {
			return field.Value{}, err
		}
		return field.Map(fields), nil

	case time.Time:
		return field.FromTime(v), nil
	case *latlng.LatLng:
		if v == nil {
			return field.Null(), nil
		}
		return field.FromGeoPoint(field.GeoPoint{Latitude: v.GetLatitude(), Longitude: v.GetLongitude()}), nil
	case *firestore.DocumentRef:
		if v == nil {
			return field.Null(), nil
		}
		return field.Reference(NewDocumentRef(v)), nil
	}

	return field.Value{}, fmt.Errorf("Go type %T: %w", x, model.ErrUnknownKind)
}
