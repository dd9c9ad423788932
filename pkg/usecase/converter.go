package usecase

import (
	"log/slog"
	"sort"

	"github.com/m-mizutani/fireconv/pkg/domain/field"
	"github.com/m-mizutani/fireconv/pkg/domain/interfaces"
	"github.com/m-mizutani/fireconv/pkg/domain/model"
	"github.com/m-mizutani/fireconv/pkg/domain/variant"
	"github.com/m-mizutani/goerr/v2"
)

// Reserved keys of a special value map. A variant map with "special" set to
// true encodes a Firestore entity that has no native variant form.
const (
	SpecialKey = "special"
	TypeKey    = "type"

	SecondsKey      = "seconds"
	NanosecondsKey  = "nanoseconds"
	LatitudeKey     = "latitude"
	LongitudeKey    = "longitude"
	DocumentPathKey = "document_path"
	NestedValueKey  = "value"
)

// Values of the "type" key of a special value map
const (
	SpecialTimestamp         = "timestamp"
	SpecialGeoPoint          = "geo_point"
	SpecialDocumentReference = "document_reference"
	SpecialDelete            = "delete"
	SpecialServerTimestamp   = "server_timestamp"
	SpecialNestedArray       = "nested_array"
)

// Converter translates between variant.Value and field.Value.
//
// Nested variant lists become "array-map-array" structures on the Firestore
// side because Firestore forbids arrays of arrays; Firestore entities without
// a variant equivalent (timestamps, geo points, references, sentinels) become
// special value maps. Both round-trip. Merge-only operations cannot be
// converted to variants and are rejected.
//
// A Converter holds no mutable state and is safe for concurrent use as long
// as its resolver is.
type Converter struct {
	resolver interfaces.ReferenceResolver
	logger   *slog.Logger
}

// NewConverter creates a Converter. resolver is used to rebuild document
// references from their stored path.
func NewConverter(resolver interfaces.ReferenceResolver, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Converter{
		resolver: resolver,
		logger:   logger,
	}
}

// ToFieldValue converts a variant into a Firestore field value. It fails
// with model.ErrNonStringKey if any map holds a non-string key.
func (c *Converter) ToFieldValue(v variant.Value) (field.Value, error) {
	return c.encode(v, false)
}

func (c *Converter) encode(v variant.Value, withinArray bool) (field.Value, error) {
	switch v.Kind() {
	// Primitives -- one-to-one mapping
	case variant.KindNull:
		return field.Null(), nil
	case variant.KindBool:
		return field.Boolean(v.BoolValue()), nil
	case variant.KindInt64:
		return field.Integer(v.Int64Value()), nil
	case variant.KindDouble:
		return field.Double(v.DoubleValue()), nil
	case variant.KindString:
		return field.String(v.StringValue()), nil
	case variant.KindBlob:
		return field.Blob(v.BlobValue()), nil

	case variant.KindList:
		return c.encodeArray(v.ListValue(), withinArray)
	case variant.KindMap:
		return c.encodeMap(v)
	}

	return field.Value{}, goerr.Wrap(model.ErrUnknownKind, "failed to convert variant",
		goerr.V("kind", int(v.Kind())))
}

func (c *Converter) encodeArray(items []variant.Value, withinArray bool) (field.Value, error) {
	array, err := c.encodeRegularArray(items)
	if err != nil {
		return field.Value{}, err
	}

	if !withinArray {
		return array, nil
	}

	// Firestore does not support nested arrays, so wrap the inner one in a map
	return field.Map(map[string]field.Value{
		SpecialKey:     field.Boolean(true),
		TypeKey:        field.String(SpecialNestedArray),
		NestedValueKey: array,
	}), nil
}

func (c *Converter) encodeRegularArray(items []variant.Value) (field.Value, error) {
	result := make([]field.Value, len(items))
	for i, item := range items {
		converted, err := c.encode(item, true)
		if err != nil {
			return field.Value{}, goerr.Wrap(err, "failed to convert array item", goerr.V("index", i))
		}
		result[i] = converted
	}
	return field.Array(result...), nil
}

func (c *Converter) encodeMap(v variant.Value) (field.Value, error) {
	if lookupVariantBool(v, SpecialKey) {
		return c.encodeSpecial(v)
	}
	return c.encodeRegularMap(v)
}

func (c *Converter) encodeRegularMap(v variant.Value) (field.Value, error) {
	result := make(map[string]field.Value, len(v.MapEntries()))

	for _, e := range v.MapEntries() {
		if e.Key.Kind() != variant.KindString {
			return field.Value{}, goerr.Wrap(model.ErrNonStringKey, "failed to convert map",
				goerr.V("key", e.Key.String()))
		}

		converted, err := c.encode(e.Value, false)
		if err != nil {
			return field.Value{}, goerr.Wrap(err, "failed to convert map value",
				goerr.V("key", e.Key.StringValue()))
		}
		result[e.Key.StringValue()] = converted
	}

	return field.Map(result), nil
}

// encodeSpecial rebuilds the Firestore entity described by a special value
// map. A missing or unknown "type" yields a null field value.
func (c *Converter) encodeSpecial(v variant.Value) (field.Value, error) {
	typ := lookupVariantString(v, TypeKey)

	switch typ {
	case SpecialTimestamp:
		return field.FromTimestamp(field.Timestamp{
			Seconds:     lookupVariantInt64(v, SecondsKey),
			Nanoseconds: lookupVariantInt64(v, NanosecondsKey),
		}), nil

	case SpecialGeoPoint:
		return field.FromGeoPoint(field.GeoPoint{
			Latitude:  lookupVariantDouble(v, LatitudeKey),
			Longitude: lookupVariantDouble(v, LongitudeKey),
		}), nil

	case SpecialDocumentReference:
		if c.resolver == nil {
			return field.Value{}, goerr.New("no reference resolver to convert document reference")
		}
		path := lookupVariantString(v, DocumentPathKey)
		return field.Reference(c.resolver.Document(path)), nil

	case SpecialDelete:
		return field.Delete(), nil

	case SpecialServerTimestamp:
		return field.ServerTimestamp(), nil
	}

	c.logger.Warn("unrecognized special value, converting to null", slog.String("type", typ))
	return field.Value{}, nil
}

// ToVariant converts a Firestore field value into a variant. It fails with
// model.ErrUnsupportedFieldValue for merge-only operations (array union,
// array remove, increments) since their operands cannot be represented.
func (c *Converter) ToVariant(v field.Value) (variant.Value, error) {
	switch v.Kind() {
	// Primitives -- one-to-one mapping
	case field.KindNull:
		return variant.Null(), nil
	case field.KindBoolean:
		return variant.Bool(v.BooleanValue()), nil
	case field.KindInteger:
		return variant.Int64(v.IntegerValue()), nil
	case field.KindDouble:
		return variant.Double(v.DoubleValue()), nil
	case field.KindString:
		return variant.String(v.StringValue()), nil
	case field.KindBlob:
		return variant.Blob(v.BlobValue()), nil

	case field.KindArray:
		return c.decodeArray(v.ArrayValue())
	case field.KindMap:
		return c.decodeMap(v.MapValue())

	case field.KindTimestamp:
		ts := v.TimestampValue()
		return specialVariant(SpecialTimestamp,
			variant.Entry{Key: variant.String(SecondsKey), Value: variant.Int64(ts.Seconds)},
			variant.Entry{Key: variant.String(NanosecondsKey), Value: variant.Int64(ts.Nanoseconds)},
		), nil

	case field.KindGeoPoint:
		gp := v.GeoPointValue()
		return specialVariant(SpecialGeoPoint,
			variant.Entry{Key: variant.String(LatitudeKey), Value: variant.Double(gp.Latitude)},
			variant.Entry{Key: variant.String(LongitudeKey), Value: variant.Double(gp.Longitude)},
		), nil

	case field.KindReference:
		var path string
		if ref := v.ReferenceValue(); ref != nil {
			path = ref.Path()
		}
		return specialVariant(SpecialDocumentReference,
			variant.Entry{Key: variant.String(DocumentPathKey), Value: variant.String(path)},
		), nil

	case field.KindDelete:
		return specialVariant(SpecialDelete), nil
	case field.KindServerTimestamp:
		return specialVariant(SpecialServerTimestamp), nil

	case field.KindArrayUnion, field.KindArrayRemove, field.KindIncrementInteger, field.KindIncrementDouble:
		return variant.Value{}, goerr.Wrap(model.ErrUnsupportedFieldValue, "merge-only field value has no variant form",
			goerr.V("kind", v.Kind().String()))
	}

	return variant.Value{}, goerr.Wrap(model.ErrUnknownKind, "failed to convert field value",
		goerr.V("kind", int(v.Kind())))
}

func (c *Converter) decodeArray(items []field.Value) (variant.Value, error) {
	result := make([]variant.Value, len(items))
	for i, item := range items {
		converted, err := c.ToVariant(item)
		if err != nil {
			return variant.Value{}, goerr.Wrap(err, "failed to convert array item", goerr.V("index", i))
		}
		result[i] = converted
	}
	return variant.List(result...), nil
}

// decodeMap unwraps nested arrays. Any other map, special or not, is
// converted as a regular map.
func (c *Converter) decodeMap(fields map[string]field.Value) (variant.Value, error) {
	if lookupFieldBool(fields, SpecialKey) && lookupFieldString(fields, TypeKey) == SpecialNestedArray {
		return c.decodeArray(fields[NestedValueKey].ArrayValue())
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]variant.Entry, len(keys))
	for i, k := range keys {
		converted, err := c.ToVariant(fields[k])
		if err != nil {
			return variant.Value{}, goerr.Wrap(err, "failed to convert map value", goerr.V("key", k))
		}
		entries[i] = variant.Entry{Key: variant.String(k), Value: converted}
	}
	return variant.Map(entries...), nil
}

func specialVariant(typ string, payload ...variant.Entry) variant.Value {
	entries := append([]variant.Entry{
		{Key: variant.String(SpecialKey), Value: variant.Bool(true)},
		{Key: variant.String(TypeKey), Value: variant.String(typ)},
	}, payload...)
	return variant.Map(entries...)
}

// Lookup helpers return the zero value if the key is absent or holds another
// kind.

func lookupVariantBool(v variant.Value, key string) bool {
	found, ok := v.Lookup(key)
	if !ok || found.Kind() != variant.KindBool {
		return false
	}
	return found.BoolValue()
}

func lookupVariantInt64(v variant.Value, key string) int64 {
	found, ok := v.Lookup(key)
	if !ok || found.Kind() != variant.KindInt64 {
		return 0
	}
	return found.Int64Value()
}

func lookupVariantDouble(v variant.Value, key string) float64 {
	found, ok := v.Lookup(key)
	if !ok || found.Kind() != variant.KindDouble {
		return 0
	}
	return found.DoubleValue()
}

func lookupVariantString(v variant.Value, key string) string {
	found, ok := v.Lookup(key)
	if !ok || found.Kind() != variant.KindString {
		return ""
	}
	return found.StringValue()
}

func lookupFieldBool(fields map[string]field.Value, key string) bool {
	found, ok := fields[key]
	if !ok || found.Kind() != field.KindBoolean {
		return false
	}
	return found.BooleanValue()
}

func lookupFieldString(fields map[string]field.Value, key string) string {
	found, ok := fields[key]
	if !ok || found.Kind() != field.KindString {
		return ""
	}
	return found.StringValue()
}
