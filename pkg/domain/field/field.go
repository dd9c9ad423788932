// Package field models Firestore document field values, including the
// sentinels and merge-only operations that only exist on the write path.
package field

import (
	"bytes"
	"fmt"
	"time"
)

// Kind is the tag of a Value
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindDouble
	KindString
	KindBlob
	KindArray
	KindMap
	KindTimestamp
	KindGeoPoint
	KindReference
	KindDelete
	KindServerTimestamp
	KindArrayUnion
	KindArrayRemove
	KindIncrementInteger
	KindIncrementDouble
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBlob:
		return "blob"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindTimestamp:
		return "timestamp"
	case KindGeoPoint:
		return "geo_point"
	case KindReference:
		return "reference"
	case KindDelete:
		return "delete"
	case KindServerTimestamp:
		return "server_timestamp"
	case KindArrayUnion:
		return "array_union"
	case KindArrayRemove:
		return "array_remove"
	case KindIncrementInteger:
		return "increment_integer"
	case KindIncrementDouble:
		return "increment_double"
	}

	panic(fmt.Sprintf("unknown field value kind %d", int(k)))
}

// IsMergeOnly reports whether the kind is a server-side operation that
// carries no retrievable value
func (k Kind) IsMergeOnly() bool {
	switch k {
	case KindArrayUnion, KindArrayRemove, KindIncrementInteger, KindIncrementDouble:
		return true
	}
	return false
}

// DocumentReference points at a document. Path is relative to the database
// root, e.g. "cities/SF".
type DocumentReference interface {
	Path() string
}

// Timestamp is a point in time with nanosecond precision
type Timestamp struct {
	Seconds     int64
	Nanoseconds int64
}

func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp{Seconds: t.Unix(), Nanoseconds: int64(t.Nanosecond())}
}

func (t Timestamp) Time() time.Time {
	return time.Unix(t.Seconds, t.Nanoseconds).UTC()
}

// GeoPoint is a latitude/longitude pair
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Value is an immutable Firestore field value. The zero Value is null.
type Value struct {
	kind      Kind
	boolean   bool
	integer   int64
	double    float64
	str       string
	blob      []byte
	array     []Value
	fields    map[string]Value
	timestamp Timestamp
	geoPoint  GeoPoint
	ref       DocumentReference
}

func Null() Value { return Value{} }

func Boolean(b bool) Value { return Value{kind: KindBoolean, boolean: b} }

func Integer(i int64) Value { return Value{kind: KindInteger, integer: i} }

func Double(d float64) Value { return Value{kind: KindDouble, double: d} }

func String(s string) Value { return Value{kind: KindString, str: s} }

// Blob copies b into a new blob Value
func Blob(b []byte) Value { return Value{kind: KindBlob, blob: bytes.Clone(b)} }

func Array(items ...Value) Value {
	array := make([]Value, len(items))
	copy(array, items)
	return Value{kind: KindArray, array: array}
}

func Map(fields map[string]Value) Value {
	m := make(map[string]Value, len(fields))
	for k, v := range fields {
		m[k] = v
	}
	return Value{kind: KindMap, fields: m}
}

func FromTimestamp(ts Timestamp) Value { return Value{kind: KindTimestamp, timestamp: ts} }

func FromTime(t time.Time) Value { return FromTimestamp(TimestampFromTime(t)) }

func FromGeoPoint(gp GeoPoint) Value { return Value{kind: KindGeoPoint, geoPoint: gp} }

func Reference(ref DocumentReference) Value { return Value{kind: KindReference, ref: ref} }

// Delete marks a field for deletion on update or merge
func Delete() Value { return Value{kind: KindDelete} }

// ServerTimestamp is replaced by the commit time on the server
func ServerTimestamp() Value { return Value{kind: KindServerTimestamp} }

func ArrayUnion(elems ...Value) Value {
	return Value{kind: KindArrayUnion, array: Array(elems...).array}
}

func ArrayRemove(elems ...Value) Value {
	return Value{kind: KindArrayRemove, array: Array(elems...).array}
}

func IncrementInteger(n int64) Value { return Value{kind: KindIncrementInteger, integer: n} }

func IncrementDouble(n float64) Value { return Value{kind: KindIncrementDouble, double: n} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) BooleanValue() bool { return v.boolean }

func (v Value) IntegerValue() int64 {
	if v.kind != KindInteger {
		return 0
	}
	return v.integer
}

func (v Value) DoubleValue() float64 {
	if v.kind != KindDouble {
		return 0
	}
	return v.double
}

func (v Value) StringValue() string { return v.str }

// BlobValue returns a copy of the blob bytes
func (v Value) BlobValue() []byte { return bytes.Clone(v.blob) }

// ArrayValue returns the array items. The returned slice must not be modified.
func (v Value) ArrayValue() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.array
}

// MapValue returns the map fields. The returned map must not be modified.
func (v Value) MapValue() map[string]Value {
	if v.kind != KindMap {
		return nil
	}
	return v.fields
}

func (v Value) TimestampValue() Timestamp { return v.timestamp }

func (v Value) GeoPointValue() GeoPoint { return v.geoPoint }

func (v Value) ReferenceValue() DocumentReference { return v.ref }

// Operands returns what a merge-only operation applies on the server: the
// elements of ArrayUnion/ArrayRemove, or the single Integer/Double operand of
// an increment. It is only meant for writing the operation to a store.
func (v Value) Operands() []Value {
	switch v.kind {
	case KindArrayUnion, KindArrayRemove:
		return v.array
	case KindIncrementInteger:
		return []Value{Integer(v.integer)}
	case KindIncrementDouble:
		return []Value{Double(v.double)}
	}
	return nil
}

// Equal reports whether v and o hold the same value. References are equal
// when their paths are.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindNull, KindDelete, KindServerTimestamp:
		return true
	case KindBoolean:
		return v.boolean == o.boolean
	case KindInteger, KindIncrementInteger:
		return v.integer == o.integer
	case KindDouble, KindIncrementDouble:
		return v.double == o.double
	case KindString:
		return v.str == o.str
	case KindBlob:
		return bytes.Equal(v.blob, o.blob)
	case KindArray, KindArrayUnion, KindArrayRemove:
		if len(v.array) != len(o.array) {
			return false
		}
		for i := range v.array {
			if !v.array[i].Equal(o.array[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.fields) != len(o.fields) {
			return false
		}
		for k, fv := range v.fields {
			ov, ok := o.fields[k]
			if !ok || !fv.Equal(ov) {
				return false
			}
		}
		return true
	case KindTimestamp:
		return v.timestamp == o.timestamp
	case KindGeoPoint:
		return v.geoPoint == o.geoPoint
	case KindReference:
		if v.ref == nil || o.ref == nil {
			return v.ref == nil && o.ref == nil
		}
		return v.ref.Path() == o.ref.Path()
	}

	return false
}
