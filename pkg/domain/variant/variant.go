// Package variant provides a generic, database-agnostic dynamic value.
//
// A Value is one of null, bool, int64, double, string, blob, list or map.
// Map keys are Values themselves, although every map that travels through
// the Firestore converter is expected to use string keys only.
package variant

import (
	"bytes"
	"fmt"
	"sort"
)

// Kind is the tag of a Value
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt64
	KindDouble
	KindString
	KindBlob
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt64:
		return "int64"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBlob:
		return "blob"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	}

	panic(fmt.Sprintf("unknown variant kind %d", int(k)))
}

// Value is an immutable dynamic value. The zero Value is null.
type Value struct {
	kind    Kind
	boolean bool
	integer int64
	double  float64
	str     string
	blob    []byte
	list    []Value
	entries []Entry
}

// Entry is a single key-value pair of a map Value
type Entry struct {
	Key   Value
	Value Value
}

func Null() Value { return Value{} }

func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

func Int64(i int64) Value { return Value{kind: KindInt64, integer: i} }

func Double(d float64) Value { return Value{kind: KindDouble, double: d} }

func String(s string) Value { return Value{kind: KindString, str: s} }

// Blob copies b into a new blob Value
func Blob(b []byte) Value {
	return Value{kind: KindBlob, blob: bytes.Clone(b)}
}

// List creates a list Value. A nil or empty argument yields an empty list.
func List(items ...Value) Value {
	list := make([]Value, len(items))
	copy(list, items)
	return Value{kind: KindList, list: list}
}

// Map creates a map Value keeping the entry order. A later entry with a key
// equal to an earlier one replaces it.
func Map(entries ...Entry) Value {
	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		replaced := false
		for i := range result {
			if result[i].Key.Equal(e.Key) {
				result[i].Value = e.Value
				replaced = true
				break
			}
		}
		if !replaced {
			result = append(result, e)
		}
	}
	return Value{kind: KindMap, entries: result}
}

// StringMap creates a map Value with string keys, ordered by key
func StringMap(m map[string]Value) Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: String(k), Value: m[k]}
	}
	return Value{kind: KindMap, entries: entries}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) BoolValue() bool { return v.boolean }

func (v Value) Int64Value() int64 { return v.integer }

func (v Value) DoubleValue() float64 { return v.double }

func (v Value) StringValue() string { return v.str }

// BlobValue returns a copy of the blob bytes
func (v Value) BlobValue() []byte { return bytes.Clone(v.blob) }

// ListValue returns the list items. The returned slice must not be modified.
func (v Value) ListValue() []Value { return v.list }

// MapEntries returns the map entries in order. The returned slice must not be
// modified.
func (v Value) MapEntries() []Entry { return v.entries }

// Lookup returns the value stored under the string key
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	for _, e := range v.entries {
		if e.Key.kind == KindString && e.Key.str == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Equal reports whether v and o hold the same value. Maps are compared as
// mappings, so entry order does not matter.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolean == o.boolean
	case KindInt64:
		return v.integer == o.integer
	case KindDouble:
		return v.double == o.double
	case KindString:
		return v.str == o.str
	case KindBlob:
		return bytes.Equal(v.blob, o.blob)
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.entries) != len(o.entries) {
			return false
		}
		for _, e := range v.entries {
			found := false
			for _, oe := range o.entries {
				if e.Key.Equal(oe.Key) {
					if !e.Value.Equal(oe.Value) {
						return false
					}
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}

	return false
}

// String renders v for debugging and log output
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%t", v.boolean)
	case KindInt64:
		return fmt.Sprintf("%d", v.integer)
	case KindDouble:
		return fmt.Sprintf("%g", v.double)
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindBlob:
		return fmt.Sprintf("blob(%d bytes)", len(v.blob))
	case KindList:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(item.String())
		}
		buf.WriteByte(']')
		return buf.String()
	case KindMap:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, e := range v.entries {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(e.Key.String())
			buf.WriteString(": ")
			buf.WriteString(e.Value.String())
		}
		buf.WriteByte('}')
		return buf.String()
	}
	return fmt.Sprintf("<%s>", v.kind)
}
