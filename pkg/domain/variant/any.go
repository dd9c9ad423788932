package variant

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/m-mizutani/goerr/v2"
)

// FromAny converts a generic Go value, as produced by the YAML decoder, into
// a Value. Ordered maps (yaml.MapSlice) keep their key order, plain Go maps
// are ordered by key.
func FromAny(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int64(int64(v)), nil
	case int8:
		return Int64(int64(v)), nil
	case int16:
		return Int64(int64(v)), nil
	case int32:
		return Int64(int64(v)), nil
	case int64:
		return Int64(v), nil
	case uint:
		return fromUnsigned(uint64(v))
	case uint8:
		return Int64(int64(v)), nil
	case uint16:
		return Int64(int64(v)), nil
	case uint32:
		return Int64(int64(v)), nil
	case uint64:
		return fromUnsigned(v)
	case float32:
		return Double(float64(v)), nil
	case float64:
		return Double(v), nil
	case string:
		return String(v), nil
	case []byte:
		return Blob(v), nil
	case Binary:
		return Blob(v), nil

	case []any:
		items := make([]Value, len(v))
		for i, item := range v {
			converted, err := FromAny(item)
			if err != nil {
				return Value{}, goerr.Wrap(err, "failed to convert list item", goerr.V("index", i))
			}
			items[i] = converted
		}
		return Value{kind: KindList, list: items}, nil

	case yaml.MapSlice:
		entries := make([]Entry, 0, len(v))
		for _, item := range v {
			entry, err := fromAnyEntry(item.Key, item.Value)
			if err != nil {
				return Value{}, err
			}
			entries = append(entries, entry)
		}
		return Map(entries...), nil

	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		entries := make([]Entry, 0, len(v))
		for _, k := range keys {
			entry, err := fromAnyEntry(k, v[k])
			if err != nil {
				return Value{}, err
			}
			entries = append(entries, entry)
		}
		return Value{kind: KindMap, entries: entries}, nil

	case map[any]any:
		entries := make([]Entry, 0, len(v))
		for k, item := range v {
			entry, err := fromAnyEntry(k, item)
			if err != nil {
				return Value{}, err
			}
			entries = append(entries, entry)
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Key.String() < entries[j].Key.String()
		})
		return Map(entries...), nil
	}

	return Value{}, goerr.New("unsupported Go type for variant", goerr.V("type", fmt.Sprintf("%T", x)))
}

func fromAnyEntry(key, value any) (Entry, error) {
	k, err := FromAny(key)
	if err != nil {
		return Entry{}, goerr.Wrap(err, "failed to convert map key")
	}
	v, err := FromAny(value)
	if err != nil {
		return Entry{}, goerr.Wrap(err, "failed to convert map value", goerr.V("key", k.String()))
	}
	return Entry{Key: k, Value: v}, nil
}

func fromUnsigned(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, goerr.New("unsigned integer overflows int64", goerr.V("value", u))
	}
	return Int64(int64(u)), nil
}

// Binary is a blob rendered as a base64 !!binary YAML scalar
type Binary []byte

// MarshalYAML implements yaml.BytesMarshaler
func (b Binary) MarshalYAML() ([]byte, error) {
	return []byte("!!binary " + base64.StdEncoding.EncodeToString(b)), nil
}

// ToAny converts v into generic Go values suitable for the YAML encoder.
// Maps become yaml.MapSlice so that entry order and non-string keys survive,
// and blobs become Binary.
func (v Value) ToAny() any {
	return v.toAny(func(b []byte) any { return Binary(b) })
}

// ToJSONAny is ToAny for JSON output. JSON has no binary type, so blobs
// become base64 strings and read back as strings.
func (v Value) ToJSONAny() any {
	return v.toAny(func(b []byte) any { return base64.StdEncoding.EncodeToString(b) })
}

func (v Value) toAny(blob func([]byte) any) any {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindInt64:
		return v.integer
	case KindDouble:
		return v.double
	case KindString:
		return v.str
	case KindBlob:
		return blob(bytes.Clone(v.blob))
	case KindList:
		items := make([]any, len(v.list))
		for i, item := range v.list {
			items[i] = item.toAny(blob)
		}
		return items
	case KindMap:
		slice := make(yaml.MapSlice, len(v.entries))
		for i, e := range v.entries {
			slice[i] = yaml.MapItem{Key: e.Key.toAny(blob), Value: e.Value.toAny(blob)}
		}
		return slice
	}
	return nil
}
