package variant_test

import (
	"testing"

	"github.com/m-mizutani/fireconv/pkg/domain/variant"
	"github.com/m-mizutani/gt"
)

func TestMap(t *testing.T) {
	t.Run("Later key replaces earlier one", func(t *testing.T) {
		m := variant.Map(
			variant.Entry{Key: variant.String("a"), Value: variant.Int64(1)},
			variant.Entry{Key: variant.String("b"), Value: variant.Int64(2)},
			variant.Entry{Key: variant.String("a"), Value: variant.Int64(3)},
		)
		gt.A(t, m.MapEntries()).Length(2)
		gt.Equal(t, m.MapEntries()[0].Key.StringValue(), "a")

		a, ok := m.Lookup("a")
		gt.True(t, ok)
		gt.Equal(t, a.Int64Value(), int64(3))
	})

	t.Run("StringMap is ordered by key", func(t *testing.T) {
		m := variant.StringMap(map[string]variant.Value{
			"z": variant.Null(),
			"a": variant.Null(),
			"m": variant.Null(),
		})
		var keys []string
		for _, e := range m.MapEntries() {
			keys = append(keys, e.Key.StringValue())
		}
		gt.Equal(t, keys, []string{"a", "m", "z"})
	})

	t.Run("Lookup ignores non-string keys", func(t *testing.T) {
		m := variant.Map(variant.Entry{Key: variant.Int64(1), Value: variant.Bool(true)})
		_, ok := m.Lookup("1")
		gt.False(t, ok)

		_, ok = variant.List().Lookup("a")
		gt.False(t, ok)
	})
}

func TestEqual(t *testing.T) {
	for _, tc := range []struct {
		name  string
		a, b  variant.Value
		equal bool
	}{
		{"null", variant.Null(), variant.Value{}, true},
		{"kind differs", variant.Int64(1), variant.Double(1), false},
		{"bool", variant.Bool(true), variant.Bool(true), true},
		{"string", variant.String("a"), variant.String("b"), false},
		{"blob", variant.Blob([]byte{1}), variant.Blob([]byte{1}), true},
		{"empty and nil blob", variant.Blob(nil), variant.Blob([]byte{}), true},
		{"list order matters", variant.List(variant.Int64(1), variant.Int64(2)), variant.List(variant.Int64(2), variant.Int64(1)), false},
		{
			"map order does not matter",
			variant.Map(
				variant.Entry{Key: variant.String("a"), Value: variant.Int64(1)},
				variant.Entry{Key: variant.String("b"), Value: variant.Int64(2)},
			),
			variant.Map(
				variant.Entry{Key: variant.String("b"), Value: variant.Int64(2)},
				variant.Entry{Key: variant.String("a"), Value: variant.Int64(1)},
			),
			true,
		},
		{
			"map value differs",
			variant.StringMap(map[string]variant.Value{"a": variant.Int64(1)}),
			variant.StringMap(map[string]variant.Value{"a": variant.Int64(2)}),
			false,
		},
		{
			"map key differs",
			variant.StringMap(map[string]variant.Value{"a": variant.Int64(1)}),
			variant.StringMap(map[string]variant.Value{"b": variant.Int64(1)}),
			false,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, tc.a.Equal(tc.b), tc.equal)
			gt.Equal(t, tc.b.Equal(tc.a), tc.equal)
		})
	}
}

func TestImmutability(t *testing.T) {
	raw := []byte{1, 2}
	b := variant.Blob(raw)
	raw[0] = 9
	gt.Equal(t, b.BlobValue(), []byte{1, 2})

	out := b.BlobValue()
	out[0] = 9
	gt.Equal(t, b.BlobValue(), []byte{1, 2})

	items := []variant.Value{variant.Int64(1)}
	l := variant.List(items...)
	items[0] = variant.Int64(2)
	gt.Equal(t, l.ListValue()[0].Int64Value(), int64(1))
}

func TestString(t *testing.T) {
	v := variant.Map(
		variant.Entry{Key: variant.String("a"), Value: variant.List(variant.Int64(1), variant.Null())},
		variant.Entry{Key: variant.String("b"), Value: variant.Bool(false)},
	)
	gt.Equal(t, v.String(), `{"a": [1, null], "b": false}`)
	gt.Equal(t, variant.KindMap.String(), "map")
}
