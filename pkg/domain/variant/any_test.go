package variant_test

import (
	"math"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/m-mizutani/fireconv/pkg/domain/variant"
	"github.com/m-mizutani/gt"
)

func TestFromAny(t *testing.T) {
	t.Run("Scalars", func(t *testing.T) {
		for _, tc := range []struct {
			name  string
			input any
			want  variant.Value
		}{
			{"nil", nil, variant.Null()},
			{"bool", true, variant.Bool(true)},
			{"int", 42, variant.Int64(42)},
			{"int32", int32(-7), variant.Int64(-7)},
			{"uint64", uint64(42), variant.Int64(42)},
			{"float32", float32(1.5), variant.Double(1.5)},
			{"float64", 2.25, variant.Double(2.25)},
			{"string", "abc", variant.String("abc")},
			{"bytes", []byte("xyz"), variant.Blob([]byte("xyz"))},
			{"value", variant.String("v"), variant.String("v")},
		} {
			t.Run(tc.name, func(t *testing.T) {
				got, err := variant.FromAny(tc.input)
				gt.NoError(t, err)
				if diff := cmp.Diff(tc.want, got); diff != "" {
					t.Errorf("unexpected value (-want +got):\n%s", diff)
				}
			})
		}
	})

	t.Run("Ordered map keeps order", func(t *testing.T) {
		got, err := variant.FromAny(yaml.MapSlice{
			{Key: "z", Value: 1},
			{Key: "a", Value: []any{"x", nil}},
		})
		gt.NoError(t, err)
		gt.Equal(t, got.MapEntries()[0].Key.StringValue(), "z")
		gt.Equal(t, got.MapEntries()[1].Key.StringValue(), "a")
	})

	t.Run("Go maps are ordered by key", func(t *testing.T) {
		got, err := variant.FromAny(map[string]any{"b": 1, "a": 2})
		gt.NoError(t, err)
		gt.Equal(t, got.MapEntries()[0].Key.StringValue(), "a")

		got, err = variant.FromAny(map[any]any{2: "two", 1: "one"})
		gt.NoError(t, err)
		gt.Equal(t, got.MapEntries()[0].Key.Int64Value(), int64(1))
	})

	t.Run("Unsigned overflow", func(t *testing.T) {
		_, err := variant.FromAny(uint64(math.MaxUint64))
		gt.Error(t, err)
	})

	t.Run("Unsupported type", func(t *testing.T) {
		_, err := variant.FromAny(struct{}{})
		gt.Error(t, err)

		_, err = variant.FromAny([]any{1, struct{}{}})
		gt.Error(t, err)
	})
}

func TestToAny(t *testing.T) {
	v := variant.Map(
		variant.Entry{Key: variant.String("name"), Value: variant.String("abc")},
		variant.Entry{Key: variant.Int64(1), Value: variant.List(variant.Double(1.5), variant.Null())},
	)

	got := v.ToAny()
	want := yaml.MapSlice{
		{Key: "name", Value: "abc"},
		{Key: int64(1), Value: []any{1.5, nil}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected value (-want +got):\n%s", diff)
	}

	back, err := variant.FromAny(got)
	gt.NoError(t, err)
	gt.True(t, back.Equal(v))
}

func TestToAny_Blob(t *testing.T) {
	v := variant.StringMap(map[string]variant.Value{
		"b": variant.Blob([]byte{0xff, 0x00, 0x61}),
	})

	got := v.ToAny()
	want := yaml.MapSlice{{Key: "b", Value: variant.Binary{0xff, 0x00, 0x61}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected value (-want +got):\n%s", diff)
	}

	back, err := variant.FromAny(got)
	gt.NoError(t, err)
	gt.True(t, back.Equal(v))

	data, err := variant.Binary{0xff, 0x00, 0x61}.MarshalYAML()
	gt.NoError(t, err)
	gt.Equal(t, string(data), "!!binary /wBh")

	jsonValue := v.ToJSONAny()
	gt.Equal(t, jsonValue.(yaml.MapSlice)[0].Value, any("/wBh"))
}
