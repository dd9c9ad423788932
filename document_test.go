package fireconv_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/fireconv"
	"github.com/m-mizutani/fireconv/pkg/domain/variant"
	"github.com/m-mizutani/gt"
)

const cityYAML = `name: Los Angeles
population: 3900000
area: 1302.5
capital: false
mayor: null
regions:
  - west_coast
  - socal
matrix:
  - [1, 2]
  - [3, -4]
founded:
  special: true
  type: timestamp
  seconds: 1700000000
  nanoseconds: 0
`

func TestParseYAML(t *testing.T) {
	v, err := fireconv.ParseYAML([]byte(cityYAML))
	gt.NoError(t, err)
	gt.Equal(t, v.Kind(), variant.KindMap)

	// key order follows the file
	entries := v.MapEntries()
	gt.Equal(t, entries[0].Key.StringValue(), "name")
	gt.Equal(t, entries[1].Key.StringValue(), "population")

	population, _ := v.Lookup("population")
	gt.Equal(t, population.Kind(), variant.KindInt64)
	gt.Equal(t, population.Int64Value(), int64(3900000))

	area, _ := v.Lookup("area")
	gt.Equal(t, area.DoubleValue(), 1302.5)

	mayor, ok := v.Lookup("mayor")
	gt.True(t, ok)
	gt.True(t, mayor.IsNull())

	matrix, _ := v.Lookup("matrix")
	gt.Equal(t, matrix.ListValue()[1].ListValue()[1].Int64Value(), int64(-4))

	t.Run("Invalid YAML", func(t *testing.T) {
		_, err := fireconv.ParseYAML([]byte("a: [1, 2"))
		gt.Error(t, err)
	})

	t.Run("JSON input", func(t *testing.T) {
		v, err := fireconv.ParseYAML([]byte(`{"a": 1, "b": [true, "x"]}`))
		gt.NoError(t, err)
		b, _ := v.Lookup("b")
		gt.Equal(t, b.ListValue()[1].StringValue(), "x")
	})
}

func TestMarshalYAML(t *testing.T) {
	original, err := fireconv.ParseYAML([]byte(cityYAML))
	gt.NoError(t, err)

	for _, asJSON := range []bool{false, true} {
		data, err := fireconv.MarshalYAML(original, asJSON)
		gt.NoError(t, err)

		back, err := fireconv.ParseYAML(data)
		gt.NoError(t, err)
		if !back.Equal(original) {
			t.Errorf("round trip mismatch (json=%v):\n%s", asJSON, data)
		}
	}
}

func TestMarshalYAML_Blob(t *testing.T) {
	original := variant.StringMap(map[string]variant.Value{
		"b":    variant.Blob([]byte{0xff, 0x00, 0x61}),
		"list": variant.List(variant.Blob([]byte("hi"))),
	})

	data, err := fireconv.MarshalYAML(original, false)
	gt.NoError(t, err)
	gt.S(t, string(data)).Contains("!!binary")

	back, err := fireconv.ParseYAML(data)
	gt.NoError(t, err)
	b, _ := back.Lookup("b")
	gt.Equal(t, b.Kind(), variant.KindBlob)
	if !back.Equal(original) {
		t.Errorf("blob round trip mismatch:\n%s", data)
	}

	t.Run("JSON has no binary type", func(t *testing.T) {
		data, err := fireconv.MarshalYAML(original, true)
		gt.NoError(t, err)
		gt.S(t, string(data)).Contains(`"/wBh"`)
	})
}

func TestSaveAndLoadVariant(t *testing.T) {
	original, err := fireconv.ParseYAML([]byte(cityYAML))
	gt.NoError(t, err)

	path := filepath.Join(t.TempDir(), "city.yaml")
	gt.NoError(t, fireconv.SaveVariantToYAML(path, original))

	loaded, err := fireconv.LoadVariantFromYAML(path)
	gt.NoError(t, err)
	gt.True(t, loaded.Equal(original))

	_, err = fireconv.LoadVariantFromYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidateDocument(t *testing.T) {
	valid, err := fireconv.ParseYAML([]byte(cityYAML))
	gt.NoError(t, err)
	gt.NoError(t, fireconv.ValidateDocument(valid))

	for _, tc := range []struct {
		name  string
		input string
		field string
	}{
		{"list document", "- a\n- b\n", ""},
		{"scalar document", "42\n", ""},
		{"special document", "special: true\ntype: delete\n", ""},
		{"unknown special type", "a:\n  b:\n    special: true\n    type: bogus\n", "a.b"},
		{"special inside list", "a:\n  - special: true\n", "a[0]"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v, err := fireconv.ParseYAML([]byte(tc.input))
			gt.NoError(t, err)

			err = fireconv.ValidateDocument(v)
			var valErr *fireconv.ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			gt.Equal(t, valErr.Field, tc.field)
		})
	}

	t.Run("non-string key", func(t *testing.T) {
		v := variant.Map(variant.Entry{
			Key: variant.String("outer"),
			Value: variant.Map(variant.Entry{
				Key:   variant.Int64(1),
				Value: variant.String("one"),
			}),
		})

		err := fireconv.ValidateDocument(v)
		var valErr *fireconv.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		gt.Equal(t, valErr.Field, "outer")
	})

	t.Run("YAML keys are strings", func(t *testing.T) {
		v, err := fireconv.ParseYAML([]byte("1: top\nouter:\n  2: two\n"))
		gt.NoError(t, err)
		for _, e := range v.MapEntries() {
			gt.Equal(t, e.Key.Kind(), variant.KindString)
		}
		gt.NoError(t, fireconv.ValidateDocument(v))
	})
}
