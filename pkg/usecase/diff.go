package usecase

import (
	"sort"
	"strings"

	"github.com/m-mizutani/fireconv/pkg/domain/model"
	"github.com/m-mizutani/fireconv/pkg/domain/variant"
	"github.com/m-mizutani/goerr/v2"
)

// DiffDocuments calculates field-level changes needed to turn current into
// desired. Plain maps are compared field by field; lists and special values
// are compared as a whole.
//
// A desired server_timestamp is treated as satisfied by any stored
// timestamp, so applying the same document twice does not rewrite it.
func DiffDocuments(current, desired variant.Value) []model.FieldDiff {
	var diffs []model.FieldDiff
	diffMaps(nil, current, desired, &diffs)

	sort.Slice(diffs, func(i, j int) bool {
		return lessFieldPath(diffs[i].FieldPath, diffs[j].FieldPath)
	})
	return diffs
}

func diffMaps(prefix model.FieldPath, current, desired variant.Value, diffs *[]model.FieldDiff) {
	currentFields := fieldsByName(current)
	desiredFields := fieldsByName(desired)

	for name, want := range desiredFields {
		path := prefix.Append(name)
		have, exists := currentFields[name]

		switch {
		case !exists:
			*diffs = append(*diffs, model.FieldDiff{
				Path:      path.String(),
				FieldPath: path,
				Action:    model.ActionAdd,
				Desired:   want,
			})
		case isPlainMap(have) && isPlainMap(want):
			diffMaps(path, have, want, diffs)
		case isSpecialOf(want, SpecialServerTimestamp) && isSpecialOf(have, SpecialTimestamp):
			// already resolved by the server
		case !have.Equal(want):
			*diffs = append(*diffs, model.FieldDiff{
				Path:      path.String(),
				FieldPath: path,
				Action:    model.ActionModify,
				Current:   have,
				Desired:   want,
			})
		}
	}

	for name, have := range currentFields {
		if _, exists := desiredFields[name]; !exists {
			path := prefix.Append(name)
			*diffs = append(*diffs, model.FieldDiff{
				Path:      path.String(),
				FieldPath: path,
				Action:    model.ActionDelete,
				Current:   have,
			})
		}
	}
}

func fieldsByName(v variant.Value) map[string]variant.Value {
	fields := make(map[string]variant.Value, len(v.MapEntries()))
	for _, e := range v.MapEntries() {
		name := e.Key.StringValue()
		if e.Key.Kind() != variant.KindString {
			name = e.Key.String()
		}
		fields[name] = e.Value
	}
	return fields
}

func isPlainMap(v variant.Value) bool {
	return v.Kind() == variant.KindMap && !lookupVariantBool(v, SpecialKey)
}

func isSpecialOf(v variant.Value, typ string) bool {
	return v.Kind() == variant.KindMap &&
		lookupVariantBool(v, SpecialKey) &&
		lookupVariantString(v, TypeKey) == typ
}

func lessFieldPath(a, b model.FieldPath) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// parseFieldPath splits a dot-separated field path. Empty segments are
// rejected.
func parseFieldPath(s string) (model.FieldPath, error) {
	segments := strings.Split(s, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, goerr.New("invalid field path", goerr.V("path", s))
		}
	}
	return model.FieldPath(segments), nil
}
