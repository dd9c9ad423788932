package fireconv

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/m-mizutani/fireconv/pkg/domain/variant"
	"github.com/m-mizutani/fireconv/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

// ParseYAML parses a YAML (or JSON) document into a variant. Map key order
// is kept. The YAML decoder always yields string map keys, so `1: x` has
// the key "1". A tagged !!binary scalar becomes a blob.
func ParseYAML(data []byte) (variant.Value, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return variant.Value{}, goerr.Wrap(err, "failed to parse YAML")
	}

	v, err := variant.FromAny(raw)
	if err != nil {
		return variant.Value{}, goerr.Wrap(err, "failed to convert YAML to variant")
	}
	return v, nil
}

// LoadVariantFromYAML loads a variant from a YAML (or JSON) file
func LoadVariantFromYAML(path string) (variant.Value, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is provided by user as CLI argument
	if err != nil {
		return variant.Value{}, goerr.Wrap(err, "failed to read document file", goerr.V("path", path))
	}

	v, err := ParseYAML(data)
	if err != nil {
		return variant.Value{}, goerr.Wrap(err, "invalid document file", goerr.V("path", path))
	}
	return v, nil
}

// MarshalYAML renders a variant as YAML, or as JSON if asJSON is set. Blobs
// are written as !!binary in YAML and as base64 strings in JSON.
func MarshalYAML(v variant.Value, asJSON bool) ([]byte, error) {
	raw := v.ToAny()
	var opts []yaml.EncodeOption
	if asJSON {
		raw = v.ToJSONAny()
		opts = append(opts, yaml.JSON())
	}

	data, err := yaml.MarshalWithOptions(raw, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal variant")
	}
	return data, nil
}

// SaveVariantToYAML saves a variant to a YAML file
func SaveVariantToYAML(path string, v variant.Value) error {
	data, err := MarshalYAML(v, false)
	if err != nil {
		return err
	}

	// #nosec G306 - document files should be readable by others
	if err := os.WriteFile(path, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write document file", goerr.V("path", path))
	}

	return nil
}

// ValidateDocument checks that v can be stored as a Firestore document: it
// must be a map that is not a special value, every map key must be a string
// and every special value must have a known type.
func ValidateDocument(v variant.Value) error {
	if v.Kind() != variant.KindMap {
		return &ValidationError{Message: fmt.Sprintf("document must be a map, got %s", v.Kind())}
	}
	if isSpecial(v) {
		return &ValidationError{Message: "document must not be a special value"}
	}
	return validateValue("", v)
}

var knownSpecialTypes = map[string]bool{
	usecase.SpecialTimestamp:         true,
	usecase.SpecialGeoPoint:          true,
	usecase.SpecialDocumentReference: true,
	usecase.SpecialDelete:            true,
	usecase.SpecialServerTimestamp:   true,
}

func validateValue(path string, v variant.Value) error {
	switch v.Kind() {
	case variant.KindList:
		for i, item := range v.ListValue() {
			if err := validateValue(fmt.Sprintf("%s[%d]", path, i), item); err != nil {
				return err
			}
		}

	case variant.KindMap:
		for _, e := range v.MapEntries() {
			if e.Key.Kind() != variant.KindString {
				return &ValidationError{
					Field:   path,
					Message: fmt.Sprintf("map key %s is %s, not string", e.Key, e.Key.Kind()),
				}
			}
		}

		if isSpecial(v) {
			typ, _ := v.Lookup(usecase.TypeKey)
			if typ.Kind() != variant.KindString || !knownSpecialTypes[typ.StringValue()] {
				return &ValidationError{
					Field:   path,
					Message: fmt.Sprintf("unknown special value type %s", typ),
				}
			}
			return nil
		}

		for _, e := range v.MapEntries() {
			name := e.Key.StringValue()
			if path != "" {
				name = path + "." + name
			}
			if err := validateValue(name, e.Value); err != nil {
				return err
			}
		}
	}

	return nil
}

func isSpecial(v variant.Value) bool {
	special, ok := v.Lookup(usecase.SpecialKey)
	return ok && special.Kind() == variant.KindBool && special.BoolValue()
}
