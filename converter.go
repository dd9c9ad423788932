package fireconv

import (
	"github.com/m-mizutani/fireconv/pkg/domain/field"
	"github.com/m-mizutani/fireconv/pkg/domain/interfaces"
	"github.com/m-mizutani/fireconv/pkg/domain/variant"
	"github.com/m-mizutani/fireconv/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

// ReferenceResolver builds document references from their path
type ReferenceResolver = interfaces.ReferenceResolver

// Converter translates between variants and Firestore field values
type Converter struct {
	conv *usecase.Converter
}

// NewConverter creates a converter. Only WithLogger applies; the logger
// receives a warning for each unrecognized special value.
func NewConverter(resolver ReferenceResolver, opts ...Option) *Converter {
	options := applyOptions(opts)
	return &Converter{conv: usecase.NewConverter(resolver, options.Logger)}
}

// ToFieldValue converts a variant into a Firestore field value. Maps with a
// non-string key fail with ErrNonStringKey.
func (c *Converter) ToFieldValue(v variant.Value) (field.Value, error) {
	return c.conv.ToFieldValue(v)
}

// ToVariant converts a Firestore field value into a variant. Merge-only
// operations fail with ErrUnsupportedFieldValue.
func (c *Converter) ToVariant(v field.Value) (variant.Value, error) {
	return c.conv.ToVariant(v)
}

// MustToFieldValue is like ToFieldValue but panics on failure
func (c *Converter) MustToFieldValue(v variant.Value) field.Value {
	fv, err := c.conv.ToFieldValue(v)
	if err != nil {
		panic(goerr.Wrap(err, "failed to convert variant to field value"))
	}
	return fv
}

// MustToVariant is like ToVariant but panics on failure
func (c *Converter) MustToVariant(v field.Value) variant.Value {
	dv, err := c.conv.ToVariant(v)
	if err != nil {
		panic(goerr.Wrap(err, "failed to convert field value to variant"))
	}
	return dv
}

// PathResolver resolves references to plain paths without a database
// connection. Such references can be converted and compared but are bound
// to a database only when written through a Client.
type PathResolver struct{}

func (PathResolver) Document(path string) field.DocumentReference {
	return pathReference(path)
}

type pathReference string

func (r pathReference) Path() string { return string(r) }
