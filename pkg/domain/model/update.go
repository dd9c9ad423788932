package model

import (
	"strings"

	"github.com/m-mizutani/fireconv/pkg/domain/field"
)

// FieldPath is a field path split into segments. A segment may contain any
// character, including dots and slashes.
type FieldPath []string

// String joins the segments with dots. The result is for display only; it
// is ambiguous when a segment contains a dot.
func (p FieldPath) String() string {
	return strings.Join(p, ".")
}

// Append returns a new path with name added as the last segment
func (p FieldPath) Append(name string) FieldPath {
	out := make(FieldPath, len(p), len(p)+1)
	copy(out, p)
	return append(out, name)
}

// Equal reports whether p and o have the same segments
func (p FieldPath) Equal(o FieldPath) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// FieldUpdate is a single field write of a document update
type FieldUpdate struct {
	Path  FieldPath
	Value field.Value
}
