package model

import "github.com/m-mizutani/fireconv/pkg/domain/variant"

// DiffAction represents the type of change
type DiffAction string

const (
	ActionAdd    DiffAction = "ADD"
	ActionModify DiffAction = "MODIFY"
	ActionDelete DiffAction = "DELETE"
)

// FieldDiff represents a change of a single field between two documents
type FieldDiff struct {
	// Path is the dot-separated field path, for display
	Path string
	// FieldPath holds the segments of Path
	FieldPath FieldPath
	Action    DiffAction
	Current   variant.Value
	Desired   variant.Value
}
