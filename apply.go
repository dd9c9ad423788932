package fireconv

import (
	"context"
	"fmt"

	"github.com/m-mizutani/fireconv/pkg/domain/variant"
	"github.com/m-mizutani/goerr/v2"
)

// ApplyOptions represents options for Apply
type ApplyOptions struct {
	// DryRun if true, shows what would be changed without actually applying
	DryRun bool

	// ProgressCallback is called for each changed field
	ProgressCallback func(action DiffAction, fieldPath string)
}

// Apply makes the document at path equal to desired, writing only the
// fields that differ
func (c *Client) Apply(ctx context.Context, path string, desired variant.Value) error {
	return c.ApplyWithOptions(ctx, path, desired, ApplyOptions{DryRun: c.options.DryRun})
}

// ApplyWithOptions applies desired with options
func (c *Client) ApplyWithOptions(ctx context.Context, path string, desired variant.Value, opts ApplyOptions) error {
	if err := ValidateDocument(desired); err != nil {
		return goerr.Wrap(err, "invalid document")
	}

	if opts.DryRun {
		return c.dryRunApply(ctx, path, desired, opts)
	}

	diffs, err := c.document.Apply(ctx, path, desired)
	if err != nil {
		return &OperationError{Path: path, Operation: "apply", Cause: err}
	}

	if opts.ProgressCallback != nil {
		for _, diff := range diffs {
			opts.ProgressCallback(diff.Action, diff.Path)
		}
	}
	return nil
}

// dryRunApply logs the changes Apply would make
func (c *Client) dryRunApply(ctx context.Context, path string, desired variant.Value, opts ApplyOptions) error {
	diffs, err := c.document.Diff(ctx, path, desired)
	if err != nil {
		return &OperationError{Path: path, Operation: "apply", Cause: err}
	}

	for _, diff := range diffs {
		switch diff.Action {
		case ActionAdd:
			c.logger.Info("Would add field",
				"document", path,
				"field", diff.Path,
				"value", diff.Desired.String())

		case ActionModify:
			c.logger.Info("Would modify field",
				"document", path,
				"field", diff.Path,
				"current", diff.Current.String(),
				"desired", diff.Desired.String())

		case ActionDelete:
			c.logger.Info("Would delete field",
				"document", path,
				"field", diff.Path)
		}

		if opts.ProgressCallback != nil {
			opts.ProgressCallback(diff.Action, diff.Path)
		}
	}

	return nil
}

// ApplyPlan represents the changes Apply would make to a document
type ApplyPlan struct {
	Path  string
	Steps []ApplyStep
}

// ApplyStep represents a single field change
type ApplyStep struct {
	Field       string
	Operation   string
	Description string
	Destructive bool
}

// GetApplyPlan returns the changes Apply would make without executing them
func (c *Client) GetApplyPlan(ctx context.Context, path string, desired variant.Value) (*ApplyPlan, error) {
	diffs, err := c.Diff(ctx, path, desired)
	if err != nil {
		return nil, err
	}

	plan := &ApplyPlan{
		Path:  path,
		Steps: make([]ApplyStep, 0, len(diffs)),
	}

	// Generate steps from diff
	for _, diff := range diffs {
		switch diff.Action {
		case ActionAdd:
			plan.Steps = append(plan.Steps, ApplyStep{
				Field:       diff.Path,
				Operation:   "ADD_FIELD",
				Description: fmt.Sprintf("Add field %s = %s", diff.Path, diff.Desired),
				Destructive: false,
			})

		case ActionModify:
			plan.Steps = append(plan.Steps, ApplyStep{
				Field:       diff.Path,
				Operation:   "MODIFY_FIELD",
				Description: fmt.Sprintf("Change field %s from %s to %s", diff.Path, diff.Current, diff.Desired),
				Destructive: false,
			})

		case ActionDelete:
			plan.Steps = append(plan.Steps, ApplyStep{
				Field:       diff.Path,
				Operation:   "DELETE_FIELD",
				Description: fmt.Sprintf("Delete field %s", diff.Path),
				Destructive: true,
			})
		}
	}

	return plan, nil
}
