package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/fireconv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func newDiffCommand() *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "Show field changes between a stored document and a YAML file",
		ArgsUsage: "<document path>",
		Flags: []cli.Flag{
			fileFlag(),
		},
		Action: runDiff,
	}
}

func runDiff(ctx context.Context, c *cli.Command) error {
	path, err := documentPath(c)
	if err != nil {
		return err
	}

	desired, err := fireconv.LoadVariantFromYAML(c.String("file"))
	if err != nil {
		return goerr.Wrap(err, "failed to load document")
	}

	client, err := newClient(ctx, c)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	diffs, err := client.Diff(ctx, path, desired)
	if err != nil {
		return goerr.Wrap(err, "failed to diff document")
	}

	w := output(c)
	if len(diffs) == 0 {
		fmt.Fprintf(w, "✓ Document %s is up to date\n", path)
		return nil
	}
	printDiffs(w, diffs)
	return nil
}

func printDiffs(w io.Writer, diffs []fireconv.FieldDiff) {
	for _, d := range diffs {
		switch d.Action {
		case fireconv.ActionAdd:
			fmt.Fprintf(w, "+ %s: %s\n", d.Path, d.Desired)
		case fireconv.ActionModify:
			fmt.Fprintf(w, "~ %s: %s -> %s\n", d.Path, d.Current, d.Desired)
		case fireconv.ActionDelete:
			fmt.Fprintf(w, "- %s: %s\n", d.Path, d.Current)
		}
	}
}

func newApplyCommand() *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Make a stored document match a YAML file, writing only changed fields",
		ArgsUsage: "<document path>",
		Flags: []cli.Flag{
			fileFlag(),
		},
		Action: runApply,
	}
}

func runApply(ctx context.Context, c *cli.Command) error {
	logger := getLogger(ctx)

	path, err := documentPath(c)
	if err != nil {
		return err
	}

	desired, err := fireconv.LoadVariantFromYAML(c.String("file"))
	if err != nil {
		return goerr.Wrap(err, "failed to load document")
	}

	client, err := newClient(ctx, c)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if c.Bool("dry-run") {
		logger.Info("Running in dry-run mode")
	}

	var changed int
	err = client.ApplyWithOptions(ctx, path, desired, fireconv.ApplyOptions{
		DryRun: c.Bool("dry-run"),
		ProgressCallback: func(action fireconv.DiffAction, fieldPath string) {
			changed++
			logger.Debug("Field changed", "action", action, "field", fieldPath)
		},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to apply document")
	}

	if !c.Bool("dry-run") {
		fmt.Fprintf(output(c), "✓ Document %s applied (%d fields changed)\n", path, changed)
	}
	return nil
}
