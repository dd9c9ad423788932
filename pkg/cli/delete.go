package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func newDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete documents; subcollections are kept",
		ArgsUsage: "<document path> [document path ...]",
		Action:    runDelete,
	}
}

func runDelete(ctx context.Context, c *cli.Command) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return goerr.New("at least one document path is required")
	}

	client, err := newClient(ctx, c)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	for _, path := range paths {
		if err := client.Delete(ctx, path); err != nil {
			return goerr.Wrap(err, "failed to delete document")
		}
		if !c.Bool("dry-run") {
			fmt.Fprintf(output(c), "✓ Document %s deleted\n", path)
		}
	}
	return nil
}
