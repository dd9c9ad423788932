package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/fireconv"
	"github.com/m-mizutani/fireconv/pkg/domain/variant"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (use - for stdout)",
			Value:   "-",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Write JSON instead of YAML",
		},
	}
}

func newGetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Read documents as YAML; several paths are read concurrently and keyed by path",
		ArgsUsage: "<document path> [document path ...]",
		Flags:     outputFlags(),
		Action:    runGet,
	}
}

func runGet(ctx context.Context, c *cli.Command) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return goerr.New("at least one document path is required")
	}

	client, err := newClient(ctx, c)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if len(paths) == 1 {
		doc, err := client.Get(ctx, paths[0])
		if err != nil {
			return goerr.Wrap(err, "failed to get document")
		}
		return writeVariant(c, doc)
	}

	snapshots, err := client.GetAll(ctx, paths...)
	if err != nil {
		return err
	}
	return writeVariant(c, snapshotsByPath(snapshots))
}

func newListCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "Read documents of a collection as YAML keyed by path",
		ArgsUsage: "<collection path>",
		Flags: append(outputFlags(),
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of documents (0 for all)",
				Value:   0,
			},
		),
		Action: runList,
	}
}

func runList(ctx context.Context, c *cli.Command) error {
	logger := getLogger(ctx)

	if c.Args().Len() != 1 {
		return goerr.New("exactly one collection path is required")
	}
	collection := c.Args().First()

	client, err := newClient(ctx, c)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	snapshots, err := client.List(ctx, collection, int(c.Int("limit")))
	if err != nil {
		return goerr.Wrap(err, "failed to list documents")
	}
	logger.Info("Listed documents", "collection", collection, "count", len(snapshots))

	return writeVariant(c, snapshotsByPath(snapshots))
}

func snapshotsByPath(snapshots []*fireconv.Snapshot) variant.Value {
	entries := make([]variant.Entry, len(snapshots))
	for i, s := range snapshots {
		entries[i] = variant.Entry{Key: variant.String(s.Path), Value: s.Data}
	}
	return variant.Map(entries...)
}

func writeVariant(c *cli.Command, v variant.Value) error {
	data, err := fireconv.MarshalYAML(v, c.Bool("json"))
	if err != nil {
		return err
	}

	outputPath := c.String("output")
	if outputPath == "-" || outputPath == "" {
		_, err := output(c).Write(data)
		return err
	}

	// #nosec G306 - document files should be readable by others
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write output file", goerr.V("path", outputPath))
	}
	fmt.Fprintf(os.Stderr, "✓ Written to %s\n", outputPath)
	return nil
}
