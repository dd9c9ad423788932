package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/fireconv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func newPutCommand() *cli.Command {
	return &cli.Command{
		Name:      "put",
		Usage:     "Create or overwrite a document from a YAML file",
		ArgsUsage: "<document path>",
		Flags: []cli.Flag{
			fileFlag(),
			&cli.BoolFlag{
				Name:  "merge",
				Usage: "Only write the fields in the file and keep the others",
			},
		},
		Action: runPut,
	}
}

func runPut(ctx context.Context, c *cli.Command) error {
	logger := getLogger(ctx)

	path, err := documentPath(c)
	if err != nil {
		return err
	}

	doc, err := fireconv.LoadVariantFromYAML(c.String("file"))
	if err != nil {
		return goerr.Wrap(err, "failed to load document")
	}
	if err := fireconv.ValidateDocument(doc); err != nil {
		return goerr.Wrap(err, "invalid document")
	}

	client, err := newClient(ctx, c)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if c.Bool("dry-run") {
		logger.Info("Running in dry-run mode")
	}

	if c.Bool("merge") {
		err = client.Merge(ctx, path, doc)
	} else {
		err = client.Put(ctx, path, doc)
	}
	if err != nil {
		return goerr.Wrap(err, "failed to write document")
	}

	if !c.Bool("dry-run") {
		fmt.Fprintf(output(c), "✓ Document %s written\n", path)
	}
	return nil
}

func newUpdateCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update fields of an existing document; keys in the file are dot-separated field paths",
		ArgsUsage: "<document path>",
		Flags: []cli.Flag{
			fileFlag(),
		},
		Action: runUpdate,
	}
}

func runUpdate(ctx context.Context, c *cli.Command) error {
	path, err := documentPath(c)
	if err != nil {
		return err
	}

	updates, err := fireconv.LoadVariantFromYAML(c.String("file"))
	if err != nil {
		return goerr.Wrap(err, "failed to load updates")
	}

	client, err := newClient(ctx, c)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err := client.Update(ctx, path, updates); err != nil {
		return goerr.Wrap(err, "failed to update document")
	}

	if !c.Bool("dry-run") {
		fmt.Fprintf(output(c), "✓ Document %s updated\n", path)
	}
	return nil
}
