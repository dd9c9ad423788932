package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/fireconv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// NewApp creates a new CLI application
func NewApp(version string) *cli.Command {
	return &cli.Command{
		Name:    "fireconv",
		Usage:   "Read and write Firestore documents as YAML",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "project",
				Aliases:  []string{"p"},
				Usage:    "GCP project ID",
				Sources:  cli.EnvVars("FIRECONV_PROJECT", "GCP_PROJECT"),
				Required: false, // Will be required for subcommands
			},
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"d"},
				Usage:   "Firestore database ID",
				Value:   "(default)",
				Sources: cli.EnvVars("FIRECONV_DATABASE"),
			},
			&cli.StringFlag{
				Name:    "credentials",
				Usage:   "Service account key file path",
				Sources: cli.EnvVars("GOOGLE_APPLICATION_CREDENTIALS"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable verbose logging",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Show what would be written without making actual changes",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Setup logger
			level := slog.LevelInfo
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}

			logger := slog.New(clog.New(
				clog.WithWriter(os.Stderr),
				clog.WithLevel(level),
			))

			// Inject logger into context
			return ctxlog.With(ctx, logger), nil
		},
		Commands: []*cli.Command{
			newValidateCommand(),
			newPutCommand(),
			newUpdateCommand(),
			newGetCommand(),
			newListCommand(),
			newDeleteCommand(),
			newDiffCommand(),
			newApplyCommand(),
		},
	}
}

// Run executes the CLI application
func Run(ctx context.Context, version string, args []string) error {
	return NewApp(version).Run(ctx, args)
}

// getLogger gets or creates a logger from context
func getLogger(ctx context.Context) *slog.Logger {
	if logger := ctxlog.From(ctx); logger != nil {
		return logger
	}
	return slog.New(clog.New(
		clog.WithWriter(os.Stderr),
		clog.WithLevel(slog.LevelInfo),
	))
}

// output returns the writer for command results
func output(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// newClient creates a fireconv client from the global flags
func newClient(ctx context.Context, c *cli.Command) (*fireconv.Client, error) {
	projectID := c.String("project")
	if projectID == "" {
		return nil, goerr.New("project flag is required", goerr.V("command", c.Name))
	}

	databaseID := c.String("database")
	if databaseID == "" {
		return nil, goerr.New("database flag is required", goerr.V("command", c.Name))
	}

	opts := []fireconv.Option{
		fireconv.WithLogger(getLogger(ctx)),
		fireconv.WithDryRun(c.Bool("dry-run")),
	}

	if credentials := c.String("credentials"); credentials != "" {
		opts = append(opts, fireconv.WithCredentialsFile(credentials))
	}

	client, err := fireconv.New(ctx, projectID, databaseID, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create client")
	}
	return client, nil
}

// documentPath returns the single document path argument
func documentPath(c *cli.Command) (string, error) {
	if c.Args().Len() != 1 {
		return "", goerr.New("exactly one document path is required", goerr.V("command", c.Name))
	}
	return c.Args().First(), nil
}

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "Document file path (YAML or JSON)",
		Required: true,
	}
}
