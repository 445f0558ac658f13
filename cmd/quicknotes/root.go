package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quicknotes"
	"github.com/aretw0/quicknotes/internal/platform"
	"github.com/aretw0/quicknotes/pkg/adapters/fs"
	"github.com/aretw0/quicknotes/pkg/core"
	"github.com/aretw0/quicknotes/pkg/metrics"
)

// commands lists the subcommand constructors; each command file registers
// itself in init.
var commands []func(a *app) *cobra.Command

// app carries the global flags and the lazily opened service.
type app struct {
	driver          string
	db              string
	prefsPath       string
	metricsTextfile string
	noSeed          bool
	verbose         bool

	// started is set once argument parsing succeeded and a command runs.
	started bool

	logger    *slog.Logger
	collector *metrics.Collector
	svc       *core.Service
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quicknotes",
		Short: "Take, file and find short notes",
		Long: `QuickNotes keeps short notes with optional coloured categories.
Notes can be pinned, archived or completed; deleting a category keeps its notes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.started = true
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(a.logger)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.driver, "driver", os.Getenv("QUICKNOTES_STORAGE_DRIVER"), "Storage backend: memory, sqlite or postgres (env QUICKNOTES_STORAGE_DRIVER)")
	flags.StringVar(&a.db, "db", os.Getenv("QUICKNOTES_DB"), "SQLite file or postgres:// URL (env QUICKNOTES_DB)")
	flags.StringVar(&a.prefsPath, "prefs", os.Getenv("QUICKNOTES_PREFS"), "Preferences YAML file (env QUICKNOTES_PREFS)")
	flags.StringVar(&a.metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file on exit")
	flags.BoolVar(&a.noSeed, "no-seed", false, "Do not populate an empty store with sample notes")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	for _, newCmd := range commands {
		rootCmd.AddCommand(newCmd(a))
	}
	return rootCmd
}

// execute runs the CLI with args and releases the service afterwards.
func execute(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := errors.Join(rootCmd.ExecuteContext(ctx), a.close())
	if err != nil {
		a.log().Debug("command failed", "error", err)
		fmt.Fprintf(stderr, "Error: %s\n", a.errorMessage(err))
	}
	return err
}

const genericFailure = "the operation failed; run again with --verbose for details"

// errorMessage turns err into the text shown to the user. Usage errors
// raised by cobra before any command runs are shown as is; anything else
// goes through core.UserMessage so storage failures never leak driver text.
func (a *app) errorMessage(err error) string {
	if !a.started {
		return err.Error()
	}
	return core.UserMessage(err, genericFailure)
}

// usageErrorf reports invalid command input as a validation error, so it
// reaches the user verbatim.
func usageErrorf(field, format string, args ...any) error {
	return &core.ValidationError{Field: field, Err: fmt.Errorf(format, args...)}
}

// service opens the configured backend on first use.
func (a *app) service(ctx context.Context) (*core.Service, error) {
	if a.svc != nil {
		return a.svc, nil
	}

	uri := a.db
	adapter := a.driver
	if uri == "" && adapter != platform.AdapterMemory {
		path, err := platform.DefaultDatabasePath()
		if err != nil {
			return nil, err
		}
		uri = path
	}

	opts := []quicknotes.Option{
		quicknotes.WithAdapter(adapter),
		quicknotes.WithLogger(a.log()),
		quicknotes.WithSeed(!a.noSeed),
	}
	if a.metricsTextfile != "" {
		a.collector = metrics.NewCollector("quicknotes")
		opts = append(opts, quicknotes.WithMetrics(a.collector))
	}

	svc, err := quicknotes.New(ctx, uri, opts...)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	a.svc = svc
	return svc, nil
}

// preferences returns the YAML preferences store.
func (a *app) preferences() (*fs.PreferencesFile, error) {
	path := a.prefsPath
	if path == "" {
		p, err := platform.DefaultPreferencesPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return fs.NewPreferencesFile(path, a.log()), nil
}

func (a *app) log() *slog.Logger {
	if a.logger == nil {
		return slog.Default()
	}
	return a.logger
}

func (a *app) close() error {
	var errs []error
	if a.collector != nil && a.metricsTextfile != "" {
		errs = append(errs, a.collector.WriteTextfile(a.metricsTextfile))
	}
	if a.svc != nil {
		errs = append(errs, a.svc.Close())
		a.svc = nil
	}
	return errors.Join(errs...)
}
