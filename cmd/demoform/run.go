package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-demoform/internal/config"
	"github.com/goliatone/go-demoform/pkg/form"
	"github.com/goliatone/go-demoform/pkg/options"
	"github.com/goliatone/go-demoform/pkg/render"
	"github.com/goliatone/go-demoform/pkg/renderers/tui"
	"github.com/goliatone/go-demoform/pkg/validation"
)

var (
	fetchDelay   time.Duration
	outputFormat string
	schemaFile   string
)

func init() {
	rootCmd.Flags().DurationVar(&fetchDelay, "fetch-delay", options.DefaultDelay, "simulated city lookup delay")
	rootCmd.Flags().StringVar(&outputFormat, "format", "", "submit payload format: json, form, pretty")
	rootCmd.Flags().StringVar(&schemaFile, "schema", "", "YAML validation rules overriding the built-in schema")
}

func runForm(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("fetch-delay") {
		cfg.FetchDelay = fetchDelay
	}
	if cmd.Flags().Changed("format") {
		cfg.Output = outputFormat
	}
	if cmd.Flags().Changed("schema") {
		cfg.Schema = schemaFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	level, _ := cfg.Level()
	setupLogging(level)

	session, err := newSession(cfg, slog.Default(), cmd.OutOrStdout(), nil)
	if err != nil {
		return err
	}
	defer session.fetcher.Close()

	err = session.run(cmd.Context())
	switch {
	case errors.Is(err, tui.ErrAborted), errors.Is(err, tui.ErrNotSubmitted):
		slog.Info("form closed without submitting")
		return nil
	default:
		return err
	}
}

// session bundles the collaborators of one form run.
type session struct {
	fetcher    *options.Fetcher
	controller *form.Controller
	renderer   *tui.Renderer
}

// newSession wires the fetcher, controller, sinks and renderer. driver may be
// nil to use the interactive survey driver.
func newSession(cfg config.Config, logger *slog.Logger, out io.Writer, driver tui.PromptDriver) (*session, error) {
	schema := validation.DefaultSchema()
	if cfg.Schema != "" {
		f, err := os.Open(cfg.Schema)
		if err != nil {
			return nil, fmt.Errorf("open schema: %w", err)
		}
		defer f.Close()
		if schema, err = validation.LoadSchema(f); err != nil {
			return nil, err
		}
	}

	fetcher := options.New(
		options.WithDelay(cfg.FetchDelay),
		options.WithCities(cfg.Cities),
		options.WithLogger(logger),
	)

	controller := form.New(
		form.WithSchema(schema),
		form.WithLogger(logger),
		form.WithSubmitHandler(render.MultiSink(
			render.LogSink(logger),
			render.WriterSink(out, cfg.OutputFormat()),
		)),
	)

	if driver == nil {
		driver = tui.NewSurveyDriver(out)
	}
	renderer := tui.New(
		tui.WithPromptDriver(driver),
		tui.WithLogger(logger),
		tui.WithTheme(tui.Theme{ErrorPrefix: "✗ "}),
	)

	return &session{fetcher: fetcher, controller: controller, renderer: renderer}, nil
}

func (s *session) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return s.renderer.Run(ctx, s.controller, s.fetcher)
}
