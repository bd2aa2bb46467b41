package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/distcheck"
	"github.com/fwojciec/distcheck/fs"
	"github.com/fwojciec/distcheck/goquery"
	"github.com/fwojciec/distcheck/jsonld"
	"github.com/fwojciec/distcheck/links"
	"github.com/fwojciec/distcheck/meta"
	locslog "github.com/fwojciec/distcheck/slog"
	"github.com/fwojciec/distcheck/yaml"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "[ERROR] Dist validation failed:", errorText(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file looked up when --config is not given. A missing default
	// file is not an error.
	DefaultConfigPath string

	// Reports produced by the last successful Run, for end-to-end testing.
	Reports []*distcheck.Report
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DefaultConfigPath: yaml.DefaultConfigFile,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("distcheck"),
		kong.Description("Validate a generated static site build directory (JSON-LD, SEO metadata, internal links)."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := m.loadConfig(cli.Config)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	logger = logger.With("run", uuid.NewString())

	// Wire validators
	runner := &fs.Runner{
		Exclude:     cfg.Excludes(),
		Concurrency: cli.Concurrency,
	}
	paths := locslog.NewLoggingPathChecker(fs.NewPathChecker(), logger)

	coordinator := distcheck.NewCoordinator(cli.Dir,
		locslog.NewLoggingValidator(jsonld.NewValidator(cfg.JSONLD, runner, goquery.NewScriptExtractor()), logger),
		locslog.NewLoggingValidator(links.NewValidator(runner, paths), logger),
		locslog.NewLoggingValidator(meta.NewValidator(cfg.Meta, runner), logger),
	)
	if !cli.Quiet {
		coordinator.Out = stdout
	}

	fmt.Fprintln(stdout, "\n=== Dist validation started ===")

	reports, err := coordinator.Run(ctx, cli.Selector)
	if err != nil {
		return err
	}
	m.Reports = reports

	fmt.Fprintln(stdout, "\n=== Dist validation completed ===")
	return nil
}

func (m *Main) loadConfig(path string) (*distcheck.Config, error) {
	if path != "" {
		return yaml.LoadConfig(path, false)
	}
	if m.DefaultConfigPath == "" {
		return &distcheck.Config{}, nil
	}
	return yaml.LoadConfig(m.DefaultConfigPath, true)
}

// errorText returns the user-facing message for err.
func errorText(err error) string {
	if distcheck.ErrorCode(err) == distcheck.EINTERNAL {
		return err.Error()
	}
	return distcheck.ErrorMessage(err)
}
