// Package cli implements the wingetreport command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wingetreport/pkg/buildinfo"
	"github.com/matzehuels/wingetreport/pkg/config"
	"github.com/matzehuels/wingetreport/pkg/httputil"
	"github.com/matzehuels/wingetreport/pkg/pipeline"
	"github.com/matzehuels/wingetreport/pkg/winget"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for files and display.
	appName = "wingetreport"

	// defaultConfigFile is written by "config init".
	defaultConfigFile = appName + ".toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	console io.Writer
	logFile io.Closer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), console: w}
}

// SetLogFile additionally writes logs to a size-rotated file at path.
func (c *CLI) SetLogFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f := newRotatingFile(path)
	c.Logger.SetOutput(io.MultiWriter(c.console, f))
	c.logFile = f
	return nil
}

// Close releases the log file, if any.
func (c *CLI) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "wingetreport checks winget packages and reports installer metadata",
		Long:          `wingetreport queries winget for a curated list of packages, extracts version and installer metadata, resolves direct download links where winget falls short, and renders the result as HTML, CSV, JSON or a console table.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// sourceOpts are the flags shared by every command that queries packages.
type sourceOpts struct {
	configPath   string
	wingetPath   string
	source       string
	fixtures     string
	concurrency  int
	probeTimeout time.Duration
	queryTimeout time.Duration
	skipEnrich   bool
	skipVersions bool
}

func (o *sourceOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.configPath, "config", "c", "", "package list (.toml, .yaml or plain text); built-in list if empty")
	cmd.Flags().StringVar(&o.wingetPath, "winget", "", "path to the winget executable (default: search PATH)")
	cmd.Flags().StringVar(&o.source, "source", "", "restrict queries to one winget source (e.g. winget, msstore)")
	cmd.Flags().StringVar(&o.fixtures, "fixtures", "", "answer queries from a YAML fixture file instead of running winget")
	cmd.Flags().IntVarP(&o.concurrency, "concurrency", "j", 0, "packages resolved in parallel (default 1)")
	cmd.Flags().DurationVar(&o.probeTimeout, "probe-timeout", 0, "timeout per download probe (default 5s)")
	cmd.Flags().DurationVar(&o.queryTimeout, "query-timeout", 0, "timeout per winget invocation (default 60s)")
	cmd.Flags().BoolVar(&o.skipEnrich, "skip-enrich", false, "do not probe vendor download links")
	cmd.Flags().BoolVar(&o.skipVersions, "skip-versions", false, "do not query version history")
}

// loadConfig reads the package list, falling back to the built-in one.
// Flag values override file values.
func (o *sourceOpts) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}
	if o.concurrency != 0 {
		cfg.Concurrency = o.concurrency
	}
	if o.probeTimeout != 0 {
		cfg.ProbeTimeout.Duration = o.probeTimeout
	}
	if o.queryTimeout != 0 {
		cfg.QueryTimeout.Duration = o.queryTimeout
	}
	if o.source != "" {
		cfg.Source = o.source
	}
	return cfg, nil
}

// options converts the effective config into pipeline options.
func (o *sourceOpts) options(cfg *config.Config, logger *log.Logger) pipeline.Options {
	return pipeline.Options{
		Identifiers:  cfg.Packages,
		Concurrency:  cfg.Concurrency,
		SkipEnrich:   o.skipEnrich,
		SkipVersions: o.skipVersions,
		Logger:       logger,
	}
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(o *sourceOpts, cfg *config.Config) (*pipeline.Runner, error) {
	q, err := newQuerier(o, cfg)
	if err != nil {
		return nil, err
	}
	prober := httputil.NewProber(cfg.ProbeTimeout.Duration)
	return pipeline.NewRunner(q, prober, c.Logger), nil
}

func newQuerier(o *sourceOpts, cfg *config.Config) (winget.Querier, error) {
	if o.fixtures != "" {
		return winget.LoadStatic(o.fixtures)
	}
	opts := []winget.Option{winget.WithTimeout(cfg.QueryTimeout.Duration)}
	if o.wingetPath != "" {
		opts = append(opts, winget.WithPath(o.wingetPath))
	}
	if cfg.Source != "" {
		opts = append(opts, winget.WithSource(cfg.Source))
	}
	return winget.NewClient(opts...), nil
}
