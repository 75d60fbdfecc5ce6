package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wingetreport/pkg/observability"
	"github.com/matzehuels/wingetreport/pkg/pipeline"
	"github.com/matzehuels/wingetreport/pkg/report"
)

// formatTable prints the console table instead of writing a report file.
const formatTable = "table"

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	sourceOpts
	format string // html, csv, json or table
	output string // report path; stdout if empty
}

// checkCommand creates the check command that resolves every configured package.
func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Resolve all configured packages and write a report",
		Long: `Resolve all configured packages and write a report.

Each package is queried with "winget show", its version history is read
for the previous version, Adobe Acrobat Reader gets a verified direct
download link, and a missing architecture is inferred from the URL.

Without --format the output type follows the --output extension
(.html, .csv, .json); without either a table is printed.`,
		Example: `  # Console table for the built-in package list
  wingetreport check

  # HTML report for a custom list, four packages at a time
  wingetreport check -c packages.toml -j 4 -o report.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(opts.format, opts.output)
			if err != nil {
				return err
			}
			opts.format = format
			return c.runCheck(cmd.Context(), &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: html, csv, json, table")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// resolveFormat picks the output format from the flag or the output extension.
func resolveFormat(format, output string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		if output == "" {
			return formatTable, nil
		}
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if format == "htm" {
			format = report.FormatHTML
		}
		if format == "" {
			format = report.FormatHTML
		}
	}
	if format == formatTable {
		if output != "" {
			return "", fmt.Errorf("format %q writes to the terminal; drop --output or pick html, csv or json", formatTable)
		}
		return format, nil
	}
	if err := report.ValidateFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

func (c *CLI) runCheck(ctx context.Context, opts *checkOpts) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(&opts.sourceOpts, cfg)
	if err != nil {
		return err
	}

	ctx = withLogger(ctx, c.Logger)
	result, err := resolveAll(ctx, runner, opts.options(cfg, c.Logger))
	if err != nil {
		return err
	}

	if opts.format == formatTable {
		fmt.Println(recordTable(result.Records))
	} else {
		if err := writeReport(opts.output, opts.format, documentOf(result)); err != nil {
			return err
		}
		// The report itself went to stdout; keep it parseable.
		if opts.output == "" {
			return nil
		}
	}

	printStats(result.Stats)
	for _, r := range result.Failed() {
		printWarning("%s: %s", r.ID, r.Error)
	}
	return nil
}

// resolveAll runs the pipeline behind a spinner that counts finished packages.
func resolveAll(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) (*pipeline.Result, error) {
	prog := newProgress(loggerFromContext(ctx))
	total := len(opts.Identifiers)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Checking %d packages...", total))

	hooks := &spinnerHooks{spinner: spinner, total: total}
	observability.SetPipelineHooks(hooks)
	defer observability.SetPipelineHooks(observability.NoopPipelineHooks{})

	spinner.Start()
	result, err := runner.Execute(ctx, opts)
	spinner.Stop()
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Checked %d packages", result.Stats.Packages))
	return result, nil
}

// spinnerHooks reports per-package progress on a spinner.
type spinnerHooks struct {
	observability.NoopPipelineHooks
	spinner *Spinner
	total   int
	done    atomic.Int32
}

func (h *spinnerHooks) OnResolveComplete(_ context.Context, id string, _ time.Duration, _ error) {
	n := h.done.Add(1)
	h.spinner.SetMessage(fmt.Sprintf("Checked %d/%d packages (%s)", n, h.total, id))
}

// documentOf converts a pipeline result into renderer input.
func documentOf(result *pipeline.Result) report.Document {
	return report.Document{
		RunID:       result.RunID,
		GeneratedAt: result.GeneratedAt,
		Records:     result.Records,
	}
}

// writeReport renders doc to path, or to stdout when path is empty.
func writeReport(path, format string, doc report.Document) error {
	if path == "" {
		return report.Write(os.Stdout, format, doc)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := report.Write(f, format, doc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	printSuccess("Report written")
	printFile(path)
	return nil
}
