package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wingetreport/pkg/errors"
	"github.com/matzehuels/wingetreport/pkg/report"
)

// showCommand creates the show command that resolves a single package.
func (c *CLI) showCommand() *cobra.Command {
	var (
		opts   sourceOpts
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "show <package-id>",
		Short: "Resolve one package and print its record",
		Example: `  wingetreport show Adobe.Acrobat.Reader.64-bit
  wingetreport show Google.Chrome --json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: opts.completePackageIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if err := errors.ValidateIdentifier(id); err != nil {
				return err
			}
			return c.runShow(cmd.Context(), &opts, id, asJSON)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the record as JSON")

	return cmd
}

func (c *CLI) runShow(ctx context.Context, opts *sourceOpts, id string, asJSON bool) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	cfg.Packages = []string{id}
	runner, err := c.newRunner(opts, cfg)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Querying "+id+"...")
	spinner.Start()
	result, err := runner.Execute(ctx, opts.options(cfg, c.Logger))
	spinner.Stop()
	if err != nil {
		return err
	}

	rec := result.Records[0]
	if asJSON {
		return report.WriteJSON(os.Stdout, documentOf(result))
	}

	if rec.Failed {
		printError("%s", rec.Name)
	} else {
		printSuccess("%s %s", StyleTitle.Render(rec.Name), StyleNumber.Render(rec.Version))
	}
	printNewline()
	printRecord(rec)
	return nil
}
