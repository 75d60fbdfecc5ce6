package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the browse command that opens the interactive report browser.
func (c *CLI) browseCommand() *cobra.Command {
	var opts sourceOpts

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Check packages and explore the results interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context(), &opts)
		},
	}

	opts.register(cmd)
	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, opts *sourceOpts) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(opts, cfg)
	if err != nil {
		return err
	}

	result, err := resolveAll(withLogger(ctx, c.Logger), runner, opts.options(cfg, c.Logger))
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewRecordListModel(documentOf(result)), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
