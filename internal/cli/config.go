package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wingetreport/pkg/config"
	"github.com/matzehuels/wingetreport/pkg/httputil"
	"github.com/matzehuels/wingetreport/pkg/pipeline"
	"github.com/matzehuels/wingetreport/pkg/winget"
)

// configCommand creates the package list management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the package list file",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter package list with the built-in packages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg := config.Default()
			cfg.Concurrency = pipeline.DefaultConcurrency
			cfg.ProbeTimeout.Duration = httputil.DefaultProbeTimeout
			cfg.QueryTimeout.Duration = winget.DefaultTimeout
			data, err := cfg.Encode()
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			printSuccess("Wrote %d packages", len(cfg.Packages))
			printFile(path)
			printNewline()
			printNextStep("Check them", appName+" check -c "+path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	var opts sourceOpts

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective package list and settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			source := "built-in list"
			if opts.configPath != "" {
				source = opts.configPath
			}
			fmt.Println(StyleTitle.Render("Configuration"))
			printKeyValue("Source", source)
			printKeyValue("Concurrency", valueOr(cfg.Concurrency, pipeline.DefaultConcurrency))
			printKeyValue("Probe", durationOr(cfg.ProbeTimeout, httputil.DefaultProbeTimeout))
			printKeyValue("Query", durationOr(cfg.QueryTimeout, winget.DefaultTimeout))
			if cfg.Source != "" {
				printKeyValue("Repository", cfg.Source)
			}
			printNewline()
			fmt.Println(StyleTitle.Render(fmt.Sprintf("Packages (%d)", len(cfg.Packages))))
			for _, id := range cfg.Packages {
				printDetail("%s", id)
			}
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

func valueOr(v, def int) string {
	if v == 0 {
		v = def
	}
	return fmt.Sprint(v)
}

func durationOr(d config.Duration, def time.Duration) string {
	if d.Duration == 0 {
		return def.String()
	}
	return d.String()
}
