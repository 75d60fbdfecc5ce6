package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wingetreport/pkg/report"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand writes a shell completion script. Besides subcommands
// and flags, the scripts complete package identifiers for "show" from the
// package list and report formats for "check --format".
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate a shell completion script",
		Long: `Generate a completion script for bash, zsh, fish or powershell.

Package identifiers offered for "wingetreport show" come from the package
list given with --config, or the built-in list.`,
		Example: `  source <(wingetreport completion bash)
  wingetreport completion zsh > "${fpath[1]}/_wingetreport"
  wingetreport completion fish > ~/.config/fish/completions/wingetreport.fish
  wingetreport completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, root := cmd.OutOrStdout(), cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
	return cmd
}

// completePackageIDs offers identifiers from the package list selected by
// --config that start with toComplete, ignoring case.
func (o *sourceOpts) completePackageIDs(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	prefix := strings.ToLower(toComplete)
	var ids []string
	for _, id := range cfg.Packages {
		if strings.HasPrefix(strings.ToLower(id), prefix) {
			ids = append(ids, id)
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats offers the values accepted by check --format.
func completeFormats(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		report.FormatHTML + "\tHTML report",
		report.FormatCSV + "\tcomma-separated values",
		report.FormatJSON + "\tJSON document",
		formatTable + "\tconsole table",
	}, cobra.ShellCompDirectiveNoFileComp
}
