package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for sbgn2sif and write it to stdout.

  $ source <(sbgn2sif completion bash)
  $ sbgn2sif completion zsh > "${fpath[1]}/_sbgn2sif"
  $ sbgn2sif completion fish > ~/.config/fish/completions/sbgn2sif.fish
  PS> sbgn2sif completion powershell | Out-String | Invoke-Expression

Input arguments complete to .sbgn/.xml files for convert and extract, and to
intermediate tables for simplify and render.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(os.Stdout, true)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}

// completeFiles completes the single positional argument to files with one
// of exts, and the output directory flag to directories.
func completeFiles(cmd *cobra.Command, exts []string) {
	trimmed := make([]string, len(exts))
	for i, ext := range exts {
		trimmed[i] = strings.TrimPrefix(ext, ".")
	}
	cmd.ValidArgsFunction = func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return trimmed, cobra.ShellCompDirectiveFilterFileExt
	}
	_ = cmd.RegisterFlagCompletionFunc("output-dir", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveFilterDirs
	})
}
