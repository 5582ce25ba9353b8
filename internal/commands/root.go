package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/centavo-dev/centavo/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "centavo",
		Short:   "Personal finance ledger in plain CSV",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newConfirmCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newListCommand())

	return rootCmd
}
