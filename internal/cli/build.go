package cli

import (
	"github.com/scriptbuilder-labs/scriptbuilder/internal/builder"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Package the script described by the manifest",
	Long: `Load the manifest, copy the entry point and its included files into
<driver>/<scriptStorage>/<project>, rename the entry point, write the launcher,
and add the package directory to the system search path.

Requires administrator privileges. Running the root command with no
subcommand does the same thing.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	b := &builder.Builder{
		Strategy:  newStrategy(),
		Store:     newStore(),
		Privilege: newPrivilege(),
		Reporter:  newConsole(cmd.OutOrStdout()),
	}
	_, err := b.Run(manifestPath())
	return err
}
