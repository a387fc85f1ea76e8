package cli

import (
	"fmt"

	"github.com/scriptbuilder-labs/scriptbuilder/internal/builder"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the manifest and its files without building",
	Long: `Run every check a build performs before it touches the filesystem: load
and validate the manifest, resolve the storage drive, and find the entry point
and included files. Prints the destination a build would use.

Needs no privileges and changes nothing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b := &builder.Builder{
			Strategy: newStrategy(),
			Reporter: newConsole(cmd.OutOrStdout()),
		}
		res, err := b.Plan(manifestPath())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Storage root:  %s\n", res.StorageRoot)
		fmt.Fprintf(out, "Destination:   %s\n", res.Destination)
		fmt.Fprintf(out, "Files:         %d (%d of %d included)\n",
			len(res.Inclusions.Paths()), res.Inclusions.Found(), res.Inclusions.Requested())
		return nil
	},
}
