package cli

import (
	"fmt"

	"github.com/scriptbuilder-labs/scriptbuilder/internal/searchpath"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "List the entries of the system search path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore()
		value, err := store.Read()
		if err != nil {
			return fmt.Errorf("reading %s: %w", store.Location(), err)
		}

		out := cmd.OutOrStdout()
		entries := searchpath.Entries(value, store.Delimiter())
		if len(entries) == 0 {
			fmt.Fprintf(out, "No entries in %s.\n", store.Location())
			return nil
		}
		for _, e := range entries {
			fmt.Fprintln(out, e)
		}
		return nil
	},
}
