package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/scriptbuilder-labs/scriptbuilder/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
	rootCmd.AddCommand(versionCmd)
}

// buildInfo is what a binary knows about itself.
type buildInfo struct {
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Date     string `json:"date"`
	Platform string `json:"platform"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Version:  buildVersion,
		Commit:   buildCommit,
		Date:     buildDate,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (b buildInfo) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s version %s (commit: %s, built: %s, %s)\n",
		branding.CLIName(), b.Version, b.Commit, b.Date, b.Platform)
	return err
}

func (b buildInfo) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encoding version info: %w", err)
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentBuild()
		out := cmd.OutOrStdout()
		switch {
		case versionShort:
			_, err := fmt.Fprintln(out, info.Version)
			return err
		case versionJSON:
			return info.writeJSON(out)
		default:
			return info.writeText(out)
		}
	},
}
