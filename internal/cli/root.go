package cli

import (
	"errors"

	"github.com/scriptbuilder-labs/scriptbuilder/internal/branding"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/builder"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	manifestFlag string
	noColor      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&manifestFlag, "manifest", "m", "", "Path to the manifest file (default \""+config.DefaultManifest+"\")")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` packages a script and the files it needs into managed storage,
hides the entry point behind a random name, writes a launcher for it, and
puts the package directory on the system search path.

Run it from the project directory, next to intents.json.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runBuild,
}

// Execute runs the root command with build info injected via ldflags. A
// failing command is reported as a single FATAL line on stderr.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		reportFatal(err)
	}
	return err
}

func reportFatal(err error) {
	c := newConsole(rootCmd.ErrOrStderr())

	var se *builder.StepError
	if errors.As(err, &se) {
		c.Fatal("%s: %v", se.Step, se.Err)
		return
	}
	c.Fatal("%v", err)
}
