package cli

import (
	"fmt"
	"io"

	"github.com/scriptbuilder-labs/scriptbuilder/internal/branding"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/builder"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/console"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/manifest"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/platform"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/searchpath"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for " + branding.DisplayName(),
	Long: `Report whether a build could run here: process privileges, the search
path store, the manifest, and whether the manifest's destination is already
on the search path.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := &doctor{
			out:       cmd.OutOrStdout(),
			privilege: newPrivilege(),
			store:     newStore(),
			strategy:  newStrategy(),
		}
		if failed := d.run(manifestPath()); failed > 0 {
			return fmt.Errorf("doctor found %d problem(s)", failed)
		}
		return nil
	},
}

type doctor struct {
	out       io.Writer
	privilege platform.Privilege
	store     searchpath.Store
	strategy  storage.Strategy
	failed    int
}

func (d *doctor) ok(format string, args ...any) {
	fmt.Fprintf(d.out, "  [ OK ] "+format+"\n", args...)
}

func (d *doctor) warn(format string, args ...any) {
	fmt.Fprintf(d.out, "  [WARN] "+format+"\n", args...)
}

func (d *doctor) fail(format string, args ...any) {
	d.failed++
	fmt.Fprintf(d.out, "  [FAIL] "+format+"\n", args...)
}

// run prints every check and returns the number that failed.
func (d *doctor) run(manifestPath string) int {
	d.checkPrivilege()
	d.checkStore()
	if d.checkManifest(manifestPath) {
		d.checkRegistration(manifestPath)
	}
	return d.failed
}

func (d *doctor) checkPrivilege() {
	fmt.Fprintln(d.out, "Privileges:")
	elevated, err := d.privilege.IsElevated()
	switch {
	case err != nil:
		d.fail("Cannot determine privileges: %v", err)
	case elevated:
		d.ok("Running as administrator")
	default:
		d.warn("Not running as administrator, build will refuse to run")
	}
}

func (d *doctor) checkStore() {
	fmt.Fprintln(d.out, "Search path:")
	value, err := d.store.Read()
	if err != nil {
		d.fail("Cannot read %s: %v", d.store.Location(), err)
		return
	}
	d.ok("%s is readable (%d entries)", d.store.Location(), len(searchpath.Entries(value, d.store.Delimiter())))
}

// checkManifest reports whether the manifest exists and matches the schema.
func (d *doctor) checkManifest(path string) bool {
	fmt.Fprintln(d.out, "Manifest:")
	if !manifest.Exists(path) {
		d.warn("%s not found", path)
		return false
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		d.fail("Cannot parse %s: %v", path, err)
		return false
	}
	if !result.Valid {
		d.fail("%s has %d validation issue(s)", path, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(d.out, "         %s\n", issue)
		}
		return false
	}
	d.ok("%s is valid", path)
	return true
}

func (d *doctor) checkRegistration(path string) {
	fmt.Fprintln(d.out, "Destination:")
	b := &builder.Builder{Strategy: d.strategy, Reporter: console.Discard{}}
	res, err := b.Plan(path)
	if err != nil {
		d.fail("Cannot resolve destination: %v", err)
		return
	}

	value, err := d.store.Read()
	if err != nil {
		d.fail("Cannot read %s: %v", d.store.Location(), err)
		return
	}

	// A build skips registration whenever the destination appears anywhere
	// in the value, so report that case separately from a real entry.
	registered, err := searchpath.IsRegistered(d.store, res.Destination)
	switch {
	case err != nil:
		d.fail("Cannot read %s: %v", d.store.Location(), err)
	case registered && searchpath.HasEntry(value, d.store.Delimiter(), res.Destination):
		d.ok("%s is on the search path", res.Destination)
	case registered:
		d.warn("%s only appears inside another search path entry, build will not add it", res.Destination)
	default:
		d.warn("%s is not on the search path yet", res.Destination)
	}
}
