// Package cli defines the Cobra command tree for the scriptbuilder CLI. The
// root command runs a build; the other files each register one subcommand.
// Commands only parse flags and format output, the pipeline lives in
// internal/builder.
package cli
