// Package config manages user-level settings stored at ~/.scriptbuilder/config.yaml.
// Values can be overridden with SCRIPTBUILDER_* environment variables; the
// keys cover the default manifest path, the Unix search-path profile, and
// console coloring.
package config
