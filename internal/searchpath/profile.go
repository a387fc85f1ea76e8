package searchpath

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scriptbuilder-labs/scriptbuilder/internal/branding"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// ProfileStore keeps the list in a system-wide shell profile such as
// /etc/profile.d/scriptbuilder.sh, as a single line:
//
//	export PATH="$PATH:/opt/scripts/a:/opt/scripts/b"
//
// Login shells source the file, so every listed directory is appended to
// PATH for all users.
type ProfileStore struct {
	Path string
}

func (s *ProfileStore) Delimiter() string { return ":" }

func (s *ProfileStore) Location() string { return s.Path }

// Read parses the profile and returns the directories it appends to PATH.
// The last PATH assignment in the file wins.
func (s *ProfileStore) Read() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading profile %s: %w", s.Path, err)
	}

	file, err := syntax.NewParser().Parse(bytes.NewReader(data), s.Path)
	if err != nil {
		return "", fmt.Errorf("parsing profile %s: %w", s.Path, err)
	}

	// Expanding with an empty PATH leaves only the appended entries.
	cfg := &expand.Config{Env: expand.ListEnviron("PATH=")}

	var value string
	var expandErr error
	syntax.Walk(file, func(node syntax.Node) bool {
		var assigns []*syntax.Assign
		switch n := node.(type) {
		case *syntax.DeclClause:
			assigns = n.Args
		case *syntax.CallExpr:
			assigns = n.Assigns
		default:
			return true
		}
		for _, a := range assigns {
			if a.Name == nil || a.Name.Value != "PATH" || a.Value == nil {
				continue
			}
			lit, err := expand.Literal(cfg, a.Value)
			if err != nil {
				expandErr = err
				return false
			}
			value = strings.TrimPrefix(lit, s.Delimiter())
		}
		return true
	})
	if expandErr != nil {
		return "", fmt.Errorf("expanding PATH in %s: %w", s.Path, expandErr)
	}
	return value, nil
}

// Write rewrites the profile so that it appends value to PATH.
func (s *ProfileStore) Write(value string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}
	if err := os.WriteFile(s.Path, []byte(renderProfile(value)), 0644); err != nil {
		return fmt.Errorf("writing profile %s: %w", s.Path, err)
	}
	return nil
}

func renderProfile(value string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Managed by %s. Directories registered by builds are appended to PATH.\n", branding.CLIName())
	b.WriteString(`export PATH="$PATH`)
	if value != "" {
		b.WriteString(":")
		b.WriteString(escapeDoubleQuoted(value))
	}
	b.WriteString("\"\n")
	return b.String()
}

// escapeDoubleQuoted escapes the characters that keep their meaning inside
// a double-quoted shell word.
func escapeDoubleQuoted(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '"', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
