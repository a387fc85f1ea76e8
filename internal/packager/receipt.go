package packager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/branding"
	"go.yaml.in/yaml/v3"
)

// Receipt records one build in its destination directory.
type Receipt struct {
	BuildID    string    `yaml:"build_id"`
	BuiltAt    time.Time `yaml:"built_at"`
	EntryPoint string    `yaml:"entry_point"`
	Renamed    string    `yaml:"renamed"`
	Launcher   string    `yaml:"launcher"`
	Version    string    `yaml:"version,omitempty"`
}

func newReceipt(entryName, renamed, launcher, version string) *Receipt {
	return &Receipt{
		BuildID:    uuid.New().String(),
		BuiltAt:    time.Now().UTC().Truncate(time.Second),
		EntryPoint: entryName,
		Renamed:    renamed,
		Launcher:   launcher,
		Version:    version,
	}
}

// ReceiptPath returns the receipt location inside dir.
func ReceiptPath(dir string) string {
	return filepath.Join(dir, branding.ReceiptFile())
}

// ReadReceipt loads the receipt in dir. A missing receipt returns nil
// without error.
func ReadReceipt(dir string) (*Receipt, error) {
	data, err := os.ReadFile(ReceiptPath(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading receipt: %w", err)
	}

	var r Receipt
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing receipt: %w", err)
	}
	return &r, nil
}

// WriteReceipt stores r in dir, replacing any previous receipt.
func WriteReceipt(dir string, r *Receipt) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling receipt: %w", err)
	}
	if err := os.WriteFile(ReceiptPath(dir), data, 0644); err != nil {
		return fmt.Errorf("writing receipt: %w", err)
	}
	return nil
}

// IsDowngrade reports whether next is an older version than prev. Versions
// that do not parse as semver never count as a downgrade.
func IsDowngrade(prev, next string) bool {
	if prev == "" || next == "" {
		return false
	}
	pv, err := semver.NewVersion(strings.TrimPrefix(prev, "v"))
	if err != nil {
		return false
	}
	nv, err := semver.NewVersion(strings.TrimPrefix(next, "v"))
	if err != nil {
		return false
	}
	return nv.LessThan(pv)
}

// staleEntry returns the previously renamed entry point a receipt points at,
// or "" when there is nothing safe to remove.
func (r *Receipt) staleEntry() string {
	if r == nil || r.Renamed == "" {
		return ""
	}
	if filepath.Base(r.Renamed) != r.Renamed || r.Renamed == "." || r.Renamed == ".." {
		return ""
	}
	return r.Renamed
}
