//go:build windows

package searchpath

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// environmentKey holds the machine-wide environment variables.
const environmentKey = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`

// RegistryStore keeps the list in the machine-wide Path registry value.
type RegistryStore struct{}

func (RegistryStore) Delimiter() string { return ";" }

func (RegistryStore) Location() string { return `HKLM\` + environmentKey + `\Path` }

func (RegistryStore) Read() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, environmentKey, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("opening environment key: %w", err)
	}
	defer k.Close()

	value, _, err := k.GetStringValue("Path")
	if errors.Is(err, registry.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying Path: %w", err)
	}
	return value, nil
}

func (RegistryStore) Write(value string) error {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, environmentKey, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("opening environment key: %w", err)
	}
	defer k.Close()

	if err := k.SetExpandStringValue("Path", value); err != nil {
		return fmt.Errorf("setting Path: %w", err)
	}
	return nil
}

// Default returns the registry-backed store. profilePath is unused on Windows.
func Default(profilePath string) Store {
	return RegistryStore{}
}
