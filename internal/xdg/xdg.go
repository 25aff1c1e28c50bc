// Package xdg resolves the XDG Base Directory paths used by saprfc.
// Directories are created with private permissions because the config file
// names SAP systems and users.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name below the XDG base directories.
const AppName = "saprfc"

// ConfigDir returns the XDG config directory for saprfc, creating it with
// mode 0700 if missing. It falls back to ~/.config/saprfc when
// XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return dir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for saprfc, used for trace
// files. It falls back to ~/.local/state/saprfc.
func StateDir() (string, error) {
	return dir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func dir(env, fallback string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, fallback)
	}
	d := filepath.Join(base, AppName)
	if err := os.MkdirAll(d, 0o700); err != nil { // private dir
		return "", err
	}
	return d, nil
}
