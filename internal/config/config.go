// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; passwords and the export DSN go
// to the OS keychain.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"saprfc/cli/internal/connparams"
	clierrors "saprfc/cli/internal/errors"
	"saprfc/cli/internal/xdg"
)

// Environment variables that override the file.
const (
	EnvLibrary  = "SAPRFC_LIBRARY"
	EnvProfile  = "SAPRFC_PROFILE"
	EnvLogLevel = "SAPRFC_LOG_LEVEL"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	// Library is the path of the sapnwrfc shared library; empty means the
	// platform default name resolved by the loader.
	Library  string             `toml:"library"`
	LogLevel string             `toml:"log_level"`
	Profile  string             `toml:"profile"`
	Profiles map[string]Profile `toml:"profiles"`
}

// Profile describes one SAP system logon without the password.
type Profile struct {
	ASHost    string            `toml:"ashost,omitempty"`
	SysNr     string            `toml:"sysnr,omitempty"`
	MSHost    string            `toml:"mshost,omitempty"`
	Group     string            `toml:"group,omitempty"`
	SAPRouter string            `toml:"saprouter,omitempty"`
	Client    string            `toml:"client,omitempty"`
	User      string            `toml:"user,omitempty"`
	Lang      string            `toml:"lang,omitempty"`
	Extra     map[string]string `toml:"extra,omitempty"`
}

// Params returns the SDK connection parameters of p with passwd added.
// Extra entries follow in name order and may override the named fields.
func (p Profile) Params(passwd string) connparams.Params {
	params := connparams.Simple{
		ASHost: p.ASHost,
		SysNr:  p.SysNr,
		Client: p.Client,
		User:   p.User,
		Passwd: passwd,
		Lang:   p.Lang,
	}.Params()
	for _, kv := range [][2]string{{connparams.KeyMSHost, p.MSHost}, {"group", p.Group}, {"saprouter", p.SAPRouter}} {
		if kv[1] != "" {
			params = params.Add(kv[0], kv[1])
		}
	}
	return params.Merge(connparams.FromMap(p.Extra))
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{LogLevel: "info", Profile: "default", Profiles: map[string]Profile{}}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and applies environment overrides; a missing
// file yields the defaults.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(p)
}

// LoadFrom is Load for an explicit path.
func LoadFrom(path string) (Config, error) {
	c := Default()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return c, fmt.Errorf("load config: %w", err)
	default:
		if meta.IsDefined("library") {
			c.Library = strings.TrimSpace(raw.Library)
		}
		if meta.IsDefined("log_level") {
			c.LogLevel = strings.TrimSpace(raw.LogLevel)
		}
		if meta.IsDefined("profile") {
			c.Profile = strings.TrimSpace(raw.Profile)
		}
		if meta.IsDefined("profiles") {
			c.Profiles = raw.Profiles
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return c, fmt.Errorf("load config: unknown key %s", undecoded[0])
		}
	}

	if v := os.Getenv(EnvLibrary); v != "" {
		c.Library = v
	}
	if v := os.Getenv(EnvProfile); v != "" {
		c.Profile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if c.Profiles == nil {
		c.Profiles = map[string]Profile{}
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(p, c)
}

// SaveTo is Save for an explicit path.
func SaveTo(path string, c Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o600)
}

// Active returns the profile named name, or the configured default profile
// when name is empty.
func (c Config) Active(name string) (string, Profile, error) {
	if name == "" {
		name = c.Profile
	}
	p, ok := c.Profiles[name]
	if !ok {
		return name, p, clierrors.New(clierrors.ProfileMissing,
			fmt.Sprintf("profile %q is not configured (known: %s); run 'saprfc login --profile %s'", name, c.profileList(), name))
	}
	return name, p, nil
}

func (c Config) profileList() string {
	if len(c.Profiles) == 0 {
		return "none"
	}
	names := make([]string, 0, len(c.Profiles))
	for n := range c.Profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
