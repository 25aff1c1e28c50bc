// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

var levels = map[string]pterm.LogLevel{
	"trace": pterm.LogLevelTrace,
	"debug": pterm.LogLevelDebug,
	"info":  pterm.LogLevelInfo,
	"warn":  pterm.LogLevelWarn,
	"error": pterm.LogLevelError,
	"off":   pterm.LogLevelDisabled,
}

// ParseLevel maps a level name from the config or the environment.
func ParseLevel(name string) (pterm.LogLevel, error) {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(name))]; ok {
		return l, nil
	}
	return pterm.LogLevelInfo, fmt.Errorf("unknown log level %q (use trace, debug, info, warn, error or off)", name)
}

// New returns a logger writing to w at the named level. An unknown level
// falls back to info.
func New(level string, w io.Writer) *pterm.Logger {
	l, _ := ParseLevel(level)
	return pterm.DefaultLogger.WithWriter(w).WithLevel(l)
}
