// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal provides prompts and cursor helpers for interactive commands.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const defaultWidth = 80

// ClearPreviousLines erases an answered prompt from stdout so that secrets
// typed in clear text (a DSN with a password) do not stay on screen.
// textLength is prompt plus answer; wrapping is derived from the terminal
// width. Nothing is written when stdout is not a terminal.
func ClearPreviousLines(textLength int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	width := defaultWidth
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		width = w
	}
	clearLines(os.Stdout, linesUsed(textLength, width))
}

// linesUsed returns the rows taken by textLength characters plus the empty
// row the cursor sits on after Enter.
func linesUsed(textLength, width int) int {
	rows := (textLength + width - 1) / width
	if rows < 1 {
		rows = 1
	}
	return rows + 1
}

func clearLines(w io.Writer, n int) {
	for i := 0; i < n; i++ {
		fmt.Fprint(w, "\r\x1b[2K")
		if i < n-1 {
			fmt.Fprint(w, "\x1b[1A")
		}
	}
}
