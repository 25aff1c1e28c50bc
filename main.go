// Package main is the entry point for the saprfc CLI.
package main

import (
	"saprfc/cli/cmd"
)

func main() {
	cmd.Execute()
}
