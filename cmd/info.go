// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"saprfc/cli/internal/rfc"
)

// systemInfoFields are the RFCSI_EXPORT fields shown by info, with labels.
var systemInfoFields = [][2]string{
	{"RFCSYSID", "System ID"},
	{"RFCHOST", "Host"},
	{"RFCDBHOST", "Database host"},
	{"RFCDBSYS", "Database"},
	{"RFCSAPRL", "Release"},
	{"RFCKERNRL", "Kernel"},
	{"RFCOPSYS", "Operating system"},
	{"RFCCHARTYP", "Code page"},
}

// infoCmd shows the RFC_SYSTEM_INFO of the logged-on system.
var infoCmd = &cobra.Command{
	Use:         "info",
	Short:       "Show release and host information of the SAP system",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationRFC: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := openSession()
		if err != nil {
			return err
		}
		defer conn.Close()

		rows, err := systemInfo(conn)
		if err != nil {
			return err
		}
		s, err := pterm.DefaultTable.WithData(rows).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

// systemInfo calls RFC_SYSTEM_INFO and returns label/value rows for the
// fields the system reports.
func systemInfo(conn *rfc.Connection) ([][]string, error) {
	fn, err := conn.Function("RFC_SYSTEM_INFO")
	if err != nil {
		return nil, err
	}
	defer fn.Close()
	if err := fn.Call(); err != nil {
		return nil, err
	}
	export, err := fn.MustParameter("RFCSI_EXPORT")
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for _, f := range systemInfoFields {
		field, err := export.Field(f[0])
		if err != nil {
			// Older releases lack some fields.
			continue
		}
		v, err := field.ReadText()
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{f[1], strings.TrimSpace(v)})
	}
	return rows, nil
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
