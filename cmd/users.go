// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"saprfc/cli/internal/readtable"
	"saprfc/cli/internal/rfc"
)

var usersType string

// usersCmd lists the logon names of USR02.
var usersCmd = &cobra.Command{
	Use:         "users",
	Short:       "List user names of the SAP client",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationRFC: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := openSession()
		if err != nil {
			return err
		}
		defer conn.Close()

		names, err := listUsers(conn, usersType)
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

// listUsers returns the BNAME column of USR02, limited to user type typ
// (A dialog, B system, C communication, S service) when it is set.
func listUsers(conn *rfc.Connection, typ string) ([]string, error) {
	q := readtable.Query{Table: "USR02", Fields: []string{"BNAME"}}
	if typ != "" {
		if len(typ) != 1 || !strings.ContainsAny(strings.ToUpper(typ), "ABCLS") {
			return nil, fmt.Errorf("unknown user type %q", typ)
		}
		q.Where = []string{fmt.Sprintf("USTYP = '%s'", strings.ToUpper(typ))}
	}
	res, err := readtable.Run(conn, q)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(res.Rows))
	for _, r := range res.Rows {
		names = append(names, r[0])
	}
	return names, nil
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.Flags().StringVarP(&usersType, "type", "t", "", "Only users of this type (A, B, C, L or S)")
}
