// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	clierrors "saprfc/cli/internal/errors"
	"saprfc/cli/internal/dsn"
	"saprfc/cli/internal/export"
	"saprfc/cli/internal/keychain"
	"saprfc/cli/internal/readtable"
)

var readOpts struct {
	fields    []string
	where     []string
	delimiter string
	rowCount  int
	rowSkips  int
	raw       bool
	exportTo  string
	exportDSN string
	replace   bool
}

// readtableCmd reads a table through RFC_READ_TABLE and prints or exports it.
var readtableCmd = &cobra.Command{
	Use:   "readtable TABLE",
	Short: "Read an SAP table with RFC_READ_TABLE",
	Long: `readtable reads rows of a transparent table through RFC_READ_TABLE.

Rows are printed as a table unless --export names a PostgreSQL table to copy
them into. The export DSN is taken from --export-dsn or from the keychain
(see 'saprfc connect').

Example:
  saprfc readtable USR02 --fields BNAME,USTYP --where "USTYP = 'A'" --rowcount 20`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{annotationRFC: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		q := readtable.Query{
			Table:     strings.ToUpper(args[0]),
			Fields:    upper(readOpts.fields),
			Where:     readOpts.where,
			Delimiter: readOpts.delimiter,
			RowCount:  readOpts.rowCount,
			RowSkips:  readOpts.rowSkips,
		}

		conn, err := openSession()
		if err != nil {
			return err
		}
		defer conn.Close()

		var res *readtable.Result
		err = spin("Reading "+q.Table, func() error {
			var err error
			res, err = readtable.Run(conn, q)
			return err
		})
		if err != nil {
			return err
		}

		if readOpts.exportTo != "" {
			return exportResult(cmd.Context(), cmd, res)
		}
		if readOpts.raw {
			for _, line := range res.Raw {
				fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(line, " "))
			}
			return nil
		}
		s, err := pterm.DefaultTable.WithHasHeader().WithData(resultRows(res)).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		fmt.Fprintf(cmd.OutOrStdout(), "%d rows\n", len(res.Rows))
		return nil
	},
}

func upper(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToUpper(strings.TrimSpace(s))
	}
	return out
}

// resultRows returns the header followed by the data rows.
func resultRows(res *readtable.Result) [][]string {
	header := make([]string, len(res.Fields))
	for i, f := range res.Fields {
		header[i] = f.Name
	}
	return append([][]string{header}, res.Rows...)
}

func exportResult(ctx context.Context, cmd *cobra.Command, res *readtable.Result) error {
	target := readOpts.exportDSN
	if target == "" {
		km, err := keychain.GetManager()
		if err != nil {
			return clierrors.Wrap(clierrors.ExportFailed, "no keychain available; pass --export-dsn", err)
		}
		if target, err = km.LoadExportDSN(); err != nil {
			return clierrors.Wrap(clierrors.ExportFailed, "no export database configured; run 'saprfc connect'", err)
		}
	}
	normalized, err := dsn.Parse(target)
	if err != nil {
		return err
	}

	ctxConn, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctxConn, normalized)
	if err != nil {
		return clierrors.Wrap(clierrors.ExportFailed, "connect to export database", err)
	}
	defer pool.Close()

	mode := export.Append
	if readOpts.replace {
		mode = export.Replace
	}
	n, err := export.New(pool, app.log).Write(ctx, readOpts.exportTo, res, mode)
	if err != nil {
		return clierrors.Wrap(clierrors.ExportFailed, "export to "+readOpts.exportTo, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ %d rows copied into %s\n", n, readOpts.exportTo)
	return nil
}

func init() {
	rootCmd.AddCommand(readtableCmd)
	f := readtableCmd.Flags()
	f.StringSliceVarP(&readOpts.fields, "fields", "f", nil, "Columns to read (default all)")
	f.StringArrayVarP(&readOpts.where, "where", "w", nil, "Selection condition in ABAP SQL; repeat for more lines")
	f.StringVar(&readOpts.delimiter, "delimiter", "", "Single character placed between columns")
	f.IntVarP(&readOpts.rowCount, "rowcount", "n", 0, "Maximum number of rows (0 reads all)")
	f.IntVar(&readOpts.rowSkips, "rowskips", 0, "Rows to skip")
	f.BoolVar(&readOpts.raw, "raw", false, "Print the unsplit data lines")
	f.StringVar(&readOpts.exportTo, "export", "", "Copy the rows into this PostgreSQL table (schema.table)")
	f.StringVar(&readOpts.exportDSN, "export-dsn", "", "PostgreSQL DSN for --export")
	f.BoolVar(&readOpts.replace, "replace", false, "Delete existing rows of the export table first")
}
