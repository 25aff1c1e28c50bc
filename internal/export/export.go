// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package export copies RFC_READ_TABLE results into a PostgreSQL database.
// Every SAP column becomes a text column; values are stored exactly as the
// split result holds them.
package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/juju/errors"
	"github.com/pterm/pterm"

	"saprfc/cli/internal/readtable"
)

// Mode selects what happens to rows already in the target table.
type Mode int

const (
	// Append keeps existing rows.
	Append Mode = iota
	// Replace deletes existing rows inside the same transaction.
	Replace
)

// Sink writes results through a connection pool.
type Sink struct {
	// Pool is the PostgreSQL connection pool
	Pool      *pgxpool.Pool
	inspector *SchemaInspector
	log       *pterm.Logger
}

// New creates a Sink from an existing pgx pool.
func New(pool *pgxpool.Pool, log *pterm.Logger) *Sink {
	if log == nil {
		log = &pterm.DefaultLogger
	}
	return &Sink{Pool: pool, inspector: NewSchemaInspector(), log: log}
}

// Write stores res in target ("table" or "schema.table"), creating the table
// when it does not exist. It returns the number of rows copied. Nothing is
// committed unless every row was copied.
func (s *Sink) Write(ctx context.Context, target string, res *readtable.Result, mode Mode) (int64, error) {
	if res == nil || len(res.Fields) == 0 {
		return 0, errors.NotValidf("result without fields")
	}
	schema, table := parseTableName(target)
	cols := columnNames(res.Fields)

	conn, err := s.Pool.Acquire(ctx)
	if err != nil {
		return 0, errors.Annotate(err, "acquiring export connection")
	}
	defer conn.Release()

	existing, err := s.inspector.Columns(ctx, conn, schema, table)
	if err != nil {
		return 0, errors.Annotatef(err, "inspecting %s.%s", schema, table)
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return 0, errors.Annotate(err, "begin transaction")
	}
	defer tx.Rollback(ctx)

	if len(existing) == 0 {
		s.log.Debug("creating export table", s.log.Args("schema", schema, "table", table, "columns", len(cols)))
		if _, err := tx.Exec(ctx, createStatement(schema, table, cols)); err != nil {
			return 0, errors.Annotatef(err, "creating %s.%s", schema, table)
		}
		s.inspector.Forget(schema, table)
	} else if missing := missingColumns(existing, cols); len(missing) > 0 {
		return 0, errors.NotValidf("%s.%s lacks columns %s", schema, table, strings.Join(missing, ", "))
	}

	if mode == Replace {
		if _, err := tx.Exec(ctx, "DELETE FROM "+pgx.Identifier{schema, table}.Sanitize()); err != nil {
			return 0, errors.Annotatef(err, "clearing %s.%s", schema, table)
		}
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{schema, table}, cols, pgx.CopyFromRows(rowsOf(res)))
	if err != nil {
		return 0, errors.Annotatef(err, "copying into %s.%s", schema, table)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, errors.Annotate(err, "commit failed")
	}
	s.log.Debug("export committed", s.log.Args("table", target, "rows", n))
	return n, nil
}

// parseTableName splits "schema.table"; a bare name lands in public.
func parseTableName(name string) (schema, table string) {
	if s, t, ok := strings.Cut(name, "."); ok {
		return s, t
	}
	return "public", name
}

// columnNames maps SAP field names to lowercase column names. Characters
// PostgreSQL would need quoting for, like the slash of namespaced fields,
// become underscores.
func columnNames(fields []readtable.Field) []string {
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
				return r
			case r >= 'A' && r <= 'Z':
				return r + ('a' - 'A')
			}
			return '_'
		}, f.Name)
	}
	return cols
}

func createStatement(schema, table string, cols []string) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = pgx.Identifier{c}.Sanitize() + " text"
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", pgx.Identifier{schema, table}.Sanitize(), strings.Join(defs, ", "))
}

func missingColumns(existing, want []string) []string {
	have := make(map[string]bool, len(existing))
	for _, c := range existing {
		have[c] = true
	}
	var missing []string
	for _, c := range want {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

func rowsOf(res *readtable.Result) [][]any {
	rows := make([][]any, len(res.Rows))
	for i, r := range res.Rows {
		row := make([]any, len(res.Fields))
		for j := range row {
			if j < len(r) {
				row[j] = r[j]
			}
		}
		rows[i] = row
	}
	return rows
}
