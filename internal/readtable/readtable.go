// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package readtable reads database tables of an SAP system through the
// RFC_READ_TABLE function module.
package readtable

import (
	"strconv"
	"strings"

	"github.com/juju/errors"

	"saprfc/cli/internal/rfc"
)

// FunctionName is the remote function module used by Run.
const FunctionName = "RFC_READ_TABLE"

// optionWidth is the width of one OPTIONS line.
const optionWidth = 72

// Query selects rows of one table.
type Query struct {
	Table string
	// Fields limits the result to these columns; empty means all.
	Fields []string
	// Where holds an ABAP SQL condition, one or more lines.
	Where     []string
	Delimiter string
	// RowCount limits the number of rows; zero means no limit.
	RowCount int
	RowSkips int
}

// Field describes one column of a Result.
type Field struct {
	Name   string
	Offset int
	Length int
	Type   string
	Text   string
}

// Result holds the rows of a Query split into columns.
type Result struct {
	Fields []Field
	Rows   [][]string
	// Raw holds each data line exactly as returned, blank padding included.
	Raw []string
}

// Run executes q on conn. The call frame is released before Run returns.
func Run(conn *rfc.Connection, q Query) (*Result, error) {
	if strings.TrimSpace(q.Table) == "" {
		return nil, errors.NotValidf("empty table name")
	}
	if q.RowCount < 0 || q.RowSkips < 0 {
		return nil, errors.NotValidf("negative row count or skip")
	}

	fn, err := conn.Function(FunctionName)
	if err != nil {
		return nil, errors.Annotatef(err, "resolving %s", FunctionName)
	}
	defer fn.Close()

	if err := setInputs(fn, q); err != nil {
		return nil, errors.Annotatef(err, "preparing %s for %s", FunctionName, q.Table)
	}
	if err := fn.Call(); err != nil {
		return nil, errors.Annotatef(err, "reading %s", q.Table)
	}

	res := &Result{}
	if res.Fields, err = readFields(fn); err != nil {
		return nil, errors.Annotate(err, "reading field list")
	}
	if res.Raw, err = readData(fn); err != nil {
		return nil, errors.Annotate(err, "reading data")
	}
	for _, line := range res.Raw {
		res.Rows = append(res.Rows, split(line, res.Fields))
	}
	return res, nil
}

func setInputs(fn *rfc.Function, q Query) error {
	if err := set(fn, "QUERY_TABLE", q.Table); err != nil {
		return err
	}
	if q.Delimiter != "" {
		if err := set(fn, "DELIMITER", q.Delimiter); err != nil {
			return err
		}
	}
	if q.RowCount > 0 {
		if err := setInt(fn, "ROWCOUNT", q.RowCount); err != nil {
			return err
		}
	}
	if q.RowSkips > 0 {
		if err := setInt(fn, "ROWSKIPS", q.RowSkips); err != nil {
			return err
		}
	}
	if err := appendLines(fn, "FIELDS", "FIELDNAME", q.Fields); err != nil {
		return err
	}
	var options []string
	for _, w := range q.Where {
		options = append(options, chunk(w, optionWidth)...)
	}
	return appendLines(fn, "OPTIONS", "TEXT", options)
}

func set(fn *rfc.Function, name, value string) error {
	p, err := fn.MustParameter(name)
	if err != nil {
		return err
	}
	return p.WriteText(value)
}

func setInt(fn *rfc.Function, name string, value int) error {
	p, err := fn.MustParameter(name)
	if err != nil {
		return err
	}
	return p.WriteInt(int64(value))
}

// appendLines adds one row per value to table, writing it into column.
func appendLines(fn *rfc.Function, table, column string, values []string) error {
	if len(values) == 0 {
		return nil
	}
	t, err := fn.MustParameter(table)
	if err != nil {
		return err
	}
	col, err := t.Field(column)
	if err != nil {
		return err
	}
	if err := t.AppendRows(len(values)); err != nil {
		return err
	}
	for i, v := range values {
		if err := t.Seek(i); err != nil {
			return err
		}
		if err := col.WriteText(v); err != nil {
			return err
		}
	}
	return nil
}

// chunk splits s into pieces of at most width runes, breaking at the last
// blank before the limit where there is one.
func chunk(s string, width int) []string {
	var out []string
	r := []rune(s)
	for len(r) > width {
		cut := width
		for i := width; i > 0; i-- {
			if r[i] == ' ' {
				cut = i
				break
			}
		}
		out = append(out, string(r[:cut]))
		r = r[cut:]
	}
	return append(out, string(r))
}

func readFields(fn *rfc.Function) ([]Field, error) {
	t, err := fn.MustParameter("FIELDS")
	if err != nil {
		return nil, err
	}
	n, err := t.RowCount()
	if err != nil {
		return nil, err
	}
	fields := make([]Field, 0, n)
	for i := 0; i < n; i++ {
		if err := t.Seek(i); err != nil {
			return nil, err
		}
		var col [5]string
		for j, name := range []string{"FIELDNAME", "OFFSET", "LENGTH", "TYPE", "FIELDTEXT"} {
			p, err := t.Field(name)
			if err != nil {
				return nil, err
			}
			v, err := p.ReadFixedText()
			if err != nil {
				return nil, err
			}
			col[j] = strings.TrimSpace(v)
		}
		offset, err := strconv.Atoi(col[1])
		if err != nil {
			return nil, errors.NotValidf("offset %q of field %s", col[1], col[0])
		}
		length, err := strconv.Atoi(col[2])
		if err != nil {
			return nil, errors.NotValidf("length %q of field %s", col[2], col[0])
		}
		fields = append(fields, Field{Name: col[0], Offset: offset, Length: length, Type: col[3], Text: col[4]})
	}
	return fields, nil
}

func readData(fn *rfc.Function) ([]string, error) {
	t, err := fn.MustParameter("DATA")
	if err != nil {
		return nil, err
	}
	wa, err := t.Field("WA")
	if err != nil {
		return nil, err
	}
	n, err := t.RowCount()
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if err := t.Seek(i); err != nil {
			return nil, err
		}
		line, err := wa.ReadFixedText()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// split cuts line into the columns described by fields.
func split(line string, fields []Field) []string {
	r := []rune(line)
	row := make([]string, len(fields))
	for i, f := range fields {
		start, end := f.Offset, f.Offset+f.Length
		if start > len(r) {
			continue
		}
		if end > len(r) {
			end = len(r)
		}
		row[i] = strings.TrimRight(string(r[start:end]), " ")
	}
	return row
}
