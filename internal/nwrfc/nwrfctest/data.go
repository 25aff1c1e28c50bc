// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package nwrfctest

import (
	"strings"

	"saprfc/cli/internal/nwrfc"
)

// record is a structure value, a table row or a function frame.
type record struct {
	typ    *TypeDef
	values []any
}

type table struct {
	typ  *TypeDef
	rows []*record
	// cur is the current row; -1 when there is none.
	cur int
}

func newRecord(typ *TypeDef) *record {
	r := &record{typ: typ, values: make([]any, len(typ.Fields))}
	for i, f := range typ.Fields {
		r.values[i] = zeroValue(f)
	}
	return r
}

func newTable(typ *TypeDef) *table {
	if typ == nil {
		typ = &TypeDef{}
	}
	return &table{typ: typ, cur: -1}
}

func zeroValue(f FieldDef) any {
	switch {
	case f.Type == nwrfc.TypeStructure:
		if f.Struct == nil {
			return newRecord(&TypeDef{})
		}
		return newRecord(f.Struct)
	case f.Type == nwrfc.TypeTable:
		return newTable(f.Struct)
	case isInt(f.Type):
		return int64(0)
	case f.Type == nwrfc.TypeFloat:
		return float64(0)
	case f.Type == nwrfc.TypeXString, f.Type == nwrfc.TypeByte:
		return []byte(nil)
	}
	return ""
}

func (r *record) index(name string) int {
	for i, f := range r.typ.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Frame is a Go-level view of a function frame, structure or table row, used
// by invoke handlers and by tests to inspect what was written.
type Frame struct {
	rec *record
}

func (f *Frame) mustIndex(name string) int {
	i := f.rec.index(name)
	if i < 0 {
		panic("nwrfctest: no field " + name + " in " + f.rec.typ.Name)
	}
	return i
}

// Text returns a text field with trailing blanks removed.
func (f *Frame) Text(name string) string {
	v, _ := f.rec.values[f.mustIndex(name)].(string)
	return strings.TrimRight(v, " ")
}

// SetText sets a text field.
func (f *Frame) SetText(name, value string) {
	i := f.mustIndex(name)
	def := f.rec.typ.Fields[i]
	if isChar(def.Type) && def.Length > 0 && uint32(len([]rune(value))) > def.Length {
		value = string([]rune(value)[:def.Length])
	}
	f.rec.values[i] = value
}

// Int returns an integer field.
func (f *Frame) Int(name string) int64 {
	v, _ := f.rec.values[f.mustIndex(name)].(int64)
	return v
}

// SetInt sets an integer field.
func (f *Frame) SetInt(name string, value int64) { f.rec.values[f.mustIndex(name)] = value }

// Float returns a floating point field.
func (f *Frame) Float(name string) float64 {
	v, _ := f.rec.values[f.mustIndex(name)].(float64)
	return v
}

// SetFloat sets a floating point field.
func (f *Frame) SetFloat(name string, value float64) { f.rec.values[f.mustIndex(name)] = value }

// Bytes returns a byte string field.
func (f *Frame) Bytes(name string) []byte {
	v, _ := f.rec.values[f.mustIndex(name)].([]byte)
	return v
}

// SetBytes sets a byte string field.
func (f *Frame) SetBytes(name string, value []byte) {
	f.rec.values[f.mustIndex(name)] = append([]byte(nil), value...)
}

// Struct returns the view of a structure field.
func (f *Frame) Struct(name string) *Frame {
	return &Frame{rec: f.rec.values[f.mustIndex(name)].(*record)}
}

// Table returns the view of a table field.
func (f *Frame) Table(name string) *TableView {
	return &TableView{tab: f.rec.values[f.mustIndex(name)].(*table)}
}

// TableView is a Go-level view of a table.
type TableView struct {
	tab *table
}

// Len returns the number of rows.
func (t *TableView) Len() int { return len(t.tab.rows) }

// Row returns row i.
func (t *TableView) Row(i int) *Frame { return &Frame{rec: t.tab.rows[i]} }

// Append adds an empty row and returns it.
func (t *TableView) Append() *Frame {
	r := newRecord(t.tab.typ)
	t.tab.rows = append(t.tab.rows, r)
	return &Frame{rec: r}
}

// Reset removes all rows.
func (t *TableView) Reset() {
	t.tab.rows = nil
	t.tab.cur = -1
}
