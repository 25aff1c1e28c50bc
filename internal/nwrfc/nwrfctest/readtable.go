// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package nwrfctest

import (
	"fmt"
	"regexp"
	"strings"

	"saprfc/cli/internal/nwrfc"
)

// DictField is one column of a DictTable.
type DictField struct {
	Name   string
	Length int
	Type   string
	Text   string
}

// DictTable is a database table on the simulated system.
type DictTable struct {
	Fields []DictField
	Rows   [][]string
}

func (t DictTable) index(name string) int {
	for i, f := range t.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

var (
	readTableOptions = &TypeDef{Name: "RFC_DB_OPT", Fields: []FieldDef{
		{Name: "TEXT", Type: nwrfc.TypeChar, Length: 72},
	}}
	readTableFields = &TypeDef{Name: "RFC_DB_FLD", Fields: []FieldDef{
		{Name: "FIELDNAME", Type: nwrfc.TypeChar, Length: 30},
		{Name: "OFFSET", Type: nwrfc.TypeNum, Length: 6},
		{Name: "LENGTH", Type: nwrfc.TypeNum, Length: 6},
		{Name: "TYPE", Type: nwrfc.TypeChar, Length: 1},
		{Name: "FIELDTEXT", Type: nwrfc.TypeChar, Length: 60},
	}}
	readTableData = &TypeDef{Name: "TAB512", Fields: []FieldDef{
		{Name: "WA", Type: nwrfc.TypeChar, Length: 512},
	}}

	reOption = regexp.MustCompile(`^\s*(\w+)\s*=\s*'([^']*)'\s*$`)
)

// ReadTable returns an RFC_READ_TABLE module serving tables. It supports
// field selection, ROWSKIPS, ROWCOUNT, a delimiter and a single equality
// condition of the form FIELD = 'VALUE' in OPTIONS.
func ReadTable(tables map[string]DictTable) FunctionDef {
	return FunctionDef{
		Name: "RFC_READ_TABLE",
		Params: []ParamDef{
			{Name: "QUERY_TABLE", Type: nwrfc.TypeChar, Length: 30, Direction: nwrfc.DirImport, Text: "Table read"},
			{Name: "DELIMITER", Type: nwrfc.TypeChar, Length: 1, Direction: nwrfc.DirImport, Optional: true},
			{Name: "NO_DATA", Type: nwrfc.TypeChar, Length: 1, Direction: nwrfc.DirImport, Optional: true},
			{Name: "ROWSKIPS", Type: nwrfc.TypeInt, Direction: nwrfc.DirImport, Optional: true, Default: "0"},
			{Name: "ROWCOUNT", Type: nwrfc.TypeInt, Direction: nwrfc.DirImport, Optional: true, Default: "0"},
			{Name: "OPTIONS", Type: nwrfc.TypeTable, Direction: nwrfc.DirTables, Optional: true, Struct: readTableOptions},
			{Name: "FIELDS", Type: nwrfc.TypeTable, Direction: nwrfc.DirTables, Optional: true, Struct: readTableFields},
			{Name: "DATA", Type: nwrfc.TypeTable, Direction: nwrfc.DirTables, Struct: readTableData},
		},
		Handler: func(fr *Frame) error { return serveReadTable(tables, fr) },
	}
}

func abapException(key string) *Failure {
	return &Failure{Code: nwrfc.RCABAPException, Group: nwrfc.GroupABAPApplicationFailure, Key: key, Message: key}
}

func serveReadTable(tables map[string]DictTable, fr *Frame) error {
	dt, ok := tables[fr.Text("QUERY_TABLE")]
	if !ok {
		return abapException("TABLE_NOT_AVAILABLE")
	}
	delim := fr.Text("DELIMITER")

	fields := fr.Table("FIELDS")
	var sel []int
	if fields.Len() == 0 {
		for i, f := range dt.Fields {
			sel = append(sel, i)
			fields.Append().SetText("FIELDNAME", f.Name)
		}
	} else {
		for i := 0; i < fields.Len(); i++ {
			idx := dt.index(fields.Row(i).Text("FIELDNAME"))
			if idx < 0 {
				return abapException("FIELD_NOT_VALID")
			}
			sel = append(sel, idx)
		}
	}

	offset := 0
	for i, idx := range sel {
		f := dt.Fields[idx]
		row := fields.Row(i)
		row.SetText("OFFSET", fmt.Sprintf("%06d", offset))
		row.SetText("LENGTH", fmt.Sprintf("%06d", f.Length))
		row.SetText("TYPE", f.Type)
		row.SetText("FIELDTEXT", f.Text)
		offset += f.Length + len(delim)
	}

	filter := -1
	var want string
	options := fr.Table("OPTIONS")
	if options.Len() > 0 {
		var cond strings.Builder
		for i := 0; i < options.Len(); i++ {
			cond.WriteString(options.Row(i).Text("TEXT"))
		}
		m := reOption.FindStringSubmatch(cond.String())
		if m == nil || dt.index(m[1]) < 0 {
			return abapException("OPTION_NOT_VALID")
		}
		filter, want = dt.index(m[1]), m[2]
	}

	data := fr.Table("DATA")
	data.Reset()
	if fr.Text("NO_DATA") != "" {
		return nil
	}
	skip, limit := fr.Int("ROWSKIPS"), fr.Int("ROWCOUNT")
	for _, r := range dt.Rows {
		if filter >= 0 && r[filter] != want {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		if limit > 0 && int64(data.Len()) >= limit {
			break
		}
		parts := make([]string, len(sel))
		for i, idx := range sel {
			parts[i] = pad(r[idx], dt.Fields[idx].Length)
		}
		data.Append().SetText("WA", strings.Join(parts, delim))
	}
	return nil
}

func pad(s string, n int) string {
	r := []rune(s)
	if len(r) >= n {
		return string(r[:n])
	}
	return s + strings.Repeat(" ", n-len(r))
}

// Users is a small USR02 holding the given user names.
func Users(names ...string) DictTable {
	t := DictTable{Fields: []DictField{
		{Name: "BNAME", Length: 12, Type: "C", Text: "User Name in User Master Record"},
		{Name: "USTYP", Length: 1, Type: "C", Text: "User Type"},
	}}
	for _, n := range names {
		t.Rows = append(t.Rows, []string{n, "A"})
	}
	return t
}
