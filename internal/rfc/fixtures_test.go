// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package rfc_test

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"

	"saprfc/cli/internal/connparams"
	"saprfc/cli/internal/nwrfc"
	"saprfc/cli/internal/nwrfc/nwrfctest"
	"saprfc/cli/internal/rfc"
)

var (
	addressType = &nwrfctest.TypeDef{Name: "ZADDRESS", Fields: []nwrfctest.FieldDef{
		{Name: "CITY", Type: nwrfc.TypeChar, Length: 20},
		{Name: "LINES", Type: nwrfc.TypeTable, Struct: &nwrfctest.TypeDef{Name: "ZLINE", Fields: []nwrfctest.FieldDef{
			{Name: "LINE", Type: nwrfc.TypeChar, Length: 40},
		}}},
	}}
	personType = &nwrfctest.TypeDef{Name: "ZPERSON", Fields: []nwrfctest.FieldDef{
		{Name: "NAME", Type: nwrfc.TypeChar, Length: 20},
		{Name: "AGE", Type: nwrfc.TypeInt},
		{Name: "ADDRESS", Type: nwrfc.TypeStructure, Struct: addressType},
	}}
	itemType = &nwrfctest.TypeDef{Name: "ZITEM", Fields: []nwrfctest.FieldDef{
		{Name: "ID", Type: nwrfc.TypeNum, Length: 4},
		{Name: "DESCR", Type: nwrfc.TypeString},
		{Name: "TAGS", Type: nwrfc.TypeTable, Struct: &nwrfctest.TypeDef{Name: "ZTAG", Fields: []nwrfctest.FieldDef{
			{Name: "TAG", Type: nwrfc.TypeChar, Length: 8},
		}}},
	}}
)

// testTypes covers every accessor and a nested structure/table shape.
var testTypes = nwrfctest.FunctionDef{
	Name: "Z_TEST_TYPES",
	Params: []nwrfctest.ParamDef{
		{Name: "IV_TEXT", Type: nwrfc.TypeChar, Length: 10, Direction: nwrfc.DirImport, Text: "Fixed text in"},
		{Name: "IV_STRING", Type: nwrfc.TypeString, Direction: nwrfc.DirImport},
		{Name: "IV_INT", Type: nwrfc.TypeInt, Direction: nwrfc.DirImport, Optional: true, Default: "7"},
		{Name: "IV_FLOAT", Type: nwrfc.TypeFloat, Direction: nwrfc.DirImport},
		{Name: "IV_XSTRING", Type: nwrfc.TypeXString, Direction: nwrfc.DirImport},
		{Name: "EV_TEXT", Type: nwrfc.TypeChar, Length: 10, Direction: nwrfc.DirExport},
		{Name: "EV_STRING", Type: nwrfc.TypeString, Direction: nwrfc.DirExport},
		{Name: "EV_INT", Type: nwrfc.TypeInt8, Direction: nwrfc.DirExport},
		{Name: "EV_FLOAT", Type: nwrfc.TypeFloat, Direction: nwrfc.DirExport},
		{Name: "EV_XSTRING", Type: nwrfc.TypeXString, Direction: nwrfc.DirExport},
		{Name: "CV_COUNTER", Type: nwrfc.TypeInt, Direction: nwrfc.DirChanging},
		{Name: "CS_PERSON", Type: nwrfc.TypeStructure, Direction: nwrfc.DirChanging, Struct: personType},
		{Name: "TT_ITEMS", Type: nwrfc.TypeTable, Direction: nwrfc.DirTables, Struct: itemType},
	},
	Handler: func(fr *nwrfctest.Frame) error {
		fr.SetText("EV_TEXT", fr.Text("IV_TEXT"))
		fr.SetText("EV_STRING", fr.Text("IV_STRING"))
		fr.SetInt("EV_INT", fr.Int("IV_INT")*2)
		fr.SetFloat("EV_FLOAT", fr.Float("IV_FLOAT"))
		fr.SetBytes("EV_XSTRING", fr.Bytes("IV_XSTRING"))
		fr.SetInt("CV_COUNTER", fr.Int("CV_COUNTER")+1)
		fr.Table("TT_ITEMS").Append().SetText("DESCR", "added by server")
		return nil
	},
}

var ping = nwrfctest.FunctionDef{Name: "RFC_PING"}

var logon = connparams.Simple{ASHost: "sap.example.com", SysNr: "00", Client: "100", User: "DEVELOPER", Passwd: "secret", Lang: "EN"}

func newFake() *nwrfctest.Fake {
	f := nwrfctest.New()
	f.Register(testTypes)
	f.Register(ping)
	f.Register(nwrfctest.ReadTable(map[string]nwrfctest.DictTable{
		"USR02": nwrfctest.Users("DDIC", "DEVELOPER", "SAP*"),
	}))
	return f
}

// quietLogger captures log output so tests can assert on warnings.
func quietLogger() (*pterm.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return pterm.DefaultLogger.WithWriter(&buf).WithLevel(pterm.LogLevelDebug), &buf
}

func openConn(t *testing.T, api nwrfc.API) *rfc.Connection {
	t.Helper()
	l, _ := quietLogger()
	conn, err := rfc.OpenSimple(api, logon, rfc.WithLogger(l))
	if err != nil {
		t.Fatalf("OpenSimple() error = %v", err)
	}
	t.Cleanup(conn.Close)
	return conn
}

func resolve(t *testing.T, conn *rfc.Connection, name string) *rfc.Function {
	t.Helper()
	fn, err := conn.Function(name)
	if err != nil {
		t.Fatalf("Function(%q) error = %v", name, err)
	}
	t.Cleanup(fn.Close)
	return fn
}

func param(t *testing.T, fn *rfc.Function, path ...string) *rfc.Parameter {
	t.Helper()
	p, err := fn.MustParameter(path[0])
	if err != nil {
		t.Fatalf("MustParameter(%q) error = %v", path[0], err)
	}
	for _, name := range path[1:] {
		if p, err = p.Field(name); err != nil {
			t.Fatalf("Field(%q) error = %v", name, err)
		}
	}
	return p
}

func wantKind(t *testing.T, err error, kind rfc.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("got nil error, want %s", kind)
	}
	if got := rfc.KindOf(err); got != kind {
		t.Fatalf("KindOf(%v) = %q, want %q", err, got, kind)
	}
}
