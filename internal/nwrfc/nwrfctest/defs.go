// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package nwrfctest provides an in-memory implementation of nwrfc.API.
//
// Fake keeps a registry of function modules described with FunctionDef, hands
// out opaque handles exactly like the SDK does, keeps a real cursor per table
// and records every call so tests can assert on ordering and on handles that
// were (or were not) released.
package nwrfctest

import (
	"fmt"

	"saprfc/cli/internal/nwrfc"
)

// TypeDef describes a structure (or the row type of a table).
type TypeDef struct {
	Name   string
	Fields []FieldDef
}

// FieldDef describes one field of a TypeDef. Length is the character (or
// byte) count; the unicode length reported to callers is derived from it.
type FieldDef struct {
	Name     string
	Type     nwrfc.Type
	Length   uint32
	Decimals uint32
	// Struct is the nested type of structure and table fields.
	Struct *TypeDef
}

// ParamDef describes one parameter of a function module.
type ParamDef struct {
	Name      string
	Type      nwrfc.Type
	Direction nwrfc.Direction
	Length    uint32
	Decimals  uint32
	Default   string
	Text      string
	Optional  bool
	Struct    *TypeDef
}

// FunctionDef describes a remote-enabled function module.
type FunctionDef struct {
	Name    string
	Params  []ParamDef
	Handler func(*Frame) error
}

// Failure is returned by handlers (and injected faults) to fail a call with
// a specific result code.
type Failure struct {
	Code    nwrfc.RC
	Group   nwrfc.ErrorGroup
	Key     string
	Message string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

func (f *Failure) fill(info *nwrfc.ErrorInfo) nwrfc.RC {
	if info != nil {
		*info = nwrfc.ErrorInfo{Code: f.Code, Group: f.Group}
		nwrfc.CopyString(info.Key[:], f.Key)
		nwrfc.CopyString(info.Message[:], f.Message)
	}
	return f.Code
}

func fail(info *nwrfc.ErrorInfo, code nwrfc.RC, group nwrfc.ErrorGroup, format string, args ...any) nwrfc.RC {
	f := &Failure{Code: code, Group: group, Key: code.String(), Message: fmt.Sprintf(format, args...)}
	return f.fill(info)
}

func (d FieldDef) nucLength() uint32 {
	switch d.Type {
	case nwrfc.TypeInt:
		return 4
	case nwrfc.TypeInt8:
		return 8
	case nwrfc.TypeInt2:
		return 2
	case nwrfc.TypeInt1:
		return 1
	case nwrfc.TypeFloat:
		return 8
	case nwrfc.TypeString, nwrfc.TypeXString:
		return 8
	case nwrfc.TypeStructure, nwrfc.TypeTable:
		return 8
	}
	return d.Length
}

func (d FieldDef) ucLength() uint32 {
	if isChar(d.Type) {
		return 2 * d.Length
	}
	return d.nucLength()
}

func isChar(t nwrfc.Type) bool {
	switch t {
	case nwrfc.TypeChar, nwrfc.TypeNum, nwrfc.TypeDate, nwrfc.TypeTime, nwrfc.TypeBCD:
		return true
	}
	return false
}

func isText(t nwrfc.Type) bool { return isChar(t) || t == nwrfc.TypeString }

func isInt(t nwrfc.Type) bool {
	switch t {
	case nwrfc.TypeInt, nwrfc.TypeInt1, nwrfc.TypeInt2, nwrfc.TypeInt8:
		return true
	}
	return false
}

func (p ParamDef) field() FieldDef {
	return FieldDef{Name: p.Name, Type: p.Type, Length: p.Length, Decimals: p.Decimals, Struct: p.Struct}
}

// signature turns the parameter list into a TypeDef so the function frame can
// be stored like any structure.
func (d *FunctionDef) signature() *TypeDef {
	td := &TypeDef{Name: d.Name}
	for _, p := range d.Params {
		td.Fields = append(td.Fields, p.field())
	}
	return td
}
