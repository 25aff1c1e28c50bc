// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package rfc

import (
	"fmt"

	"saprfc/cli/internal/nwrfc"
)

// Direction says which way a parameter flows, seen from the remote function.
type Direction int

const (
	// Import parameters are written by the caller and never read back.
	Import Direction = iota + 1
	// Export parameters are filled by the function and only read.
	Export
	// Changing parameters are written before and read after the call.
	Changing
	// Tables parameters are tables passed by reference in both directions.
	Tables
)

func directionOf(raw nwrfc.Direction) (Direction, bool) {
	switch raw {
	case nwrfc.DirImport:
		return Import, true
	case nwrfc.DirExport:
		return Export, true
	case nwrfc.DirChanging:
		return Changing, true
	case nwrfc.DirTables:
		return Tables, true
	}
	return 0, false
}

// Readable reports whether the caller may read values of this direction.
func (d Direction) Readable() bool { return d == Export || d == Changing || d == Tables }

// Writable reports whether the caller may write values of this direction.
func (d Direction) Writable() bool { return d == Import || d == Changing || d == Tables }

func (d Direction) String() string {
	switch d {
	case Import:
		return "IMPORT"
	case Export:
		return "EXPORT"
	case Changing:
		return "CHANGING"
	case Tables:
		return "TABLES"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Parameter is one top-level parameter of a Function, or one field of a
// structured or table parameter. Fields inherit the Direction of the
// top-level parameter they belong to.
type Parameter struct {
	Name      string
	Type      nwrfc.Type
	Direction Direction
	// Length is the unicode length in bytes; NucLength is the length in
	// characters for character-like types.
	Length    uint32
	NucLength uint32
	Decimals  uint32
	Optional  bool
	Default   string
	Text      string

	fn     *Function
	parent *Parameter
	index  uint32
	fields Tree

	// sub is the structure or table handle of a top-level parameter. Nested
	// handles depend on the enclosing table's current row and are fetched on
	// each access.
	sub nwrfc.DataContainerHandle
}

// Function returns the call frame p belongs to.
func (p *Parameter) Function() *Function { return p.fn }

// Parent returns the enclosing structure or table, or nil at the top level.
func (p *Parameter) Parent() *Parameter { return p.parent }

// Index returns p's position in its parent's field list or in the function's
// parameter list.
func (p *Parameter) Index() int { return int(p.index) }

// Path returns the dotted name from the top-level parameter down to p.
func (p *Parameter) Path() string {
	if p.parent == nil {
		return p.Name
	}
	return p.parent.Path() + "." + p.Name
}

// Fields returns the nested fields of a structure or table parameter.
func (p *Parameter) Fields() Tree { return p.fields }

// FieldCount returns len(p.Fields()).
func (p *Parameter) FieldCount() int { return len(p.fields) }

// FieldIndex returns the position of the field called name, or -1. Unlike
// Function.Parameter the match is case-sensitive.
func (p *Parameter) FieldIndex(name string) int { return p.fields.Index(name) }

// Field looks up a nested field by its exact name.
func (p *Parameter) Field(name string) (*Parameter, error) {
	if !p.Type.IsStructOrTable() {
		return nil, Custom(KindTypeMismatch, "%s is %s and has no fields", p.Path(), p.Type)
	}
	i := p.fields.Index(name)
	if i < 0 {
		return nil, Custom(KindNotFound, "%s has no field %s", p.Path(), name)
	}
	return p.fields[i], nil
}

// FieldByIndex returns the i-th nested field.
func (p *Parameter) FieldByIndex(i int) (*Parameter, error) {
	if !p.Type.IsStructOrTable() {
		return nil, Custom(KindTypeMismatch, "%s is %s and has no fields", p.Path(), p.Type)
	}
	if i < 0 || i >= len(p.fields) {
		return nil, Custom(KindOutOfRange, "field index %d out of range [0, %d) in %s", i, len(p.fields), p.Path())
	}
	return p.fields[i], nil
}

func (p *Parameter) String() string {
	return fmt.Sprintf("%s %s %s(%d)", p.Path(), p.Direction, p.Type, p.NucLength)
}

// container returns the data container holding p's own value: the call frame
// for top-level parameters, otherwise the enclosing structure or the current
// row of the enclosing table.
func (p *Parameter) container() (nwrfc.DataContainerHandle, error) {
	if err := p.fn.alive(); err != nil {
		return 0, err
	}
	if p.parent == nil {
		return p.fn.handle, nil
	}
	return p.parent.value()
}

// value returns the structure or table handle of a structured parameter.
func (p *Parameter) value() (nwrfc.DataContainerHandle, error) {
	if p.parent == nil && p.sub != 0 {
		if err := p.fn.alive(); err != nil {
			return 0, err
		}
		return p.sub, nil
	}
	c, err := p.container()
	if err != nil {
		return 0, err
	}
	return p.fn.conn.subHandle(c, p.index, p.Type)
}

func (c *Connection) subHandle(container nwrfc.DataContainerHandle, index uint32, typ nwrfc.Type) (nwrfc.DataContainerHandle, error) {
	var (
		h    nwrfc.DataContainerHandle
		info nwrfc.ErrorInfo
		rc   nwrfc.RC
	)
	switch typ {
	case nwrfc.TypeStructure:
		rc = c.api.GetStructureByIndex(container, index, &h, &info)
	case nwrfc.TypeTable:
		rc = c.api.GetTableByIndex(container, index, &h, &info)
	default:
		return 0, Custom(KindTypeMismatch, "%s has no nested value", typ)
	}
	if err := check(rc, &info); err != nil {
		return 0, err
	}
	return h, nil
}

// Tree is an ordered list of parameters in native declaration order.
type Tree []*Parameter

// Len returns the number of parameters.
func (t Tree) Len() int { return len(t) }

// Index returns the position of the parameter with exactly this name, or -1.
func (t Tree) Index(name string) int {
	for i, p := range t {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Walk visits every parameter depth-first in declaration order. Top-level
// parameters have depth 0. A non-nil error from fn stops the walk.
func (t Tree) Walk(fn func(depth int, p *Parameter) error) error {
	return t.walk(0, fn)
}

func (t Tree) walk(depth int, fn func(int, *Parameter) error) error {
	for _, p := range t {
		if err := fn(depth, p); err != nil {
			return err
		}
		if err := p.fields.walk(depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
