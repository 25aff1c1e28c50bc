// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package rfc_test

import (
	"errors"
	"strings"
	"testing"

	"saprfc/cli/internal/nwrfc"
	"saprfc/cli/internal/nwrfc/nwrfctest"
	"saprfc/cli/internal/rfc"
)

func TestDecodedTree(t *testing.T) {
	conn := openConn(t, newFake())
	fn := resolve(t, conn, "Z_TEST_TYPES")

	var got []string
	err := fn.Parameters().Walk(func(depth int, p *rfc.Parameter) error {
		got = append(got, strings.Repeat("  ", depth)+p.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	want := []string{
		"IV_TEXT", "IV_STRING", "IV_INT", "IV_FLOAT", "IV_XSTRING",
		"EV_TEXT", "EV_STRING", "EV_INT", "EV_FLOAT", "EV_XSTRING",
		"CV_COUNTER",
		"CS_PERSON", "  NAME", "  AGE", "  ADDRESS", "    CITY", "    LINES", "      LINE",
		"TT_ITEMS", "  ID", "  DESCR", "  TAGS", "    TAG",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("Walk() visited\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestWalkStops(t *testing.T) {
	conn := openConn(t, newFake())
	fn := resolve(t, conn, "Z_TEST_TYPES")

	stop := errors.New("stop")
	visited := 0
	err := fn.Parameters().Walk(func(_ int, p *rfc.Parameter) error {
		visited++
		if p.Name == "CITY" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Walk() error = %v, want the callback error", err)
	}
	if visited != 16 {
		t.Errorf("Walk() visited %d nodes before stopping, want 16", visited)
	}
}

func TestDescriptorAttributes(t *testing.T) {
	conn := openConn(t, newFake())
	fn := resolve(t, conn, "Z_TEST_TYPES")

	tests := []struct {
		path      []string
		typ       nwrfc.Type
		dir       rfc.Direction
		nucLength uint32
		length    uint32
	}{
		{path: []string{"IV_TEXT"}, typ: nwrfc.TypeChar, dir: rfc.Import, nucLength: 10, length: 20},
		{path: []string{"EV_INT"}, typ: nwrfc.TypeInt8, dir: rfc.Export, nucLength: 8, length: 8},
		{path: []string{"CV_COUNTER"}, typ: nwrfc.TypeInt, dir: rfc.Changing, nucLength: 4, length: 4},
		{path: []string{"CS_PERSON", "ADDRESS", "CITY"}, typ: nwrfc.TypeChar, dir: rfc.Changing, nucLength: 20, length: 40},
		{path: []string{"TT_ITEMS", "TAGS", "TAG"}, typ: nwrfc.TypeChar, dir: rfc.Tables, nucLength: 8, length: 16},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.path, "."), func(t *testing.T) {
			p := param(t, fn, tt.path...)
			if p.Type != tt.typ || p.Direction != tt.dir || p.NucLength != tt.nucLength || p.Length != tt.length {
				t.Errorf("got %s %s nuc=%d uc=%d", p.Type, p.Direction, p.NucLength, p.Length)
			}
			if p.Path() != strings.Join(tt.path, ".") {
				t.Errorf("Path() = %q", p.Path())
			}
		})
	}

	iv := param(t, fn, "IV_TEXT")
	if iv.Text != "Fixed text in" {
		t.Errorf("Text = %q", iv.Text)
	}
	ivInt := param(t, fn, "IV_INT")
	if !ivInt.Optional || ivInt.Default != "7" {
		t.Errorf("IV_INT Optional=%v Default=%q", ivInt.Optional, ivInt.Default)
	}
}

// A field found by name and the field at that name's index are the same node.
func TestFieldByNameMatchesByIndex(t *testing.T) {
	conn := openConn(t, newFake())
	fn := resolve(t, conn, "Z_TEST_TYPES")

	for _, top := range []string{"CS_PERSON", "TT_ITEMS"} {
		parent := param(t, fn, top)
		err := parent.Fields().Walk(func(_ int, field *rfc.Parameter) error {
			owner := field.Parent()
			byName, err := owner.Field(field.Name)
			if err != nil {
				return err
			}
			byIndex, err := owner.FieldByIndex(owner.FieldIndex(field.Name))
			if err != nil {
				return err
			}
			if byName != byIndex || byName.Type != byIndex.Type || byName.Direction != byIndex.Direction || byName.Length != byIndex.Length {
				t.Errorf("%s: by name %v, by index %v", field.Path(), byName, byIndex)
			}
			if byIndex.Index() != owner.FieldIndex(field.Name) {
				t.Errorf("%s: Index() = %d", field.Path(), byIndex.Index())
			}
			return nil
		})
		if err != nil {
			t.Fatalf("%s: %v", top, err)
		}
	}
}

func TestNestedTypesAreDecodedOnce(t *testing.T) {
	f := newFake()
	conn := openConn(t, f)
	fn := resolve(t, conn, "Z_TEST_TYPES")

	describes, fieldCounts := f.Count("DescribeType"), f.Count("GetFieldCount")
	if describes != 2 {
		t.Errorf("DescribeType called %d times, want one per top-level structure or table", describes)
	}
	if fieldCounts != 5 {
		t.Errorf("GetFieldCount called %d times, want one per structured type", fieldCounts)
	}

	for i := 0; i < 3; i++ {
		_ = fn.Parameters().Walk(func(_ int, p *rfc.Parameter) error {
			_ = p.Fields()
			_, _ = p.Field("NAME")
			return nil
		})
	}
	if f.Count("DescribeType") != describes || f.Count("GetFieldCount") != fieldCounts || f.Count("GetFieldDescByIndex") != 10 {
		t.Error("repeated tree access re-entered the native layer")
	}
}

func TestFieldOnScalar(t *testing.T) {
	conn := openConn(t, newFake())
	fn := resolve(t, conn, "Z_TEST_TYPES")

	p := param(t, fn, "IV_TEXT")
	if _, err := p.Field("X"); !errors.Is(err, rfc.ErrTypeMismatch) {
		t.Errorf("Field() on CHAR error = %v, want ErrTypeMismatch", err)
	}
	if _, err := p.FieldByIndex(0); !errors.Is(err, rfc.ErrTypeMismatch) {
		t.Errorf("FieldByIndex() on CHAR error = %v, want ErrTypeMismatch", err)
	}
	if p.FieldCount() != 0 {
		t.Errorf("FieldCount() = %d", p.FieldCount())
	}
	person := param(t, fn, "CS_PERSON")
	if _, err := person.FieldByIndex(3); !errors.Is(err, rfc.ErrOutOfRange) {
		t.Errorf("FieldByIndex(3) error = %v, want ErrOutOfRange", err)
	}
}

func TestDeepNesting(t *testing.T) {
	const depth = 12
	leaf := &nwrfctest.TypeDef{Name: "ZLEAF", Fields: []nwrfctest.FieldDef{{Name: "V", Type: nwrfc.TypeChar, Length: 4}}}
	typ := leaf
	for i := 0; i < depth; i++ {
		kind := nwrfc.TypeStructure
		if i%2 == 1 {
			kind = nwrfc.TypeTable
		}
		typ = &nwrfctest.TypeDef{Name: "ZLEVEL", Fields: []nwrfctest.FieldDef{{Name: "N", Type: kind, Struct: typ}}}
	}
	f := nwrfctest.New()
	f.Register(nwrfctest.FunctionDef{Name: "Z_DEEP", Params: []nwrfctest.ParamDef{
		{Name: "CS_ROOT", Type: nwrfc.TypeStructure, Direction: nwrfc.DirChanging, Struct: typ},
	}})
	conn := openConn(t, f)
	fn := resolve(t, conn, "Z_DEEP")

	maxDepth := 0
	_ = fn.Parameters().Walk(func(d int, p *rfc.Parameter) error {
		if d > maxDepth {
			maxDepth = d
		}
		return nil
	})
	if maxDepth != depth+1 {
		t.Errorf("deepest node at depth %d, want %d", maxDepth, depth+1)
	}
}
