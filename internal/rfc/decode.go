// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package rfc

import (
	"saprfc/cli/internal/nwrfc"
)

// decodeParameters reads every parameter descriptor of f in declaration order
// and decodes nested types completely.
func (f *Function) decodeParameters() (Tree, error) {
	api := f.conn.api
	var (
		info  nwrfc.ErrorInfo
		count uint32
	)
	if err := check(api.GetParameterCount(f.desc, &count, &info), &info); err != nil {
		return nil, err
	}

	params := make(Tree, 0, count)
	for i := uint32(0); i < count; i++ {
		var d nwrfc.ParameterDesc
		if err := check(api.GetParameterDescByIndex(f.desc, i, &d, &info), &info); err != nil {
			return nil, err
		}
		p, err := f.decodeParameter(i, &d)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

func (f *Function) decodeParameter(index uint32, d *nwrfc.ParameterDesc) (*Parameter, error) {
	name := nwrfc.DecodeString(d.Name[:])
	if name == "" {
		return nil, Custom(KindStructural, "%s: parameter %d has no name", f.name, index)
	}
	dir, ok := directionOf(d.Direction)
	if !ok {
		return nil, Custom(KindStructural, "%s: parameter %s has unknown direction %s", f.name, name, d.Direction)
	}

	p := &Parameter{
		Name:      name,
		Type:      d.Type,
		Direction: dir,
		Length:    d.UcLength,
		NucLength: d.NucLength,
		Decimals:  d.Decimals,
		Optional:  d.Optional != 0,
		Default:   nwrfc.DecodeString(d.DefaultValue[:]),
		Text:      nwrfc.DecodeString(d.ParameterText[:]),
		fn:        f,
		index:     index,
	}
	if !p.Type.IsStructOrTable() {
		return p, nil
	}

	sub, err := f.conn.subHandle(f.handle, index, p.Type)
	if err != nil {
		return nil, err
	}
	p.sub = sub

	var info nwrfc.ErrorInfo
	typ := f.conn.api.DescribeType(sub, &info)
	if typ == 0 {
		return nil, FromNative(&info)
	}
	if p.fields, err = f.decodeFields(p, typ); err != nil {
		return nil, err
	}
	return p, nil
}

// decodeFields decodes the field list of typ as children of parent, recursing
// into nested structures and tables.
func (f *Function) decodeFields(parent *Parameter, typ nwrfc.TypeDescHandle) (Tree, error) {
	api := f.conn.api
	var (
		info  nwrfc.ErrorInfo
		count uint32
	)
	if err := check(api.GetFieldCount(typ, &count, &info), &info); err != nil {
		return nil, err
	}

	fields := make(Tree, 0, count)
	for i := uint32(0); i < count; i++ {
		var d nwrfc.FieldDesc
		if err := check(api.GetFieldDescByIndex(typ, i, &d, &info), &info); err != nil {
			return nil, err
		}
		name := nwrfc.DecodeString(d.Name[:])
		if name == "" {
			return nil, Custom(KindStructural, "%s: field %d has no name", parent.Path(), i)
		}

		p := &Parameter{
			Name:      name,
			Type:      d.Type,
			Direction: parent.Direction,
			Length:    d.UcLength,
			NucLength: d.NucLength,
			Decimals:  d.Decimals,
			fn:        f,
			parent:    parent,
			index:     i,
		}
		if p.Type.IsStructOrTable() {
			if d.TypeDescHandle == 0 {
				return nil, Custom(KindStructural, "%s: %s field has no type description", p.Path(), p.Type)
			}
			var err error
			if p.fields, err = f.decodeFields(p, d.TypeDescHandle); err != nil {
				return nil, err
			}
		}
		fields = append(fields, p)
	}
	return fields, nil
}
