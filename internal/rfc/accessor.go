// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package rfc

import (
	"saprfc/cli/internal/nwrfc"
)

// Every accessor checks direction first, then the declared type, and only
// then calls into the native layer. Field access on a table parameter
// addresses the table's current row.

func (p *Parameter) checkWrite() error {
	if !p.Direction.Writable() {
		return Custom(KindReadOnly, "%s is an %s parameter and cannot be written", p.Path(), p.Direction)
	}
	return nil
}

func (p *Parameter) checkRead() error {
	if !p.Direction.Readable() {
		return Custom(KindWriteOnly, "%s is an %s parameter and cannot be read", p.Path(), p.Direction)
	}
	return nil
}

func (p *Parameter) api() nwrfc.API { return p.fn.conn.api }

// WriteText sets a character-like field. Fixed-length fields reject values
// longer than their declared length.
func (p *Parameter) WriteText(value string) error {
	if err := p.checkWrite(); err != nil {
		return err
	}
	if !p.Type.IsText() {
		return Custom(KindTypeMismatch, "cannot write text to %s field %s", p.Type, p.Path())
	}
	var (
		enc []uint16
		err error
	)
	if p.Type.IsFixedText() {
		enc, err = nwrfc.EncodeFixed(value, int(p.NucLength)+1)
		if err != nil {
			return Custom(KindInvalidValue, "%s: %v", p.Path(), err)
		}
	} else {
		enc = nwrfc.EncodeString(value)
	}

	c, err := p.container()
	if err != nil {
		return err
	}
	var info nwrfc.ErrorInfo
	return check(p.api().SetCharsByIndex(c, p.index, enc, &info), &info)
}

// ReadText reads a character-like field of any length. The length is queried
// first and the value fetched into a buffer of exactly that size.
func (p *Parameter) ReadText() (string, error) {
	if err := p.checkRead(); err != nil {
		return "", err
	}
	if !p.Type.IsText() {
		return "", Custom(KindTypeMismatch, "cannot read text from %s field %s", p.Type, p.Path())
	}
	c, err := p.container()
	if err != nil {
		return "", err
	}

	var (
		info   nwrfc.ErrorInfo
		length uint32
	)
	if err := check(p.api().GetStringLengthByIndex(c, p.index, &length, &info), &info); err != nil {
		return "", err
	}
	buf := make([]uint16, length+1)
	var got uint32
	if err := check(p.api().GetStringByIndex(c, p.index, buf, &got, &info), &info); err != nil {
		return "", err
	}
	if got > length {
		got = length
	}
	return nwrfc.DecodeString(buf[:got]), nil
}

// ReadFixedText reads a fixed-length character field in one call. The value
// keeps its blank padding; trimming is up to the caller.
func (p *Parameter) ReadFixedText() (string, error) {
	if err := p.checkRead(); err != nil {
		return "", err
	}
	if !p.Type.IsFixedText() {
		return "", Custom(KindTypeMismatch, "%s field %s is not fixed-length text", p.Type, p.Path())
	}
	c, err := p.container()
	if err != nil {
		return "", err
	}
	buf := make([]uint16, p.NucLength+1)
	var info nwrfc.ErrorInfo
	if err := check(p.api().GetCharsByIndex(c, p.index, buf, &info), &info); err != nil {
		return "", err
	}
	return nwrfc.DecodeString(buf), nil
}

// WriteInt sets a numeric field. Conversion to the declared type is left to
// the native layer.
func (p *Parameter) WriteInt(value int64) error {
	if err := p.checkWrite(); err != nil {
		return err
	}
	c, err := p.container()
	if err != nil {
		return err
	}
	var info nwrfc.ErrorInfo
	return check(p.api().SetInt8ByIndex(c, p.index, value, &info), &info)
}

// ReadInt reads a numeric field as a 64-bit integer.
func (p *Parameter) ReadInt() (int64, error) {
	if err := p.checkRead(); err != nil {
		return 0, err
	}
	c, err := p.container()
	if err != nil {
		return 0, err
	}
	var (
		info  nwrfc.ErrorInfo
		value int64
	)
	if err := check(p.api().GetInt8ByIndex(c, p.index, &value, &info), &info); err != nil {
		return 0, err
	}
	return value, nil
}

// WriteFloat sets a floating point field.
func (p *Parameter) WriteFloat(value float64) error {
	if err := p.checkWrite(); err != nil {
		return err
	}
	c, err := p.container()
	if err != nil {
		return err
	}
	var info nwrfc.ErrorInfo
	return check(p.api().SetFloatByIndex(c, p.index, value, &info), &info)
}

// ReadFloat reads a floating point field.
func (p *Parameter) ReadFloat() (float64, error) {
	if err := p.checkRead(); err != nil {
		return 0, err
	}
	c, err := p.container()
	if err != nil {
		return 0, err
	}
	var (
		info  nwrfc.ErrorInfo
		value float64
	)
	if err := check(p.api().GetFloatByIndex(c, p.index, &value, &info), &info); err != nil {
		return 0, err
	}
	return value, nil
}

// WriteBytes sets a byte string field.
func (p *Parameter) WriteBytes(value []byte) error {
	if err := p.checkWrite(); err != nil {
		return err
	}
	if !p.Type.IsByteString() {
		return Custom(KindTypeMismatch, "cannot write bytes to %s field %s", p.Type, p.Path())
	}
	c, err := p.container()
	if err != nil {
		return err
	}
	var info nwrfc.ErrorInfo
	return check(p.api().SetXStringByIndex(c, p.index, value, &info), &info)
}

// ReadBytes reads a byte string field, querying its length first.
func (p *Parameter) ReadBytes() ([]byte, error) {
	if err := p.checkRead(); err != nil {
		return nil, err
	}
	if !p.Type.IsByteString() {
		return nil, Custom(KindTypeMismatch, "cannot read bytes from %s field %s", p.Type, p.Path())
	}
	c, err := p.container()
	if err != nil {
		return nil, err
	}

	var (
		info   nwrfc.ErrorInfo
		length uint32
	)
	if err := check(p.api().GetStringLengthByIndex(c, p.index, &length, &info), &info); err != nil {
		return nil, err
	}
	buf := make([]byte, length)
	var got uint32
	if err := check(p.api().GetXStringByIndex(c, p.index, buf, &got, &info), &info); err != nil {
		return nil, err
	}
	if got > length {
		got = length
	}
	return buf[:got], nil
}
