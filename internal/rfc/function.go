// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package rfc

import (
	"strings"

	"saprfc/cli/internal/nwrfc"
)

// Function is one instantiated call frame of a remote function module. It is
// only valid while its Connection is open.
type Function struct {
	conn   *Connection
	name   string
	desc   nwrfc.FunctionDescHandle
	handle nwrfc.DataContainerHandle
	params Tree
}

// Function resolves name, which must match the remote registry exactly, and
// decodes its complete parameter tree. Any failure, including a malformed
// descriptor deep inside a nested type, fails the whole resolution and
// releases the call frame.
func (c *Connection) Function(name string) (*Function, error) {
	if c.handle == 0 {
		return nil, Custom(KindClosed, "connection is closed")
	}

	var info nwrfc.ErrorInfo
	desc := c.api.GetFunctionDesc(c.handle, nwrfc.EncodeString(name), &info)
	if desc == 0 {
		return nil, FromNative(&info)
	}

	h := c.api.CreateFunction(desc, &info)
	if h == 0 {
		return nil, FromNative(&info)
	}

	f := &Function{conn: c, name: name, desc: desc, handle: h}
	c.track(f)

	params, err := f.decodeParameters()
	if err != nil {
		f.Close()
		return nil, err
	}
	f.params = params

	c.log.Debug("function resolved", c.log.Args("function", name, "parameters", len(params)))
	return f, nil
}

// Name returns the function module name.
func (f *Function) Name() string { return f.name }

// Parameters returns the top-level parameters in declaration order.
func (f *Function) Parameters() Tree { return f.params }

// Parameter looks up a top-level parameter. The match ignores case.
func (f *Function) Parameter(name string) (*Parameter, bool) {
	for _, p := range f.params {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}

// MustParameter is Parameter returning a KindNotFound error instead of false.
func (f *Function) MustParameter(name string) (*Parameter, error) {
	if p, ok := f.Parameter(name); ok {
		return p, nil
	}
	return nil, Custom(KindNotFound, "function %s has no parameter %s", f.name, name)
}

// ParameterByIndex returns the i-th top-level parameter.
func (f *Function) ParameterByIndex(i int) (*Parameter, error) {
	if i < 0 || i >= len(f.params) {
		return nil, Custom(KindOutOfRange, "parameter index %d out of range [0, %d)", i, len(f.params))
	}
	return f.params[i], nil
}

// Call invokes the function module with the values written so far.
func (f *Function) Call() error {
	if err := f.alive(); err != nil {
		return err
	}
	var info nwrfc.ErrorInfo
	return check(f.conn.api.Invoke(f.conn.handle, f.handle, &info), &info)
}

// Close destroys the call frame. Parameters obtained from f become unusable.
// Only the first call reaches the native layer.
func (f *Function) Close() {
	if f.handle == 0 {
		return
	}
	h := f.handle
	f.handle = 0
	f.conn.untrack(f)

	var info nwrfc.ErrorInfo
	if err := check(f.conn.api.DestroyFunction(h, &info), &info); err != nil {
		f.conn.log.Warn("destroying function failed", f.conn.log.Args("function", f.name, "error", err.Error()))
	}
}

func (f *Function) alive() error {
	if f.handle == 0 || f.conn.handle == 0 {
		return Custom(KindClosed, "function %s is closed", f.name)
	}
	return nil
}
