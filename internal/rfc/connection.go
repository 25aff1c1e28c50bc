// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package rfc invokes remote-enabled function modules through the SAP NetWeaver
// RFC SDK.
//
// A Connection owns one native session. Function resolves a function module by
// name, instantiates a call frame and decodes its full parameter tree, nested
// structures and tables included, before returning. Parameters expose typed
// accessors that check direction and declared type before any native call,
// and table parameters expose the native row cursor.
//
// Handles are released bottom-up: closing a Connection first destroys every
// Function still open on it. Release failures are logged, never returned.
//
// Nothing in this package is safe for concurrent use. A Connection and every
// Function and Parameter obtained from it must be used from one goroutine at
// a time.
package rfc

import (
	"github.com/pterm/pterm"

	"saprfc/cli/internal/connparams"
	"saprfc/cli/internal/nwrfc"
)

// Option configures a Connection.
type Option func(*Connection)

// WithLogger sets the logger used for lifecycle and release diagnostics.
func WithLogger(l *pterm.Logger) Option {
	return func(c *Connection) {
		if l != nil {
			c.log = l
		}
	}
}

// Connection is one live session with an SAP system.
type Connection struct {
	api    nwrfc.API
	handle nwrfc.ConnectionHandle
	log    *pterm.Logger

	// open holds every Function created on this connection and not yet closed.
	open []*Function
}

// Open establishes a session using params in order.
func Open(api nwrfc.API, params connparams.Params, opts ...Option) (*Connection, error) {
	c := &Connection{api: api, log: &pterm.DefaultLogger}
	for _, opt := range opts {
		opt(c)
	}

	// The encoded names and values must stay reachable until OpenConnection
	// returns; native holds only the pointers.
	names := make([][]uint16, len(params))
	values := make([][]uint16, len(params))
	native := make([]nwrfc.ConnectionParameter, len(params))
	for i, p := range params {
		names[i] = nwrfc.EncodeString(p.Name)
		values[i] = nwrfc.EncodeString(p.Value)
		native[i] = nwrfc.ConnectionParameter{Name: &names[i][0], Value: &values[i][0]}
	}

	c.log.Debug("opening connection", c.log.Args("params", params.String()))

	var info nwrfc.ErrorInfo
	h := api.OpenConnection(native, &info)
	if h == 0 {
		e := FromNative(&info)
		e.Kind = KindConnection
		return nil, &ConnectionError{Info: e}
	}
	c.handle = h
	return c, nil
}

// OpenSimple opens a connection from the well-known logon fields.
func OpenSimple(api nwrfc.API, s connparams.Simple, opts ...Option) (*Connection, error) {
	return Open(api, s.Params(), opts...)
}

// OpenMap opens a connection from an arbitrary parameter map. Keys are passed
// in sorted order.
func OpenMap(api nwrfc.API, m map[string]string, opts ...Option) (*Connection, error) {
	return Open(api, connparams.FromMap(m), opts...)
}

// Alive reports whether the connection has not been closed.
func (c *Connection) Alive() bool { return c.handle != 0 }

// Close destroys every open Function and then releases the session. It is
// safe to call more than once; only the first call reaches the native layer.
func (c *Connection) Close() {
	if c.handle == 0 {
		return
	}
	for len(c.open) > 0 {
		c.open[len(c.open)-1].Close()
	}

	h := c.handle
	c.handle = 0

	var info nwrfc.ErrorInfo
	if err := check(c.api.CloseConnection(h, &info), &info); err != nil {
		c.log.Warn("closing connection failed", c.log.Args("error", err.Error()))
		return
	}
	c.log.Debug("connection closed")
}

func (c *Connection) track(f *Function) { c.open = append(c.open, f) }

func (c *Connection) untrack(f *Function) {
	for i, o := range c.open {
		if o == f {
			c.open = append(c.open[:i], c.open[i+1:]...)
			return
		}
	}
}
