// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package connparams builds the ordered name/value list passed to the RFC SDK
// when opening a connection.
package connparams

import (
	"sort"
	"strings"

	"github.com/juju/errors"
)

// Well-known SDK parameter names.
const (
	KeyASHost = "ashost"
	KeySysNr  = "sysnr"
	KeyClient = "client"
	KeyUser   = "user"
	KeyPasswd = "passwd"
	KeyLang   = "lang"
	KeyMSHost = "mshost"
	KeyDest   = "dest"
)

// Param is one connection parameter.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered parameter list. The SDK matches names without regard
// to case.
type Params []Param

// Simple holds the usual application server logon fields.
type Simple struct {
	ASHost string
	SysNr  string
	Client string
	User   string
	Passwd string
	Lang   string
}

// Params returns the fields in a fixed order, skipping empty ones.
func (s Simple) Params() Params {
	var p Params
	p = p.addNonEmpty(KeyASHost, s.ASHost)
	p = p.addNonEmpty(KeySysNr, s.SysNr)
	p = p.addNonEmpty(KeyClient, s.Client)
	p = p.addNonEmpty(KeyUser, s.User)
	p = p.addNonEmpty(KeyPasswd, s.Passwd)
	p = p.addNonEmpty(KeyLang, s.Lang)
	return p
}

func (p Params) addNonEmpty(name, value string) Params {
	if value == "" {
		return p
	}
	return append(p, Param{Name: name, Value: value})
}

// FromMap converts m to Params sorted by name.
func FromMap(m map[string]string) Params {
	p := make(Params, 0, len(m))
	for k, v := range m {
		p = append(p, Param{Name: k, Value: v})
	}
	sort.Slice(p, func(i, j int) bool { return p[i].Name < p[j].Name })
	return p
}

// Add sets name to value, replacing an existing entry in place.
func (p Params) Add(name, value string) Params {
	for i := range p {
		if strings.EqualFold(p[i].Name, name) {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Name: name, Value: value})
}

// Get returns the value of name.
func (p Params) Get(name string) (string, bool) {
	for _, e := range p {
		if strings.EqualFold(e.Name, name) {
			return e.Value, true
		}
	}
	return "", false
}

// Merge returns p with every entry of other added; other wins on conflicts.
func (p Params) Merge(other Params) Params {
	out := append(Params(nil), p...)
	for _, e := range other {
		out = out.Add(e.Name, e.Value)
	}
	return out
}

// Validate checks that p names a target system.
func (p Params) Validate() error {
	for _, key := range []string{KeyASHost, KeyMSHost, KeyDest} {
		if v, ok := p.Get(key); ok && v != "" {
			return nil
		}
	}
	return errors.NotValidf("connection parameters without %s, %s or %s", KeyASHost, KeyMSHost, KeyDest)
}

// String renders p as name=value pairs with the password masked.
func (p Params) String() string {
	parts := make([]string, 0, len(p))
	for _, e := range p {
		v := e.Value
		if strings.EqualFold(e.Name, KeyPasswd) {
			v = "***"
		}
		parts = append(parts, e.Name+"="+v)
	}
	return strings.Join(parts, " ")
}
