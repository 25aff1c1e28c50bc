// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package nwrfctest

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unsafe"

	"saprfc/cli/internal/nwrfc"
)

type connection struct {
	params map[string]string
	open   bool
}

type funcDesc struct {
	def *FunctionDef
	sig *TypeDef
}

type funcInstance struct {
	desc  *funcDesc
	frame *record
	alive bool
}

// Fake is an in-memory nwrfc.API. The zero value is not usable; call New.
type Fake struct {
	// Logon, when set, decides whether OpenConnection succeeds.
	Logon func(params map[string]string) *Failure

	functions map[string]*FunctionDef
	handles   map[uintptr]any
	byObject  map[any]uintptr
	next      uintptr

	faults map[string]*Failure
	calls  []string
}

var _ nwrfc.API = (*Fake)(nil)

// New returns an empty Fake.
func New() *Fake {
	return &Fake{
		functions: map[string]*FunctionDef{},
		handles:   map[uintptr]any{},
		byObject:  map[any]uintptr{},
		faults:    map[string]*Failure{},
		next:      0x1000,
	}
}

// Register adds a function module to the remote registry.
func (f *Fake) Register(def FunctionDef) {
	d := def
	f.functions[def.Name] = &d
}

// Fail makes every later call of method fail with rc until Clear is called.
// method is the Go method name, for example "CloseConnection".
func (f *Fake) Fail(method string, rc nwrfc.RC, message string) {
	f.faults[method] = &Failure{Code: rc, Group: nwrfc.GroupExternalRuntimeFailure, Key: rc.String(), Message: message}
}

// Clear removes all injected faults.
func (f *Fake) Clear() { f.faults = map[string]*Failure{} }

// Calls returns the method names invoked so far, in order.
func (f *Fake) Calls() []string { return append([]string(nil), f.calls...) }

// Count returns how many times method was invoked.
func (f *Fake) Count(method string) int {
	n := 0
	for _, c := range f.calls {
		if c == method {
			n++
		}
	}
	return n
}

// Params returns the connection parameters a connection handle was opened with.
func (f *Fake) Params(h nwrfc.ConnectionHandle) map[string]string {
	if c, ok := f.handles[uintptr(h)].(*connection); ok {
		return c.params
	}
	return nil
}

// OpenConnections returns the number of connections not yet closed.
func (f *Fake) OpenConnections() int {
	n := 0
	for _, o := range f.handles {
		if c, ok := o.(*connection); ok && c.open {
			n++
		}
	}
	return n
}

// LiveFunctions returns the number of function instances not yet destroyed.
func (f *Fake) LiveFunctions() int {
	n := 0
	for _, o := range f.handles {
		if fi, ok := o.(*funcInstance); ok && fi.alive {
			n++
		}
	}
	return n
}

// FrameOf exposes the frame behind a function handle.
func (f *Fake) FrameOf(h nwrfc.DataContainerHandle) *Frame {
	if fi, ok := f.handles[uintptr(h)].(*funcInstance); ok {
		return &Frame{rec: fi.frame}
	}
	return nil
}

func (f *Fake) enter(method string, info *nwrfc.ErrorInfo) nwrfc.RC {
	f.calls = append(f.calls, method)
	if flt, ok := f.faults[method]; ok {
		return flt.fill(info)
	}
	return nwrfc.RCOK
}

func (f *Fake) handleOf(obj any) uintptr {
	if h, ok := f.byObject[obj]; ok {
		return h
	}
	f.next += 0x10
	f.handles[f.next] = obj
	f.byObject[obj] = f.next
	return f.next
}

func wideString(p *uint16) string {
	if p == nil {
		return ""
	}
	var buf []uint16
	for ptr := unsafe.Pointer(p); ; ptr = unsafe.Add(ptr, 2) {
		c := *(*uint16)(ptr)
		if c == 0 {
			break
		}
		buf = append(buf, c)
	}
	return string(utf16.Decode(buf))
}

func (f *Fake) OpenConnection(params []nwrfc.ConnectionParameter, info *nwrfc.ErrorInfo) nwrfc.ConnectionHandle {
	if f.enter("OpenConnection", info) != nwrfc.RCOK {
		return 0
	}
	c := &connection{params: map[string]string{}, open: true}
	for _, p := range params {
		c.params[strings.ToLower(wideString(p.Name))] = wideString(p.Value)
	}
	if f.Logon != nil {
		if flt := f.Logon(c.params); flt != nil {
			flt.fill(info)
			return 0
		}
	}
	return nwrfc.ConnectionHandle(f.handleOf(c))
}

func (f *Fake) connection(h nwrfc.ConnectionHandle, info *nwrfc.ErrorInfo) (*connection, nwrfc.RC) {
	c, ok := f.handles[uintptr(h)].(*connection)
	if !ok || !c.open {
		return nil, fail(info, nwrfc.RCInvalidHandle, nwrfc.GroupExternalRuntimeFailure, "invalid connection handle %#x", uintptr(h))
	}
	return c, nwrfc.RCOK
}

func (f *Fake) CloseConnection(h nwrfc.ConnectionHandle, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("CloseConnection", info); rc != nwrfc.RCOK {
		return rc
	}
	c, rc := f.connection(h, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	c.open = false
	return nwrfc.RCOK
}

func (f *Fake) Invoke(h nwrfc.ConnectionHandle, fn nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("Invoke", info); rc != nwrfc.RCOK {
		return rc
	}
	if _, rc := f.connection(h, info); rc != nwrfc.RCOK {
		return rc
	}
	fi, rc := f.function(fn, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	if fi.desc.def.Handler == nil {
		return nwrfc.RCOK
	}
	if err := fi.desc.def.Handler(&Frame{rec: fi.frame}); err != nil {
		if flt, ok := err.(*Failure); ok {
			return flt.fill(info)
		}
		return fail(info, nwrfc.RCABAPException, nwrfc.GroupABAPApplicationFailure, "%s", err.Error())
	}
	return nwrfc.RCOK
}

func (f *Fake) GetFunctionDesc(h nwrfc.ConnectionHandle, name []uint16, info *nwrfc.ErrorInfo) nwrfc.FunctionDescHandle {
	if f.enter("GetFunctionDesc", info) != nwrfc.RCOK {
		return 0
	}
	if _, rc := f.connection(h, info); rc != nwrfc.RCOK {
		return 0
	}
	n := nwrfc.DecodeString(name)
	def, ok := f.functions[n]
	if !ok {
		fail(info, nwrfc.RCNotFound, nwrfc.GroupABAPApplicationFailure, "function module %s not found", n)
		return 0
	}
	for _, o := range f.handles {
		if d, ok := o.(*funcDesc); ok && d.def == def {
			return nwrfc.FunctionDescHandle(f.handleOf(d))
		}
	}
	return nwrfc.FunctionDescHandle(f.handleOf(&funcDesc{def: def, sig: def.signature()}))
}

func (f *Fake) desc(h nwrfc.FunctionDescHandle, info *nwrfc.ErrorInfo) (*funcDesc, nwrfc.RC) {
	d, ok := f.handles[uintptr(h)].(*funcDesc)
	if !ok {
		return nil, fail(info, nwrfc.RCInvalidHandle, nwrfc.GroupExternalRuntimeFailure, "invalid function description handle %#x", uintptr(h))
	}
	return d, nwrfc.RCOK
}

func (f *Fake) CreateFunction(h nwrfc.FunctionDescHandle, info *nwrfc.ErrorInfo) nwrfc.DataContainerHandle {
	if f.enter("CreateFunction", info) != nwrfc.RCOK {
		return 0
	}
	d, rc := f.desc(h, info)
	if rc != nwrfc.RCOK {
		return 0
	}
	fi := &funcInstance{desc: d, frame: newRecord(d.sig), alive: true}
	for i, p := range d.def.Params {
		if p.Default == "" {
			continue
		}
		if _, ok := fi.frame.values[i].(string); ok {
			fi.frame.values[i] = p.Default
		} else if n, err := strconv.ParseInt(p.Default, 10, 64); err == nil && isInt(p.Type) {
			fi.frame.values[i] = n
		}
	}
	return nwrfc.DataContainerHandle(f.handleOf(fi))
}

func (f *Fake) function(h nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo) (*funcInstance, nwrfc.RC) {
	fi, ok := f.handles[uintptr(h)].(*funcInstance)
	if !ok || !fi.alive {
		return nil, fail(info, nwrfc.RCInvalidHandle, nwrfc.GroupExternalRuntimeFailure, "invalid function handle %#x", uintptr(h))
	}
	return fi, nwrfc.RCOK
}

func (f *Fake) DestroyFunction(h nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("DestroyFunction", info); rc != nwrfc.RCOK {
		return rc
	}
	fi, rc := f.function(h, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	fi.alive = false
	return nwrfc.RCOK
}

func (f *Fake) GetParameterCount(h nwrfc.FunctionDescHandle, count *uint32, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("GetParameterCount", info); rc != nwrfc.RCOK {
		return rc
	}
	d, rc := f.desc(h, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	*count = uint32(len(d.def.Params))
	return nwrfc.RCOK
}

func (f *Fake) GetParameterDescByIndex(h nwrfc.FunctionDescHandle, index uint32, out *nwrfc.ParameterDesc, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("GetParameterDescByIndex", info); rc != nwrfc.RCOK {
		return rc
	}
	d, rc := f.desc(h, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	if int(index) >= len(d.def.Params) {
		return fail(info, nwrfc.RCInvalidParameter, nwrfc.GroupExternalRuntimeFailure, "parameter index %d out of range", index)
	}
	p := d.def.Params[index]
	fd := p.field()
	*out = nwrfc.ParameterDesc{
		Type:      p.Type,
		Direction: p.Direction,
		NucLength: fd.nucLength(),
		UcLength:  fd.ucLength(),
		Decimals:  p.Decimals,
	}
	nwrfc.CopyString(out.Name[:], p.Name)
	nwrfc.CopyString(out.DefaultValue[:], p.Default)
	nwrfc.CopyString(out.ParameterText[:], p.Text)
	if p.Optional {
		out.Optional = 1
	}
	if p.Struct != nil {
		out.TypeDescHandle = nwrfc.TypeDescHandle(f.handleOf(p.Struct))
	}
	return nwrfc.RCOK
}

// typeOf resolves any data container handle to its type.
func (f *Fake) typeOf(h nwrfc.DataContainerHandle) *TypeDef {
	switch o := f.handles[uintptr(h)].(type) {
	case *funcInstance:
		if o.alive {
			return o.desc.sig
		}
	case *record:
		return o.typ
	case *table:
		return o.typ
	}
	return nil
}

func (f *Fake) DescribeType(h nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo) nwrfc.TypeDescHandle {
	if f.enter("DescribeType", info) != nwrfc.RCOK {
		return 0
	}
	td := f.typeOf(h)
	if td == nil {
		fail(info, nwrfc.RCInvalidHandle, nwrfc.GroupExternalRuntimeFailure, "invalid data container handle %#x", uintptr(h))
		return 0
	}
	return nwrfc.TypeDescHandle(f.handleOf(td))
}

func (f *Fake) typeDesc(h nwrfc.TypeDescHandle, info *nwrfc.ErrorInfo) (*TypeDef, nwrfc.RC) {
	td, ok := f.handles[uintptr(h)].(*TypeDef)
	if !ok {
		return nil, fail(info, nwrfc.RCInvalidHandle, nwrfc.GroupExternalRuntimeFailure, "invalid type description handle %#x", uintptr(h))
	}
	return td, nwrfc.RCOK
}

func (f *Fake) GetFieldCount(h nwrfc.TypeDescHandle, count *uint32, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("GetFieldCount", info); rc != nwrfc.RCOK {
		return rc
	}
	td, rc := f.typeDesc(h, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	*count = uint32(len(td.Fields))
	return nwrfc.RCOK
}

func (f *Fake) GetFieldDescByIndex(h nwrfc.TypeDescHandle, index uint32, out *nwrfc.FieldDesc, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("GetFieldDescByIndex", info); rc != nwrfc.RCOK {
		return rc
	}
	td, rc := f.typeDesc(h, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	if int(index) >= len(td.Fields) {
		return fail(info, nwrfc.RCInvalidParameter, nwrfc.GroupExternalRuntimeFailure, "field index %d out of range", index)
	}
	var nucOff, ucOff uint32
	for _, fd := range td.Fields[:index] {
		nucOff += fd.nucLength()
		ucOff += fd.ucLength()
	}
	fd := td.Fields[index]
	*out = nwrfc.FieldDesc{
		Type:      fd.Type,
		NucLength: fd.nucLength(),
		NucOffset: nucOff,
		UcLength:  fd.ucLength(),
		UcOffset:  ucOff,
		Decimals:  fd.Decimals,
	}
	nwrfc.CopyString(out.Name[:], fd.Name)
	if fd.Struct != nil {
		out.TypeDescHandle = nwrfc.TypeDescHandle(f.handleOf(fd.Struct))
	}
	return nwrfc.RCOK
}

// rowOf resolves a handle used for field access: function frames and
// structures address themselves, tables address their current row.
func (f *Fake) rowOf(h nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo) (*record, nwrfc.RC) {
	switch o := f.handles[uintptr(h)].(type) {
	case *funcInstance:
		if o.alive {
			return o.frame, nwrfc.RCOK
		}
	case *record:
		return o, nwrfc.RCOK
	case *table:
		if o.cur < 0 || o.cur >= len(o.rows) {
			return nil, fail(info, nwrfc.RCIllegalState, nwrfc.GroupExternalRuntimeFailure, "table has no current row")
		}
		return o.rows[o.cur], nwrfc.RCOK
	}
	return nil, fail(info, nwrfc.RCInvalidHandle, nwrfc.GroupExternalRuntimeFailure, "invalid data container handle %#x", uintptr(h))
}

func (f *Fake) field(h nwrfc.DataContainerHandle, index uint32, info *nwrfc.ErrorInfo) (*record, FieldDef, nwrfc.RC) {
	rec, rc := f.rowOf(h, info)
	if rc != nwrfc.RCOK {
		return nil, FieldDef{}, rc
	}
	if int(index) >= len(rec.typ.Fields) {
		return nil, FieldDef{}, fail(info, nwrfc.RCInvalidParameter, nwrfc.GroupExternalRuntimeFailure, "field index %d out of range", index)
	}
	return rec, rec.typ.Fields[index], nwrfc.RCOK
}

func (f *Fake) GetStructureByIndex(h nwrfc.DataContainerHandle, index uint32, out *nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("GetStructureByIndex", info); rc != nwrfc.RCOK {
		return rc
	}
	rec, fd, rc := f.field(h, index, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	s, ok := rec.values[index].(*record)
	if !ok || fd.Type != nwrfc.TypeStructure {
		return fail(info, nwrfc.RCInvalidParameter, nwrfc.GroupExternalRuntimeFailure, "field %s is not a structure", fd.Name)
	}
	*out = nwrfc.DataContainerHandle(f.handleOf(s))
	return nwrfc.RCOK
}

func (f *Fake) GetTableByIndex(h nwrfc.DataContainerHandle, index uint32, out *nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("GetTableByIndex", info); rc != nwrfc.RCOK {
		return rc
	}
	rec, fd, rc := f.field(h, index, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	t, ok := rec.values[index].(*table)
	if !ok {
		return fail(info, nwrfc.RCInvalidParameter, nwrfc.GroupExternalRuntimeFailure, "field %s is not a table", fd.Name)
	}
	*out = nwrfc.DataContainerHandle(f.handleOf(t))
	return nwrfc.RCOK
}

// fixedText renders a character-like value blank padded to the field length.
func fixedText(v any, fd FieldDef) (string, bool) {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case int64:
		s = strconv.FormatInt(x, 10)
	default:
		return "", false
	}
	if isChar(fd.Type) {
		if n := int(fd.Length) - len([]rune(s)); n > 0 {
			s += strings.Repeat(" ", n)
		}
	}
	return s, true
}

func (f *Fake) GetCharsByIndex(h nwrfc.DataContainerHandle, index uint32, buf []uint16, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("GetCharsByIndex", info); rc != nwrfc.RCOK {
		return rc
	}
	rec, fd, rc := f.field(h, index, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	s, ok := fixedText(rec.values[index], fd)
	if !ok {
		return fail(info, nwrfc.RCConversionFailure, nwrfc.GroupExternalRuntimeFailure, "cannot convert %s to characters", fd.Type)
	}
	enc := utf16.Encode([]rune(s))
	n := copy(buf, enc)
	for i := n; i < len(buf); i++ {
		buf[i] = 0
	}
	return nwrfc.RCOK
}

func (f *Fake) SetCharsByIndex(h nwrfc.DataContainerHandle, index uint32, value []uint16, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("SetCharsByIndex", info); rc != nwrfc.RCOK {
		return rc
	}
	rec, fd, rc := f.field(h, index, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	s := nwrfc.DecodeString(value)
	switch {
	case isText(fd.Type):
		(&Frame{rec: rec}).SetText(fd.Name, s)
	case isInt(fd.Type):
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return fail(info, nwrfc.RCConversionFailure, nwrfc.GroupExternalRuntimeFailure, "cannot convert %q to %s", s, fd.Type)
		}
		rec.values[index] = n
	default:
		return fail(info, nwrfc.RCConversionFailure, nwrfc.GroupExternalRuntimeFailure, "cannot convert characters to %s", fd.Type)
	}
	return nwrfc.RCOK
}

func (f *Fake) GetStringLengthByIndex(h nwrfc.DataContainerHandle, index uint32, length *uint32, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("GetStringLengthByIndex", info); rc != nwrfc.RCOK {
		return rc
	}
	rec, fd, rc := f.field(h, index, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	if b, ok := rec.values[index].([]byte); ok {
		*length = uint32(len(b))
		return nwrfc.RCOK
	}
	s, ok := fixedText(rec.values[index], fd)
	if !ok {
		return fail(info, nwrfc.RCConversionFailure, nwrfc.GroupExternalRuntimeFailure, "cannot convert %s to a string", fd.Type)
	}
	*length = uint32(len(utf16.Encode([]rune(s))))
	return nwrfc.RCOK
}

func (f *Fake) GetStringByIndex(h nwrfc.DataContainerHandle, index uint32, buf []uint16, length *uint32, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("GetStringByIndex", info); rc != nwrfc.RCOK {
		return rc
	}
	rec, fd, rc := f.field(h, index, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	s, ok := fixedText(rec.values[index], fd)
	if !ok {
		return fail(info, nwrfc.RCConversionFailure, nwrfc.GroupExternalRuntimeFailure, "cannot convert %s to a string", fd.Type)
	}
	enc := utf16.Encode([]rune(s))
	*length = uint32(len(enc))
	if len(buf) < len(enc)+1 {
		return fail(info, nwrfc.RCBufferTooSmall, nwrfc.GroupExternalRuntimeFailure, "buffer of %d units too small for %d", len(buf), len(enc)+1)
	}
	nwrfc.CopyString(buf, s)
	return nwrfc.RCOK
}

func (f *Fake) GetInt8ByIndex(h nwrfc.DataContainerHandle, index uint32, value *int64, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("GetInt8ByIndex", info); rc != nwrfc.RCOK {
		return rc
	}
	rec, fd, rc := f.field(h, index, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	switch v := rec.values[index].(type) {
	case int64:
		*value = v
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fail(info, nwrfc.RCConversionFailure, nwrfc.GroupExternalRuntimeFailure, "cannot convert %q to an integer", v)
		}
		*value = n
	default:
		return fail(info, nwrfc.RCConversionFailure, nwrfc.GroupExternalRuntimeFailure, "cannot convert %s to an integer", fd.Type)
	}
	return nwrfc.RCOK
}

func (f *Fake) SetInt8ByIndex(h nwrfc.DataContainerHandle, index uint32, value int64, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("SetInt8ByIndex", info); rc != nwrfc.RCOK {
		return rc
	}
	rec, fd, rc := f.field(h, index, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	switch {
	case isInt(fd.Type):
		rec.values[index] = value
	case fd.Type == nwrfc.TypeFloat:
		rec.values[index] = float64(value)
	case isText(fd.Type):
		(&Frame{rec: rec}).SetText(fd.Name, strconv.FormatInt(value, 10))
	default:
		return fail(info, nwrfc.RCConversionFailure, nwrfc.GroupExternalRuntimeFailure, "cannot convert an integer to %s", fd.Type)
	}
	return nwrfc.RCOK
}

func (f *Fake) GetFloatByIndex(h nwrfc.DataContainerHandle, index uint32, value *float64, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("GetFloatByIndex", info); rc != nwrfc.RCOK {
		return rc
	}
	rec, fd, rc := f.field(h, index, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	switch v := rec.values[index].(type) {
	case float64:
		*value = v
	case int64:
		*value = float64(v)
	default:
		return fail(info, nwrfc.RCConversionFailure, nwrfc.GroupExternalRuntimeFailure, "cannot convert %s to a float", fd.Type)
	}
	return nwrfc.RCOK
}

func (f *Fake) SetFloatByIndex(h nwrfc.DataContainerHandle, index uint32, value float64, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("SetFloatByIndex", info); rc != nwrfc.RCOK {
		return rc
	}
	rec, fd, rc := f.field(h, index, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	if fd.Type != nwrfc.TypeFloat {
		return fail(info, nwrfc.RCConversionFailure, nwrfc.GroupExternalRuntimeFailure, "cannot convert a float to %s", fd.Type)
	}
	rec.values[index] = value
	return nwrfc.RCOK
}

func (f *Fake) GetXStringByIndex(h nwrfc.DataContainerHandle, index uint32, buf []byte, length *uint32, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("GetXStringByIndex", info); rc != nwrfc.RCOK {
		return rc
	}
	rec, fd, rc := f.field(h, index, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	b, ok := rec.values[index].([]byte)
	if !ok {
		return fail(info, nwrfc.RCConversionFailure, nwrfc.GroupExternalRuntimeFailure, "cannot convert %s to bytes", fd.Type)
	}
	*length = uint32(len(b))
	if len(buf) < len(b) {
		return fail(info, nwrfc.RCBufferTooSmall, nwrfc.GroupExternalRuntimeFailure, "buffer of %d bytes too small for %d", len(buf), len(b))
	}
	copy(buf, b)
	return nwrfc.RCOK
}

func (f *Fake) SetXStringByIndex(h nwrfc.DataContainerHandle, index uint32, value []byte, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("SetXStringByIndex", info); rc != nwrfc.RCOK {
		return rc
	}
	rec, fd, rc := f.field(h, index, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	if _, ok := rec.values[index].([]byte); !ok {
		return fail(info, nwrfc.RCConversionFailure, nwrfc.GroupExternalRuntimeFailure, "cannot convert bytes to %s", fd.Type)
	}
	rec.values[index] = append([]byte(nil), value...)
	return nwrfc.RCOK
}

func (f *Fake) table(h nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo) (*table, nwrfc.RC) {
	t, ok := f.handles[uintptr(h)].(*table)
	if !ok {
		return nil, fail(info, nwrfc.RCInvalidHandle, nwrfc.GroupExternalRuntimeFailure, "invalid table handle %#x", uintptr(h))
	}
	return t, nwrfc.RCOK
}

func (f *Fake) moveTo(method string, h nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo, pos func(t *table) int) nwrfc.RC {
	if rc := f.enter(method, info); rc != nwrfc.RCOK {
		return rc
	}
	t, rc := f.table(h, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	next := pos(t)
	switch {
	case next < 0:
		return fail(info, nwrfc.RCTableMoveBOF, nwrfc.GroupExternalRuntimeFailure, "trying to move before the first row")
	case next >= len(t.rows):
		return fail(info, nwrfc.RCTableMoveEOF, nwrfc.GroupExternalRuntimeFailure, "trying to move after the last row")
	}
	t.cur = next
	return nwrfc.RCOK
}

func (f *Fake) MoveToFirstRow(h nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo) nwrfc.RC {
	return f.moveTo("MoveToFirstRow", h, info, func(t *table) int { return 0 })
}

func (f *Fake) MoveToLastRow(h nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo) nwrfc.RC {
	return f.moveTo("MoveToLastRow", h, info, func(t *table) int {
		if len(t.rows) == 0 {
			return 0
		}
		return len(t.rows) - 1
	})
}

func (f *Fake) MoveToNextRow(h nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo) nwrfc.RC {
	return f.moveTo("MoveToNextRow", h, info, func(t *table) int { return t.cur + 1 })
}

func (f *Fake) MoveToPreviousRow(h nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo) nwrfc.RC {
	return f.moveTo("MoveToPreviousRow", h, info, func(t *table) int { return t.cur - 1 })
}

func (f *Fake) MoveTo(h nwrfc.DataContainerHandle, index uint32, info *nwrfc.ErrorInfo) nwrfc.RC {
	return f.moveTo("MoveTo", h, info, func(t *table) int { return int(index) })
}

func (f *Fake) GetRowCount(h nwrfc.DataContainerHandle, count *uint32, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("GetRowCount", info); rc != nwrfc.RCOK {
		return rc
	}
	t, rc := f.table(h, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	*count = uint32(len(t.rows))
	return nwrfc.RCOK
}

// AppendNewRows leaves the cursor on the last appended row, as the SDK does.
func (f *Fake) AppendNewRows(h nwrfc.DataContainerHandle, count uint32, info *nwrfc.ErrorInfo) nwrfc.RC {
	if rc := f.enter("AppendNewRows", info); rc != nwrfc.RCOK {
		return rc
	}
	t, rc := f.table(h, info)
	if rc != nwrfc.RCOK {
		return rc
	}
	for i := uint32(0); i < count; i++ {
		t.rows = append(t.rows, newRecord(t.typ))
	}
	if count > 0 {
		t.cur = len(t.rows) - 1
	}
	return nwrfc.RCOK
}

// String summarises the fake for test failure messages.
func (f *Fake) String() string {
	return fmt.Sprintf("nwrfctest.Fake{functions: %d, open connections: %d, live functions: %d}",
		len(f.functions), f.OpenConnections(), f.LiveFunctions())
}
