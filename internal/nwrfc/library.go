// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package nwrfc

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Library is the SDK function table resolved from a dynamically loaded
// sapnwrfc library. Function fields use only low level types; the exported
// methods adapt them to API.
type Library struct {
	path   string
	handle uintptr

	cOpenConnection          func(params unsafe.Pointer, count uint32, info unsafe.Pointer) uintptr
	cCloseConnection         func(conn uintptr, info unsafe.Pointer) uint32
	cInvoke                  func(conn uintptr, fn uintptr, info unsafe.Pointer) uint32
	cGetFunctionDesc         func(conn uintptr, name unsafe.Pointer, info unsafe.Pointer) uintptr
	cCreateFunction          func(desc uintptr, info unsafe.Pointer) uintptr
	cDestroyFunction         func(fn uintptr, info unsafe.Pointer) uint32
	cGetParameterCount       func(desc uintptr, count unsafe.Pointer, info unsafe.Pointer) uint32
	cGetParameterDescByIndex func(desc uintptr, index uint32, out unsafe.Pointer, info unsafe.Pointer) uint32
	cDescribeType            func(container uintptr, info unsafe.Pointer) uintptr
	cGetFieldCount           func(typ uintptr, count unsafe.Pointer, info unsafe.Pointer) uint32
	cGetFieldDescByIndex     func(typ uintptr, index uint32, out unsafe.Pointer, info unsafe.Pointer) uint32
	cGetStructureByIndex     func(container uintptr, index uint32, out unsafe.Pointer, info unsafe.Pointer) uint32
	cGetTableByIndex         func(container uintptr, index uint32, out unsafe.Pointer, info unsafe.Pointer) uint32
	cGetCharsByIndex         func(container uintptr, index uint32, buf unsafe.Pointer, bufLen uint32, info unsafe.Pointer) uint32
	cSetCharsByIndex         func(container uintptr, index uint32, value unsafe.Pointer, valueLen uint32, info unsafe.Pointer) uint32
	cGetStringLengthByIndex  func(container uintptr, index uint32, length unsafe.Pointer, info unsafe.Pointer) uint32
	cGetStringByIndex        func(container uintptr, index uint32, buf unsafe.Pointer, bufLen uint32, length unsafe.Pointer, info unsafe.Pointer) uint32
	cGetInt8ByIndex          func(container uintptr, index uint32, value unsafe.Pointer, info unsafe.Pointer) uint32
	cSetInt8ByIndex          func(container uintptr, index uint32, value int64, info unsafe.Pointer) uint32
	cGetFloatByIndex         func(container uintptr, index uint32, value unsafe.Pointer, info unsafe.Pointer) uint32
	cSetFloatByIndex         func(container uintptr, index uint32, value float64, info unsafe.Pointer) uint32
	cGetXStringByIndex       func(container uintptr, index uint32, buf unsafe.Pointer, bufLen uint32, length unsafe.Pointer, info unsafe.Pointer) uint32
	cSetXStringByIndex       func(container uintptr, index uint32, value unsafe.Pointer, valueLen uint32, info unsafe.Pointer) uint32
	cMoveToFirstRow          func(table uintptr, info unsafe.Pointer) uint32
	cMoveToLastRow           func(table uintptr, info unsafe.Pointer) uint32
	cMoveToNextRow           func(table uintptr, info unsafe.Pointer) uint32
	cMoveToPreviousRow       func(table uintptr, info unsafe.Pointer) uint32
	cMoveTo                  func(table uintptr, index uint32, info unsafe.Pointer) uint32
	cGetRowCount             func(table uintptr, count unsafe.Pointer, info unsafe.Pointer) uint32
	cAppendNewRows           func(table uintptr, count uint32, info unsafe.Pointer) uint32
}

var _ API = (*Library)(nil)

// Load opens the SDK library at path and resolves every function this module
// uses. An empty path means DefaultLibraryName, resolved through the platform
// loader search path.
func Load(path string) (*Library, error) {
	if path == "" {
		path = DefaultLibraryName
	}
	handle, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	lib := &Library{path: path, handle: handle}
	if err := lib.register(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return lib, nil
}

// Path returns the file the library was loaded from.
func (l *Library) Path() string { return l.path }

func (l *Library) register() error {
	symbols := []struct {
		fptr any
		name string
	}{
		{&l.cOpenConnection, "RfcOpenConnection"},
		{&l.cCloseConnection, "RfcCloseConnection"},
		{&l.cInvoke, "RfcInvoke"},
		{&l.cGetFunctionDesc, "RfcGetFunctionDesc"},
		{&l.cCreateFunction, "RfcCreateFunction"},
		{&l.cDestroyFunction, "RfcDestroyFunction"},
		{&l.cGetParameterCount, "RfcGetParameterCount"},
		{&l.cGetParameterDescByIndex, "RfcGetParameterDescByIndex"},
		{&l.cDescribeType, "RfcDescribeType"},
		{&l.cGetFieldCount, "RfcGetFieldCount"},
		{&l.cGetFieldDescByIndex, "RfcGetFieldDescByIndex"},
		{&l.cGetStructureByIndex, "RfcGetStructureByIndex"},
		{&l.cGetTableByIndex, "RfcGetTableByIndex"},
		{&l.cGetCharsByIndex, "RfcGetCharsByIndex"},
		{&l.cSetCharsByIndex, "RfcSetCharsByIndex"},
		{&l.cGetStringLengthByIndex, "RfcGetStringLengthByIndex"},
		{&l.cGetStringByIndex, "RfcGetStringByIndex"},
		{&l.cGetInt8ByIndex, "RfcGetInt8ByIndex"},
		{&l.cSetInt8ByIndex, "RfcSetInt8ByIndex"},
		{&l.cGetFloatByIndex, "RfcGetFloatByIndex"},
		{&l.cSetFloatByIndex, "RfcSetFloatByIndex"},
		{&l.cGetXStringByIndex, "RfcGetXStringByIndex"},
		{&l.cSetXStringByIndex, "RfcSetXStringByIndex"},
		{&l.cMoveToFirstRow, "RfcMoveToFirstRow"},
		{&l.cMoveToLastRow, "RfcMoveToLastRow"},
		{&l.cMoveToNextRow, "RfcMoveToNextRow"},
		{&l.cMoveToPreviousRow, "RfcMoveToPreviousRow"},
		{&l.cMoveTo, "RfcMoveTo"},
		{&l.cGetRowCount, "RfcGetRowCount"},
		{&l.cAppendNewRows, "RfcAppendNewRows"},
	}
	for _, s := range symbols {
		if err := registerFunc(s.fptr, l.handle, s.name); err != nil {
			return err
		}
	}
	return nil
}

// registerFunc turns the panic purego raises for a missing symbol into an error.
func registerFunc(fptr any, handle uintptr, name string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("resolve symbol %s: %v", name, r)
		}
	}()
	purego.RegisterLibFunc(fptr, handle, name)
	return nil
}

func u16ptr(buf []uint16) unsafe.Pointer {
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Pointer(&buf[0])
}

func bytePtr(buf []byte) unsafe.Pointer {
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Pointer(&buf[0])
}

func (l *Library) OpenConnection(params []ConnectionParameter, info *ErrorInfo) ConnectionHandle {
	var p unsafe.Pointer
	if len(params) > 0 {
		p = unsafe.Pointer(&params[0])
	}
	h := l.cOpenConnection(p, uint32(len(params)), unsafe.Pointer(info))
	runtime.KeepAlive(params)
	return ConnectionHandle(h)
}

func (l *Library) CloseConnection(conn ConnectionHandle, info *ErrorInfo) RC {
	return RC(l.cCloseConnection(uintptr(conn), unsafe.Pointer(info)))
}

func (l *Library) Invoke(conn ConnectionHandle, fn DataContainerHandle, info *ErrorInfo) RC {
	return RC(l.cInvoke(uintptr(conn), uintptr(fn), unsafe.Pointer(info)))
}

func (l *Library) GetFunctionDesc(conn ConnectionHandle, name []uint16, info *ErrorInfo) FunctionDescHandle {
	h := l.cGetFunctionDesc(uintptr(conn), u16ptr(name), unsafe.Pointer(info))
	runtime.KeepAlive(name)
	return FunctionDescHandle(h)
}

func (l *Library) CreateFunction(desc FunctionDescHandle, info *ErrorInfo) DataContainerHandle {
	return DataContainerHandle(l.cCreateFunction(uintptr(desc), unsafe.Pointer(info)))
}

func (l *Library) DestroyFunction(fn DataContainerHandle, info *ErrorInfo) RC {
	return RC(l.cDestroyFunction(uintptr(fn), unsafe.Pointer(info)))
}

func (l *Library) GetParameterCount(desc FunctionDescHandle, count *uint32, info *ErrorInfo) RC {
	return RC(l.cGetParameterCount(uintptr(desc), unsafe.Pointer(count), unsafe.Pointer(info)))
}

func (l *Library) GetParameterDescByIndex(desc FunctionDescHandle, index uint32, out *ParameterDesc, info *ErrorInfo) RC {
	return RC(l.cGetParameterDescByIndex(uintptr(desc), index, unsafe.Pointer(out), unsafe.Pointer(info)))
}

func (l *Library) DescribeType(container DataContainerHandle, info *ErrorInfo) TypeDescHandle {
	return TypeDescHandle(l.cDescribeType(uintptr(container), unsafe.Pointer(info)))
}

func (l *Library) GetFieldCount(typ TypeDescHandle, count *uint32, info *ErrorInfo) RC {
	return RC(l.cGetFieldCount(uintptr(typ), unsafe.Pointer(count), unsafe.Pointer(info)))
}

func (l *Library) GetFieldDescByIndex(typ TypeDescHandle, index uint32, out *FieldDesc, info *ErrorInfo) RC {
	return RC(l.cGetFieldDescByIndex(uintptr(typ), index, unsafe.Pointer(out), unsafe.Pointer(info)))
}

func (l *Library) GetStructureByIndex(container DataContainerHandle, index uint32, out *DataContainerHandle, info *ErrorInfo) RC {
	return RC(l.cGetStructureByIndex(uintptr(container), index, unsafe.Pointer(out), unsafe.Pointer(info)))
}

func (l *Library) GetTableByIndex(container DataContainerHandle, index uint32, out *DataContainerHandle, info *ErrorInfo) RC {
	return RC(l.cGetTableByIndex(uintptr(container), index, unsafe.Pointer(out), unsafe.Pointer(info)))
}

func (l *Library) GetCharsByIndex(container DataContainerHandle, index uint32, buf []uint16, info *ErrorInfo) RC {
	rc := l.cGetCharsByIndex(uintptr(container), index, u16ptr(buf), uint32(len(buf)), unsafe.Pointer(info))
	runtime.KeepAlive(buf)
	return RC(rc)
}

// SetCharsByIndex passes the value length without the terminator.
func (l *Library) SetCharsByIndex(container DataContainerHandle, index uint32, value []uint16, info *ErrorInfo) RC {
	n := len(value)
	if n > 0 && value[n-1] == 0 {
		n--
	}
	rc := l.cSetCharsByIndex(uintptr(container), index, u16ptr(value), uint32(n), unsafe.Pointer(info))
	runtime.KeepAlive(value)
	return RC(rc)
}

func (l *Library) GetStringLengthByIndex(container DataContainerHandle, index uint32, length *uint32, info *ErrorInfo) RC {
	return RC(l.cGetStringLengthByIndex(uintptr(container), index, unsafe.Pointer(length), unsafe.Pointer(info)))
}

func (l *Library) GetStringByIndex(container DataContainerHandle, index uint32, buf []uint16, length *uint32, info *ErrorInfo) RC {
	rc := l.cGetStringByIndex(uintptr(container), index, u16ptr(buf), uint32(len(buf)), unsafe.Pointer(length), unsafe.Pointer(info))
	runtime.KeepAlive(buf)
	return RC(rc)
}

func (l *Library) GetInt8ByIndex(container DataContainerHandle, index uint32, value *int64, info *ErrorInfo) RC {
	return RC(l.cGetInt8ByIndex(uintptr(container), index, unsafe.Pointer(value), unsafe.Pointer(info)))
}

func (l *Library) SetInt8ByIndex(container DataContainerHandle, index uint32, value int64, info *ErrorInfo) RC {
	return RC(l.cSetInt8ByIndex(uintptr(container), index, value, unsafe.Pointer(info)))
}

func (l *Library) GetFloatByIndex(container DataContainerHandle, index uint32, value *float64, info *ErrorInfo) RC {
	return RC(l.cGetFloatByIndex(uintptr(container), index, unsafe.Pointer(value), unsafe.Pointer(info)))
}

func (l *Library) SetFloatByIndex(container DataContainerHandle, index uint32, value float64, info *ErrorInfo) RC {
	return RC(l.cSetFloatByIndex(uintptr(container), index, value, unsafe.Pointer(info)))
}

func (l *Library) GetXStringByIndex(container DataContainerHandle, index uint32, buf []byte, length *uint32, info *ErrorInfo) RC {
	rc := l.cGetXStringByIndex(uintptr(container), index, bytePtr(buf), uint32(len(buf)), unsafe.Pointer(length), unsafe.Pointer(info))
	runtime.KeepAlive(buf)
	return RC(rc)
}

func (l *Library) SetXStringByIndex(container DataContainerHandle, index uint32, value []byte, info *ErrorInfo) RC {
	rc := l.cSetXStringByIndex(uintptr(container), index, bytePtr(value), uint32(len(value)), unsafe.Pointer(info))
	runtime.KeepAlive(value)
	return RC(rc)
}

func (l *Library) MoveToFirstRow(table DataContainerHandle, info *ErrorInfo) RC {
	return RC(l.cMoveToFirstRow(uintptr(table), unsafe.Pointer(info)))
}

func (l *Library) MoveToLastRow(table DataContainerHandle, info *ErrorInfo) RC {
	return RC(l.cMoveToLastRow(uintptr(table), unsafe.Pointer(info)))
}

func (l *Library) MoveToNextRow(table DataContainerHandle, info *ErrorInfo) RC {
	return RC(l.cMoveToNextRow(uintptr(table), unsafe.Pointer(info)))
}

func (l *Library) MoveToPreviousRow(table DataContainerHandle, info *ErrorInfo) RC {
	return RC(l.cMoveToPreviousRow(uintptr(table), unsafe.Pointer(info)))
}

func (l *Library) MoveTo(table DataContainerHandle, index uint32, info *ErrorInfo) RC {
	return RC(l.cMoveTo(uintptr(table), index, unsafe.Pointer(info)))
}

func (l *Library) GetRowCount(table DataContainerHandle, count *uint32, info *ErrorInfo) RC {
	return RC(l.cGetRowCount(uintptr(table), unsafe.Pointer(count), unsafe.Pointer(info)))
}

func (l *Library) AppendNewRows(table DataContainerHandle, count uint32, info *ErrorInfo) RC {
	return RC(l.cAppendNewRows(uintptr(table), count, unsafe.Pointer(info)))
}
