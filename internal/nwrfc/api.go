// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package nwrfc is the boundary to the SAP NetWeaver RFC SDK runtime library.
//
// The SDK exposes a flat C function table over opaque, SDK-owned handles. API
// reproduces the subset of that table this module consumes with Go-typed
// arguments: text crosses the boundary as null-terminated UTF-16 code units,
// buffers as slices whose length is the native buffer length, and every call
// reports an RC plus an ErrorInfo that is only meaningful when the RC is not
// RCOK.
//
// Library is the production implementation, loaded at runtime with purego so no
// SDK headers are needed at build time. The nwrfctest package provides an
// in-memory implementation for tests.
package nwrfc

// API is the consumed part of the SDK function table. Implementations are not
// safe for concurrent use on the same handle.
type API interface {
	OpenConnection(params []ConnectionParameter, info *ErrorInfo) ConnectionHandle
	CloseConnection(conn ConnectionHandle, info *ErrorInfo) RC
	Invoke(conn ConnectionHandle, fn DataContainerHandle, info *ErrorInfo) RC

	GetFunctionDesc(conn ConnectionHandle, name []uint16, info *ErrorInfo) FunctionDescHandle
	CreateFunction(desc FunctionDescHandle, info *ErrorInfo) DataContainerHandle
	DestroyFunction(fn DataContainerHandle, info *ErrorInfo) RC
	GetParameterCount(desc FunctionDescHandle, count *uint32, info *ErrorInfo) RC
	GetParameterDescByIndex(desc FunctionDescHandle, index uint32, out *ParameterDesc, info *ErrorInfo) RC

	DescribeType(container DataContainerHandle, info *ErrorInfo) TypeDescHandle
	GetFieldCount(typ TypeDescHandle, count *uint32, info *ErrorInfo) RC
	GetFieldDescByIndex(typ TypeDescHandle, index uint32, out *FieldDesc, info *ErrorInfo) RC

	GetStructureByIndex(container DataContainerHandle, index uint32, out *DataContainerHandle, info *ErrorInfo) RC
	GetTableByIndex(container DataContainerHandle, index uint32, out *DataContainerHandle, info *ErrorInfo) RC

	GetCharsByIndex(container DataContainerHandle, index uint32, buf []uint16, info *ErrorInfo) RC
	SetCharsByIndex(container DataContainerHandle, index uint32, value []uint16, info *ErrorInfo) RC
	GetStringLengthByIndex(container DataContainerHandle, index uint32, length *uint32, info *ErrorInfo) RC
	GetStringByIndex(container DataContainerHandle, index uint32, buf []uint16, length *uint32, info *ErrorInfo) RC
	GetInt8ByIndex(container DataContainerHandle, index uint32, value *int64, info *ErrorInfo) RC
	SetInt8ByIndex(container DataContainerHandle, index uint32, value int64, info *ErrorInfo) RC
	GetFloatByIndex(container DataContainerHandle, index uint32, value *float64, info *ErrorInfo) RC
	SetFloatByIndex(container DataContainerHandle, index uint32, value float64, info *ErrorInfo) RC
	GetXStringByIndex(container DataContainerHandle, index uint32, buf []byte, length *uint32, info *ErrorInfo) RC
	SetXStringByIndex(container DataContainerHandle, index uint32, value []byte, info *ErrorInfo) RC

	MoveToFirstRow(table DataContainerHandle, info *ErrorInfo) RC
	MoveToLastRow(table DataContainerHandle, info *ErrorInfo) RC
	MoveToNextRow(table DataContainerHandle, info *ErrorInfo) RC
	MoveToPreviousRow(table DataContainerHandle, info *ErrorInfo) RC
	MoveTo(table DataContainerHandle, index uint32, info *ErrorInfo) RC
	GetRowCount(table DataContainerHandle, count *uint32, info *ErrorInfo) RC
	AppendNewRows(table DataContainerHandle, count uint32, info *ErrorInfo) RC
}
