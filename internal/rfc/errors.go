// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package rfc

import (
	"errors"
	"fmt"
	"strings"

	"saprfc/cli/internal/nwrfc"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// KindNative is any failure reported by the native library that has no
	// more specific kind.
	KindNative Kind = "native"
	// KindConnection is a failure to establish a session.
	KindConnection Kind = "connection_failed"
	// KindNotFound is an unknown function module, parameter or field.
	KindNotFound Kind = "not_found"
	// KindStructural is a descriptor the decoder cannot make sense of.
	KindStructural Kind = "structural"
	// KindReadOnly is a write to a parameter the caller may only read.
	KindReadOnly Kind = "read_only"
	// KindWriteOnly is a read of a parameter the caller may only write.
	KindWriteOnly Kind = "write_only"
	// KindTypeMismatch is an accessor used on an incompatible declared type.
	KindTypeMismatch Kind = "type_mismatch"
	// KindInvalidValue is a value that does not fit the declared field.
	KindInvalidValue Kind = "invalid_value"
	// KindNotATable is a cursor operation on a parameter that is not a table.
	KindNotATable Kind = "not_a_table"
	// KindMoveBeforeFirst is a cursor move in front of the first row.
	KindMoveBeforeFirst Kind = "move_before_first"
	// KindMoveAfterLast is a cursor move behind the last row.
	KindMoveAfterLast Kind = "move_after_last"
	// KindOutOfRange is a seek to a row that does not exist.
	KindOutOfRange Kind = "out_of_range"
	// KindClosed is use of a released connection or function.
	KindClosed Kind = "closed"
)

// Sentinels for errors.Is. Only the Kind is compared.
var (
	ErrConnection      = &ErrorInfo{Kind: KindConnection}
	ErrNotFound        = &ErrorInfo{Kind: KindNotFound}
	ErrStructural      = &ErrorInfo{Kind: KindStructural}
	ErrReadOnly        = &ErrorInfo{Kind: KindReadOnly}
	ErrWriteOnly       = &ErrorInfo{Kind: KindWriteOnly}
	ErrTypeMismatch    = &ErrorInfo{Kind: KindTypeMismatch}
	ErrInvalidValue    = &ErrorInfo{Kind: KindInvalidValue}
	ErrNotATable       = &ErrorInfo{Kind: KindNotATable}
	ErrMoveBeforeFirst = &ErrorInfo{Kind: KindMoveBeforeFirst}
	ErrMoveAfterLast   = &ErrorInfo{Kind: KindMoveAfterLast}
	ErrOutOfRange      = &ErrorInfo{Kind: KindOutOfRange}
	ErrClosed          = &ErrorInfo{Kind: KindClosed}
)

// ErrorInfo is the decoded form of the native error record. Errors raised on
// the Go side carry nwrfc.RCCustom and nwrfc.GroupCustom.
type ErrorInfo struct {
	Kind  Kind
	Code  nwrfc.RC
	Group nwrfc.ErrorGroup
	Key   string

	Message string

	AbapMsgClass  string
	AbapMsgType   string
	AbapMsgNumber string
	AbapMsgV      [4]string
}

func (e *ErrorInfo) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)", e.Code, e.Group)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.AbapMsgClass != "" {
		fmt.Fprintf(&b, " [%s %s%s]", e.AbapMsgClass, e.AbapMsgType, e.AbapMsgNumber)
	}
	return b.String()
}

// Is reports whether target is an *ErrorInfo of the same Kind.
func (e *ErrorInfo) Is(target error) bool {
	t, ok := target.(*ErrorInfo)
	return ok && t.Kind == e.Kind
}

// IsCustom reports whether the error was raised on the Go side.
func (e *ErrorInfo) IsCustom() bool { return e.Code == nwrfc.RCCustom }

// FromNative decodes a filled native error record. Fixed-width buffers are
// trimmed at their first null.
func FromNative(info *nwrfc.ErrorInfo) *ErrorInfo {
	e := &ErrorInfo{
		Kind:          kindFor(info.Code),
		Code:          info.Code,
		Group:         info.Group,
		Key:           nwrfc.DecodeString(info.Key[:]),
		Message:       nwrfc.DecodeString(info.Message[:]),
		AbapMsgClass:  nwrfc.DecodeString(info.ABAPMsgClass[:]),
		AbapMsgType:   nwrfc.DecodeString(info.ABAPMsgType[:]),
		AbapMsgNumber: nwrfc.DecodeString(info.ABAPMsgNumber[:]),
	}
	e.AbapMsgV[0] = nwrfc.DecodeString(info.ABAPMsgV1[:])
	e.AbapMsgV[1] = nwrfc.DecodeString(info.ABAPMsgV2[:])
	e.AbapMsgV[2] = nwrfc.DecodeString(info.ABAPMsgV3[:])
	e.AbapMsgV[3] = nwrfc.DecodeString(info.ABAPMsgV4[:])
	return e
}

func kindFor(rc nwrfc.RC) Kind {
	switch rc {
	case nwrfc.RCNotFound:
		return KindNotFound
	case nwrfc.RCTableMoveBOF:
		return KindMoveBeforeFirst
	case nwrfc.RCTableMoveEOF:
		return KindMoveAfterLast
	}
	return KindNative
}

// Custom builds an error raised on the Go side of the boundary.
func Custom(kind Kind, format string, args ...any) *ErrorInfo {
	return &ErrorInfo{
		Kind:    kind,
		Code:    nwrfc.RCCustom,
		Group:   nwrfc.GroupCustom,
		Key:     string(kind),
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf returns the Kind of the first *ErrorInfo in err's chain, or "" when
// there is none.
func KindOf(err error) Kind {
	var e *ErrorInfo
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ConnectionError is returned by Open when no session could be established.
// Bad credentials, unreachable hosts and locked accounts all surface here and
// differ only in Info's code and group.
type ConnectionError struct {
	Info *ErrorInfo
}

func (e *ConnectionError) Error() string {
	return "open connection: " + e.Info.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Info }

// check converts a native result into an error. info is only read when rc is
// not RCOK.
func check(rc nwrfc.RC, info *nwrfc.ErrorInfo) error {
	if rc == nwrfc.RCOK {
		return nil
	}
	e := FromNative(info)
	if e.Code != rc {
		// The record disagrees with the returned code; the code wins.
		e.Code = rc
		e.Kind = kindFor(rc)
	}
	return e
}
