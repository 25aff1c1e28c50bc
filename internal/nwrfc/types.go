// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package nwrfc

import "fmt"

// RC is the result code returned by every SDK call.
type RC uint32

// Result codes, numbered exactly as RFC_RC in sapnwrfc.h.
const (
	RCOK                         RC = 0
	RCCommunicationFailure       RC = 1
	RCLogonFailure               RC = 2
	RCABAPRuntimeFailure         RC = 3
	RCABAPMessage                RC = 4
	RCABAPException              RC = 5
	RCClosed                     RC = 6
	RCCanceled                   RC = 7
	RCTimeout                    RC = 8
	RCMemoryInsufficient         RC = 9
	RCVersionMismatch            RC = 10
	RCInvalidProtocol            RC = 11
	RCSerializationFailure       RC = 12
	RCInvalidHandle              RC = 13
	RCRetry                      RC = 14
	RCExternalFailure            RC = 15
	RCExecuted                   RC = 16
	RCNotFound                   RC = 17
	RCNotSupported               RC = 18
	RCIllegalState               RC = 19
	RCInvalidParameter           RC = 20
	RCCodepageConversionFailure  RC = 21
	RCConversionFailure          RC = 22
	RCBufferTooSmall             RC = 23
	RCTableMoveBOF               RC = 24
	RCTableMoveEOF               RC = 25
	RCStartSAPGUIFailure         RC = 26
	RCABAPClassException         RC = 27
	RCUnknownError               RC = 28
	RCAuthorizationFailure       RC = 29

	// RCCustom is reserved for errors raised on the Go side of the boundary.
	RCCustom RC = 65536
)

var rcNames = map[RC]string{
	RCOK:                        "RFC_OK",
	RCCommunicationFailure:      "RFC_COMMUNICATION_FAILURE",
	RCLogonFailure:              "RFC_LOGON_FAILURE",
	RCABAPRuntimeFailure:        "RFC_ABAP_RUNTIME_FAILURE",
	RCABAPMessage:               "RFC_ABAP_MESSAGE",
	RCABAPException:             "RFC_ABAP_EXCEPTION",
	RCClosed:                    "RFC_CLOSED",
	RCCanceled:                  "RFC_CANCELED",
	RCTimeout:                   "RFC_TIMEOUT",
	RCMemoryInsufficient:        "RFC_MEMORY_INSUFFICIENT",
	RCVersionMismatch:           "RFC_VERSION_MISMATCH",
	RCInvalidProtocol:           "RFC_INVALID_PROTOCOL",
	RCSerializationFailure:      "RFC_SERIALIZATION_FAILURE",
	RCInvalidHandle:             "RFC_INVALID_HANDLE",
	RCRetry:                     "RFC_RETRY",
	RCExternalFailure:           "RFC_EXTERNAL_FAILURE",
	RCExecuted:                  "RFC_EXECUTED",
	RCNotFound:                  "RFC_NOT_FOUND",
	RCNotSupported:              "RFC_NOT_SUPPORTED",
	RCIllegalState:              "RFC_ILLEGAL_STATE",
	RCInvalidParameter:          "RFC_INVALID_PARAMETER",
	RCCodepageConversionFailure: "RFC_CODEPAGE_CONVERSION_FAILURE",
	RCConversionFailure:         "RFC_CONVERSION_FAILURE",
	RCBufferTooSmall:            "RFC_BUFFER_TOO_SMALL",
	RCTableMoveBOF:              "RFC_TABLE_MOVE_BOF",
	RCTableMoveEOF:              "RFC_TABLE_MOVE_EOF",
	RCStartSAPGUIFailure:        "RFC_START_SAPGUI_FAILURE",
	RCABAPClassException:        "RFC_ABAP_CLASS_EXCEPTION",
	RCUnknownError:              "RFC_UNKNOWN_ERROR",
	RCAuthorizationFailure:      "RFC_AUTHORIZATION_FAILURE",
	RCCustom:                    "RFC_CUSTOM",
}

func (rc RC) String() string {
	if s, ok := rcNames[rc]; ok {
		return s
	}
	return fmt.Sprintf("RFC_RC(%d)", uint32(rc))
}

// OK reports whether rc is the success sentinel.
func (rc RC) OK() bool { return rc == RCOK }

// ErrorGroup classifies a failure the way RFC_ERROR_GROUP does.
type ErrorGroup uint32

const (
	GroupOK                           ErrorGroup = 0
	GroupABAPApplicationFailure       ErrorGroup = 1
	GroupABAPRuntimeFailure           ErrorGroup = 2
	GroupLogonFailure                 ErrorGroup = 3
	GroupCommunicationFailure         ErrorGroup = 4
	GroupExternalRuntimeFailure       ErrorGroup = 5
	GroupExternalApplicationFailure   ErrorGroup = 6
	GroupExternalAuthorizationFailure ErrorGroup = 7

	// GroupCustom pairs with RCCustom.
	GroupCustom ErrorGroup = 65536
)

var groupNames = map[ErrorGroup]string{
	GroupOK:                           "OK",
	GroupABAPApplicationFailure:       "ABAP_APPLICATION_FAILURE",
	GroupABAPRuntimeFailure:           "ABAP_RUNTIME_FAILURE",
	GroupLogonFailure:                 "LOGON_FAILURE",
	GroupCommunicationFailure:         "COMMUNICATION_FAILURE",
	GroupExternalRuntimeFailure:       "EXTERNAL_RUNTIME_FAILURE",
	GroupExternalApplicationFailure:   "EXTERNAL_APPLICATION_FAILURE",
	GroupExternalAuthorizationFailure: "EXTERNAL_AUTHORIZATION_FAILURE",
	GroupCustom:                       "CUSTOM",
}

func (g ErrorGroup) String() string {
	if s, ok := groupNames[g]; ok {
		return s
	}
	return fmt.Sprintf("RFC_ERROR_GROUP(%d)", uint32(g))
}

// Type is the RFCTYPE of a parameter or field.
type Type uint32

const (
	TypeChar       Type = 0
	TypeDate       Type = 1
	TypeBCD        Type = 2
	TypeTime       Type = 3
	TypeByte       Type = 4
	TypeTable      Type = 5
	TypeNum        Type = 6
	TypeFloat      Type = 7
	TypeInt        Type = 8
	TypeInt2       Type = 9
	TypeInt1       Type = 10
	TypeNull       Type = 14
	TypeABAPObject Type = 16
	TypeStructure  Type = 17
	TypeDecF16     Type = 23
	TypeDecF34     Type = 24
	TypeXMLData    Type = 28
	TypeString     Type = 29
	TypeXString    Type = 30
	TypeInt8       Type = 31
	TypeUTCLong    Type = 32
	TypeUTCSecond  Type = 33
	TypeUTCMinute  Type = 34
	TypeDTDay      Type = 35
	TypeDTWeek     Type = 36
	TypeDTMonth    Type = 37
	TypeTSecond    Type = 38
	TypeTMinute    Type = 39
	TypeCDay       Type = 40
	TypeBox        Type = 41
	TypeGenericBox Type = 42
)

var typeNames = map[Type]string{
	TypeChar:       "CHAR",
	TypeDate:       "DATE",
	TypeBCD:        "BCD",
	TypeTime:       "TIME",
	TypeByte:       "BYTE",
	TypeTable:      "TABLE",
	TypeNum:        "NUM",
	TypeFloat:      "FLOAT",
	TypeInt:        "INT",
	TypeInt2:       "INT2",
	TypeInt1:       "INT1",
	TypeNull:       "NULL",
	TypeABAPObject: "ABAPOBJECT",
	TypeStructure:  "STRUCTURE",
	TypeDecF16:     "DECF16",
	TypeDecF34:     "DECF34",
	TypeXMLData:    "XMLDATA",
	TypeString:     "STRING",
	TypeXString:    "XSTRING",
	TypeInt8:       "INT8",
	TypeUTCLong:    "UTCLONG",
	TypeUTCSecond:  "UTCSECOND",
	TypeUTCMinute:  "UTCMINUTE",
	TypeDTDay:      "DTDAY",
	TypeDTWeek:     "DTWEEK",
	TypeDTMonth:    "DTMONTH",
	TypeTSecond:    "TSECOND",
	TypeTMinute:    "TMINUTE",
	TypeCDay:       "CDAY",
	TypeBox:        "BOX",
	TypeGenericBox: "GENERIC_BOX",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("RFCTYPE(%d)", uint32(t))
}

// IsStructOrTable reports whether values of t carry a nested field list.
func (t Type) IsStructOrTable() bool { return t == TypeStructure || t == TypeTable }

// IsTable reports whether t is a table of structures.
func (t Type) IsTable() bool { return t == TypeTable }

// IsText reports whether t accepts character data through the text accessors.
func (t Type) IsText() bool { return t.IsFixedText() || t == TypeString }

// IsFixedText reports whether t is a blank padded fixed-length character type.
func (t Type) IsFixedText() bool {
	switch t {
	case TypeChar, TypeNum, TypeDate, TypeTime:
		return true
	}
	return false
}

// IsByteString reports whether t is a variable length byte string.
func (t Type) IsByteString() bool { return t == TypeXString }

// Direction is the RFC_DIRECTION bitmask of a parameter.
type Direction uint32

const (
	DirImport   Direction = 0x01
	DirExport   Direction = 0x02
	DirChanging Direction = DirImport | DirExport
	DirTables   Direction = 0x04 | DirChanging
)

func (d Direction) String() string {
	switch d {
	case DirImport:
		return "IMPORT"
	case DirExport:
		return "EXPORT"
	case DirChanging:
		return "CHANGING"
	case DirTables:
		return "TABLES"
	}
	return fmt.Sprintf("RFC_DIRECTION(%d)", uint32(d))
}

// Opaque handles owned by the SDK. The zero value is the null handle.
type (
	ConnectionHandle    uintptr
	FunctionDescHandle  uintptr
	DataContainerHandle uintptr
	TypeDescHandle      uintptr
)

// Fixed buffer widths in SAP_UC code units, terminator included.
const (
	NameLen          = 31
	DefaultValueLen  = 31
	ParameterTextLen = 80
	ErrorKeyLen      = 128
	ErrorMessageLen  = 512
	MsgClassLen      = 21
	MsgTypeLen       = 2
	MsgNumberLen     = 4
	MsgVarLen        = 51
)

// ErrorInfo mirrors RFC_ERROR_INFO. The SDK fills it only when a call fails.
type ErrorInfo struct {
	Code          RC
	Group         ErrorGroup
	Key           [ErrorKeyLen]uint16
	Message       [ErrorMessageLen]uint16
	ABAPMsgClass  [MsgClassLen]uint16
	ABAPMsgType   [MsgTypeLen]uint16
	ABAPMsgNumber [MsgNumberLen]uint16
	ABAPMsgV1     [MsgVarLen]uint16
	ABAPMsgV2     [MsgVarLen]uint16
	ABAPMsgV3     [MsgVarLen]uint16
	ABAPMsgV4     [MsgVarLen]uint16
}

// ParameterDesc mirrors RFC_PARAMETER_DESC.
type ParameterDesc struct {
	Name                [NameLen]uint16
	Type                Type
	Direction           Direction
	NucLength           uint32
	UcLength            uint32
	Decimals            uint32
	TypeDescHandle      TypeDescHandle
	DefaultValue        [DefaultValueLen]uint16
	ParameterText       [ParameterTextLen]uint16
	Optional            uint8
	ExtendedDescription uintptr
}

// FieldDesc mirrors RFC_FIELD_DESC.
type FieldDesc struct {
	Name                [NameLen]uint16
	Type                Type
	NucLength           uint32
	NucOffset           uint32
	UcLength            uint32
	UcOffset            uint32
	Decimals            uint32
	TypeDescHandle      TypeDescHandle
	ExtendedDescription uintptr
}

// ConnectionParameter mirrors RFC_CONNECTION_PARAMETER. Both pointers reference
// null-terminated SAP_UC strings that must outlive the call using them.
type ConnectionParameter struct {
	Name  *uint16
	Value *uint16
}
