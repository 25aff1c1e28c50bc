// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package nwrfc

import (
	"fmt"
	"unicode/utf16"
)

// EncodeString converts s to null-terminated SAP_UC (UTF-16) code units.
func EncodeString(s string) []uint16 {
	return append(utf16.Encode([]rune(s)), 0)
}

// EncodeFixed encodes s for a native buffer of width code units. The
// terminator counts against width.
func EncodeFixed(s string, width int) ([]uint16, error) {
	enc := EncodeString(s)
	if len(enc) > width {
		return nil, fmt.Errorf("value of %d code units does not fit a %d unit buffer", len(enc)-1, width)
	}
	return enc, nil
}

// DecodeString decodes buf up to the first null code unit. A buffer without a
// terminator is decoded whole.
func DecodeString(buf []uint16) string {
	for i, c := range buf {
		if c == 0 {
			return string(utf16.Decode(buf[:i]))
		}
	}
	return string(utf16.Decode(buf))
}

// CopyString writes s into dst with a terminator, truncating to fit.
func CopyString(dst []uint16, s string) {
	if len(dst) == 0 {
		return
	}
	enc := utf16.Encode([]rune(s))
	if len(enc) > len(dst)-1 {
		enc = enc[:len(dst)-1]
	}
	n := copy(dst, enc)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}
