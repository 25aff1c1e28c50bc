// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package nwrfc

import (
	"testing"
)

func TestEncodeDecodeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		units int
	}{
		{name: "ascii", input: "USR02", units: 6},
		{name: "empty", input: "", units: 1},
		{name: "latin", input: "Grüße", units: 6},
		{name: "surrogate pair", input: "a😀", units: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := EncodeString(tt.input)
			if len(enc) != tt.units {
				t.Fatalf("EncodeString(%q) has %d units, want %d", tt.input, len(enc), tt.units)
			}
			if enc[len(enc)-1] != 0 {
				t.Fatalf("EncodeString(%q) is not null terminated", tt.input)
			}
			if got := DecodeString(enc); got != tt.input {
				t.Errorf("DecodeString() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestDecodeStringStopsAtFirstNull(t *testing.T) {
	buf := []uint16{'A', 'B', 0, 'C', 0}
	if got := DecodeString(buf); got != "AB" {
		t.Errorf("DecodeString() = %q, want %q", got, "AB")
	}
	if got := DecodeString([]uint16{'X', 'Y'}); got != "XY" {
		t.Errorf("DecodeString() without terminator = %q, want %q", got, "XY")
	}
}

func TestEncodeFixed(t *testing.T) {
	if _, err := EncodeFixed("ABCDE", 6); err != nil {
		t.Fatalf("EncodeFixed() with exact fit: %v", err)
	}
	if _, err := EncodeFixed("ABCDEF", 6); err == nil {
		t.Fatal("EncodeFixed() accepted a value leaving no room for the terminator")
	}
}

func TestCopyStringTruncatesAndClears(t *testing.T) {
	dst := []uint16{'z', 'z', 'z', 'z', 'z'}
	CopyString(dst, "ab")
	want := []uint16{'a', 'b', 0, 0, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("CopyString() = %v, want %v", dst, want)
		}
	}

	CopyString(dst, "abcdefgh")
	if got := DecodeString(dst); got != "abcd" {
		t.Errorf("CopyString() truncated to %q, want %q", got, "abcd")
	}
	if dst[4] != 0 {
		t.Error("CopyString() dropped the terminator when truncating")
	}
}
