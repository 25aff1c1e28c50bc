// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build windows

package nwrfc

import "golang.org/x/sys/windows"

// DefaultLibraryName is the SDK library file name on this platform.
const DefaultLibraryName = "sapnwrfc.dll"

func openLibrary(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}
