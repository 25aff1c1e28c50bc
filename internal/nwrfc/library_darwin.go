// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build darwin

package nwrfc

import "github.com/ebitengine/purego"

// DefaultLibraryName is the SDK library file name on this platform.
const DefaultLibraryName = "libsapnwrfc.dylib"

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}
