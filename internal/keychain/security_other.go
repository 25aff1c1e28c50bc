// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build !darwin

package keychain

import "errors"

// errNoSecurityTool is returned wherever the macOS security command would run.
var errNoSecurityTool = errors.New("keychain: the security command exists only on macOS")

// securityBackend satisfies the manager's backend on other systems; openRing
// serves them instead.
type securityBackend struct{}

func newSecurityBackend() (*securityBackend, error) { return nil, errNoSecurityTool }

func (*securityBackend) Set(string, string) error { return errNoSecurityTool }
func (*securityBackend) Get(string) (string, error) { return "", errNoSecurityTool }
func (*securityBackend) Delete(string) error { return errNoSecurityTool }
