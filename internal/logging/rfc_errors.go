// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"saprfc/cli/internal/nwrfc"
	"saprfc/cli/internal/rfc"
)

// FormatRFCError formats an error returned by the rfc package for the
// terminal. Errors without an *rfc.ErrorInfo are shown masked as they are.
func FormatRFCError(err error) string {
	info := asInfo(err)
	if info == nil {
		return pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Error") + "\n\n" + Mask(err.Error())
	}

	var b strings.Builder
	title, lines, action := describe(info)
	b.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(title))
	b.WriteString("\n\n")
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	if action != "" {
		b.WriteString("\n")
		b.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ " + action))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + Mask(err.Error())))
	return b.String()
}

// PresentRFCError prints a formatted RFC error.
func PresentRFCError(err error) {
	fmt.Println()
	fmt.Println(FormatRFCError(err))
	fmt.Println()
}

func asInfo(err error) *rfc.ErrorInfo {
	var info *rfc.ErrorInfo
	if errors.As(err, &info) {
		return info
	}
	return nil
}

func describe(info *rfc.ErrorInfo) (title string, lines []string, action string) {
	if info.IsCustom() {
		return "Invalid Request", []string{info.Message}, ""
	}
	switch info.Group {
	case nwrfc.GroupLogonFailure:
		return "Logon Failed", []string{
			"The SAP system rejected the logon.",
			"  • " + info.Message,
		}, "Check user, client and password, then run 'saprfc login' again"
	case nwrfc.GroupCommunicationFailure:
		return "Connection Lost", []string{
			"The SAP system could not be reached or closed the connection.",
			"  • " + info.Message,
		}, "Check the host, the system number and any SAProuter string"
	case nwrfc.GroupABAPApplicationFailure:
		lines = []string{"The function module raised an exception: " + info.Key}
		if info.AbapMsgClass != "" {
			lines = append(lines, fmt.Sprintf("  • message %s %s%s: %s", info.AbapMsgClass, info.AbapMsgType, info.AbapMsgNumber, info.Message))
		}
		return "ABAP Exception", lines, ""
	case nwrfc.GroupABAPRuntimeFailure:
		return "ABAP Runtime Error", []string{
			"The server aborted the call: " + info.Message,
		}, "Look up the short dump in transaction ST22"
	case nwrfc.GroupExternalAuthorizationFailure:
		return "Not Authorized", []string{info.Message}, "Ask for S_RFC authorization on the function group"
	}
	return "RFC Error", []string{info.Message}, ""
}
