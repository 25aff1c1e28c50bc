// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package neterrors explains network failures on the way to the SAP gateway
// or the export database in terms a user can act on.
package neterrors

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"

	"saprfc/cli/internal/nwrfc"
	"saprfc/cli/internal/rfc"
)

// Class is the kind of a network failure.
type Class int

const (
	Unknown Class = iota
	Timeout
	DNS
	Refused
	TLS
	Auth
	PartnerNotReached
)

// Classify inspects err and returns its Class.
func Classify(err error) Class {
	if err == nil {
		return Unknown
	}
	var info *rfc.ErrorInfo
	if errors.As(err, &info) && !info.IsCustom() {
		return classifyRFC(info)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 28000 invalid_authorization_specification, 28P01 invalid_password
		if strings.HasPrefix(pgErr.Code, "28") {
			return Auth
		}
		return Unknown
	}

	if isTimeout(err) {
		return Timeout
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return DNS
	}
	if isRefused(err) {
		return Refused
	}
	lower := strings.ToLower(err.Error())
	for _, s := range []string{"tls", "ssl", "certificate", "handshake"} {
		if strings.Contains(lower, s) {
			return TLS
		}
	}
	return Unknown
}

func classifyRFC(info *rfc.ErrorInfo) Class {
	switch info.Code {
	case nwrfc.RCLogonFailure:
		return Auth
	case nwrfc.RCTimeout:
		return Timeout
	case nwrfc.RCCommunicationFailure:
		lower := strings.ToLower(info.Message)
		switch {
		case strings.Contains(lower, "timeout"), strings.Contains(lower, "timed out"):
			return Timeout
		case strings.Contains(lower, "hostname") || strings.Contains(lower, "unknown host"):
			return DNS
		case strings.Contains(lower, "connection refused"):
			return Refused
		}
		return PartnerNotReached
	}
	return Unknown
}

func isTimeout(err error) bool {
	lower := strings.ToLower(err.Error())
	if strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline exceeded") {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isRefused(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// Explain writes a short description of err with hints for its Class to w.
// It returns false when err is not a recognized network failure.
func Explain(w io.Writer, err error, context string) bool {
	var lines []string
	switch Classify(err) {
	case Timeout:
		fmt.Fprintf(w, "⏱️  Connection timeout while %s\n", context)
		lines = []string{
			"The server took too long to respond. Check that:",
			"  • the host is reachable from this machine",
			"  • no firewall drops the port",
		}
	case DNS:
		fmt.Fprintf(w, "🌐 Cannot resolve the server address while %s\n", context)
		lines = []string{"Check the host name and your DNS settings."}
	case Refused:
		fmt.Fprintf(w, "🚫 Connection refused while %s\n", context)
		lines = []string{
			"Nothing listens on the address. Check that:",
			"  • the port (or SAP system number) is right",
			"  • the server is running",
		}
	case TLS:
		fmt.Fprintf(w, "🔒 Secure connection failed while %s\n", context)
		lines = []string{
			"Check the server certificate and the sslmode of the DSN.",
			"A wrong system clock breaks certificate checks too.",
		}
	case Auth:
		fmt.Fprintf(w, "🔑 Logon rejected while %s\n", context)
		lines = []string{"Check user name and password."}
	case PartnerNotReached:
		fmt.Fprintf(w, "📡 SAP gateway not reached while %s\n", context)
		lines = []string{
			"Check ashost and sysnr, or mshost and group.",
			"A SAProuter string is needed when the system sits behind one.",
		}
	default:
		return false
	}
	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w)
	return true
}
