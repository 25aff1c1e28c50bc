// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import "fmt"

// Scheme identifies the kind of target a DSN points at.
type Scheme string

const (
	// SchemeSAP addresses an SAP application server over RFC.
	SchemeSAP      Scheme = "sap"
	SchemePostgres Scheme = "postgresql"
	SchemeUnknown  Scheme = "unknown"
)

// Info contains parsed information from a DSN string.
type Info struct {
	Scheme   Scheme
	Host     string
	Port     string
	User     string
	Password string
	// Database is the database name for PostgreSQL and the system number
	// for SAP.
	Database string
	Params   map[string]string
	Original string
}

// String returns the DSN as it was given.
func (d *Info) String() string {
	return d.Original
}

// Resolver parses and normalizes DSNs of one scheme.
type Resolver interface {
	// Parse parses a DSN string and returns its parts.
	Parse(dsn string) (*Info, error)

	// Normalize renders info as a canonical DSN.
	Normalize(info *Info) (string, error)

	// Validate checks if the DSN is usable.
	Validate(dsn string) error
}

// ParseError represents an error that occurred during DSN parsing.
type ParseError struct {
	DSN    string
	Reason string
	Hint   string
}

func (e *ParseError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("invalid DSN format: %s\nHint: %s", e.Reason, e.Hint)
	}
	return fmt.Sprintf("invalid DSN format: %s", e.Reason)
}

// NewParseError creates a new ParseError.
func NewParseError(dsn, reason, hint string) *ParseError {
	return &ParseError{
		DSN:    dsn,
		Reason: reason,
		Hint:   hint,
	}
}
