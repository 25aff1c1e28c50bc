// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package dsn parses the connection strings accepted on the command line:
// sap:// URLs naming an SAP system and postgres:// URLs naming the export
// target.
package dsn

import (
	"strings"
)

// DetectScheme detects the target kind from a DSN string.
func DetectScheme(dsn string) Scheme {
	lower := strings.ToLower(dsn)

	switch {
	case strings.HasPrefix(lower, "sap://"):
		return SchemeSAP
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return SchemePostgres
	}
	return SchemeUnknown
}

func resolverFor(dsn string) (Resolver, error) {
	if dsn == "" {
		return nil, NewParseError(dsn, "empty DSN", "provide a sap:// or postgres:// connection string")
	}
	switch DetectScheme(dsn) {
	case SchemeSAP:
		return NewSAPResolver(), nil
	case SchemePostgres:
		return NewPostgreSQLResolver(), nil
	}
	return nil, NewParseError(dsn, "unknown scheme", "use sap:// or postgres://")
}

// Parse parses a DSN string and returns its normalized form.
func Parse(dsn string) (string, error) {
	resolver, err := resolverFor(dsn)
	if err != nil {
		return "", err
	}
	info, err := resolver.Parse(dsn)
	if err != nil {
		return "", err
	}
	return resolver.Normalize(info)
}

// Validate validates a DSN string without normalizing it.
func Validate(dsn string) error {
	resolver, err := resolverFor(dsn)
	if err != nil {
		return err
	}
	return resolver.Validate(dsn)
}

// ParseInfo parses a DSN string and returns its parts.
func ParseInfo(dsn string) (*Info, error) {
	resolver, err := resolverFor(dsn)
	if err != nil {
		return nil, err
	}
	return resolver.Parse(dsn)
}
