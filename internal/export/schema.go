// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package export

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
)

// querier is satisfied by pool connections and transactions.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// SchemaInspector looks up and caches the column lists of export tables.
type SchemaInspector struct {
	// cache holds column names keyed by schema.table
	cache map[string][]string
	mu    sync.RWMutex
}

// NewSchemaInspector creates an empty SchemaInspector.
func NewSchemaInspector() *SchemaInspector {
	return &SchemaInspector{
		cache: make(map[string][]string),
	}
}

// Columns returns the columns of schema.table in ordinal order, or nothing
// when the table does not exist. Missing tables are not cached.
func (si *SchemaInspector) Columns(ctx context.Context, q querier, schema, table string) ([]string, error) {
	key := schema + "." + table
	si.mu.RLock()
	if cols, ok := si.cache[key]; ok {
		si.mu.RUnlock()
		return cols, nil
	}
	si.mu.RUnlock()

	rows, err := q.Query(ctx, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position`, schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols = append(cols, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(cols) > 0 {
		si.mu.Lock()
		si.cache[key] = cols
		si.mu.Unlock()
	}
	return cols, nil
}

// Forget drops the cached columns of schema.table.
func (si *SchemaInspector) Forget(schema, table string) {
	si.mu.Lock()
	delete(si.cache, schema+"."+table)
	si.mu.Unlock()
}
