// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package rfc

import (
	"saprfc/cli/internal/nwrfc"
)

// table returns the native table handle of p.
func (p *Parameter) table() (nwrfc.DataContainerHandle, error) {
	if !p.Type.IsTable() {
		return 0, Custom(KindNotATable, "%s is %s, not a table", p.Path(), p.Type)
	}
	return p.value()
}

func (p *Parameter) move(op func(api nwrfc.API, h nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo) nwrfc.RC) error {
	h, err := p.table()
	if err != nil {
		return err
	}
	var info nwrfc.ErrorInfo
	return check(op(p.api(), h, &info), &info)
}

// AppendRows adds n empty rows. Where the cursor ends up is up to the native
// layer; Seek before touching the new rows.
func (p *Parameter) AppendRows(n int) error {
	if n < 0 {
		return Custom(KindInvalidValue, "cannot append %d rows to %s", n, p.Path())
	}
	return p.move(func(api nwrfc.API, h nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo) nwrfc.RC {
		return api.AppendNewRows(h, uint32(n), info)
	})
}

// First moves the cursor to the first row.
func (p *Parameter) First() error {
	return p.move(nwrfc.API.MoveToFirstRow)
}

// Last moves the cursor to the last row.
func (p *Parameter) Last() error {
	return p.move(nwrfc.API.MoveToLastRow)
}

// Next moves the cursor one row forward. Past the last row it fails with
// KindMoveAfterLast.
func (p *Parameter) Next() error {
	return p.move(nwrfc.API.MoveToNextRow)
}

// Previous moves the cursor one row back. Before the first row it fails with
// KindMoveBeforeFirst.
func (p *Parameter) Previous() error {
	return p.move(nwrfc.API.MoveToPreviousRow)
}

// Seek moves the cursor to the zero-based row i.
func (p *Parameter) Seek(i int) error {
	n, err := p.RowCount()
	if err != nil {
		return err
	}
	if i < 0 || i >= n {
		return Custom(KindOutOfRange, "row %d out of range [0, %d) in %s", i, n, p.Path())
	}
	return p.move(func(api nwrfc.API, h nwrfc.DataContainerHandle, info *nwrfc.ErrorInfo) nwrfc.RC {
		return api.MoveTo(h, uint32(i), info)
	})
}

// RowCount returns the number of rows.
func (p *Parameter) RowCount() (int, error) {
	h, err := p.table()
	if err != nil {
		return 0, err
	}
	var (
		info  nwrfc.ErrorInfo
		count uint32
	)
	if err := check(p.api().GetRowCount(h, &count, &info), &info); err != nil {
		return 0, err
	}
	return int(count), nil
}
