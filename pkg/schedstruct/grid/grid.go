// Package grid provides the tabular input boundary of the schedule parser
// and loaders that materialize spreadsheet files into memory.
package grid

import "fmt"

// Grid is a 2-D array of cell text indexed by 0-based row and column.
type Grid interface {
	RowCount() int
	ColumnCount() int
	// CellText returns the text of a cell, or "" outside the grid.
	CellText(row, col int) string
}

// Workbook is an ordered collection of grids.
type Workbook interface {
	SheetCount() int
	SheetName(i int) string
	Sheet(i int) (Grid, error)
}

// Sheet is an in-memory Grid. Rows may be ragged.
type Sheet struct {
	Name  string
	Cells [][]string
	cols  int
}

// NewSheet creates a sheet from row-major cell text.
func NewSheet(name string, cells [][]string) *Sheet {
	s := &Sheet{Name: name, Cells: cells}
	for _, row := range cells {
		if len(row) > s.cols {
			s.cols = len(row)
		}
	}
	return s
}

// RowCount returns the number of rows.
func (s *Sheet) RowCount() int { return len(s.Cells) }

// ColumnCount returns the length of the longest row.
func (s *Sheet) ColumnCount() int { return s.cols }

// CellText returns the text at (row, col), or "" when out of range.
func (s *Sheet) CellText(row, col int) string {
	if row < 0 || row >= len(s.Cells) || col < 0 || col >= len(s.Cells[row]) {
		return ""
	}
	return s.Cells[row][col]
}

// Book is an in-memory Workbook.
type Book struct {
	// Name is the workbook file name (no path).
	Name   string
	Sheets []*Sheet
}

// SheetCount returns the number of sheets.
func (b *Book) SheetCount() int { return len(b.Sheets) }

// SheetName returns the name of sheet i.
func (b *Book) SheetName(i int) string {
	if i < 0 || i >= len(b.Sheets) {
		return ""
	}
	return b.Sheets[i].Name
}

// Sheet returns sheet i.
func (b *Book) Sheet(i int) (Grid, error) {
	if i < 0 || i >= len(b.Sheets) {
		return nil, fmt.Errorf("sheet index %d out of range [0, %d)", i, len(b.Sheets))
	}
	return b.Sheets[i], nil
}

// single adapts one Grid to the Workbook interface.
type single struct {
	name string
	g    Grid
}

// Single returns a one-sheet Workbook over g.
func Single(name string, g Grid) Workbook {
	return single{name: name, g: g}
}

func (s single) SheetCount() int { return 1 }

func (s single) SheetName(i int) string {
	if i != 0 {
		return ""
	}
	return s.name
}

func (s single) Sheet(i int) (Grid, error) {
	if i != 0 {
		return nil, fmt.Errorf("sheet index %d out of range [0, 1)", i)
	}
	return s.g, nil
}
