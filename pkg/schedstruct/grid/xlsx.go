package grid

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// OpenXLSX reads an Office Open XML workbook into memory.
func OpenXLSX(r io.Reader, name string) (*Book, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx open")
	}
	defer f.Close()

	return ReadXLSX(f, name)
}

// ReadXLSX copies every sheet of an open excelize file. A merged range
// keeps its text in the top-left cell only.
func ReadXLSX(f *excelize.File, name string) (*Book, error) {
	book := &Book{Name: name}
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, errors.Wrapf(err, "xlsx sheet %q", sheetName)
		}
		book.Sheets = append(book.Sheets, NewSheet(sheetName, trimTrailing(rows)))
	}
	return book, nil
}
