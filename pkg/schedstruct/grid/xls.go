package grid

import (
	"fmt"
	"io"

	"github.com/extrame/xls"
	"github.com/pkg/errors"
)

// OpenXLS reads a legacy Excel 97-2003 workbook into memory. BIFF8 strings
// are UTF-16 in the file, so no code page is involved.
func OpenXLS(r io.ReadSeeker, name string) (*Book, error) {
	wb, err := openXLS(r)
	if err != nil {
		return nil, errors.Wrap(err, "xls open")
	}
	if wb == nil {
		return nil, errors.New("xls open: no workbook stream")
	}
	return readXLS(wb, name)
}

// openXLS guards against panics the BIFF decoder raises on damaged files.
func openXLS(r io.ReadSeeker) (wb *xls.WorkBook, err error) {
	defer func() {
		if p := recover(); p != nil {
			wb, err = nil, fmt.Errorf("corrupt xls: %v", p)
		}
	}()
	return xls.OpenReader(r, "utf-8")
}

func readXLS(wb *xls.WorkBook, name string) (book *Book, err error) {
	defer func() {
		if p := recover(); p != nil {
			book, err = nil, errors.Errorf("xls read: %v", p)
		}
	}()

	book = &Book{Name: name}
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}

		cells := make([][]string, 0, int(sheet.MaxRow)+1)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := xlsRow(sheet, r)
			if row == nil {
				cells = append(cells, nil)
				continue
			}
			cols := make([]string, row.LastCol())
			for c := 0; c < row.LastCol(); c++ {
				cols[c] = row.Col(c)
			}
			cells = append(cells, cols)
		}
		book.Sheets = append(book.Sheets, NewSheet(sheet.Name, trimTrailing(cells)))
	}
	return book, nil
}

// xlsRow returns row r, or nil when the file has no record for it.
// WorkSheet.Row dereferences the missing row and panics.
func xlsRow(sheet *xls.WorkSheet, r int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(r)
}
