package grid

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnsupportedFormat indicates a file extension no loader handles.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Open materializes the workbook at path, choosing the loader by extension.
func Open(path string) (*Book, error) {
	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xls", ".xlsx", ".xlsm":
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if ext == ".xls" {
		return OpenXLS(f, name)
	}
	return OpenXLSX(f, name)
}
