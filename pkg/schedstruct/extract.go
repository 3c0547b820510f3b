package schedstruct

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/grid"
	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/models"
)

// Extract loads the .xls or .xlsx workbook at path and parses it.
func Extract(path string, ref time.Time, opts Options) (*models.Schedule, error) {
	book, err := grid.Open(path)
	if err != nil {
		var pathErr *fs.PathError
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		case errors.As(err, &pathErr):
			return nil, err
		case errors.Is(err, grid.ErrUnsupportedFormat):
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		default:
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
		}
	}

	return Parse(book, ref, opts)
}
