package schedstruct

import (
	"errors"
	"fmt"

	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/models"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable xls/xlsx workbook.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// Kind classifies the stage at which parsing failed.
type Kind int

const (
	// KindUnexpected is any failure outside the classified stages. Fatal.
	KindUnexpected Kind = iota
	// KindHeader is a missing or unrecognized sheet header. Fatal for the sheet.
	KindHeader
	// KindDate is a cell whose date or time could not be resolved. Recoverable.
	KindDate
	// KindCellShape is lesson text without the three-line shape. Recoverable.
	KindCellShape
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindDate:
		return "date"
	case KindCellShape:
		return "cell_shape"
	default:
		return "unexpected"
	}
}

// Recoverable reports whether errors of this kind are absorbed by the scan.
func (k Kind) Recoverable() bool {
	return k == KindDate || k == KindCellShape
}

// ParseError represents a classified parsing failure.
type ParseError struct {
	Kind       Kind
	Sheet      string
	SheetIndex int
	Row        int // -1 for sheet-level errors
	Col        int // -1 for sheet-level errors
	Err        error
}

func (e *ParseError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s error in sheet %q: %v", e.Kind, e.Sheet, e.Err)
	}
	return fmt.Sprintf("%s error in sheet %q at row %d col %d: %v", e.Kind, e.Sheet, e.Row, e.Col, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Issue converts the error into its serializable form.
func (e *ParseError) Issue() models.Issue {
	return models.Issue{
		Kind:    e.Kind.String(),
		Sheet:   e.Sheet,
		Row:     e.Row,
		Col:     e.Col,
		Message: e.Err.Error(),
	}
}

// NewParseError creates a new ParseError.
func NewParseError(kind Kind, sheetIndex int, sheetName string, row, col int, err error) *ParseError {
	return &ParseError{
		Kind:       kind,
		Sheet:      sheetName,
		SheetIndex: sheetIndex,
		Row:        row,
		Col:        col,
		Err:        err,
	}
}

// KindOf returns the kind of the first ParseError in err's chain, or
// KindUnexpected when there is none.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnexpected
}
