// Package schedstruct extracts lesson records from university schedule
// spreadsheets.
package schedstruct

import (
	"time"

	"go.uber.org/zap"

	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/parser"
)

// YearSource selects where the calendar year of a lesson comes from.
type YearSource string

const (
	// YearFromHeader picks the start or end year of the academic year in the
	// sheet header depending on the lesson month.
	YearFromHeader YearSource = "header"
	// YearFromReference uses the year of the reference date and moves lessons
	// RollbackOffset months ahead of the reference month to the previous year.
	YearFromReference YearSource = "reference"
)

// Coord is a 0-based cell position.
type Coord struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Layout holds the fixed grid positions of a schedule sheet.
type Layout struct {
	// HeaderCell holds "... 2024/2025 <parity>".
	HeaderCell Coord `yaml:"header_cell"`
	// FacultyCell holds the faculty name. A negative row disables it.
	FacultyCell Coord `yaml:"faculty_cell"`
	// DateCol holds day cells such as "07 окт пн".
	DateCol int `yaml:"date_col"`
	// TimeCol holds time cells such as "08:30-10:00".
	TimeCol int `yaml:"time_col"`
	// GroupRow holds the group identifiers of the lesson columns.
	GroupRow int `yaml:"group_row"`
	// FirstDataRow is the first row scanned for lessons.
	FirstDataRow int `yaml:"first_data_row"`
	// FirstLessonCol is the first column holding lessons.
	FirstLessonCol int `yaml:"first_lesson_col"`
}

// DefaultLayout returns the layout of the portal's schedule sheets.
func DefaultLayout() Layout {
	return Layout{
		HeaderCell:     Coord{Row: 1, Col: 0},
		FacultyCell:    Coord{Row: 0, Col: 0},
		DateCol:        0,
		TimeCol:        1,
		GroupRow:       2,
		FirstDataRow:   3,
		FirstLessonCol: 2,
	}
}

// Options configures parsing behavior.
type Options struct {
	// Layout locates header, date, time and group cells.
	Layout Layout
	// Months maps three-letter month prefixes to months.
	Months map[string]time.Month
	// Parity maps header parity words to the even-week flag.
	Parity map[string]bool
	// RollbackOffset is the lesson-minus-reference month distance that moves a
	// lesson to the previous year. Only used with YearFromReference.
	RollbackOffset int
	// AcademicYearStartMonth is the first month taking the header start year.
	AcademicYearStartMonth time.Month
	// YearSource selects header or reference-date years.
	YearSource YearSource
	// Location is attached to lesson timestamps. Nil means UTC.
	Location *time.Location
	// SkipBefore drops lessons dated before this day. Zero keeps all.
	SkipBefore time.Time
	// KeepCorrupted emits cells with unresolved dates (DateParsedOK false)
	// instead of skipping them. They are counted either way.
	KeepCorrupted bool
	// SkipBadSheets records header failures as issues and continues with the
	// next sheet instead of failing the parse.
	SkipBadSheets bool
	// SubgroupMarker in a lesson type marks a lesson split into sub-groups.
	SubgroupMarker string
	// SubgroupPrefix is prepended to the lesson type of sub-group lessons.
	SubgroupPrefix string
	// Logger receives warnings about recoverable cells. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default parsing options.
func DefaultOptions() Options {
	return Options{
		Layout:                 DefaultLayout(),
		Months:                 parser.DefaultMonths,
		Parity:                 parser.DefaultParity,
		RollbackOffset:         parser.DefaultRollbackOffset,
		AcademicYearStartMonth: time.September,
		YearSource:             YearFromHeader,
		SubgroupMarker:         "п/г",
		SubgroupPrefix:         `Л\б занятия `,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) dateResolver() *parser.DateResolver {
	r := parser.NewDateResolver(o.Location)
	if o.Months != nil {
		r.Months = o.Months
	}
	r.RollbackOffset = o.RollbackOffset
	return r
}

func (o Options) headerResolver() *parser.HeaderResolver {
	h := parser.NewHeaderResolver()
	if o.Parity != nil {
		h.Parity = o.Parity
	}
	return h
}
