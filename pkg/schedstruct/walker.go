package schedstruct

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/grid"
	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/models"
	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/parser"
)

// Parse scans every sheet of book and returns the lessons in sheet, row,
// column order together with the number of cells whose date could not be
// resolved.
//
// ref is the reference date: the calendar year and rollback month when
// opts.YearSource is YearFromReference. The engine never reads the clock.
//
// Recoverable cell errors are reported through lesson flags, the Corrupted
// counter and Issues. A header or unexpected failure stops the scan and is
// returned as a *ParseError along with the lessons collected so far.
func Parse(book grid.Workbook, ref time.Time, opts Options) (*models.Schedule, error) {
	result := &models.Schedule{}
	if b, ok := book.(*grid.Book); ok {
		result.BookName = b.Name
	}
	log := opts.logger()

	for i := 0; i < book.SheetCount(); i++ {
		name := book.SheetName(i)
		g, err := book.Sheet(i)
		if err != nil {
			return result, NewParseError(KindUnexpected, i, name, -1, -1, err)
		}

		scan := newSheetScan(g, i, name, ref, opts)
		err = scan.run()

		result.Sheets = append(result.Sheets, scan.summary())
		result.Lessons = append(result.Lessons, scan.lessons...)
		result.Corrupted += scan.corrupted
		result.Issues = append(result.Issues, scan.issues...)

		if err != nil {
			var pe *ParseError
			if opts.SkipBadSheets && errors.As(err, &pe) && pe.Kind == KindHeader {
				log.Warn("skipping sheet", zap.String("sheet", name), zap.Error(err))
				result.Issues = append(result.Issues, pe.Issue())
				continue
			}
			return result, err
		}
	}

	return result, nil
}

// ParseSheet scans a single grid.
func ParseSheet(g grid.Grid, name string, ref time.Time, opts Options) (*models.Schedule, error) {
	return Parse(grid.Single(name, g), ref, opts)
}

// scanState carries the last seen date and time down the sheet: a value
// applies to every row below it until the next non-blank cell.
type scanState struct {
	date string
	time string
}

// advance returns the state after reading the date and time cells of row.
func (s scanState) advance(g grid.Grid, row int, l Layout) scanState {
	if d := g.CellText(row, l.DateCol); !parser.IsBlank(d) {
		s.date = d
	}
	if t := g.CellText(row, l.TimeCol); !parser.IsBlank(t) {
		s.time = t
	}
	return s
}

// groupColumns maps each column to its group name. A blank group cell
// belongs to the group on its left, since merged group headers keep their
// text in the first column only.
func groupColumns(g grid.Grid, l Layout) []string {
	groups := make([]string, g.ColumnCount())
	current := ""
	for col := l.FirstLessonCol; col < len(groups); col++ {
		if text := g.CellText(l.GroupRow, col); !parser.IsBlank(text) {
			current = text
		}
		groups[col] = current
	}
	return groups
}

// sheetScan owns the results of scanning one sheet.
type sheetScan struct {
	g      grid.Grid
	index  int
	name   string
	ref    time.Time
	opts   Options
	dates  *parser.DateResolver
	log    *zap.Logger
	header *models.Header
	groups []string

	dataRange string
	lessons   []models.Lesson
	corrupted int
	issues    []models.Issue
}

func newSheetScan(g grid.Grid, index int, name string, ref time.Time, opts Options) *sheetScan {
	return &sheetScan{
		g:     g,
		index: index,
		name:  name,
		ref:   ref,
		opts:  opts,
		dates: opts.dateResolver(),
		log:   opts.logger().With(zap.String("sheet", name)),
	}
}

func (s *sheetScan) run() (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = NewParseError(KindUnexpected, s.index, s.name, -1, -1, fmt.Errorf("panic: %v", p))
		}
	}()

	l := s.opts.Layout
	header, err := s.resolveHeader()
	if err != nil {
		s.dataRange = grid.DataRange(s.g)
		return err
	}
	s.header = &header
	s.groups = groupColumns(s.g, l)

	var state scanState
	for row := l.FirstDataRow; row < s.g.RowCount(); row++ {
		state = state.advance(s.g, row, l)
		for col := l.FirstLessonCol; col < s.g.ColumnCount(); col++ {
			text := s.g.CellText(row, col)
			if parser.IsBlank(text) {
				continue
			}
			if err := s.cell(state, row, col, text); err != nil {
				return err
			}
		}
	}
	s.dataRange = grid.DataRange(s.g)
	return nil
}

func (s *sheetScan) resolveHeader() (models.Header, error) {
	l := s.opts.Layout
	faculty := ""
	if l.FacultyCell.Row >= 0 {
		faculty = s.g.CellText(l.FacultyCell.Row, l.FacultyCell.Col)
	}
	header, err := s.opts.headerResolver().Resolve(s.g.CellText(l.HeaderCell.Row, l.HeaderCell.Col), faculty)
	if err != nil {
		return header, NewParseError(KindHeader, s.index, s.name, -1, -1, err)
	}
	return header, nil
}

// cell turns one non-blank lesson cell into at most one record.
func (s *sheetScan) cell(state scanState, row, col int, text string) error {
	in := cellInput{
		header:  *s.header,
		group:   s.groups[col],
		sheet:   s.name,
		row:     row,
		col:     col,
		rawDate: state.date,
		rawTime: state.time,
		text:    text,
	}

	start, err := s.resolveDate(state)
	switch {
	case err == nil:
		if !s.opts.SkipBefore.IsZero() && dayBefore(start, s.opts.SkipBefore) {
			return nil
		}
		in.start, in.dateOK = start, true
		if end, ok := s.dates.ResolveEnd(start, state.time); ok {
			in.end = &end
		}
	case errors.Is(err, parser.ErrDate):
		s.corrupted++
		s.note(KindDate, row, col, err)
		if !s.opts.KeepCorrupted {
			return nil
		}
	default:
		return NewParseError(KindUnexpected, s.index, s.name, row, col, err)
	}

	ct, err := parser.SplitCell(text)
	switch {
	case err == nil:
		in.cell, in.textOK = ct, true
	case errors.Is(err, parser.ErrCellShape):
		s.note(KindCellShape, row, col, err)
	default:
		return NewParseError(KindUnexpected, s.index, s.name, row, col, err)
	}

	s.lessons = append(s.lessons, buildLesson(in, s.opts))
	return nil
}

// resolveDate picks the calendar year for the carried date and resolves the
// lesson start.
func (s *sheetScan) resolveDate(state scanState) (time.Time, error) {
	month, err := s.dates.MonthOf(state.date)
	if err != nil {
		return time.Time{}, err
	}

	if s.opts.YearSource == YearFromReference {
		return s.dates.Resolve(state.date, state.time, strconv.Itoa(s.ref.Year()), s.ref.Month())
	}

	year := s.header.YearEnd
	if month >= s.opts.AcademicYearStartMonth {
		year = s.header.YearStart
	}
	return s.dates.Resolve(state.date, state.time, year, 0)
}

func (s *sheetScan) note(kind Kind, row, col int, err error) {
	pe := NewParseError(kind, s.index, s.name, row, col, err)
	s.issues = append(s.issues, pe.Issue())
	s.log.Warn("malformed cell",
		zap.String("kind", kind.String()),
		zap.Int("row", row),
		zap.Int("col", col),
		zap.Error(err),
	)
}

func (s *sheetScan) summary() models.SheetSummary {
	return models.SheetSummary{
		Index:     s.index,
		Name:      s.name,
		DataRange: s.dataRange,
		Header:    s.header,
		Lessons:   len(s.lessons),
		Corrupted: s.corrupted,
	}
}

// dayBefore reports whether t falls on a calendar day before the day of
// limit, compared in t's location.
func dayBefore(t, limit time.Time) bool {
	limit = limit.In(t.Location())
	ty, tm, td := t.Date()
	ly, lm, ld := limit.Date()
	return time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC).Before(time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC))
}
