package schedstruct

import (
	"strings"
	"time"
	"unicode"

	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/models"
	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/parser"
)

// cellInput gathers everything resolved for one lesson cell.
type cellInput struct {
	header   models.Header
	group    string
	sheet    string
	row, col int

	rawDate, rawTime string
	text             string

	start  time.Time
	end    *time.Time
	dateOK bool

	cell   parser.CellText
	textOK bool
}

// buildLesson assembles the record for one cell. When the text did not split
// the whole cell text becomes the lesson name.
func buildLesson(in cellInput, opts Options) models.Lesson {
	l := models.Lesson{
		Faculty:      in.header.Faculty,
		Group:        strings.TrimSpace(in.group),
		EvenWeek:     in.header.EvenWeek,
		RawDate:      in.rawDate,
		RawTime:      in.rawTime,
		DateParsedOK: in.dateOK,
		Sheet:        in.sheet,
		Row:          in.row,
		Col:          in.col,
	}
	if l.Group == "" {
		l.Anomalies = append(l.Anomalies, models.AnomalyNoGroup)
	}
	if in.dateOK {
		l.Time = in.start
		l.End = in.end
	}

	if !in.textOK {
		l.LessonName = in.text
		return l
	}

	l.TextParsedOK = true
	l.LessonName = strings.TrimSpace(in.cell.Name)

	room, roomSpace := trimArtifact(in.cell.Room)
	kind, kindSpace := trimArtifact(strings.TrimPrefix(in.cell.Type, " "))
	if roomSpace || kindSpace {
		l.Anomalies = append(l.Anomalies, models.AnomalyLeadingSpace)
	}
	l.Room = strings.TrimSpace(room)

	if kind == "" {
		l.Anomalies = append(l.Anomalies, models.AnomalyNoLessonType)
	}
	if opts.SubgroupMarker != "" && strings.Contains(kind, opts.SubgroupMarker) {
		kind = opts.SubgroupPrefix + kind
	}
	l.LessonType = strings.TrimSpace(kind)

	if parser.IsBlank(in.cell.Instructor) {
		l.TextParsedOK = false
		l.Anomalies = append(l.Anomalies, models.AnomalyBlankInstructor)
		return l
	}
	name, role, _ := strings.Cut(in.cell.Instructor, ", ")
	l.Instructor = strings.TrimSpace(name)
	l.InstructorRole = strings.TrimSpace(role)

	return l
}

// trimArtifact strips leading whitespace and reports whether there was any.
func trimArtifact(s string) (string, bool) {
	t := strings.TrimLeftFunc(s, unicode.IsSpace)
	return t, t != s
}
