package output

import (
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/models"
)

// csvLesson is the flat CSV row of a lesson.
type csvLesson struct {
	Sheet          string `csv:"sheet"`
	Row            int    `csv:"row"`
	Col            int    `csv:"col"`
	Faculty        string `csv:"faculty"`
	Group          string `csv:"group"`
	EvenWeek       bool   `csv:"even_week"`
	Timestamp      string `csv:"timestamp"`
	End            string `csv:"end"`
	LessonName     string `csv:"lesson_name"`
	LessonType     string `csv:"lesson_type"`
	Instructor     string `csv:"instructor"`
	InstructorRole string `csv:"instructor_role"`
	Room           string `csv:"room"`
	DateParsedOK   bool   `csv:"date_parsed_ok"`
	TextParsedOK   bool   `csv:"text_parsed_ok"`
	Anomalies      string `csv:"anomalies"`
}

// WriteCSV writes one row per lesson with a header line.
func WriteCSV(w io.Writer, lessons []models.Lesson) error {
	rows := make([]csvLesson, 0, len(lessons))
	for _, l := range lessons {
		row := csvLesson{
			Sheet:          l.Sheet,
			Row:            l.Row,
			Col:            l.Col,
			Faculty:        l.Faculty,
			Group:          l.Group,
			EvenWeek:       l.EvenWeek,
			Timestamp:      l.Timestamp(),
			LessonName:     l.LessonName,
			LessonType:     l.LessonType,
			Instructor:     l.Instructor,
			InstructorRole: l.InstructorRole,
			Room:           l.Room,
			DateParsedOK:   l.DateParsedOK,
			TextParsedOK:   l.TextParsedOK,
		}
		if l.End != nil {
			row.End = l.End.Format(time.RFC3339)
		}
		anomalies := make([]string, len(l.Anomalies))
		for i, a := range l.Anomalies {
			anomalies[i] = string(a)
		}
		row.Anomalies = strings.Join(anomalies, ";")
		rows = append(rows, row)
	}
	return gocsv.Marshal(rows, w)
}
