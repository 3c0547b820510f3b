package schedstruct

import (
	"reflect"
	"testing"
	"time"

	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/models"
	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/parser"
)

func TestBuildLesson(t *testing.T) {
	header := models.Header{EvenWeek: true, YearStart: "2024", YearEnd: "2025", Faculty: "ФЭУ"}
	start := time.Date(2024, time.October, 7, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		cell      parser.CellText
		textOK    bool
		lessonTyp string
		instr     string
		role      string
		room      string
		parsedOK  bool
		anomalies []models.Anomaly
	}{
		{
			name:      "well formed",
			cell:      parser.CellText{Name: "Физика", Instructor: "Петров П.П., Доцент", Room: "Б-2", Type: " Лекции"},
			textOK:    true,
			lessonTyp: "Лекции",
			instr:     "Петров П.П.",
			role:      "Доцент",
			room:      "Б-2",
			parsedOK:  true,
		},
		{
			name:      "several instructors",
			cell:      parser.CellText{Name: "Физика", Instructor: "Петров П.П., Сидоров С.С., Доцент", Room: "Б-2", Type: " Лекции"},
			textOK:    true,
			lessonTyp: "Лекции",
			instr:     "Петров П.П.",
			role:      "Сидоров С.С., Доцент",
			room:      "Б-2",
			parsedOK:  true,
		},
		{
			name:      "sub-group",
			cell:      parser.CellText{Name: "Физика", Instructor: "Петров П.П.", Room: "Б-2", Type: " Лабораторные работы, п/г 1"},
			textOK:    true,
			lessonTyp: `Л\б занятия Лабораторные работы, п/г 1`,
			instr:     "Петров П.П.",
			room:      "Б-2",
			parsedOK:  true,
		},
		{
			name:      "blank instructor",
			cell:      parser.CellText{Name: "Физика", Instructor: " ", Room: "Б-2", Type: " Лекции"},
			textOK:    true,
			lessonTyp: "Лекции",
			room:      "Б-2",
			parsedOK:  false,
			anomalies: []models.Anomaly{models.AnomalyBlankInstructor},
		},
		{
			name:      "leading space",
			cell:      parser.CellText{Name: "Физика", Instructor: "Петров П.П.", Room: "Б-2", Type: "   Лекции"},
			textOK:    true,
			lessonTyp: "Лекции",
			instr:     "Петров П.П.",
			room:      "Б-2",
			parsedOK:  true,
			anomalies: []models.Anomaly{models.AnomalyLeadingSpace},
		},
		{
			name:      "no lesson type",
			cell:      parser.CellText{Name: "Физика", Instructor: "Петров П.П.", Room: "Ауд. 312"},
			textOK:    true,
			instr:     "Петров П.П.",
			room:      "Ауд. 312",
			parsedOK:  true,
			anomalies: []models.Anomaly{models.AnomalyNoLessonType},
		},
	}

	for _, tt := range tests {
		in := cellInput{
			header:  header,
			group:   " ЭК-101 ",
			sheet:   "Лист1",
			row:     3,
			col:     2,
			rawDate: "07 окт",
			rawTime: "08:30-10:00",
			text:    "raw",
			start:   start,
			dateOK:  true,
			cell:    tt.cell,
			textOK:  tt.textOK,
		}
		l := buildLesson(in, DefaultOptions())

		if l.Group != "ЭК-101" || l.Faculty != "ФЭУ" || !l.EvenWeek {
			t.Errorf("%s: header fields not copied: %+v", tt.name, l)
		}
		if !l.Time.Equal(start) || !l.DateParsedOK {
			t.Errorf("%s: expected start %v, got %v", tt.name, start, l.Time)
		}
		if l.LessonName != "Физика" {
			t.Errorf("%s: lesson name %q", tt.name, l.LessonName)
		}
		if l.LessonType != tt.lessonTyp {
			t.Errorf("%s: lesson type %q, expected %q", tt.name, l.LessonType, tt.lessonTyp)
		}
		if l.Instructor != tt.instr || l.InstructorRole != tt.role {
			t.Errorf("%s: instructor %q / %q, expected %q / %q", tt.name, l.Instructor, l.InstructorRole, tt.instr, tt.role)
		}
		if l.Room != tt.room {
			t.Errorf("%s: room %q, expected %q", tt.name, l.Room, tt.room)
		}
		if l.TextParsedOK != tt.parsedOK {
			t.Errorf("%s: TextParsedOK %v, expected %v", tt.name, l.TextParsedOK, tt.parsedOK)
		}
		if !reflect.DeepEqual(l.Anomalies, tt.anomalies) {
			t.Errorf("%s: anomalies %v, expected %v", tt.name, l.Anomalies, tt.anomalies)
		}
	}
}

func TestBuildLessonRawFallback(t *testing.T) {
	in := cellInput{
		group:   "ЭК-101",
		rawTime: "08:30-10:00",
		text:    "Собрание студентов\nв актовом зале",
	}

	l := buildLesson(in, DefaultOptions())
	if l.TextParsedOK || l.DateParsedOK {
		t.Errorf("Expected both flags false, got date=%v text=%v", l.DateParsedOK, l.TextParsedOK)
	}
	if l.LessonName != in.text {
		t.Errorf("Expected raw text as lesson name, got %q", l.LessonName)
	}
	if l.Timestamp() != "08:30-10:00" {
		t.Errorf("Expected raw time as timestamp, got %q", l.Timestamp())
	}
	if l.Instructor != "" || l.Room != "" || l.LessonType != "" {
		t.Errorf("Expected empty structured fields, got %+v", l)
	}
}

func TestBuildLessonBlankGroup(t *testing.T) {
	in := cellInput{
		group:  "  ",
		text:   "Математика\nИванов И.И., Доцент\nА-101, Лекции",
		cell:   parser.CellText{Name: "Математика", Instructor: "Иванов И.И., Доцент", Room: "А-101", Type: " Лекции"},
		textOK: true,
	}

	l := buildLesson(in, DefaultOptions())
	if l.Group != "" {
		t.Errorf("Expected empty group, got %q", l.Group)
	}
	if !reflect.DeepEqual(l.Anomalies, []models.Anomaly{models.AnomalyNoGroup}) {
		t.Errorf("Expected no_group anomaly, got %v", l.Anomalies)
	}
	if !l.TextParsedOK {
		t.Error("Expected text to stay parsed")
	}
}
