package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

const okColumn = 6

// RenderTable renders lessons as a bordered terminal table. Rows with a
// failed flag are highlighted.
func RenderTable(lessons []models.Lesson) string {
	rows := make([][]string, 0, len(lessons))
	for _, l := range lessons {
		rows = append(rows, []string{
			l.Group,
			when(l),
			l.LessonName,
			l.LessonType,
			l.Instructor,
			l.Room,
			flags(l),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("GROUP", "TIME", "LESSON", "TYPE", "INSTRUCTOR", "ROOM", "OK").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == okColumn && row >= 0 && row < len(rows) && rows[row][okColumn] != "ok":
				return flagStyle
			default:
				return cellStyle
			}
		})
	return t.String()
}

// Summary renders a one-line scan summary.
func Summary(s *models.Schedule) string {
	line := titleStyle.Render(fmt.Sprintf("%d lessons from %d sheets", len(s.Lessons), len(s.Sheets)))
	if s.Corrupted > 0 || len(s.Issues) > 0 {
		line += " " + warnStyle.Render(fmt.Sprintf("(%d corrupted cells, %d issues)", s.Corrupted, len(s.Issues)))
	}
	return line
}

func when(l models.Lesson) string {
	if !l.DateParsedOK {
		return strings.TrimSpace(l.RawDate + " " + l.RawTime)
	}
	if l.End != nil {
		return l.Time.Format("02.01.2006 15:04") + "-" + l.End.Format("15:04")
	}
	return l.Time.Format("02.01.2006 15:04")
}

func flags(l models.Lesson) string {
	var bad []string
	if !l.DateParsedOK {
		bad = append(bad, "date")
	}
	if !l.TextParsedOK {
		bad = append(bad, "text")
	}
	if len(bad) == 0 {
		return "ok"
	}
	return strings.Join(bad, ",")
}
