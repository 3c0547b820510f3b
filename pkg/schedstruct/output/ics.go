package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/models"
)

// DefaultLessonDuration is used when a time cell has no end.
const DefaultLessonDuration = 90 * time.Minute

var eventNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/ukaji3/schedstruct-go"))

// WriteICS writes lessons with a resolved date as calendar events.
// Event UIDs are derived from the lesson, so re-exporting the same sheet
// updates events instead of duplicating them.
func WriteICS(w io.Writer, lessons []models.Lesson, duration time.Duration) error {
	if duration <= 0 {
		duration = DefaultLessonDuration
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//schedstruct-go//lessons//RU")

	for _, l := range lessons {
		if !l.DateParsedOK {
			continue
		}
		end := l.Time.Add(duration)
		if l.End != nil {
			end = *l.End
		}

		event := cal.AddEvent(eventID(l))
		event.SetDtStampTime(l.Time)
		event.SetStartAt(l.Time)
		event.SetEndAt(end)
		event.SetSummary(summary(l))
		if l.Room != "" {
			event.SetLocation(l.Room)
		}
		event.SetDescription(description(l))
	}

	return cal.SerializeTo(w)
}

func eventID(l models.Lesson) string {
	key := fmt.Sprintf("%s|%s|%d|%d|%s", l.Sheet, l.Group, l.Row, l.Col, l.Time.Format(time.RFC3339))
	return uuid.NewSHA1(eventNamespace, []byte(key)).String()
}

func summary(l models.Lesson) string {
	if l.LessonType == "" {
		return l.LessonName
	}
	return fmt.Sprintf("%s (%s)", l.LessonName, l.LessonType)
}

func description(l models.Lesson) string {
	parts := []string{"Group: " + l.Group}
	if l.Instructor != "" {
		parts = append(parts, "Instructor: "+strings.TrimSpace(l.Instructor+" "+l.InstructorRole))
	}
	week := "odd"
	if l.EvenWeek {
		week = "even"
	}
	parts = append(parts, "Week: "+week)
	return strings.Join(parts, "\n")
}
