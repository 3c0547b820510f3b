// Package output serializes parsed schedules.
package output

import (
	"encoding/json"

	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/models"
)

// SheetLessons is the per-sheet JSON document.
type SheetLessons struct {
	Sheet   models.SheetSummary `json:"sheet"`
	Lessons []models.Lesson     `json:"lessons"`
}

// ToJSON serializes the whole schedule.
func ToJSON(s *models.Schedule, pretty bool) ([]byte, error) {
	return marshal(s, pretty)
}

// SheetToJSON serializes the lessons of one sheet with its summary.
func SheetToJSON(s *models.Schedule, sheet models.SheetSummary, pretty bool) ([]byte, error) {
	doc := SheetLessons{Sheet: sheet, Lessons: []models.Lesson{}}
	for _, l := range s.Lessons {
		if l.Sheet == sheet.Name {
			doc.Lessons = append(doc.Lessons, l)
		}
	}
	return marshal(doc, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
