// Package models defines data structures for schedule extraction.
package models

import "time"

// Anomaly names a recoverable irregularity found in lesson text.
type Anomaly string

const (
	// AnomalyBlankInstructor marks an instructor line holding only whitespace.
	AnomalyBlankInstructor Anomaly = "blank_instructor"
	// AnomalyLeadingSpace marks a room or type that started with spaces.
	AnomalyLeadingSpace Anomaly = "leading_space"
	// AnomalyNoLessonType marks a room line without a ", <type>" part.
	AnomalyNoLessonType Anomaly = "no_lesson_type"
	// AnomalyNoGroup marks a lesson column with no group name at or left of it.
	AnomalyNoGroup Anomaly = "no_group"
)

// Lesson represents one lesson cell of the schedule grid.
type Lesson struct {
	// Faculty is the faculty named in the sheet header (optional).
	Faculty string `json:"faculty,omitempty"`
	// Group is the group identifier from the group row. A blank group cell
	// takes the nearest group to its left (merged group headers).
	Group string `json:"group"`
	// EvenWeek is the week parity of the sheet.
	EvenWeek bool `json:"even_week"`
	// Time is the lesson start. Zero when DateParsedOK is false.
	Time time.Time `json:"time,omitzero"`
	// End is the lesson end when the time cell holds a range.
	End *time.Time `json:"end,omitempty"`
	// RawDate is the carried-forward date cell text.
	RawDate string `json:"raw_date"`
	// RawTime is the carried-forward time cell text.
	RawTime string `json:"raw_time"`
	// LessonName is the subject, or the whole cell text if TextParsedOK is false.
	LessonName string `json:"lesson_name"`
	// LessonType is the session kind (lecture, lab, ...).
	LessonType string `json:"lesson_type,omitempty"`
	// Instructor is the first instructor listed.
	Instructor string `json:"instructor,omitempty"`
	// InstructorRole is the rest of the instructor line, e.g. "Доцент".
	InstructorRole string `json:"instructor_role,omitempty"`
	// Room is the auditorium.
	Room string `json:"room,omitempty"`
	// DateParsedOK reports whether Time was resolved.
	DateParsedOK bool `json:"date_parsed_ok"`
	// TextParsedOK reports whether the cell text had the expected shape.
	TextParsedOK bool `json:"text_parsed_ok"`
	// Anomalies lists recoverable text irregularities.
	Anomalies []Anomaly `json:"anomalies,omitempty"`
	// Sheet is the name of the source sheet.
	Sheet string `json:"sheet"`
	// Row is the 0-based source row.
	Row int `json:"row"`
	// Col is the 0-based source column.
	Col int `json:"col"`
}

// Timestamp returns the start time in RFC 3339, or the raw time text when
// the date could not be resolved.
func (l Lesson) Timestamp() string {
	if !l.DateParsedOK {
		return l.RawTime
	}
	return l.Time.Format(time.RFC3339)
}
