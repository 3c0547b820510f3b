package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrCellShape indicates lesson text that does not split into the expected
// name / instructor / room+type lines.
var ErrCellShape = errors.New("cell text shape")

// CellLines is the number of lines in a well-formed lesson cell.
const CellLines = 3

// CellText holds the fields of a well-formed lesson cell.
type CellText struct {
	// Name is the subject name (first line).
	Name string
	// Instructor is the whole instructor line, e.g. "Иванов И.И., Доцент".
	Instructor string
	// Room is the third line up to its first comma.
	Room string
	// Type is the third line after its first comma (may keep a leading space).
	Type string
}

// IsBlank reports whether a cell holds no text other than whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SplitCell splits the raw text of a lesson cell.
// Example input:
//
//	-  Физическая культура и спорт
//	-  Розенфельд Александр Семёнович, Профессор
//	-  Спорт компл.-10, Практические занятия
//
// A cell that does not have exactly three lines yields an error wrapping
// ErrCellShape; free-text announcement cells land here.
func SplitCell(text string) (CellText, error) {
	lines := strings.Split(text, "\n")
	if len(lines) != CellLines {
		return CellText{}, fmt.Errorf("%w: expected %d lines, got %d", ErrCellShape, CellLines, len(lines))
	}

	for i, line := range lines {
		lines[i] = stripMarker(strings.TrimRight(line, "\r"))
	}

	room, kind := lines[2], ""
	if idx := strings.Index(room, ","); idx >= 0 {
		room, kind = lines[2][:idx], lines[2][idx+1:]
	}

	return CellText{
		Name:       lines[0],
		Instructor: lines[1],
		Room:       room,
		Type:       kind,
	}, nil
}

// stripMarker drops a leading run of non-letter runes (bullets, dashes,
// spaces) but always leaves at least one rune.
func stripMarker(line string) string {
	runes := []rune(line)
	start := 0
	for start < len(runes)-1 && !unicode.IsLetter(runes[start]) {
		start++
	}
	return string(runes[start:])
}
