package schedstruct

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestExtractXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	cells := map[string]string{
		"A1": "Факультет экономики и управления",
		"A2": testHeader,
		"C3": "ЭК-101",
		"A4": "07 окт пн",
		"B4": "08:30-10:00",
		"C4": testLesson,
	}
	for cell, value := range cells {
		if err := f.SetCellValue("Sheet1", cell, value); err != nil {
			t.Fatalf("Failed to set %s: %v", cell, err)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "schedule.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	result, err := Extract(tmpFile, testRef, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if result.BookName != "schedule.xlsx" {
		t.Errorf("Expected book name schedule.xlsx, got %q", result.BookName)
	}
	if len(result.Sheets) != 1 || result.Sheets[0].Name != "Sheet1" {
		t.Fatalf("Expected one sheet named Sheet1, got %+v", result.Sheets)
	}
	if result.Sheets[0].DataRange != "A1:C4" {
		t.Errorf("Expected data range A1:C4, got %q", result.Sheets[0].DataRange)
	}
	if len(result.Lessons) != 1 {
		t.Fatalf("Expected 1 lesson, got %d", len(result.Lessons))
	}

	l := result.Lessons[0]
	expected := time.Date(2024, time.October, 7, 8, 30, 0, 0, time.UTC)
	if !l.Time.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, l.Time)
	}
	if l.Group != "ЭК-101" || l.LessonName != "Физическая культура и спорт" || l.Room != "Спорт компл.-10" {
		t.Errorf("Unexpected lesson %+v", l)
	}
	if l.Faculty != "Факультет экономики и управления" || !l.EvenWeek {
		t.Errorf("Unexpected header fields faculty=%q even=%v", l.Faculty, l.EvenWeek)
	}
}

func TestExtractXLS(t *testing.T) {
	result, err := Extract(filepath.Join("grid", "testdata", "schedule.xls"), testRef, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(result.Sheets) != 2 || result.Sheets[1].Header == nil || result.Sheets[1].Header.EvenWeek {
		t.Fatalf("Unexpected sheets %+v", result.Sheets)
	}
	if len(result.Lessons) != 5 {
		t.Fatalf("Expected 5 lessons, got %d", len(result.Lessons))
	}

	tests := []struct {
		group    string
		name     string
		kind     string
		expected time.Time
	}{
		{"ЭК-101", "Физическая культура и спорт", "Практические занятия", time.Date(2024, time.October, 7, 8, 30, 0, 0, time.UTC)},
		{"ЭК-101", "Физика", `Л\б занятия Лабораторные работы, п/г 2`, time.Date(2024, time.October, 7, 8, 30, 0, 0, time.UTC)},
		{"ЭК-102", "Математика", "Лекции", time.Date(2024, time.October, 7, 8, 30, 0, 0, time.UTC)},
		{"ЭК-102", "Экономика", "Лекции", time.Date(2024, time.October, 8, 10, 10, 0, 0, time.UTC)},
		{"ИТ-201", "Информатика", "Лабораторные работы", time.Date(2024, time.October, 9, 8, 30, 0, 0, time.UTC)},
	}

	for i, tt := range tests {
		l := result.Lessons[i]
		if l.Group != tt.group || l.LessonName != tt.name || l.LessonType != tt.kind {
			t.Errorf("lesson %d: %q %q %q, expected %q %q %q", i, l.Group, l.LessonName, l.LessonType, tt.group, tt.name, tt.kind)
		}
		if !l.DateParsedOK || !l.Time.Equal(tt.expected) {
			t.Errorf("lesson %d: time %v, expected %v", i, l.Time, tt.expected)
		}
		if len(l.Anomalies) != 0 {
			t.Errorf("lesson %d: unexpected anomalies %v", i, l.Anomalies)
		}
	}
}

func TestExtractErrors(t *testing.T) {
	dir := t.TempDir()

	txtFile := filepath.Join(dir, "schedule.txt")
	if err := os.WriteFile(txtFile, []byte("not a workbook"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	badXLSX := filepath.Join(dir, "broken.xlsx")
	if err := os.WriteFile(badXLSX, []byte("not a zip archive"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	tests := []struct {
		path     string
		expected error
	}{
		{filepath.Join(dir, "missing.xlsx"), ErrFileNotFound},
		{txtFile, ErrInvalidFormat},
		{badXLSX, ErrInvalidFormat},
	}

	for _, tt := range tests {
		_, err := Extract(tt.path, testRef, DefaultOptions())
		if !errors.Is(err, tt.expected) {
			t.Errorf("Extract(%q) error = %v, expected %v", tt.path, err, tt.expected)
		}
	}
}
