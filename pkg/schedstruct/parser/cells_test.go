package parser

import (
	"errors"
	"testing"
)

func TestSplitCell(t *testing.T) {
	tests := []struct {
		input    string
		expected CellText
	}{
		{
			"-  Физическая культура и спорт\n-  Розенфельд Александр Семёнович, Профессор\n-  Спорт компл.-10, Практические занятия",
			CellText{"Физическая культура и спорт", "Розенфельд Александр Семёнович, Профессор", "Спорт компл.-10", " Практические занятия"},
		},
		{
			"Математика\nИванов И.И., Доцент\nА-101, Лекции",
			CellText{"Математика", "Иванов И.И., Доцент", "А-101", " Лекции"},
		},
		{
			"• Физика\r\n— Петров П.П.\r\n1) Б-2, Лабораторные работы, п/г 1",
			CellText{"Физика", "Петров П.П.", "Б-2", " Лабораторные работы, п/г 1"},
		},
		{
			"Химия\n \nАуд. 312",
			CellText{"Химия", " ", "Ауд. 312", ""},
		},
	}

	for _, tt := range tests {
		result, err := SplitCell(tt.input)
		if err != nil {
			t.Errorf("SplitCell(%q) returned error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("SplitCell(%q) = %#v, expected %#v", tt.input, result, tt.expected)
		}
	}
}

func TestSplitCellRoomTypeRoundTrip(t *testing.T) {
	lines := []string{
		"Спорт компл.-10, Практические занятия",
		"А-101,Лекции",
		"Б-2, Лабораторные работы, п/г 1",
		"Ауд. 5, ",
	}

	for _, line := range lines {
		result, err := SplitCell("Предмет\nПреподаватель\n" + line)
		if err != nil {
			t.Fatalf("SplitCell failed for %q: %v", line, err)
		}
		if got := result.Room + "," + result.Type; got != line {
			t.Errorf("room/type of %q rejoined to %q", line, got)
		}
	}
}

func TestSplitCellMalformed(t *testing.T) {
	tests := []string{
		"Собрание студентов в актовом зале",
		"Математика\nИванов И.И.",
		"a\nb\nc\nd",
		"Математика\nИванов И.И.\nА-101, Лекции\n",
	}

	for _, input := range tests {
		_, err := SplitCell(input)
		if !errors.Is(err, ErrCellShape) {
			t.Errorf("SplitCell(%q) error = %v, expected ErrCellShape", input, err)
		}
	}
}

func TestStripMarker(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-  Математика", "Математика"},
		{"Математика", "Математика"},
		{"---", "-"},
		{" ", " "},
		{"", ""},
		{"12) Room", "Room"},
	}

	for _, tt := range tests {
		if result := stripMarker(tt.input); result != tt.expected {
			t.Errorf("stripMarker(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{"\n\t ", true},
		{" x ", false},
		{"0", false},
	}

	for _, tt := range tests {
		if result := IsBlank(tt.input); result != tt.expected {
			t.Errorf("IsBlank(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}
