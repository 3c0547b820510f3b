package schedstruct

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadOptions(t *testing.T) {
	data := `
layout:
  header_cell: {row: 2}
  first_data_row: 5
months:
  сентябрь: 9
parity:
  ЗНАМЕНАТЕЛЬ: true
  числитель: false
year_source: reference
rollback_offset: 10
academic_year_start_month: 8
timezone: UTC
keep_corrupted: true
subgroup_prefix: "Лаб. "
`
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write options file: %v", err)
	}

	opts, err := LoadOptions(path, DefaultOptions())
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}

	if opts.Layout.HeaderCell != (Coord{Row: 2, Col: 0}) {
		t.Errorf("Expected header cell (2, 0), got %+v", opts.Layout.HeaderCell)
	}
	if opts.Layout.FirstDataRow != 5 || opts.Layout.GroupRow != 2 || opts.Layout.FirstLessonCol != 2 {
		t.Errorf("Expected partial layout overlay, got %+v", opts.Layout)
	}
	if opts.Months["сен"] != time.September || opts.Months["окт"] != time.October {
		t.Errorf("Expected merged month table, got %v", opts.Months)
	}
	if v, ok := opts.Parity["знаменатель"]; !ok || !v {
		t.Errorf("Expected folded parity word, got %v", opts.Parity)
	}
	if _, ok := opts.Parity["четная"]; ok {
		t.Errorf("Expected parity table to be replaced, got %v", opts.Parity)
	}
	if opts.YearSource != YearFromReference || opts.RollbackOffset != 10 || opts.AcademicYearStartMonth != time.August {
		t.Errorf("Unexpected year settings: %v %d %v", opts.YearSource, opts.RollbackOffset, opts.AcademicYearStartMonth)
	}
	if opts.Location != time.UTC {
		t.Errorf("Expected UTC location, got %v", opts.Location)
	}
	if !opts.KeepCorrupted || opts.SkipBadSheets {
		t.Errorf("Unexpected flags keep=%v skip=%v", opts.KeepCorrupted, opts.SkipBadSheets)
	}
	if opts.SubgroupPrefix != "Лаб. " || opts.SubgroupMarker != "п/г" {
		t.Errorf("Unexpected subgroup settings %q %q", opts.SubgroupMarker, opts.SubgroupPrefix)
	}
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []string{
		"year_source: clock",
		"months: {брюмер: 13}",
		"academic_year_start_month: 0",
		"timezone: Nowhere/City",
		"unknown_key: 1",
		"layout: [1, 2]",
	}

	base := DefaultOptions()
	for _, data := range tests {
		if _, err := ParseOptions([]byte(data), base); err == nil {
			t.Errorf("ParseOptions(%q) expected error", data)
		}
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"), DefaultOptions()); err == nil {
		t.Error("Expected error for missing file")
	}
}
