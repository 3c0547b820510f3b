package schedstruct

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/parser"
)

// fileOptions is the YAML form of Options. Absent keys keep the base value.
type fileOptions struct {
	Layout                 Layout          `yaml:"layout"`
	Months                 map[string]int  `yaml:"months"`
	Parity                 map[string]bool `yaml:"parity"`
	RollbackOffset         *int            `yaml:"rollback_offset"`
	AcademicYearStartMonth *int            `yaml:"academic_year_start_month"`
	YearSource             *string         `yaml:"year_source"`
	Timezone               *string         `yaml:"timezone"`
	KeepCorrupted          *bool           `yaml:"keep_corrupted"`
	SkipBadSheets          *bool           `yaml:"skip_bad_sheets"`
	SubgroupMarker         *string         `yaml:"subgroup_marker"`
	SubgroupPrefix         *string         `yaml:"subgroup_prefix"`
}

// LoadOptions overlays the YAML file at path onto base.
//
//	layout:
//	  header_cell: {row: 1, col: 0}
//	  first_data_row: 4
//	timezone: Asia/Yekaterinburg
//	months: {"сент": 9}
func LoadOptions(path string, base Options) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read options file: %w", err)
	}
	return ParseOptions(data, base)
}

// ParseOptions overlays YAML options onto base.
func ParseOptions(data []byte, base Options) (Options, error) {
	fo := fileOptions{Layout: base.Layout}
	if err := yaml.UnmarshalStrict(data, &fo); err != nil {
		return base, fmt.Errorf("failed to parse options YAML: %w", err)
	}

	opts := base
	opts.Layout = fo.Layout

	if len(fo.Months) > 0 {
		months := make(map[string]time.Month, len(base.Months)+len(fo.Months))
		for k, v := range base.Months {
			months[k] = v
		}
		for k, v := range fo.Months {
			if v < 1 || v > 12 {
				return base, fmt.Errorf("month %q: %d is not in 1..12", k, v)
			}
			months[parser.MonthKey(k)] = time.Month(v)
		}
		opts.Months = months
	}

	if len(fo.Parity) > 0 {
		parity := make(map[string]bool, len(fo.Parity))
		for k, v := range fo.Parity {
			parity[parser.Fold(k)] = v
		}
		opts.Parity = parity
	}

	if fo.RollbackOffset != nil {
		opts.RollbackOffset = *fo.RollbackOffset
	}
	if fo.AcademicYearStartMonth != nil {
		m := *fo.AcademicYearStartMonth
		if m < 1 || m > 12 {
			return base, fmt.Errorf("academic_year_start_month: %d is not in 1..12", m)
		}
		opts.AcademicYearStartMonth = time.Month(m)
	}
	if fo.YearSource != nil {
		switch ys := YearSource(*fo.YearSource); ys {
		case YearFromHeader, YearFromReference:
			opts.YearSource = ys
		default:
			return base, fmt.Errorf("invalid year_source: %s (must be header or reference)", ys)
		}
	}
	if fo.Timezone != nil {
		loc, err := time.LoadLocation(*fo.Timezone)
		if err != nil {
			return base, fmt.Errorf("timezone: %w", err)
		}
		opts.Location = loc
	}
	if fo.KeepCorrupted != nil {
		opts.KeepCorrupted = *fo.KeepCorrupted
	}
	if fo.SkipBadSheets != nil {
		opts.SkipBadSheets = *fo.SkipBadSheets
	}
	if fo.SubgroupMarker != nil {
		opts.SubgroupMarker = *fo.SubgroupMarker
	}
	if fo.SubgroupPrefix != nil {
		opts.SubgroupPrefix = *fo.SubgroupPrefix
	}

	return opts, nil
}
