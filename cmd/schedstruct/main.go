// Package main provides the CLI entry point for schedstruct-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/schedstruct-go/pkg/schedstruct"
	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/models"
	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/output"
)

var (
	outputPath    string
	pretty        bool
	format        string
	sheetsDir     string
	layoutPath    string
	refDate       string
	fromDate      string
	timezone      string
	yearSource    string
	keepCorrupted bool
	skipBadSheets bool
	verbose       bool
)

const dateFlagLayout = "2006-01-02"

func main() {
	rootCmd := &cobra.Command{
		Use:   "schedstruct [schedule.xls]",
		Short: "Extract lessons from university schedule spreadsheets",
		Long: `schedstruct-go reads a class-schedule workbook (.xls or .xlsx), walks its
date/time/group grid and outputs one record per lesson cell.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, csv, ics, table")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet JSON files")
	rootCmd.Flags().StringVar(&layoutPath, "layout", "", "YAML file overriding layout and lookup tables")
	rootCmd.Flags().StringVar(&refDate, "ref", "", "Reference date YYYY-MM-DD (default: today)")
	rootCmd.Flags().StringVar(&fromDate, "from", "", "Drop lessons before this date YYYY-MM-DD")
	rootCmd.Flags().StringVar(&timezone, "tz", "", "Timezone of lesson times, e.g. Asia/Yekaterinburg (default: UTC)")
	rootCmd.Flags().StringVar(&yearSource, "year-source", "", "Lesson year source: header or reference")
	rootCmd.Flags().BoolVar(&keepCorrupted, "keep-corrupted", false, "Emit cells with unresolved dates instead of skipping them")
	rootCmd.Flags().BoolVar(&skipBadSheets, "skip-bad-sheets", false, "Continue past sheets whose header cannot be parsed")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log malformed cells to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Sync()
		opts.Logger = logger
	}

	ref := time.Now()
	if opts.Location != nil {
		ref = ref.In(opts.Location)
	}
	if refDate != "" {
		if ref, err = parseDateFlag("ref", refDate, opts.Location); err != nil {
			return err
		}
	}

	schedule, err := schedstruct.Extract(inputPath, ref, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	data, err := render(schedule)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Print(string(data))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(schedule, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	fmt.Fprintln(os.Stderr, output.Summary(schedule))
	return nil
}

func buildOptions(cmd *cobra.Command) (schedstruct.Options, error) {
	opts := schedstruct.DefaultOptions()

	if layoutPath != "" {
		var err error
		if opts, err = schedstruct.LoadOptions(layoutPath, opts); err != nil {
			return opts, err
		}
	}

	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return opts, fmt.Errorf("invalid timezone: %w", err)
		}
		opts.Location = loc
	}

	switch yearSource {
	case "":
	case string(schedstruct.YearFromHeader), string(schedstruct.YearFromReference):
		opts.YearSource = schedstruct.YearSource(yearSource)
	default:
		return opts, fmt.Errorf("invalid year source: %s (must be header or reference)", yearSource)
	}

	if fromDate != "" {
		from, err := parseDateFlag("from", fromDate, opts.Location)
		if err != nil {
			return opts, err
		}
		opts.SkipBefore = from
	}

	if cmd.Flags().Changed("keep-corrupted") {
		opts.KeepCorrupted = keepCorrupted
	}
	if cmd.Flags().Changed("skip-bad-sheets") {
		opts.SkipBadSheets = skipBadSheets
	}

	return opts, nil
}

func parseDateFlag(name, value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(dateFlagLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q (want YYYY-MM-DD): %w", name, value, err)
	}
	return t, nil
}

func render(s *models.Schedule) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		data, err := output.ToJSON(s, pretty)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "csv":
		var b strings.Builder
		if err := output.WriteCSV(&b, s.Lessons); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	case "ics":
		var b strings.Builder
		if err := output.WriteICS(&b, s.Lessons, output.DefaultLessonDuration); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	case "table":
		return []byte(output.RenderTable(s.Lessons) + "\n"), nil
	default:
		return nil, fmt.Errorf("invalid format: %s (must be json, csv, ics, or table)", format)
	}
}

func writeSheetFiles(s *models.Schedule, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, sheet := range s.Sheets {
		jsonData, err := output.SheetToJSON(s, sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, fmt.Sprintf("%02d_%s.json", sheet.Index+1, safeName(sheet.Name)))
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

// safeName replaces path separators in sheet names.
func safeName(name string) string {
	return strings.NewReplacer("/", "_", `\`, "_", ":", "_").Replace(name)
}
