package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrDate indicates that a cell's date or time text could not be resolved.
var ErrDate = errors.New("date parse")

// DefaultRollbackOffset is the month distance between a lesson and the
// reference month at which the lesson is moved to the previous year.
const DefaultRollbackOffset = 11

// dashes folds typographic dashes used in time ranges.
var dashes = strings.NewReplacer("–", "-", "—", "-")

// dateLayout matches the composed "<year> <day> <Mon> <HH:MM>" string.
const dateLayout = "2006 2 Jan 15:04"

// DateResolver turns raw date and time cell text into timestamps.
type DateResolver struct {
	// Months maps folded month prefixes to months.
	Months map[string]time.Month
	// RollbackOffset is compared with (lesson month - reference month).
	RollbackOffset int
	// Location is attached to resolved timestamps. Nil means UTC.
	Location *time.Location
}

// NewDateResolver returns a resolver using the default tables.
func NewDateResolver(loc *time.Location) *DateResolver {
	return &DateResolver{
		Months:         DefaultMonths,
		RollbackOffset: DefaultRollbackOffset,
		Location:       loc,
	}
}

// MonthOf returns the month named in a date cell such as "07 окт".
func (r *DateResolver) MonthOf(date string) (time.Month, error) {
	_, month, err := r.splitDate(date)
	return month, err
}

// Resolve combines date text ("07 окт"), time text ("08:30-10:00") and a
// four-digit year into the lesson start.
//
// When ref is non-zero and the lesson month is RollbackOffset months after
// ref, the lesson belongs to the previous calendar year.
func (r *DateResolver) Resolve(date, tm, year string, ref time.Month) (time.Time, error) {
	day, month, err := r.splitDate(date)
	if err != nil {
		return time.Time{}, err
	}

	start, _, _ := strings.Cut(dashes.Replace(tm), "-")
	start = normalizeClock(start)
	if start == "" {
		return time.Time{}, fmt.Errorf("%w: empty time in %q", ErrDate, tm)
	}

	year = strings.TrimSpace(year)
	if ref != 0 && int(month)-int(ref) == r.RollbackOffset {
		y, err := strconv.Atoi(year)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: year %q: %v", ErrDate, year, err)
		}
		year = strconv.Itoa(y - 1)
	}

	composed := fmt.Sprintf("%s %s %s %s", year, day, month.String()[:3], start)
	t, err := time.ParseInLocation(dateLayout, composed, r.location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrDate, err)
	}
	return t, nil
}

// ResolveEnd returns the end of a "HH:MM-HH:MM" range on the day of start.
// It reports false when the time text has no parseable end.
func (r *DateResolver) ResolveEnd(start time.Time, tm string) (time.Time, bool) {
	_, end, found := strings.Cut(dashes.Replace(tm), "-")
	if !found {
		return time.Time{}, false
	}
	clock, err := time.Parse("15:04", normalizeClock(end))
	if err != nil {
		return time.Time{}, false
	}
	t := time.Date(start.Year(), start.Month(), start.Day(), clock.Hour(), clock.Minute(), 0, 0, start.Location())
	if t.Before(start) {
		return time.Time{}, false
	}
	return t, true
}

func (r *DateResolver) splitDate(date string) (string, time.Month, error) {
	fields := strings.Fields(date)
	if len(fields) < 2 {
		return "", 0, fmt.Errorf("%w: expected day and month in %q", ErrDate, date)
	}

	month, ok := r.Months[MonthKey(fields[1])]
	if !ok {
		return "", 0, fmt.Errorf("%w: unknown month %q", ErrDate, fields[1])
	}
	return fields[0], month, nil
}

func (r *DateResolver) location() *time.Location {
	if r.Location == nil {
		return time.UTC
	}
	return r.Location
}

// normalizeClock accepts "8.30" as well as "8:30".
func normalizeClock(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ".", ":")
}
