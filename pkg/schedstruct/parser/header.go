package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/schedstruct-go/pkg/schedstruct/models"
)

// ErrHeader indicates that the sheet metadata line could not be resolved.
var ErrHeader = errors.New("header parse")

// HeaderResolver parses the sheet metadata line, e.g.
// "Расписание занятий 1 курса на 2024/2025 нечетная".
type HeaderResolver struct {
	// Parity maps folded parity words to the even-week flag.
	Parity map[string]bool
}

// NewHeaderResolver returns a resolver using DefaultParity.
func NewHeaderResolver() *HeaderResolver {
	return &HeaderResolver{Parity: DefaultParity}
}

// Resolve parses the metadata line. The last word must be a parity word and
// the word before it must hold the "start/end" academic years.
func (h *HeaderResolver) Resolve(line, faculty string) (models.Header, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return models.Header{}, fmt.Errorf("%w: too few words in %q", ErrHeader, line)
	}

	even, ok := h.Parity[Fold(fields[len(fields)-1])]
	if !ok {
		return models.Header{}, fmt.Errorf("%w: unknown week parity %q", ErrHeader, fields[len(fields)-1])
	}

	start, end, found := strings.Cut(fields[len(fields)-2], "/")
	if !found {
		return models.Header{}, fmt.Errorf("%w: no academic years in %q", ErrHeader, fields[len(fields)-2])
	}
	start, end, err := academicYears(start, end)
	if err != nil {
		return models.Header{}, err
	}

	return models.Header{
		EvenWeek:  even,
		YearStart: start,
		YearEnd:   end,
		Faculty:   strings.TrimSpace(faculty),
	}, nil
}

// academicYears validates the year fragments and widens a two-digit end
// ("2024/25") with the century of the start.
func academicYears(start, end string) (string, string, error) {
	start = strings.Trim(start, " \t.,")
	end = strings.Trim(end, " \t.,")
	if len(start) != 4 || !isDigits(start) {
		return "", "", fmt.Errorf("%w: bad academic year start %q", ErrHeader, start)
	}
	if !isDigits(end) || (len(end) != 2 && len(end) != 4) {
		return "", "", fmt.Errorf("%w: bad academic year end %q", ErrHeader, end)
	}
	if len(end) == 2 {
		end = start[:2] + end
	}
	return start, end, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 32)
	return err == nil
}
