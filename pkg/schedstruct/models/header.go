package models

// Header holds the metadata resolved once per sheet.
type Header struct {
	// EvenWeek is the week parity shared by all lessons of the sheet.
	EvenWeek bool `json:"even_week"`
	// YearStart is the first calendar year of the academic year.
	YearStart string `json:"year_start"`
	// YearEnd is the second calendar year of the academic year.
	YearEnd string `json:"year_end"`
	// Faculty is the faculty cell text, empty when absent.
	Faculty string `json:"faculty,omitempty"`
}
