package models

// SheetSummary describes the outcome of scanning one sheet.
type SheetSummary struct {
	// Index is the 0-based sheet position in the workbook.
	Index int `json:"index"`
	// Name is the sheet name.
	Name string `json:"name"`
	// DataRange is the A1-style range holding text, e.g. "A1:H40".
	DataRange string `json:"data_range,omitempty"`
	// Header is the resolved sheet metadata. Nil when the header failed.
	Header *Header `json:"header,omitempty"`
	// Lessons is the number of records emitted from the sheet.
	Lessons int `json:"lessons"`
	// Corrupted is the number of cells whose date could not be resolved.
	Corrupted int `json:"corrupted"`
}
