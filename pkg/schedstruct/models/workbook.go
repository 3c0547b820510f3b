package models

// Issue describes a malformed cell or sheet that did not stop the scan.
type Issue struct {
	// Kind is the failing stage: "header", "date" or "cell_shape".
	Kind string `json:"kind"`
	// Sheet is the sheet name.
	Sheet string `json:"sheet"`
	// Row is the 0-based row, -1 for sheet-level issues.
	Row int `json:"row"`
	// Col is the 0-based column, -1 for sheet-level issues.
	Col int `json:"col"`
	// Message is the underlying error text.
	Message string `json:"message"`
}

// Schedule is the result of scanning a workbook.
type Schedule struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name,omitempty"`
	// Sheets summarizes each scanned sheet in order.
	Sheets []SheetSummary `json:"sheets"`
	// Lessons holds the records in scan order: sheet, row, column.
	Lessons []Lesson `json:"lessons"`
	// Corrupted counts cells skipped because their date failed to resolve.
	Corrupted int `json:"corrupted"`
	// Issues lists recoverable problems in scan order.
	Issues []Issue `json:"issues,omitempty"`
}
