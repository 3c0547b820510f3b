package grid

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Bounds finds the bounding box of non-blank cells. All values are -1 when
// the grid holds no text.
func Bounds(g Grid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for r := 0; r < g.RowCount(); r++ {
		for c := 0; c < g.ColumnCount(); c++ {
			if strings.TrimSpace(g.CellText(r, c)) == "" {
				continue
			}
			if minRow < 0 || r < minRow {
				minRow = r
			}
			if r > maxRow {
				maxRow = r
			}
			if minCol < 0 || c < minCol {
				minCol = c
			}
			if c > maxCol {
				maxCol = c
			}
		}
	}

	return
}

// DataRange returns the A1-style range covering the non-blank cells,
// e.g. "A1:H40", or "" for an empty grid.
func DataRange(g Grid) string {
	minRow, maxRow, minCol, maxCol := Bounds(g)
	if minRow < 0 {
		return ""
	}
	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// trimTrailing drops trailing blank rows and trailing blank cells of each
// row. Loaders report formatted but empty cells past the data.
func trimTrailing(cells [][]string) [][]string {
	for i, row := range cells {
		end := len(row)
		for end > 0 && strings.TrimSpace(row[end-1]) == "" {
			end--
		}
		cells[i] = row[:end]
	}
	end := len(cells)
	for end > 0 && len(cells[end-1]) == 0 {
		end--
	}
	return cells[:end]
}
