package islandindex

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// NewIndex builds the sealed classifier grid from a set of islands, in
// insertion order (spec.md §4.C).
//
// For each island: every grid cell it touches is upgraded from WATER to
// ISLANDS([island]) (or appended if already ISLANDS); a cell already
// marked LAND is left alone — the outer polygon's interior declaration
// wins over an inner lake-island (spec.md §9). Then, for every row from
// the island's first to its last touched row, the cells it does NOT
// directly touch are ray-cast once at their center; if inside the
// island, they become LAND (a cell already LAND keeps the island that
// claimed it first). In a touched row only the cells strictly between
// its minimum and maximum touched column are cast; in a row that holds
// none of the island's vertices, every cell is.
//
// The per-row ray-cast pass for a single island is embarrassingly
// parallel (each row writes only its own grid cells), so it runs under
// an errgroup; insertion across islands stays sequential because later
// islands must observe earlier islands' LAND cells to honor the
// "outer polygon wins" rule.
//
// Complexity: dominated by the one-time ray-cast per interior cell per
// large island; never repeated per query.
func NewIndex(islands []*Island) (*Index, error) {
	idx := &Index{islands: islands}
	for row := 0; row < gridRows; row++ {
		idx.grid[row] = make([]gridCell, GridDivisions[row])
	}

	for _, isl := range islands {
		touchedRows := make([]int, 0, gridRows)
		for row := 0; row < gridRows; row++ {
			if len(isl.touchedCells[row]) == 0 {
				continue
			}
			touchedRows = append(touchedRows, row)

			cols := sortedKeys(isl.touchedCells[row])
			for _, col := range cols {
				cell := &idx.grid[row][col]
				switch cell.state {
				case cellWater:
					cell.state = cellIslands
					cell.islands = []*Island{isl}
				case cellIslands:
					cell.islands = append(cell.islands, isl)
				case cellLand:
					// outer polygon wins; leave as-is
				}
			}
		}

		if len(touchedRows) == 0 {
			continue
		}
		firstRow, lastRow := touchedRows[0], touchedRows[len(touchedRows)-1]

		var group errgroup.Group
		results := make([][]int, lastRow-firstRow+1) // per row: interior columns classified as LAND
		for row := firstRow; row <= lastRow; row++ {
			row := row
			group.Go(func() error {
				touched := isl.touchedCells[row]
				min, max := -1, GridDivisions[row] // no vertex in this row: cast every cell
				if len(touched) > 0 {
					cols := sortedKeys(touched)
					min, max = cols[0], cols[len(cols)-1]
				}

				var landCols []int
				for col := min + 1; col < max; col++ {
					if _, ok := touched[col]; ok {
						continue
					}
					if pointInPolygon(cellCenter(row, col), isl) {
						landCols = append(landCols, col)
					}
				}
				results[row-firstRow] = landCols

				return nil
			})
		}
		_ = group.Wait() // ray-cast goroutines never return an error

		for row := firstRow; row <= lastRow; row++ {
			for _, col := range results[row-firstRow] {
				if idx.grid[row][col].state == cellLand {
					continue // outer polygon wins
				}
				idx.grid[row][col] = gridCell{state: cellLand, island: isl}
			}
		}
	}

	return idx, nil
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
