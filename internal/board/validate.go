package board

// ValidGrid reports whether an 81-character puzzle string (digits 1-9,
// 0 for empty) contains no duplicate digit in any row, column or 3x3 box.
// It does not check solvability; it exists so callers can flag boards the
// recognizer obviously misread.
func ValidGrid(grid string) bool {
	if len(grid) != GridSize*GridSize {
		return false
	}

	var rows, cols, boxes [GridSize][10]bool
	for i := 0; i < len(grid); i++ {
		ch := grid[i]
		if ch < '0' || ch > '9' {
			return false
		}
		d := int(ch - '0')
		if d == 0 {
			continue
		}
		row := i / GridSize
		col := i % GridSize
		box := (row/3)*3 + col/3
		if rows[row][d] || cols[col][d] || boxes[box][d] {
			return false
		}
		rows[row][d] = true
		cols[col][d] = true
		boxes[box][d] = true
	}
	return true
}
