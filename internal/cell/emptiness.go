package cell

import (
	"gonum.org/v1/gonum/stat"

	"sudoku-scanner/internal/pixel"
)

// emptyStdDevMax is the luma standard deviation below which a cell is
// considered blank. A cell containing a digit has far higher variance
// than blank paper regardless of lighting.
const emptyStdDevMax = 8.0

// IsEmpty reports whether a cell buffer contains no glyph, using the
// standard deviation of its luma values. Checking this before recognition
// avoids invoking the OCR engine on blank cells.
func IsEmpty(b *pixel.Buffer) bool {
	n := b.Width * b.Height
	if n == 0 {
		return true
	}
	lumas := make([]float64, 0, n)
	for i := 0; i < len(b.Data); i += 4 {
		lumas = append(lumas, float64(lumaAt(b.Data, i)))
	}
	_, std := stat.MeanStdDev(lumas, nil)
	return std < emptyStdDevMax
}
