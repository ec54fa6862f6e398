// Package board locates the puzzle grid inside a photograph and carves it
// into the 81 cell regions handed to the recognition stage.
package board

import "sudoku-scanner/internal/pixel"

// Line is a detected grid line along one scan axis.
type Line struct {
	Pos      int     // row index for horizontal lines, column index for vertical
	Strength float64 // longest run length / scan line length, in [0, 1]
}

// lineCoverageMin is the fraction of a row or column the longest edge run
// must cover for the scan line to count as a grid line.
const lineCoverageMin = 0.5

// groupMarginRatio controls how close two detected lines may be before
// they are considered the same physical line (fraction of the smaller
// image dimension). Edge detection reports both sides of a thick stroke.
const groupMarginRatio = 0.025

// findRowLines scans each row of an edge mask for its longest contiguous
// run of edge pixels and records a Line where the run covers at least
// half the row.
func findRowLines(edges *pixel.Gray) []Line {
	var lines []Line
	for y := 0; y < edges.Height; y++ {
		run, best := 0, 0
		row := y * edges.Width
		for x := 0; x < edges.Width; x++ {
			if edges.Pix[row+x] != 0 {
				run++
				if run > best {
					best = run
				}
			} else {
				run = 0
			}
		}
		strength := float64(best) / float64(edges.Width)
		if strength >= lineCoverageMin {
			lines = append(lines, Line{Pos: y, Strength: strength})
		}
	}
	return lines
}

// findColumnLines is the vertical counterpart of findRowLines.
func findColumnLines(edges *pixel.Gray) []Line {
	var lines []Line
	for x := 0; x < edges.Width; x++ {
		run, best := 0, 0
		for y := 0; y < edges.Height; y++ {
			if edges.Pix[y*edges.Width+x] != 0 {
				run++
				if run > best {
					best = run
				}
			} else {
				run = 0
			}
		}
		strength := float64(best) / float64(edges.Height)
		if strength >= lineCoverageMin {
			lines = append(lines, Line{Pos: x, Strength: strength})
		}
	}
	return lines
}

// groupLines collapses lines closer than margin, keeping the stronger of
// the two along with its position. Input must be position-sorted, which
// the scan order of findRowLines/findColumnLines guarantees. The result
// stays position-sorted and deduplicated.
func groupLines(lines []Line, margin int) []Line {
	if len(lines) == 0 {
		return nil
	}
	grouped := []Line{lines[0]}
	for _, ln := range lines[1:] {
		last := &grouped[len(grouped)-1]
		if ln.Pos-last.Pos < margin {
			if ln.Strength > last.Strength {
				*last = ln
			}
			continue
		}
		grouped = append(grouped, ln)
	}
	return grouped
}

// groupMargin derives the merge margin in pixels from the image size.
func groupMargin(width, height int) int {
	smaller := width
	if height < smaller {
		smaller = height
	}
	margin := int(float64(smaller) * groupMarginRatio)
	if margin < 1 {
		margin = 1
	}
	return margin
}
