package board

import (
	"sudoku-scanner/internal/pixel"
	"sudoku-scanner/pkg/geometry"
)

// Strategy identifies which detection tier produced a board rectangle.
type Strategy int

const (
	StrategyLines Strategy = iota
	StrategyDensity
	StrategyDarkPixels
)

func (s Strategy) String() string {
	switch s {
	case StrategyLines:
		return "lines"
	case StrategyDensity:
		return "density"
	case StrategyDarkPixels:
		return "dark-pixels"
	}
	return "unknown"
}

// Locate finds the puzzle board rectangle. Detection tiers are tried in
// order: scored grid-line search, edge-density sweep, dark-pixel bounding
// box. The last tier is total, so Locate always returns a rectangle,
// degrading to the full image when no board-like structure exists.
func Locate(gray, edges *pixel.Gray) (geometry.RectInt, Strategy) {
	if r, ok := locateByLines(edges); ok {
		return r, StrategyLines
	}
	if r, ok := locateByDensity(edges); ok {
		return r, StrategyDensity
	}
	return locateByDarkPixels(gray), StrategyDarkPixels
}

// Primary strategy tuning. The score weights interact with the minimum
// size filters and were tuned together; keep them as a set.
const (
	minSideRatio        = 0.30 // candidate sides below this fraction of the image are rejected
	boundaryMarginRatio = 0.02 // "touching the image border" margin
	topBottomPenalty    = 0.7
	leftRightPenalty    = 0.8
)

// locateByLines runs an exhaustive paired search over grouped grid lines.
// Candidates are scored by area, squareness and boundary avoidance; ties
// keep the first candidate in scan order.
func locateByLines(edges *pixel.Gray) (geometry.RectInt, bool) {
	margin := groupMargin(edges.Width, edges.Height)
	hLines := groupLines(findRowLines(edges), margin)
	vLines := groupLines(findColumnLines(edges), margin)
	if len(hLines) < 2 || len(vLines) < 2 {
		return geometry.RectInt{}, false
	}

	minW := float64(edges.Width) * minSideRatio
	minH := float64(edges.Height) * minSideRatio
	borderX := float64(edges.Width) * boundaryMarginRatio
	borderY := float64(edges.Height) * boundaryMarginRatio

	var best geometry.RectInt
	bestScore := 0.0
	found := false

	for ti := 0; ti < len(hLines)-1; ti++ {
		for bi := ti + 1; bi < len(hLines); bi++ {
			top := hLines[ti].Pos
			bottom := hLines[bi].Pos
			h := float64(bottom - top)
			if h < minH {
				continue
			}
			for li := 0; li < len(vLines)-1; li++ {
				for ri := li + 1; ri < len(vLines); ri++ {
					left := vLines[li].Pos
					right := vLines[ri].Pos
					w := float64(right - left)
					if w < minW {
						continue
					}

					score := w * h * aspectScore(w, h)
					if float64(top) < borderY {
						score *= topBottomPenalty
					}
					if float64(edges.Height-1-bottom) < borderY {
						score *= topBottomPenalty
					}
					if float64(left) < borderX {
						score *= leftRightPenalty
					}
					if float64(edges.Width-1-right) < borderX {
						score *= leftRightPenalty
					}

					if score > bestScore {
						bestScore = score
						best = geometry.RectInt{X: left, Y: top, Width: right - left, Height: bottom - top}
						found = true
					}
				}
			}
		}
	}
	return best, found
}

// aspectScore combines the aspect ratio with a stepped bonus that biases
// the search toward square candidates.
func aspectScore(w, h float64) float64 {
	aspect := w / h
	if h < w {
		aspect = h / w
	}
	bonus := 1.0
	switch {
	case aspect > 0.9:
		bonus = 2.5
	case aspect > 0.8:
		bonus = 2.0
	case aspect > 0.7:
		bonus = 1.5
	}
	return aspect * bonus
}

// Density fallback tuning.
const (
	densityStartMin   = 0.15 // edge density that may start a border
	densitySustainMin = 0.10 // density a window row must reach to count as sustained
	sustainWindowFrac = 0.05 // window size as a fraction of the scanned dimension
	sustainRowsFrac   = 0.30 // fraction of window rows that must stay dense
	densityMinSide    = 0.20 // minimum side as a fraction of the image dimension
)

// locateByDensity locates the board from per-row and per-column edge
// density. Unlike the line search it tolerates borders broken into
// several runs: a border starts where density spikes and a forward
// window confirms sustained edge presence.
func locateByDensity(edges *pixel.Gray) (geometry.RectInt, bool) {
	w, h := edges.Width, edges.Height
	if w == 0 || h == 0 {
		return geometry.RectInt{}, false
	}

	rowDensity := make([]float64, h)
	for y := 0; y < h; y++ {
		count := 0
		row := y * w
		for x := 0; x < w; x++ {
			if edges.Pix[row+x] != 0 {
				count++
			}
		}
		rowDensity[y] = float64(count) / float64(w)
	}

	top := scanSustained(rowDensity, false)
	bottom := scanSustained(rowDensity, true)
	if top < 0 || bottom < 0 || bottom <= top {
		return geometry.RectInt{}, false
	}

	// Vertical density only within the found horizontal band.
	band := bottom - top + 1
	colDensity := make([]float64, w)
	for x := 0; x < w; x++ {
		count := 0
		for y := top; y <= bottom; y++ {
			if edges.Pix[y*w+x] != 0 {
				count++
			}
		}
		colDensity[x] = float64(count) / float64(band)
	}

	left := scanSustained(colDensity, false)
	right := scanSustained(colDensity, true)
	if left < 0 || right < 0 || right <= left {
		return geometry.RectInt{}, false
	}

	if float64(right-left) < float64(w)*densityMinSide ||
		float64(bottom-top) < float64(h)*densityMinSide {
		return geometry.RectInt{}, false
	}
	return geometry.RectInt{X: left, Y: top, Width: right - left, Height: bottom - top}, true
}

// scanSustained finds the first index (from the front, or from the back
// when reverse is set) where density exceeds the start threshold and a
// forward window confirms sustained edge presence. Returns -1 when no
// such index exists.
func scanSustained(density []float64, reverse bool) int {
	n := len(density)
	window := int(float64(n) * sustainWindowFrac)
	if window < 1 {
		window = 1
	}

	for i := 0; i < n; i++ {
		idx := i
		if reverse {
			idx = n - 1 - i
		}
		if density[idx] <= densityStartMin {
			continue
		}

		dense := 0
		for j := 0; j < window; j++ {
			k := idx + j
			if reverse {
				k = idx - j
			}
			if k < 0 || k >= n {
				break
			}
			if density[k] > densitySustainMin {
				dense++
			}
		}
		if float64(dense) > float64(window)*sustainRowsFrac {
			return idx
		}
	}
	return -1
}

// Dark-pixel fallback tuning.
const (
	darkIntensityMax = 200  // pixels below this intensity count as dark
	darkRowFraction  = 0.10 // fraction of a row/column that must be dark
)

// locateByDarkPixels is the terminal fallback: it scans inward from each
// side of the grayscale map until a row or column has more than 10% dark
// pixels. A bound with no dark row/column stays at the image edge, so
// this strategy always returns a rectangle.
func locateByDarkPixels(gray *pixel.Gray) geometry.RectInt {
	w, h := gray.Width, gray.Height

	rowDark := func(y int) bool {
		count := 0
		row := y * w
		for x := 0; x < w; x++ {
			if gray.Pix[row+x] < darkIntensityMax {
				count++
			}
		}
		return float64(count) > float64(w)*darkRowFraction
	}
	colDark := func(x int) bool {
		count := 0
		for y := 0; y < h; y++ {
			if gray.Pix[y*w+x] < darkIntensityMax {
				count++
			}
		}
		return float64(count) > float64(h)*darkRowFraction
	}

	top, bottom := 0, h-1
	for y := 0; y < h; y++ {
		if rowDark(y) {
			top = y
			break
		}
	}
	for y := h - 1; y >= 0; y-- {
		if rowDark(y) {
			bottom = y
			break
		}
	}
	left, right := 0, w-1
	for x := 0; x < w; x++ {
		if colDark(x) {
			left = x
			break
		}
	}
	for x := w - 1; x >= 0; x-- {
		if colDark(x) {
			right = x
			break
		}
	}

	if right <= left || bottom <= top {
		// Degenerate scan result; fall back to the whole image.
		return geometry.RectInt{X: 0, Y: 0, Width: w - 1, Height: h - 1}
	}
	return geometry.RectInt{X: left, Y: top, Width: right - left, Height: bottom - top}
}
