// Package scan sequences the full pipeline: board location, cell
// splitting, per-cell conditioning, recognition and digit correction.
package scan

import (
	"fmt"
	"image"

	"sudoku-scanner/internal/board"
	"sudoku-scanner/internal/canvas"
	"sudoku-scanner/internal/cell"
	"sudoku-scanner/internal/config"
	"sudoku-scanner/internal/correct"
	"sudoku-scanner/internal/logging"
	"sudoku-scanner/internal/ocr"
	"sudoku-scanner/internal/pixel"
	"sudoku-scanner/pkg/geometry"
)

// cellRenderSize is the working resolution a cell crop is resampled to
// before conditioning.
const cellRenderSize = 64

// CellResult is the outcome for one of the 81 cells.
type CellResult struct {
	Index      int     // 0-80, row-major
	Row        int     // 0-8
	Col        int     // 0-8
	Digit      int     // 1-9, or 0 when empty / unrecognized
	Confidence float64 // engine confidence 0-100, 0 for empty cells
	Text       string  // raw engine output, empty for blank cells
	Empty      bool    // true when the emptiness check skipped recognition
	Retried    bool    // true when the dilation retry path ran
}

// Result is a full board scan.
type Result struct {
	Board    geometry.RectInt // located board rectangle
	Square   board.Square     // inscribed square the cells were cut from
	Strategy board.Strategy   // which detection tier located the board
	Cells    [81]CellResult
}

// Puzzle returns the scan as an 81-character string, digits 1-9 with 0
// denoting an empty or unrecognized cell.
func (r *Result) Puzzle() string {
	out := make([]byte, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = byte('0' + c.Digit)
	}
	return string(out)
}

// Scanner runs the pipeline against a recognition engine.
type Scanner struct {
	rec  ocr.Recognizer
	opts config.ScanOptions
	log  *logging.Logger
}

// New creates a Scanner. The recognizer is typically an *ocr.Engine; any
// Recognizer works, which keeps the pipeline testable offline.
func New(rec ocr.Recognizer, opts config.ScanOptions) *Scanner {
	return &Scanner{
		rec:  rec,
		opts: opts,
		log:  logging.New("Scan"),
	}
}

// SetLogger replaces the scanner's logger.
func (s *Scanner) SetLogger(l *logging.Logger) {
	s.log = l
}

// Scan locates the board in a photo and recognizes all 81 cells.
func (s *Scanner) Scan(img image.Image) (*Result, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image")
	}
	bounds := img.Bounds()
	if bounds.Dx() < board.GridSize || bounds.Dy() < board.GridSize {
		return nil, fmt.Errorf("image %dx%d too small to hold a board", bounds.Dx(), bounds.Dy())
	}

	buf := pixel.FromImage(img)
	gray := pixel.Grayscale(buf)
	smoothed := pixel.Smooth(gray)
	edges := pixel.DetectEdges(smoothed)

	rect, strategy := board.Locate(smoothed, edges)
	square := board.Squarify(rect)
	s.log.Info("board located",
		"strategy", strategy,
		"rect", fmt.Sprintf("(%d,%d) %dx%d", rect.X, rect.Y, rect.Width, rect.Height),
		"square", square.Size)

	result := &Result{Board: rect, Square: square, Strategy: strategy}

	src := buf.ToImage()
	recognized, empty := 0, 0
	for _, c := range board.SplitCells(square, s.opts.CellMargin) {
		cr := CellResult{Index: c.Index(), Row: c.Row, Col: c.Col}

		cellBuf := canvas.Crop(src, c.Bounds, cellRenderSize)
		if cell.IsEmpty(cellBuf) {
			cr.Empty = true
			empty++
			result.Cells[cr.Index] = cr
			continue
		}

		digit, res, err := s.recognizeCell(cellBuf, false)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", cr.Index, err)
		}
		if digit == 0 {
			// Retry once with thickened strokes.
			cr.Retried = true
			digit, res, err = s.recognizeCell(cellBuf, true)
			if err != nil {
				return nil, fmt.Errorf("cell %d retry: %w", cr.Index, err)
			}
		}

		cr.Digit = digit
		cr.Text = res.Text
		cr.Confidence = res.Confidence
		if digit != 0 {
			recognized++
		}
		result.Cells[cr.Index] = cr
	}

	s.log.Info("scan complete",
		"recognized", recognized,
		"empty", empty,
		"unreadable", len(result.Cells)-recognized-empty)
	return result, nil
}

// recognizeCell conditions one cell buffer and runs it through the
// engine. Returns digit 0 when nothing usable was read: unparseable text
// or a parsed digit below the confidence floor.
func (s *Scanner) recognizeCell(b *pixel.Buffer, dilate bool) (int, ocr.Result, error) {
	conditioned := cell.Contrast(b, s.opts.ContrastFactor)
	conditioned = cell.Binarize(conditioned, s.opts.BinarizeThreshold)
	if dilate {
		conditioned = cell.Dilate(conditioned)
	}
	padded := canvas.Pad(conditioned, s.opts.CellPadding)

	res, err := s.rec.Recognize(padded.ToImage())
	if err != nil {
		return 0, ocr.Result{}, err
	}

	digit, ok := correct.Digit(res.Text)
	if !ok {
		return 0, res, nil
	}
	if res.Confidence < s.opts.MinConfidence {
		s.log.Debug("digit below confidence floor",
			"text", res.Text, "confidence", res.Confidence)
		return 0, res, nil
	}
	return digit, res, nil
}
