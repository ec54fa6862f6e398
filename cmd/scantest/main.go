//go:build cgo

// Command scantest runs a full board scan on a photo and prints the grid.
// It instantiates the Tesseract-backed OCR engine, so it only builds with
// cgo and a Tesseract installation.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/joho/godotenv"
	_ "golang.org/x/image/tiff"

	"sudoku-scanner/internal/board"
	"sudoku-scanner/internal/config"
	"sudoku-scanner/internal/ocr"
	"sudoku-scanner/internal/scan"
)

func main() {
	imagePath := flag.String("image", "", "Path to puzzle photo (TIFF, PNG, or JPEG)")
	margin := flag.Float64("margin", -1, "Cell margin ratio override (0-0.5)")
	minConf := flag.Float64("min-confidence", -1, "Minimum recognition confidence override (0-100)")
	verbose := flag.Bool("v", false, "Verbose per-cell logging")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: scantest -image <path> [-margin 0.154] [-min-confidence 30] [-v]")
		os.Exit(1)
	}

	// Optional .env with SCAN_* overrides; flags win over both.
	_ = godotenv.Load()
	opts, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad configuration: %v\n", err)
		os.Exit(1)
	}
	if *margin >= 0 {
		opts = opts.WithCellMargin(*margin)
	}
	if *minConf >= 0 {
		opts = opts.WithMinConfidence(*minConf)
	}

	f, err := os.Open(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
		os.Exit(1)
	}
	bounds := img.Bounds()
	fmt.Printf("Loaded %s image: %dx%d pixels\n", format, bounds.Dx(), bounds.Dy())
	fmt.Printf("Options: margin=%.3f minConfidence=%.0f binarize=%d contrast=%.1f padding=%d\n",
		opts.CellMargin, opts.MinConfidence, opts.BinarizeThreshold, opts.ContrastFactor, opts.CellPadding)

	engine, err := ocr.NewEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start OCR engine: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	scanner := scan.New(engine, opts)
	result, err := scanner.Scan(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nBoard: (%d,%d) %dx%d via %s, square %dpx\n",
		result.Board.X, result.Board.Y, result.Board.Width, result.Board.Height,
		result.Strategy, result.Square.Size)

	if *verbose {
		fmt.Printf("\n%-6s %-4s %-4s %-6s %-12s %s\n", "Cell", "Row", "Col", "Digit", "Confidence", "Text")
		for _, c := range result.Cells {
			if c.Empty {
				continue
			}
			fmt.Printf("%-6d %-4d %-4d %-6d %-12.1f %q\n",
				c.Index, c.Row, c.Col, c.Digit, c.Confidence, c.Text)
		}
	}

	puzzle := result.Puzzle()
	fmt.Println()
	for row := 0; row < board.GridSize; row++ {
		line := puzzle[row*board.GridSize : (row+1)*board.GridSize]
		for i := 0; i < board.GridSize; i++ {
			ch := line[i]
			if ch == '0' {
				ch = '.'
			}
			fmt.Printf("%c ", ch)
			if i == 2 || i == 5 {
				fmt.Print("| ")
			}
		}
		fmt.Println()
		if row == 2 || row == 5 {
			fmt.Println("------+-------+------")
		}
	}

	fmt.Printf("\nPuzzle: %s\n", puzzle)
	if !board.ValidGrid(puzzle) {
		fmt.Println("Warning: grid contains duplicate digits - likely misrecognition")
	}
}
