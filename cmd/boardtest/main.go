// Command boardtest runs board location only and reports each tier's
// input, the chosen rectangle and the inscribed square. Useful when
// tuning detection against new photos without a Tesseract install.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/tiff"

	"sudoku-scanner/internal/board"
	"sudoku-scanner/internal/pixel"
)

func main() {
	imagePath := flag.String("image", "", "Path to puzzle photo (TIFF, PNG, or JPEG)")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: boardtest -image <path>")
		os.Exit(1)
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

	buf := pixel.FromImage(img)
	gray := pixel.Grayscale(buf)
	smoothed := pixel.Smooth(gray)
	edges := pixel.DetectEdges(smoothed)

	edgeCount := 0
	for _, v := range edges.Pix {
		if v != 0 {
			edgeCount++
		}
	}
	fmt.Printf("Edge mask: %d edge pixels (%.1f%%)\n",
		edgeCount, float64(edgeCount)/float64(len(edges.Pix))*100)

	rect, strategy := board.Locate(smoothed, edges)
	square := board.Squarify(rect)

	fmt.Printf("\nBoard rectangle: (%d,%d) %dx%d\n", rect.X, rect.Y, rect.Width, rect.Height)
	fmt.Printf("Strategy: %s\n", strategy)
	fmt.Printf("Aspect ratio: %.3f\n", rect.AspectRatio())
	fmt.Printf("Inscribed square: (%d,%d) size %d\n", square.X, square.Y, square.Size)
}
