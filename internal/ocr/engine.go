//go:build cgo

// The Tesseract-backed Engine requires cgo and a Tesseract installation;
// the shared Recognizer interface lives in recognizer.go so the rest of
// the pipeline builds without either.
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Engine recognizes digits using Tesseract.
type Engine struct {
	client *gosseract.Client
}

var _ Recognizer = (*Engine)(nil)

// NewEngine creates a Tesseract-backed engine in single-character mode.
func NewEngine() (*Engine, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage("eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}

	// Disable dictionary-based word correction - a lone digit is not an
	// English word and must not be "corrected" into one.
	_ = client.SetVariable("load_system_dawg", "false")
	_ = client.SetVariable("load_freq_dawg", "false")

	return &Engine{client: client}, nil
}

// Close releases OCR resources.
func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// Recognize runs single-character OCR on a conditioned cell image.
func (e *Engine) Recognize(img image.Image) (Result, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Result{}, fmt.Errorf("failed to encode cell: %w", err)
	}

	if err := e.client.SetPageSegMode(gosseract.PSM_SINGLE_CHAR); err != nil {
		return Result{}, fmt.Errorf("failed to set PSM: %w", err)
	}
	if err := e.client.SetWhitelist(DigitChars); err != nil {
		return Result{}, fmt.Errorf("failed to set whitelist: %w", err)
	}
	if err := e.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return Result{}, fmt.Errorf("failed to set image: %w", err)
	}

	// Per-symbol boxes carry confidence; keep the strongest symbol.
	boxes, err := e.client.GetBoundingBoxes(gosseract.RIL_SYMBOL)
	if err == nil && len(boxes) > 0 {
		best := boxes[0]
		for _, b := range boxes[1:] {
			if b.Confidence > best.Confidence {
				best = b
			}
		}
		return Result{
			Text:       strings.TrimSpace(best.Word),
			Confidence: best.Confidence,
		}, nil
	}

	text, err := e.client.Text()
	if err != nil {
		return Result{}, fmt.Errorf("OCR failed: %w", err)
	}
	return Result{
		Text:       strings.TrimSpace(text),
		Confidence: defaultConfidence,
	}, nil
}
