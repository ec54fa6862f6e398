// Package ocr adapts the Tesseract engine to the single-digit recognition
// the scan pipeline needs. The pipeline only depends on the Recognizer
// interface, so tests run without a Tesseract installation.
package ocr

import "image"

// DigitChars is the recognition whitelist. The puzzle domain has no zero,
// so the engine is never allowed to emit one.
const DigitChars = "123456789"

// defaultConfidence is reported when the engine returns text but no
// per-symbol confidence.
const defaultConfidence = 50

// Result is one recognition attempt on a conditioned cell.
type Result struct {
	Text       string
	Confidence float64 // 0-100
}

// Recognizer accepts a conditioned cell image and returns the recognized
// text with a confidence score. Implementations must tolerate repeated
// invocation.
type Recognizer interface {
	Recognize(img image.Image) (Result, error)
}
