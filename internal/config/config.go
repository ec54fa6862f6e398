// Package config holds the tuning knobs the scan pipeline exposes.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ScanOptions configures cell extraction, conditioning and recognition
// filtering. Zero values are not meaningful; start from Default().
type ScanOptions struct {
	// CellMargin is the fraction of each cell trimmed per side before
	// recognition, in [0, 0.5). Trims grid lines out of the crop.
	CellMargin float64

	// MinConfidence discards a recognized digit whose engine confidence
	// (0-100) falls below it, even when the text parsed cleanly.
	MinConfidence float64

	// BinarizeThreshold is the luma cutoff between black and white.
	BinarizeThreshold uint8

	// ContrastFactor stretches channel values away from the mean luma.
	ContrastFactor float64

	// CellPadding is the uniform white border, in pixels, added around a
	// conditioned cell before it is handed to the engine.
	CellPadding int
}

// Default returns the tuned defaults.
func Default() ScanOptions {
	return ScanOptions{
		CellMargin:        0.154,
		MinConfidence:     30,
		BinarizeThreshold: 160,
		ContrastFactor:    1.5,
		CellPadding:       20,
	}
}

// WithCellMargin returns a copy with the cell margin replaced.
func (o ScanOptions) WithCellMargin(margin float64) ScanOptions {
	o.CellMargin = margin
	return o
}

// WithMinConfidence returns a copy with the confidence floor replaced.
func (o ScanOptions) WithMinConfidence(min float64) ScanOptions {
	o.MinConfidence = min
	return o
}

// FromEnv starts from Default and applies any SCAN_* environment
// overrides. Unset variables keep their defaults; malformed values are an
// error rather than a silent fallback.
func FromEnv() (ScanOptions, error) {
	opts := Default()

	if err := envFloat("SCAN_CELL_MARGIN", &opts.CellMargin); err != nil {
		return opts, err
	}
	if err := envFloat("SCAN_MIN_CONFIDENCE", &opts.MinConfidence); err != nil {
		return opts, err
	}
	if err := envFloat("SCAN_CONTRAST_FACTOR", &opts.ContrastFactor); err != nil {
		return opts, err
	}

	if v := os.Getenv("SCAN_BINARIZE_THRESHOLD"); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return opts, fmt.Errorf("SCAN_BINARIZE_THRESHOLD: %w", err)
		}
		opts.BinarizeThreshold = uint8(n)
	}
	if v := os.Getenv("SCAN_CELL_PADDING"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("SCAN_CELL_PADDING: %w", err)
		}
		opts.CellPadding = n
	}

	if opts.CellMargin < 0 || opts.CellMargin >= 0.5 {
		return opts, fmt.Errorf("cell margin %.3f out of range [0, 0.5)", opts.CellMargin)
	}
	return opts, nil
}

func envFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}
