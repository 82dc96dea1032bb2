package core

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by field configuration checks.
var (
	ErrNoHarmonics = errors.New("core: harmonics must not be empty")
	ErrSpanOrder   = errors.New("core: span start must be less than span end")
)

// Validate checks that the FieldConfig describes a runnable field.
func (cfg FieldConfig) Validate() error {
	if cfg.Nodes <= 0 {
		return fmt.Errorf("core: nodes must be > 0: %d", cfg.Nodes)
	}

	if cfg.Samples <= 0 {
		return fmt.Errorf("core: samples must be > 0: %d", cfg.Samples)
	}

	if !(cfg.SpanStart < cfg.SpanEnd) {
		return ErrSpanOrder
	}

	if len(cfg.Harmonics) == 0 {
		return ErrNoHarmonics
	}

	for i, h := range cfg.Harmonics {
		if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
			return fmt.Errorf("core: harmonic %d must be finite and non-zero: %v", i, h)
		}
	}

	if cfg.Threshold < 0 {
		return fmt.Errorf("core: threshold must be >= 0: %f", cfg.Threshold)
	}

	if cfg.NoiseAmplitude < 0 {
		return fmt.Errorf("core: noise amplitude must be >= 0: %f", cfg.NoiseAmplitude)
	}

	return nil
}

// TimeGrid returns Samples instants evenly spaced over [SpanStart, SpanEnd],
// endpoint inclusive. A single-sample grid holds only SpanStart.
func (cfg FieldConfig) TimeGrid() []float64 {
	n := cfg.Samples
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = cfg.SpanStart
		return out
	}

	step := (cfg.SpanEnd - cfg.SpanStart) / float64(n-1)
	for i := range out {
		out[i] = cfg.SpanStart + float64(i)*step
	}
	out[n-1] = cfg.SpanEnd

	return out
}
