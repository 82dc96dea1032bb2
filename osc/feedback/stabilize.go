// Package feedback applies the corrective feedback rule to a harmonic
// oscillation field: rows whose peak value falls below a threshold receive
// additive uniform noise, and every row is renormalized to unit peak magnitude.
package feedback

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-osc/osc/core"
)

// Errors returned by the stabilizer.
var (
	ErrNilRand    = errors.New("feedback: random source must not be nil")
	ErrEmptyField = errors.New("feedback: field must not be empty")
)

// Stabilizer perturbs weak rows and renormalizes an oscillation field.
type Stabilizer struct {
	cfg core.FieldConfig
}

// NewStabilizer creates a configured stabilizer.
func NewStabilizer(opts ...core.FieldOption) *Stabilizer {
	return &Stabilizer{cfg: core.ApplyFieldOptions(opts...)}
}

// Config returns the stabilizer field configuration.
func (s *Stabilizer) Config() core.FieldConfig {
	return s.cfg
}

// Stabilize returns an adjusted copy of the field. A row whose raw maximum is
// strictly below the configured threshold receives fresh uniform noise in
// [-NoiseAmplitude, NoiseAmplitude] per sample; every row is then divided by
// its peak magnitude, with a zero peak replaced by a divisor of one so the row
// passes through unscaled.
func (s *Stabilizer) Stabilize(rng *rand.Rand, field [][]float64) ([][]float64, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if len(field) == 0 {
		return nil, ErrEmptyField
	}

	width := len(field[0])
	if width == 0 {
		return nil, fmt.Errorf("feedback: rows must not be empty")
	}

	out := make([][]float64, len(field))
	for i, row := range field {
		if len(row) != width {
			return nil, fmt.Errorf("feedback: row %d length %d, want %d", i, len(row), width)
		}

		adjusted := make([]float64, width)
		copy(adjusted, row)

		if floats.Max(adjusted) < s.cfg.Threshold {
			for j := range adjusted {
				adjusted[j] += (rng.Float64()*2 - 1) * s.cfg.NoiseAmplitude
			}
		}

		divisor := peakMagnitude(adjusted)
		if divisor == 0 {
			divisor = 1
		}
		for j := range adjusted {
			adjusted[j] /= divisor
		}

		out[i] = adjusted
	}

	return out, nil
}

func peakMagnitude(row []float64) float64 {
	peak := 0.0
	for _, v := range row {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}
