// Package node reduces stabilized oscillation rows to per-node scalar
// summaries: the energy-loss proxy (L1 norm) and the final-phase proxy
// (raw row maximum), plus a small set of supporting statistics.
package node

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stats holds per-node summary statistics of a stabilized waveform row.
type Stats struct {
	Length        int
	EnergyLoss    float64 // sum of absolute sample values
	FinalPhase    float64 // maximum raw sample value
	Peak          float64 // maximum absolute sample value
	RMS           float64
	ZeroCrossings int
}

// EnergyLoss returns the per-row sum of absolute sample values.
// Values are non-negative, and strictly positive for non-zero rows.
func EnergyLoss(field [][]float64) []float64 {
	out := make([]float64, len(field))
	for i, row := range field {
		out[i] = floats.Norm(row, 1)
	}
	return out
}

// FinalPhase returns the per-row maximum raw sample value. Despite the name
// this is not an angular phase; it is bounded by 1 for unit-peak rows.
// Empty rows yield 0.
func FinalPhase(field [][]float64) []float64 {
	out := make([]float64, len(field))
	for i, row := range field {
		if len(row) == 0 {
			continue
		}
		out[i] = floats.Max(row)
	}
	return out
}

// Calculate computes all per-node statistics of a single row in one pass.
func Calculate(row []float64) Stats {
	n := len(row)
	if n == 0 {
		return Stats{}
	}

	var (
		absSum        float64
		sumSq         float64
		maxVal        = row[0]
		peak          float64
		zeroCrossings int
	)

	for i, x := range row {
		a := math.Abs(x)
		absSum += a
		sumSq += x * x

		if x > maxVal {
			maxVal = x
		}
		if a > peak {
			peak = a
		}
		if i > 0 && row[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	return Stats{
		Length:        n,
		EnergyLoss:    absSum,
		FinalPhase:    maxVal,
		Peak:          peak,
		RMS:           math.Sqrt(sumSq / float64(n)),
		ZeroCrossings: zeroCrossings,
	}
}
