// Package spectrum computes one-sided discrete magnitude spectra of
// oscillation field rows.
//
// Power-of-two row lengths go through an FFT plan; every other length uses a
// Bluestein transform, so the result always matches the exact DFT of the row
// at its native length. No window is applied and no zero padding occurs.
package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/mjibson/go-dsp/fft"
)

// Magnitudes returns the one-sided magnitude spectrum of each row, truncated
// to the first len(row)/2 bins (integer floor). Single-sample rows yield empty
// spectra. All entries are non-negative.
func Magnitudes(field [][]float64) ([][]float64, error) {
	out := make([][]float64, len(field))
	for i, row := range field {
		mags, err := RowMagnitudes(row)
		if err != nil {
			return nil, fmt.Errorf("spectrum: row %d: %w", i, err)
		}
		out[i] = mags
	}
	return out, nil
}

// RowMagnitudes returns the one-sided magnitude spectrum of a single row.
func RowMagnitudes(row []float64) ([]float64, error) {
	keep := len(row) / 2
	if keep == 0 {
		return []float64{}, nil
	}

	bins, err := transform(row)
	if err != nil {
		return nil, err
	}

	return magnitudes(bins[:keep]), nil
}

// transform computes the unnormalized forward DFT of row at its native length.
func transform(row []float64) ([]complex128, error) {
	n := len(row)
	if n&(n-1) != 0 {
		return fft.FFTReal(row), nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, n)
	for i, v := range row {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	return out, nil
}

// magnitudes unpacks complex bins and computes |X[k]| with the vecmath backend.
func magnitudes(bins []complex128) []float64 {
	if len(bins) == 0 {
		return []float64{}
	}

	re := make([]float64, len(bins))
	im := make([]float64, len(bins))
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(bins))
	vecmath.Magnitude(out, re, im)
	return out
}

// BinFrequencies returns the physical frequency of each retained bin for a
// row of the given sample count over an inclusive time span. Bin k sits at
// k / (samples * dt) where dt is the grid spacing. Returns an empty slice
// when no bins are retained.
func BinFrequencies(samples int, spanStart, spanEnd float64) []float64 {
	keep := samples / 2
	if keep == 0 || !(spanEnd > spanStart) {
		return []float64{}
	}

	dt := (spanEnd - spanStart) / float64(samples-1)
	df := 1 / (float64(samples) * dt)

	out := make([]float64, keep)
	for k := range out {
		out[k] = float64(k) * df
	}
	return out
}
