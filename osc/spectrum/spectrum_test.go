package spectrum

import (
	"math"
	"testing"
)

// naiveMagnitudes is an O(n^2) DFT reference for cross-checking both
// transform backends.
func naiveMagnitudes(row []float64) []float64 {
	n := len(row)
	keep := n / 2
	out := make([]float64, keep)

	for k := 0; k < keep; k++ {
		var re, im float64
		for j, v := range row {
			angle := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			re += v * math.Cos(angle)
			im += v * math.Sin(angle)
		}
		out[k] = math.Hypot(re, im)
	}

	return out
}

func TestRowMagnitudesSingleTone(t *testing.T) {
	// One full cycle over 8 samples concentrates all energy in bin 1.
	row := make([]float64, 8)
	for i := range row {
		row[i] = math.Cos(2 * math.Pi * float64(i) / 8)
	}

	mags, err := RowMagnitudes(row)
	if err != nil {
		t.Fatalf("RowMagnitudes() error = %v", err)
	}
	if len(mags) != 4 {
		t.Fatalf("bins = %d, want 4", len(mags))
	}

	if math.Abs(mags[1]-4) > 1e-9 {
		t.Fatalf("bin 1 = %v, want 4", mags[1])
	}
	for _, k := range []int{0, 2, 3} {
		if mags[k] > 1e-9 {
			t.Fatalf("bin %d = %v, want ~0", k, mags[k])
		}
	}
}

func TestRowMagnitudesDCNonPow2(t *testing.T) {
	// Length 6 exercises the Bluestein path.
	row := []float64{1, 1, 1, 1, 1, 1}

	mags, err := RowMagnitudes(row)
	if err != nil {
		t.Fatalf("RowMagnitudes() error = %v", err)
	}
	if len(mags) != 3 {
		t.Fatalf("bins = %d, want 3", len(mags))
	}

	if math.Abs(mags[0]-6) > 1e-9 {
		t.Fatalf("bin 0 = %v, want 6", mags[0])
	}
	if mags[1] > 1e-9 || mags[2] > 1e-9 {
		t.Fatalf("non-DC bins = %v, want ~0", mags[1:])
	}
}

func TestRowMagnitudesMatchNaiveDFT(t *testing.T) {
	for _, n := range []int{8, 12, 25} {
		row := make([]float64, n)
		for i := range row {
			row[i] = math.Sin(0.7*float64(i)) + 0.25*math.Cos(2.1*float64(i))
		}

		got, err := RowMagnitudes(row)
		if err != nil {
			t.Fatalf("n=%d: RowMagnitudes() error = %v", n, err)
		}

		want := naiveMagnitudes(row)
		if len(got) != len(want) {
			t.Fatalf("n=%d: bins = %d, want %d", n, len(got), len(want))
		}
		for k := range want {
			if math.Abs(got[k]-want[k]) > 1e-8 {
				t.Fatalf("n=%d bin %d = %v, want %v", n, k, got[k], want[k])
			}
		}
	}
}

func TestMagnitudesShape(t *testing.T) {
	field := make([][]float64, 5)
	for i := range field {
		field[i] = make([]float64, 10)
		for j := range field[i] {
			field[i][j] = math.Sin(float64(i+1) * float64(j))
		}
	}

	mags, err := Magnitudes(field)
	if err != nil {
		t.Fatalf("Magnitudes() error = %v", err)
	}
	if len(mags) != 5 {
		t.Fatalf("rows = %d, want 5", len(mags))
	}

	for i, row := range mags {
		if len(row) != 5 {
			t.Fatalf("row %d bins = %d, want 5", i, len(row))
		}
		for k, v := range row {
			if v < 0 {
				t.Fatalf("mags[%d][%d] = %v, want >= 0", i, k, v)
			}
		}
	}
}

func TestRowMagnitudesSingleSample(t *testing.T) {
	mags, err := RowMagnitudes([]float64{0.5})
	if err != nil {
		t.Fatalf("RowMagnitudes() error = %v", err)
	}
	if len(mags) != 0 {
		t.Fatalf("bins = %d, want 0", len(mags))
	}
}

func TestBinFrequencies(t *testing.T) {
	// 4 samples over [0, 1]: dt = 1/3, df = 3/4.
	freqs := BinFrequencies(4, 0, 1)
	if len(freqs) != 2 {
		t.Fatalf("bins = %d, want 2", len(freqs))
	}
	if freqs[0] != 0 {
		t.Fatalf("freqs[0] = %v, want 0", freqs[0])
	}
	if math.Abs(freqs[1]-0.75) > 1e-15 {
		t.Fatalf("freqs[1] = %v, want 0.75", freqs[1])
	}
}

func TestBinFrequenciesDegenerate(t *testing.T) {
	if got := BinFrequencies(1, 0, 10); len(got) != 0 {
		t.Fatalf("single sample bins = %v, want empty", got)
	}
	if got := BinFrequencies(8, 5, 5); len(got) != 0 {
		t.Fatalf("empty span bins = %v, want empty", got)
	}
}
