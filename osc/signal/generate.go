package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-osc/osc/core"
)

// Per-node base frequencies are drawn uniformly from [FreqLow, FreqHigh).
const (
	FreqLow  = 0.5
	FreqHigh = 2.0
)

// ErrNilRand is returned when a nil random source is injected.
var ErrNilRand = errors.New("signal: random source must not be nil")

// Params holds the immutable per-node oscillator parameters.
type Params struct {
	Freq  []float64 // base frequency per node
	Phase []float64 // base phase per node, radians
}

// Nodes returns the node count described by the parameters.
func (p Params) Nodes() int {
	return len(p.Freq)
}

// Validate checks that the parameter vectors are consistent.
func (p Params) Validate() error {
	if len(p.Freq) != len(p.Phase) {
		return fmt.Errorf("signal: freq/phase length mismatch: %d != %d", len(p.Freq), len(p.Phase))
	}
	return nil
}

// Draw samples base frequencies in [FreqLow, FreqHigh) and base phases in
// [0, 2*pi) for nodes oscillators from the injected random source.
func Draw(rng *rand.Rand, nodes int) (Params, error) {
	if rng == nil {
		return Params{}, ErrNilRand
	}
	if nodes <= 0 {
		return Params{}, fmt.Errorf("signal: nodes must be > 0: %d", nodes)
	}

	p := Params{
		Freq:  make([]float64, nodes),
		Phase: make([]float64, nodes),
	}
	for i := 0; i < nodes; i++ {
		p.Freq[i] = FreqLow + rng.Float64()*(FreqHigh-FreqLow)
		p.Phase[i] = rng.Float64() * 2 * math.Pi
	}

	return p, nil
}

// Generator synthesizes harmonic oscillation fields from a shared configuration.
type Generator struct {
	cfg core.FieldConfig
}

// NewGenerator creates a configured field generator.
func NewGenerator(opts ...core.FieldOption) *Generator {
	return &Generator{cfg: core.ApplyFieldOptions(opts...)}
}

// Config returns the generator field configuration.
func (g *Generator) Config() core.FieldConfig {
	return g.cfg
}

// Synthesize produces the Nodes x Samples harmonic oscillation matrix. Row i is
//
//	sum over h of phi^i * sin(2*pi*h*freq_i*t + phase_i/h)
//
// over the configured time grid, normalized to unit peak magnitude. phi^i is a
// row-wide weight and therefore cancels under the per-row normalization; it is
// kept so that unnormalized intermediates match the reference field exactly.
func (g *Generator) Synthesize(params Params) ([][]float64, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.Nodes() != g.cfg.Nodes {
		return nil, fmt.Errorf("signal: params describe %d nodes, config wants %d", params.Nodes(), g.cfg.Nodes)
	}

	grid := g.cfg.TimeGrid()
	field := make([][]float64, g.cfg.Nodes)

	for i := range field {
		row := make([]float64, len(grid))
		weight := math.Pow(math.Phi, float64(i))

		for _, h := range g.cfg.Harmonics {
			omega := 2 * math.Pi * h * params.Freq[i]
			phase := params.Phase[i] / h
			for j, t := range grid {
				row[j] += weight * math.Sin(omega*t+phase)
			}
		}

		field[i] = Normalize(row)
	}

	return field, nil
}

// Normalize returns data scaled to unit peak magnitude. A row whose peak is
// exactly zero is returned as an unchanged copy.
func Normalize(data []float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)

	peak := 0.0
	for _, v := range data {
		a := math.Abs(v)
		if a > peak {
			peak = a
		}
	}

	if peak == 0 {
		return out
	}

	for i := range out {
		out[i] /= peak
	}

	return out
}
