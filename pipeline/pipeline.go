// Package pipeline runs the full oscillator field analysis in one pass:
// parameter draw, harmonic synthesis, feedback stabilization, per-node
// statistics, and one-sided magnitude spectra.
//
// All randomness flows through a single seeded source, so a fixed seed yields
// bit-identical results across runs. Rendering and export are deliberately not
// referenced here; callers hand the Result arrays to whichever sinks they want.
package pipeline

import (
	"math/rand"

	"github.com/cwbudde/algo-osc/osc/core"
	"github.com/cwbudde/algo-osc/osc/feedback"
	"github.com/cwbudde/algo-osc/osc/signal"
	"github.com/cwbudde/algo-osc/osc/spectrum"
	"github.com/cwbudde/algo-osc/stats/node"
)

// Result holds every array produced by a field run. Each field is written
// exactly once by its producing stage and never mutated afterwards.
type Result struct {
	Config core.FieldConfig
	Time   []float64     // shared time grid
	Params signal.Params // per-node base frequency and phase

	Harmonic   [][]float64 // Nodes x Samples, unit peak per non-zero row
	Adjusted   [][]float64 // Nodes x Samples, stabilized and renormalized
	EnergyLoss []float64   // per-node L1 norm of the adjusted row
	FinalPhase []float64   // per-node raw maximum of the adjusted row
	Spectral   [][]float64 // Nodes x (Samples/2) one-sided magnitudes
}

// Run executes the pipeline with the default configuration plus opts.
func Run(opts ...core.FieldOption) (*Result, error) {
	return RunConfig(core.ApplyFieldOptions(opts...))
}

// RunConfig executes the pipeline for an explicit configuration.
func RunConfig(cfg core.FieldConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	params, err := signal.Draw(rng, cfg.Nodes)
	if err != nil {
		return nil, err
	}

	gen := signal.NewGenerator(core.WithConfig(cfg))
	harmonic, err := gen.Synthesize(params)
	if err != nil {
		return nil, err
	}

	stab := feedback.NewStabilizer(core.WithConfig(cfg))
	adjusted, err := stab.Stabilize(rng, harmonic)
	if err != nil {
		return nil, err
	}

	spectral, err := spectrum.Magnitudes(adjusted)
	if err != nil {
		return nil, err
	}

	return &Result{
		Config:     cfg,
		Time:       cfg.TimeGrid(),
		Params:     params,
		Harmonic:   harmonic,
		Adjusted:   adjusted,
		EnergyLoss: node.EnergyLoss(adjusted),
		FinalPhase: node.FinalPhase(adjusted),
		Spectral:   spectral,
	}, nil
}
