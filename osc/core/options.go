package core

// FieldConfig defines the shape and tuning of an oscillator field run.
type FieldConfig struct {
	Nodes          int       // number of independent oscillator nodes
	Samples        int       // time samples per node
	SpanStart      float64   // first instant of the time grid
	SpanEnd        float64   // last instant of the time grid (inclusive)
	Harmonics      []float64 // harmonic multipliers applied to each base frequency
	Threshold      float64   // peak cutoff below which feedback noise is injected
	NoiseAmplitude float64   // half-width of the uniform feedback noise
	Seed           int64     // seed for the injected random source
}

// FieldOption mutates a FieldConfig.
type FieldOption func(*FieldConfig)

// DefaultFieldConfig returns the standard field parameters.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Nodes:          100,
		Samples:        200,
		SpanStart:      0,
		SpanEnd:        10,
		Harmonics:      []float64{3, 6, 9},
		Threshold:      0.7,
		NoiseAmplitude: 0.1,
		Seed:           1,
	}
}

// WithNodes sets the node count.
func WithNodes(nodes int) FieldOption {
	return func(cfg *FieldConfig) {
		if nodes > 0 {
			cfg.Nodes = nodes
		}
	}
}

// WithSamples sets the time sample count.
func WithSamples(samples int) FieldOption {
	return func(cfg *FieldConfig) {
		if samples > 0 {
			cfg.Samples = samples
		}
	}
}

// WithSpan sets the inclusive time span covered by the grid.
func WithSpan(start, end float64) FieldOption {
	return func(cfg *FieldConfig) {
		if end > start {
			cfg.SpanStart = start
			cfg.SpanEnd = end
		}
	}
}

// WithHarmonics sets the harmonic multipliers. The slice is copied.
func WithHarmonics(harmonics ...float64) FieldOption {
	return func(cfg *FieldConfig) {
		if len(harmonics) > 0 {
			cfg.Harmonics = append([]float64(nil), harmonics...)
		}
	}
}

// WithThreshold sets the feedback peak threshold.
func WithThreshold(threshold float64) FieldOption {
	return func(cfg *FieldConfig) {
		if threshold >= 0 {
			cfg.Threshold = threshold
		}
	}
}

// WithNoiseAmplitude sets the feedback noise half-width.
func WithNoiseAmplitude(amplitude float64) FieldOption {
	return func(cfg *FieldConfig) {
		if amplitude >= 0 {
			cfg.NoiseAmplitude = amplitude
		}
	}
}

// WithSeed sets the deterministic random seed.
func WithSeed(seed int64) FieldOption {
	return func(cfg *FieldConfig) {
		cfg.Seed = seed
	}
}

// WithConfig replaces the whole configuration. It lets a caller that already
// holds a validated FieldConfig hand it to option-based constructors.
func WithConfig(cfg FieldConfig) FieldOption {
	return func(dst *FieldConfig) {
		*dst = cfg
	}
}

// ApplyFieldOptions applies zero or more options to the default config.
func ApplyFieldOptions(opts ...FieldOption) FieldConfig {
	cfg := DefaultFieldConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
