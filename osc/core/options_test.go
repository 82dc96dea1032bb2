package core

import "testing"

func TestDefaultFieldConfig(t *testing.T) {
	cfg := DefaultFieldConfig()
	if cfg.Nodes != 100 || cfg.Samples != 200 {
		t.Fatalf("defaults = %d nodes, %d samples, want 100, 200", cfg.Nodes, cfg.Samples)
	}
	if cfg.SpanStart != 0 || cfg.SpanEnd != 10 {
		t.Fatalf("span = [%v, %v], want [0, 10]", cfg.SpanStart, cfg.SpanEnd)
	}
	if len(cfg.Harmonics) != 3 {
		t.Fatalf("harmonics = %v, want {3, 6, 9}", cfg.Harmonics)
	}
	if cfg.Threshold != 0.7 || cfg.NoiseAmplitude != 0.1 {
		t.Fatalf("threshold/noise = %v/%v, want 0.7/0.1", cfg.Threshold, cfg.NoiseAmplitude)
	}
}

func TestApplyFieldOptions(t *testing.T) {
	cfg := ApplyFieldOptions(
		WithNodes(2),
		WithSamples(4),
		WithSpan(0, 1),
		WithHarmonics(1),
		WithThreshold(0),
		WithNoiseAmplitude(0.5),
		WithSeed(42),
	)

	if cfg.Nodes != 2 || cfg.Samples != 4 {
		t.Fatalf("nodes/samples = %d/%d, want 2/4", cfg.Nodes, cfg.Samples)
	}
	if cfg.SpanEnd != 1 {
		t.Fatalf("span end = %v, want 1", cfg.SpanEnd)
	}
	if len(cfg.Harmonics) != 1 || cfg.Harmonics[0] != 1 {
		t.Fatalf("harmonics = %v, want {1}", cfg.Harmonics)
	}
	if cfg.Threshold != 0 {
		t.Fatalf("threshold = %v, want 0", cfg.Threshold)
	}
	if cfg.Seed != 42 {
		t.Fatalf("seed = %d, want 42", cfg.Seed)
	}
}

func TestInvalidOptionsKeepDefaults(t *testing.T) {
	cfg := ApplyFieldOptions(
		WithNodes(-1),
		WithSamples(0),
		WithSpan(5, 5),
		WithHarmonics(),
		WithThreshold(-0.5),
		WithNoiseAmplitude(-1),
		nil,
	)

	def := DefaultFieldConfig()
	if cfg.Nodes != def.Nodes || cfg.Samples != def.Samples {
		t.Fatalf("invalid options changed nodes/samples: %d/%d", cfg.Nodes, cfg.Samples)
	}
	if cfg.SpanStart != def.SpanStart || cfg.SpanEnd != def.SpanEnd {
		t.Fatalf("invalid span applied: [%v, %v]", cfg.SpanStart, cfg.SpanEnd)
	}
	if cfg.Threshold != def.Threshold || cfg.NoiseAmplitude != def.NoiseAmplitude {
		t.Fatalf("invalid threshold/noise applied: %v/%v", cfg.Threshold, cfg.NoiseAmplitude)
	}
}

func TestWithHarmonicsCopies(t *testing.T) {
	src := []float64{1, 2}
	cfg := ApplyFieldOptions(WithHarmonics(src...))
	src[0] = 99
	if cfg.Harmonics[0] != 1 {
		t.Fatalf("harmonics alias the caller slice: %v", cfg.Harmonics)
	}
}
