package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumPadsInput(t *testing.T) {
	// 100 samples pad to 128; spectrum is the first half.
	data := make([]float64, 100)
	ps := PowerSpectrum(data)
	if len(ps) != 64 {
		t.Errorf("expected 64 bins, got %d", len(ps))
	}
}

func TestDominantFrequency(t *testing.T) {
	const (
		sampleRate = 64.0
		freq       = 2.0
		n          = 256
	)
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}

	got := DominantFrequency(data, sampleRate)
	if math.Abs(got-freq) > sampleRate/n {
		t.Errorf("expected ~%.1f hz, got %f", freq, got)
	}
}

func TestDominantFrequencyDegenerate(t *testing.T) {
	if got := DominantFrequency(nil, 30); got != 0 {
		t.Errorf("expected 0 for empty input, got %f", got)
	}
	if got := DominantFrequency([]float64{1, 2, 3}, 0); got != 0 {
		t.Errorf("expected 0 for zero sample rate, got %f", got)
	}
}
