package wave

import (
	"math"
	"testing"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		extent float64
		wantN  int
	}{
		{"default size", 60, 6.0, 60},
		{"small", 5, 1.0, 5},
		{"clamped", 1, 1.0, 2},
		{"zero", 0, 2.0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.n, tt.extent)
			if g.N != tt.wantN {
				t.Errorf("expected n %d, got %d", tt.wantN, g.N)
			}
			axis := g.Axis()
			if len(axis) != tt.wantN {
				t.Fatalf("expected %d axis samples, got %d", tt.wantN, len(axis))
			}
			if math.Abs(axis[0]+tt.extent) > 1e-12 {
				t.Errorf("expected first sample %f, got %f", -tt.extent, axis[0])
			}
			if math.Abs(axis[len(axis)-1]-tt.extent) > 1e-12 {
				t.Errorf("expected last sample %f, got %f", tt.extent, axis[len(axis)-1])
			}
		})
	}
}

func TestGridAt(t *testing.T) {
	g := NewGrid(3, 2.0)

	x, y := g.At(0, 0)
	if x != -2.0 || y != -2.0 {
		t.Errorf("corner: expected (-2,-2), got (%f,%f)", x, y)
	}
	x, y = g.At(1, 2)
	if x != 2.0 || y != 0.0 {
		t.Errorf("expected (2,0), got (%f,%f)", x, y)
	}
}

func TestFieldMinMax(t *testing.T) {
	g := NewGrid(2, 1.0)
	f := NewField(g)
	f.Values[0] = -0.4
	f.Values[3] = 1.2

	min, max := f.MinMax()
	if min != -0.4 || max != 1.2 {
		t.Errorf("expected (-0.4, 1.2), got (%f, %f)", min, max)
	}

	var empty Field
	min, max = empty.MinMax()
	if min != 0 || max != 0 {
		t.Errorf("empty field: expected (0,0), got (%f,%f)", min, max)
	}
}
