package wave

// Grid is a square meshgrid of sample coordinates over [-Extent, Extent] in
// both axes. It is built once at startup and read-only afterwards.
type Grid struct {
	N      int
	Extent float64
	axis   []float64
}

// NewGrid builds an n x n grid spanning [-extent, extent]. n is clamped to a
// minimum of 2 so the spacing is always defined.
func NewGrid(n int, extent float64) Grid {
	if n < 2 {
		n = 2
	}
	axis := make([]float64, n)
	step := 2 * extent / float64(n-1)
	for i := range axis {
		axis[i] = -extent + float64(i)*step
	}
	return Grid{N: n, Extent: extent, axis: axis}
}

// At returns the world coordinates of grid cell (row, col). Rows advance
// along y, columns along x, matching the field layout.
func (g Grid) At(row, col int) (x, y float64) {
	return g.axis[col], g.axis[row]
}

// Axis returns the shared 1D sample axis.
func (g Grid) Axis() []float64 { return g.axis }

// Field is the scalar deformation sampled over a Grid, one value per grid
// point, row-major. A Field is recomputed per frame and never mutated after
// creation.
type Field struct {
	Rows, Cols int
	Values     []float64
}

// NewField allocates a zero field with the same shape as g.
func NewField(g Grid) Field {
	return Field{Rows: g.N, Cols: g.N, Values: make([]float64, g.N*g.N)}
}

func (f Field) At(row, col int) float64 { return f.Values[row*f.Cols+col] }

func (f Field) set(row, col int, v float64) { f.Values[row*f.Cols+col] = v }

// Matches reports whether the field has one value per point of g.
func (f Field) Matches(g Grid) bool {
	return f.Rows == g.N && f.Cols == g.N && len(f.Values) == g.N*g.N
}

// MinMax returns the extreme values of the field. A zero-size field reports
// (0, 0).
func (f Field) MinMax() (min, max float64) {
	if len(f.Values) == 0 {
		return 0, 0
	}
	min, max = f.Values[0], f.Values[0]
	for _, v := range f.Values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
