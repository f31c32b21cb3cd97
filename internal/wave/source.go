package wave

import "math"

// Near-field dimples under each mass. Depth splits between the two bodies
// proportionally to mass.
const (
	massWellDepth = 0.45
	massWellWidth = 0.6
)

// softening keeps the phase well-defined at the origin.
const softening = 1e-6

// Point is a position in the orbital plane.
type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance to o.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Source describes the orbiting pair and the ripple it radiates. All fields
// are plain parameters; a Source has no internal state.
type Source struct {
	Mass1, Mass2   float64
	Separation     float64 // distance between the two bodies
	Period         float64 // seconds per full orbit
	WaveNumber     float64
	WaveSpeed      float64
	Amplitude      float64 // base strain amplitude
	AmplitudeScale float64 // user-facing multiplier on Amplitude
	Falloff        float64 // gaussian envelope divisor on r^2
	Extent         float64 // half-width of the domain, normalizes polarization
}

// DefaultSource mirrors the stock render parameters.
func DefaultSource() Source {
	return Source{
		Mass1:          1.0,
		Mass2:          1.0,
		Separation:     2.8,
		Period:         4.0,
		WaveNumber:     2.0,
		WaveSpeed:      1.0,
		Amplitude:      0.6,
		AmplitudeScale: 1.0,
		Falloff:        18.0,
		Extent:         6.0,
	}
}

// AngularVelocity returns the orbital angular velocity in rad/s.
func (s Source) AngularVelocity() float64 {
	return 2 * math.Pi / s.Period
}

// Positions returns the planar positions of the two bodies at time t. The
// pair sits on a circle of radius Separation/2, diametrically opposed, so the
// distance between them is Separation for every t.
func (s Source) Positions(t float64) (Point, Point) {
	angle := s.AngularVelocity() * t
	r := s.Separation / 2
	p := Point{r * math.Cos(angle), r * math.Sin(angle)}
	return p, Point{-p.X, -p.Y}
}

// massRatioScale is the symmetric mass ratio normalized so equal masses give
// 1.0. Lopsided pairs radiate weaker strain.
func (s Source) massRatioScale() float64 {
	m := s.Mass1 + s.Mass2
	if m == 0 {
		return 0
	}
	return 4 * s.Mass1 * s.Mass2 / (m * m)
}

// DisplacementAt evaluates the vertical deformation at one point and time:
// an outgoing quadrupole-patterned ripple damped by a gaussian envelope,
// plus a mass-proportional well under each body.
func (s Source) DisplacementAt(x, y, t float64) float64 {
	r := math.Hypot(x, y) + softening
	phase := s.WaveNumber*r - s.AngularVelocity()*t*s.WaveSpeed
	polarization := (x*x - y*y) / (s.Extent * s.Extent)
	envelope := math.Exp(-r * r / s.Falloff)
	h := s.Amplitude * s.AmplitudeScale * s.massRatioScale() *
		math.Sin(phase) * polarization * envelope

	p1, p2 := s.Positions(t)
	total := s.Mass1 + s.Mass2
	if total > 0 {
		d1 := p1.Dist(Point{x, y})
		d2 := p2.Dist(Point{x, y})
		h -= massWellDepth * (s.Mass1 / total) * math.Exp(-d1*d1/massWellWidth)
		h -= massWellDepth * (s.Mass2 / total) * math.Exp(-d2*d2/massWellWidth)
	}
	return h
}

// Deformation evaluates the displacement over every point of g at time t.
// The returned field always matches g's shape.
func (s Source) Deformation(g Grid, t float64) Field {
	f := NewField(g)
	for row := 0; row < g.N; row++ {
		for col := 0; col < g.N; col++ {
			x, y := g.At(row, col)
			f.set(row, col, s.DisplacementAt(x, y, t))
		}
	}
	return f
}
