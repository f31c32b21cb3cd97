package scene

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/san-kum/gravwave/internal/wave"
)

// Renderer rasterizes one frame of the deformed surface plus the two mass
// markers into an RGBA image. The pixel buffer is allocated once and redrawn
// in place every frame, so a Renderer must not be shared across goroutines.
type Renderer struct {
	Width, Height int
	Camera        Camera
	ZMin, ZMax    float64 // height range mapped onto the colormap
	MarkerOffset  float64 // how far markers hover above the surface
	MarkerRadius  int
	ContourLevels int // iso-levels projected onto the floor; 0 disables
	Background    color.RGBA
	MassColors    [2]color.RGBA
	MarkerEdge    color.RGBA

	img *image.RGBA
}

// New returns a renderer with the stock look: white background, viridis
// surface, red and white markers with a black edge.
func New(width, height int) *Renderer {
	minDim := height
	if width < minDim {
		minDim = width
	}
	radius := minDim / 80
	if radius < 4 {
		radius = 4
	}
	return &Renderer{
		Width:         width,
		Height:        height,
		Camera:        NewCamera(),
		ZMin:          -1.5,
		ZMax:          1.5,
		MarkerOffset:  0.9,
		MarkerRadius:  radius,
		ContourLevels: 8,
		Background:    color.RGBA{255, 255, 255, 255},
		MassColors: [2]color.RGBA{
			{0xff, 0x17, 0x44, 0xff},
			{0xf5, 0xf5, 0xf5, 0xff},
		},
		MarkerEdge: color.RGBA{0, 0, 0, 255},
	}
}

type quad struct {
	px, py [4]float64
	depth  float64
	col    color.RGBA
}

// Render draws the surface for one frame. The field must have the same shape
// as the grid; the caller guarantees that. z1 and z2 are the surface heights
// under the two masses, before the marker hover offset.
func (r *Renderer) Render(g wave.Grid, f wave.Field, p1, p2 wave.Point, z1, z2 float64) *image.RGBA {
	if r.img == nil || r.img.Bounds().Dx() != r.Width || r.img.Bounds().Dy() != r.Height {
		r.img = image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	}
	r.clear()

	minDim := r.Height
	if r.Width < minDim {
		minDim = r.Width
	}
	pixPerUnit := 0.5 * float64(minDim) / (g.Extent * math.Sqrt2)

	// The contour shadow sits on the floor plane, below every surface cell,
	// so it draws first.
	r.drawContours(g, f, pixPerUnit)

	quads := make([]quad, 0, (g.N-1)*(g.N-1))
	for row := 0; row < g.N-1; row++ {
		for col := 0; col < g.N-1; col++ {
			q, sum := quad{}, 0.0
			corners := [4][2]int{{row, col}, {row, col + 1}, {row + 1, col + 1}, {row + 1, col}}
			for i, c := range corners {
				x, y := g.At(c[0], c[1])
				h := clamp(f.At(c[0], c[1]), r.ZMin, r.ZMax)
				px, py, depth := r.Camera.Project(Vec3{x, y, h}, r.Width, r.Height, pixPerUnit)
				q.px[i], q.py[i] = px, py
				q.depth += depth / 4
				sum += h
			}
			norm := (sum/4 - r.ZMin) / (r.ZMax - r.ZMin)
			q.col = Viridis(norm)
			quads = append(quads, q)
		}
	}

	// Painter's algorithm: farthest cells first.
	sort.Slice(quads, func(i, j int) bool { return quads[i].depth < quads[j].depth })
	for _, q := range quads {
		r.fillTriangle(q.px[0], q.py[0], q.px[1], q.py[1], q.px[2], q.py[2], q.col)
		r.fillTriangle(q.px[0], q.py[0], q.px[2], q.py[2], q.px[3], q.py[3], q.col)
	}

	// Markers draw over the surface regardless of depth, so the pair stays
	// visible through the whole orbit.
	r.drawMarker(p1, z1+r.MarkerOffset, r.MassColors[0], pixPerUnit)
	r.drawMarker(p2, z2+r.MarkerOffset, r.MassColors[1], pixPerUnit)

	return r.img
}

func (r *Renderer) clear() {
	pix := r.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = r.Background.R
		pix[i+1] = r.Background.G
		pix[i+2] = r.Background.B
		pix[i+3] = r.Background.A
	}
}

// drawContours projects iso-level lines of the field onto the floor plane,
// colored by the plasma colormap over the field's own range.
func (r *Renderer) drawContours(g wave.Grid, f wave.Field, pixPerUnit float64) {
	if r.ContourLevels <= 0 {
		return
	}
	lo, hi := f.MinMax()
	if hi-lo < 1e-9 {
		return
	}
	for l := 1; l <= r.ContourLevels; l++ {
		level := lo + (hi-lo)*float64(l)/float64(r.ContourLevels+1)
		col := Plasma((level - lo) / (hi - lo))
		for row := 0; row < g.N-1; row++ {
			for c := 0; c < g.N-1; c++ {
				r.contourCell(g, f, row, c, level, col, pixPerUnit)
			}
		}
	}
}

// contourCell emits the marching-squares crossings of one iso-level through
// one grid cell as floor-plane segments.
func (r *Renderer) contourCell(g wave.Grid, f wave.Field, row, col int, level float64, clr color.RGBA, pixPerUnit float64) {
	type xy struct{ x, y float64 }
	var pts []xy

	corners := [4][2]int{{row, col}, {row, col + 1}, {row + 1, col + 1}, {row + 1, col}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%4]
		va, vb := f.At(a[0], a[1]), f.At(b[0], b[1])
		if (va < level) == (vb < level) {
			continue
		}
		t := (level - va) / (vb - va)
		ax, ay := g.At(a[0], a[1])
		bx, by := g.At(b[0], b[1])
		pts = append(pts, xy{ax + t*(bx-ax), ay + t*(by-ay)})
	}

	for i := 0; i+1 < len(pts); i += 2 {
		x0, y0, _ := r.Camera.Project(Vec3{pts[i].x, pts[i].y, r.ZMin}, r.Width, r.Height, pixPerUnit)
		x1, y1, _ := r.Camera.Project(Vec3{pts[i+1].x, pts[i+1].y, r.ZMin}, r.Width, r.Height, pixPerUnit)
		r.drawSegment(x0, y0, x1, y1, clr)
	}
}

func (r *Renderer) drawSegment(fx0, fy0, fx1, fy1 float64, col color.RGBA) {
	x0, y0 := int(fx0), int(fy0)
	x1, y1 := int(fx1), int(fy1)
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx - dy
	for {
		if x0 >= 0 && x0 < r.Width && y0 >= 0 && y0 < r.Height {
			r.img.SetRGBA(x0, y0, col)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x0 += sx
		}
		if e2 < dx {
			e += dx
			y0 += sy
		}
	}
}

func (r *Renderer) drawMarker(p wave.Point, z float64, col color.RGBA, pixPerUnit float64) {
	px, py, _ := r.Camera.Project(Vec3{p.X, p.Y, z}, r.Width, r.Height, pixPerUnit)
	cx, cy := int(px), int(py)
	rad := r.MarkerRadius
	edge := rad + 2
	for dy := -edge; dy <= edge; dy++ {
		for dx := -edge; dx <= edge; dx++ {
			d2 := dx*dx + dy*dy
			x, y := cx+dx, cy+dy
			if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
				continue
			}
			switch {
			case d2 <= rad*rad:
				r.img.SetRGBA(x, y, col)
			case d2 <= edge*edge:
				r.img.SetRGBA(x, y, r.MarkerEdge)
			}
		}
	}
}

// fillTriangle rasterizes a flat-colored triangle with edge functions over
// the bounding box.
func (r *Renderer) fillTriangle(x0, y0, x1, y1, x2, y2 float64, col color.RGBA) {
	minX := int(math.Floor(min3(x0, x1, x2)))
	maxX := int(math.Ceil(max3(x0, x1, x2)))
	minY := int(math.Floor(min3(y0, y1, y2)))
	maxY := int(math.Ceil(max3(y0, y1, y2)))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= r.Width {
		maxX = r.Width - 1
	}
	if maxY >= r.Height {
		maxY = r.Height - 1
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			w0 := edgeFn(x1, y1, x2, y2, px, py)
			w1 := edgeFn(x2, y2, x0, y0, px, py)
			w2 := edgeFn(x0, y0, x1, y1, px, py)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0 && area > 0) ||
				(w0 <= 0 && w1 <= 0 && w2 <= 0 && area < 0) {
				r.img.SetRGBA(x, y, col)
			}
		}
	}
}

func edgeFn(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
