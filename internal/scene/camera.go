package scene

import "math"

// Camera projects world coordinates (x, y in the orbital plane, z up) onto
// the image plane. Elevation and azimuth are in degrees, matching the usual
// 3D-plot convention.
type Camera struct {
	Elev, Azim float64
	Dist       float64 // viewer distance from the origin, in world units
	Zoom       float64
	ZScale     float64 // vertical exaggeration applied before projecting
}

// NewCamera returns the default vantage point: 30 degrees above the plane,
// looking in from 45 degrees azimuth.
func NewCamera() Camera {
	return Camera{Elev: 30, Azim: 45, Dist: 24, Zoom: 1.0, ZScale: 2.0}
}

// view rotates p into camera space: x right, y up, z toward the viewer.
func (c Camera) view(p Vec3) Vec3 {
	az := c.Azim * math.Pi / 180
	el := c.Elev * math.Pi / 180
	p.Z *= c.ZScale

	sinAz, cosAz := math.Sincos(az)
	sinEl, cosEl := math.Sincos(el)

	toward := Vec3{cosEl * cosAz, cosEl * sinAz, sinEl}
	right := Vec3{0, 0, 1}.Cross(toward).Normalize()
	if right.Length() == 0 {
		// looking straight down or up the z axis
		right = Vec3{-sinAz, cosAz, 0}
	}
	up := toward.Cross(right)

	return Vec3{p.Dot(right), p.Dot(up), p.Dot(toward)}
}

// Project converts a world point to pixel coordinates plus a depth value.
// Larger depth means closer to the viewer. pixPerUnit sets the base scale
// before zoom and perspective.
func (c Camera) Project(p Vec3, w, h int, pixPerUnit float64) (px, py, depth float64) {
	v := c.view(p)
	scale := c.Dist / (c.Dist - v.Z)
	s := pixPerUnit * c.Zoom * scale
	px = v.X*s + float64(w)/2
	py = -v.Y*s + float64(h)/2
	return px, py, v.Z
}
