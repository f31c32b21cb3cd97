package scene

import "image/color"

// Viridis anchor colors, evenly spaced on [0, 1].
var viridisStops = []color.RGBA{
	{68, 1, 84, 255},
	{71, 44, 122, 255},
	{59, 81, 139, 255},
	{44, 113, 142, 255},
	{33, 144, 141, 255},
	{39, 173, 129, 255},
	{92, 200, 99, 255},
	{170, 220, 50, 255},
	{253, 231, 37, 255},
}

// Plasma anchor colors, evenly spaced on [0, 1]. Used for the floor
// contour projection.
var plasmaStops = []color.RGBA{
	{13, 8, 135, 255},
	{75, 3, 161, 255},
	{125, 3, 168, 255},
	{168, 34, 150, 255},
	{203, 70, 121, 255},
	{229, 107, 93, 255},
	{248, 148, 65, 255},
	{253, 195, 40, 255},
	{240, 249, 33, 255},
}

// Viridis maps v in [0, 1] to the viridis colormap. Out-of-range values
// clamp to the endpoints.
func Viridis(v float64) color.RGBA { return sampleStops(viridisStops, v) }

// Plasma maps v in [0, 1] to the plasma colormap, clamping like Viridis.
func Plasma(v float64) color.RGBA { return sampleStops(plasmaStops, v) }

func sampleStops(stops []color.RGBA, v float64) color.RGBA {
	if v <= 0 {
		return stops[0]
	}
	if v >= 1 {
		return stops[len(stops)-1]
	}
	pos := v * float64(len(stops)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := stops[i], stops[i+1]
	return color.RGBA{
		R: lerpByte(a.R, b.R, frac),
		G: lerpByte(a.G, b.G, frac),
		B: lerpByte(a.B, b.B, frac),
		A: 255,
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
