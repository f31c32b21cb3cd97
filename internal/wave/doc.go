// Package wave computes the simulated spacetime distortion of a compact
// binary system in closed form.
//
// The package provides the simulation-state half of the renderer:
//
//   - [Grid]: fixed meshgrid of sample coordinates, built once per run
//   - [Source]: the orbiting pair and its wave parameters
//   - [Field]: per-frame scalar deformation over a Grid
//
// All evaluation is pure and total: the same time and parameters always
// produce the same positions and field, there is no internal state and no
// error path. Callers drive it with monotonically increasing frame times;
// nothing in this package depends on that ordering.
//
// # Example
//
//	src := wave.DefaultSource()
//	grid := wave.NewGrid(60, 6.0)
//	p1, p2 := src.Positions(t)
//	field := src.Deformation(grid, t)
package wave
