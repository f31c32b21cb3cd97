// Package anim drives the render: an explicit sequential frame loop that
// computes simulation state, rasterizes it, and hands each frame to an
// encoder. One frame finishes before the next starts; the drawing surface
// and the encoder are both single shared resources.
package anim

import (
	"context"
	"fmt"

	"github.com/san-kum/gravwave/internal/encode"
	"github.com/san-kum/gravwave/internal/scene"
	"github.com/san-kum/gravwave/internal/wave"
)

// Progress is called after each encoded frame.
type Progress func(frame, total int, t float64)

// Animator owns one batch render. Frame i maps to time i/FPS.
type Animator struct {
	Source   wave.Source
	Grid     wave.Grid
	Renderer *scene.Renderer
	FPS      int
	Total    int
	OnFrame  Progress
}

// Run renders Total frames in order and finalizes the encoder. The encoder
// is closed exactly once, even on early abort; the first error wins.
func (a *Animator) Run(ctx context.Context, enc encode.Encoder) (err error) {
	defer func() {
		cerr := enc.Close()
		if err == nil {
			err = cerr
		}
	}()

	if a.FPS <= 0 {
		return fmt.Errorf("anim: fps must be positive, got %d", a.FPS)
	}
	if a.Total <= 0 {
		return fmt.Errorf("anim: total frames must be positive, got %d", a.Total)
	}

	for i := 0; i < a.Total; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		t := a.FrameTime(i)
		field := a.Source.Deformation(a.Grid, t)
		if !field.Matches(a.Grid) {
			return fmt.Errorf("anim: frame %d: field shape %dx%d does not match grid %d",
				i, field.Rows, field.Cols, a.Grid.N)
		}

		p1, p2 := a.Source.Positions(t)
		z1 := a.Source.DisplacementAt(p1.X, p1.Y, t)
		z2 := a.Source.DisplacementAt(p2.X, p2.Y, t)

		img := a.Renderer.Render(a.Grid, field, p1, p2, z1, z2)
		if err := enc.WriteFrame(img); err != nil {
			return err
		}
		if a.OnFrame != nil {
			a.OnFrame(i+1, a.Total, t)
		}
	}
	return nil
}

// FrameTime maps a frame index to simulation time.
func (a *Animator) FrameTime(i int) float64 {
	return float64(i) / float64(a.FPS)
}

// StrainSeries samples the displacement at a probe point across the full
// frame schedule. Used by the terminal preview.
func StrainSeries(src wave.Source, x, y float64, total, fps int) []float64 {
	if fps <= 0 || total <= 0 {
		return nil
	}
	series := make([]float64, total)
	for i := range series {
		series[i] = src.DisplacementAt(x, y, float64(i)/float64(fps))
	}
	return series
}
