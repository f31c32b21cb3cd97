package encode

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
)

// GIF buffers paletted frames and writes a looping animated GIF on Close.
// It needs no external backend, so it serves as the fallback exporter on
// hosts without ffmpeg.
type GIF struct {
	file   *os.File
	delay  int // per-frame delay in hundredths of a second
	anim   gif.GIF
	closed bool
}

// NewGIF opens the output file immediately so an unwritable path fails
// before the render loop starts.
func NewGIF(path string, fps int) (*GIF, error) {
	if fps <= 0 {
		fps = 30
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create gif: %w", err)
	}
	delay := 100 / fps
	if delay < 1 {
		delay = 1 // above 100 fps the centisecond delay truncates to zero
	}
	return &GIF{
		file:  file,
		delay: delay,
		anim:  gif.GIF{LoopCount: 0},
	}, nil
}

func (g *GIF) WriteFrame(img image.Image) error {
	if g.closed {
		return ErrEncoderClosed
	}
	bounds := img.Bounds()
	paletted := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(paletted, bounds, img, bounds.Min)
	g.anim.Image = append(g.anim.Image, paletted)
	g.anim.Delay = append(g.anim.Delay, g.delay)
	return nil
}

func (g *GIF) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true

	if len(g.anim.Image) == 0 {
		g.file.Close()
		return ErrNoFrames
	}
	if err := gif.EncodeAll(g.file, &g.anim); err != nil {
		g.file.Close()
		return &EncodeError{Frame: len(g.anim.Image), Wrapped: err}
	}
	if err := g.file.Close(); err != nil {
		return &EncodeError{Frame: len(g.anim.Image), Wrapped: err}
	}
	return nil
}

// Frames returns the number of buffered frames.
func (g *GIF) Frames() int { return len(g.anim.Image) }
