// Package encode turns a sequence of rendered frames into a playable
// artifact. Encoders hold one open output resource: open once, write frames
// in order, close exactly once. Any write or finalize failure propagates to
// the caller; a run that errors must never be reported as success.
package encode

import (
	"errors"
	"fmt"
	"image"
)

// Domain errors for encoding operations.
var (
	// ErrBackendUnavailable indicates the ffmpeg binary is not on PATH.
	ErrBackendUnavailable = errors.New("encode: ffmpeg not found on PATH")

	// ErrEncoderClosed indicates a frame write after Close.
	ErrEncoderClosed = errors.New("encode: write after close")

	// ErrNoFrames indicates finalizing a stream that received no frames.
	ErrNoFrames = errors.New("encode: no frames written")
)

// EncodeError wraps an underlying failure with the frame it occurred on.
type EncodeError struct {
	Frame   int
	Wrapped error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode: frame %d: %v", e.Frame, e.Wrapped)
}

func (e *EncodeError) Unwrap() error {
	return e.Wrapped
}

// Encoder consumes frames in presentation order and finalizes the output on
// Close. Implementations are not safe for concurrent use; the render loop is
// strictly sequential.
type Encoder interface {
	WriteFrame(img image.Image) error
	Close() error
}
