package encode

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// FFmpeg pipes PNG frames into an ffmpeg subprocess that muxes an H.264 MP4.
// The subprocess is the only external collaborator of the whole tool; its
// absence is a fatal precondition, detected before any frame is rendered.
type FFmpeg struct {
	path   string
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
	frames int
	closed bool
}

// NewFFmpeg starts the encoder subprocess writing to path. It fails fast
// with ErrBackendUnavailable when ffmpeg is missing.
func NewFFmpeg(path string, fps, bitrateKbps int) (*FFmpeg, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, ErrBackendUnavailable
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	f := &FFmpeg{path: path}
	f.cmd = exec.Command("ffmpeg",
		"-y",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-r", strconv.Itoa(fps),
		"-i", "-",
		"-an",
		"-vcodec", "libx264",
		"-pix_fmt", "yuv420p",
		"-b:v", fmt.Sprintf("%dk", bitrateKbps),
		"-r", strconv.Itoa(fps),
		f.path,
	)
	stdin, err := f.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg stdin: %w", err)
	}
	f.stdin = stdin
	f.cmd.Stderr = &f.stderr

	if err := f.cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}
	return f, nil
}

// WriteFrame appends one encoded video frame.
func (f *FFmpeg) WriteFrame(img image.Image) error {
	if f.closed {
		return ErrEncoderClosed
	}
	if err := png.Encode(f.stdin, img); err != nil {
		return &EncodeError{Frame: f.frames, Wrapped: err}
	}
	f.frames++
	return nil
}

// Close finalizes the stream and waits for ffmpeg to exit. The output file
// is playable only after Close returns nil. Closing twice is a no-op.
func (f *FFmpeg) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	closeErr := f.stdin.Close()
	waitErr := f.cmd.Wait()
	if waitErr != nil {
		return &EncodeError{Frame: f.frames, Wrapped: fmt.Errorf("ffmpeg: %v: %s", waitErr, lastStderrLine(&f.stderr))}
	}
	if closeErr != nil {
		return &EncodeError{Frame: f.frames, Wrapped: closeErr}
	}
	if f.frames == 0 {
		return ErrNoFrames
	}
	return nil
}

// Frames returns the number of frames written so far.
func (f *FFmpeg) Frames() int { return f.frames }

// Path returns the output file path.
func (f *FFmpeg) Path() string { return f.path }

func lastStderrLine(buf *bytes.Buffer) string {
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
