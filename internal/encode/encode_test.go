package encode

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testFrame(shade uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, color.RGBA{shade, 0, 255 - shade, 255})
		}
	}
	return img
}

func TestGIFRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.gif")

	enc, err := NewGIF(path, 10)
	if err != nil {
		t.Fatalf("new gif: %v", err)
	}

	const frames = 5
	for i := 0; i < frames; i++ {
		if err := enc.WriteFrame(testFrame(uint8(i * 40))); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	decoded, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Image) != frames {
		t.Errorf("expected %d frames, got %d", frames, len(decoded.Image))
	}
	if decoded.Delay[0] != 10 {
		t.Errorf("expected delay 10, got %d", decoded.Delay[0])
	}
}

func TestGIFHighFPSDelay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fast.gif")

	enc, err := NewGIF(path, 120)
	if err != nil {
		t.Fatalf("new gif: %v", err)
	}
	if err := enc.WriteFrame(testFrame(0)); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	decoded, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Delay[0] < 1 {
		t.Errorf("delay must not truncate to zero, got %d", decoded.Delay[0])
	}
}

func TestGIFWriteAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.gif")

	enc, err := NewGIF(path, 30)
	if err != nil {
		t.Fatalf("new gif: %v", err)
	}
	if err := enc.WriteFrame(testFrame(0)); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if err := enc.WriteFrame(testFrame(1)); !errors.Is(err, ErrEncoderClosed) {
		t.Errorf("expected ErrEncoderClosed, got %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Errorf("double close should be a no-op, got %v", err)
	}
}

func TestGIFEmptyStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gif")

	enc, err := NewGIF(path, 30)
	if err != nil {
		t.Fatalf("new gif: %v", err)
	}
	if err := enc.Close(); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
}

func TestFFmpegUnavailable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := NewFFmpeg(filepath.Join(t.TempDir(), "out.mp4"), 30, 1800)
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "frame.png")

	if err := WritePNG(path, testFrame(128)); err != nil {
		t.Fatalf("write png: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 16 {
		t.Errorf("unexpected width %d", img.Bounds().Dx())
	}
}

func TestEncodeErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &EncodeError{Frame: 7, Wrapped: inner}

	if !errors.Is(err, inner) {
		t.Error("EncodeError should unwrap to the inner error")
	}
	if err.Error() != "encode: frame 7: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
