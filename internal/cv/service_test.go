package cv

import (
	"errors"
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/rs/zerolog"
)

type fakeCapturer struct {
	img   image.Image
	err   error
	calls int
}

func (f *fakeCapturer) CaptureRegion(r Region) (image.Image, error) {
	f.calls++
	if f.err != nil {
		return nil, &CaptureError{Region: r, Err: f.err}
	}
	return f.img, nil
}

// fakeEncoder records the scale it was asked for
type fakeEncoder struct {
	scale float64
	err   error
}

func (f *fakeEncoder) encode(img image.Image, scale float64) ([]byte, error) {
	f.scale = scale
	if f.err != nil {
		return nil, f.err
	}
	b := img.Bounds()
	return []byte{byte(b.Dx()), byte(b.Dy())}, nil
}

func solidImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 180, B: 40, A: 255})
		}
	}
	return img
}

func TestServiceCaptureError(t *testing.T) {
	enc := &fakeEncoder{}
	svc := NewService(&fakeCapturer{err: ErrScreenUnavailable}, enc.encode, zerolog.Nop())

	_, err := svc.Capture("gold", NewRegion(0, 0, 10, 10))
	var captureErr *CaptureError
	if !errors.As(err, &captureErr) {
		t.Fatalf("expected CaptureError, got %v", err)
	}
	if !errors.Is(err, ErrScreenUnavailable) {
		t.Errorf("expected ErrScreenUnavailable in chain, got %v", err)
	}
	if svc.Captures() != 0 {
		t.Errorf("failed capture should not be counted")
	}
}

func TestServiceRejectsUnsetRegion(t *testing.T) {
	tests := []struct {
		name   string
		region Region
	}{
		{"zero", Region{}},
		{"inverted", NewRegion(320, 176, 211, 148)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capturer := &fakeCapturer{img: solidImage(4, 4)}
			enc := &fakeEncoder{}
			svc := NewService(capturer, enc.encode, zerolog.Nop())

			_, err := svc.Capture("gold", tt.region)

			var captureErr *CaptureError
			if !errors.As(err, &captureErr) || captureErr.Region != tt.region {
				t.Fatalf("expected CaptureError for %v, got %v", tt.region, err)
			}
			if !errors.Is(err, ErrRegionUnset) {
				t.Errorf("expected ErrRegionUnset in chain, got %v", err)
			}
			if capturer.calls != 0 {
				t.Error("unset region must not reach the screen")
			}
		})
	}
}

func TestServiceCaptureEncodesAndDumps(t *testing.T) {
	dir := t.TempDir()
	enc := &fakeEncoder{}
	svc := NewService(&fakeCapturer{img: solidImage(10, 5)}, enc.encode, zerolog.Nop()).
		WithScale(2).
		WithDebugDir(dir)

	data, err := svc.Capture("ext gold", NewRegion(0, 0, 10, 5))
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if len(data) != 2 || data[0] != 10 || data[1] != 5 {
		t.Errorf("encoder did not receive the captured image: %v", data)
	}
	if enc.scale != 2 {
		t.Errorf("encoder scale = %v, want 2", enc.scale)
	}
	if svc.Captures() != 1 {
		t.Errorf("Captures() = %d", svc.Captures())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "0001_ext_gold.png" {
		t.Errorf("unexpected debug dump contents: %v", entries)
	}
}

func TestServiceEncodeError(t *testing.T) {
	enc := &fakeEncoder{err: errors.New("bad pixels")}
	svc := NewService(&fakeCapturer{img: solidImage(3, 3)}, enc.encode, zerolog.Nop())

	_, err := svc.Capture("gold", NewRegion(0, 0, 3, 3))
	var captureErr *CaptureError
	if !errors.As(err, &captureErr) {
		t.Fatalf("expected CaptureError, got %v", err)
	}
}
