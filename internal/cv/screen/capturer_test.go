package screen

import (
	"errors"
	"testing"

	"jordanella.com/coc-farm-go/internal/cv"
)

func TestCaptureRegionRejectsUnsetRegions(t *testing.T) {
	tests := []struct {
		name   string
		region cv.Region
	}{
		{"zero", cv.Region{}},
		{"inverted", cv.NewRegion(320, 176, 211, 148)},
	}

	sc := NewCapturer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := sc.CaptureRegion(tt.region)
			if img != nil {
				t.Error("expected no image")
			}

			var captureErr *cv.CaptureError
			if !errors.As(err, &captureErr) {
				t.Fatalf("expected CaptureError, got %v", err)
			}
			if captureErr.Region != tt.region {
				t.Errorf("error region = %v", captureErr.Region)
			}
			if !errors.Is(err, cv.ErrRegionUnset) {
				t.Errorf("expected ErrRegionUnset in chain, got %v", err)
			}
		})
	}
}
