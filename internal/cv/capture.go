package cv

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrRegionUnset is returned when a capture is requested for an empty region
	ErrRegionUnset = errors.New("region not set")
	// ErrScreenUnavailable is returned when the screen grabber produced nothing (no display)
	ErrScreenUnavailable = errors.New("screen capture unavailable")
)

// Capturer grabs a rectangular slice of the current screen
type Capturer interface {
	CaptureRegion(r Region) (image.Image, error)
}

// Encoder turns a captured image into the bytes handed to the recognizer,
// upscaled by scale
type Encoder func(img image.Image, scale float64) ([]byte, error)

// CheckRegion returns a CaptureError wrapping ErrRegionUnset when r is
// empty or inverted
func CheckRegion(r Region) error {
	if !r.IsSet() {
		return &CaptureError{Region: r, Err: ErrRegionUnset}
	}
	return nil
}

// CaptureError reports a failed region capture
type CaptureError struct {
	Region Region
	Err    error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("capture %s: %v", e.Region, e.Err)
}

func (e *CaptureError) Unwrap() error {
	return e.Err
}
