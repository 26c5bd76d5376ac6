// Package screen captures regions of the primary display.
package screen

import (
	"image"

	"github.com/go-vgo/robotgo"

	"jordanella.com/coc-farm-go/internal/cv"
)

var _ cv.Capturer = (*Capturer)(nil)

// Capturer captures regions of the primary display
type Capturer struct{}

// NewCapturer creates a new screen capture handler
func NewCapturer() *Capturer {
	return &Capturer{}
}

// CaptureRegion grabs exactly the pixels inside r
func (sc *Capturer) CaptureRegion(r cv.Region) (image.Image, error) {
	if err := cv.CheckRegion(r); err != nil {
		return nil, err
	}

	bitmap := robotgo.CaptureScreen(r.X1, r.Y1, r.Width(), r.Height())
	if bitmap == nil {
		return nil, &cv.CaptureError{Region: r, Err: cv.ErrScreenUnavailable}
	}
	defer robotgo.FreeBitmap(bitmap)

	img := robotgo.ToImage(bitmap)
	if img == nil || img.Bounds().Empty() {
		return nil, &cv.CaptureError{Region: r, Err: cv.ErrScreenUnavailable}
	}
	return img, nil
}
