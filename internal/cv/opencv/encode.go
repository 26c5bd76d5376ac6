// Package opencv prepares captured images for text recognition.
package opencv

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// EncodeForRecognition converts a captured image into the three-channel BGR
// layout the recognizer works on, upscales it by scale when scale > 1, and
// returns it PNG encoded.
func EncodeForRecognition(img image.Image, scale float64) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("empty image")
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	defer mat.Close()

	if mat.Empty() || mat.Channels() != 3 {
		return nil, fmt.Errorf("unexpected matrix layout: %d channels", mat.Channels())
	}

	target := mat
	if scale > 1 {
		resized := gocv.NewMat()
		defer resized.Close()
		gocv.Resize(mat, &resized, image.Point{}, scale, scale, gocv.InterpolationCubic)
		target = resized
	}

	buf, err := gocv.IMEncode(gocv.PNGFileExt, target)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	defer buf.Close()

	return append([]byte(nil), buf.GetBytes()...), nil
}
