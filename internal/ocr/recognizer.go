package ocr

import "fmt"

// NumericAllowlist is the only character set amounts are recognized with
const NumericAllowlist = "0123456789,. "

// Detection is one piece of recognized text
type Detection struct {
	Text string
	// Confidence is in the range 0..1. It is reported but never used to filter.
	Confidence float64
}

// Recognizer reads text out of an encoded image
type Recognizer interface {
	Recognize(img []byte, allowlist string) ([]Detection, error)
}

// RecognitionError reports a failure inside the recognition engine
type RecognitionError struct {
	Op  string
	Err error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("recognition %s: %v", e.Op, e.Err)
}

func (e *RecognitionError) Unwrap() error {
	return e.Err
}
