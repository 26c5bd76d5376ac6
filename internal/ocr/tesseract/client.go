// Package tesseract recognizes text with the Tesseract engine.
package tesseract

import (
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"jordanella.com/coc-farm-go/internal/ocr"
)

var _ ocr.Recognizer = (*Client)(nil)

// Client recognizes single-line text with a long-lived tesseract client
type Client struct {
	client *gosseract.Client
	mu     sync.Mutex
}

// New initializes the engine for the given language.
// The error is fatal to the caller: nothing can be read without it.
func New(language string) (*Client, error) {
	if language == "" {
		language = "eng"
	}

	client := gosseract.NewClient()
	if err := client.SetLanguage(language); err != nil {
		client.Close()
		return nil, &ocr.RecognitionError{Op: "init", Err: err}
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_LINE); err != nil {
		client.Close()
		return nil, &ocr.RecognitionError{Op: "init", Err: err}
	}

	return &Client{client: client}, nil
}

// Recognize returns one detection per recognized text line
func (t *Client) Recognize(img []byte, allowlist string) ([]ocr.Detection, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.client.SetWhitelist(allowlist); err != nil {
		return nil, &ocr.RecognitionError{Op: "whitelist", Err: err}
	}
	if err := t.client.SetImageFromBytes(img); err != nil {
		return nil, &ocr.RecognitionError{Op: "load image", Err: err}
	}

	boxes, err := t.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, &ocr.RecognitionError{Op: "read", Err: err}
	}

	detections := make([]ocr.Detection, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		detections = append(detections, ocr.Detection{
			Text:       text,
			Confidence: box.Confidence / 100,
		})
	}
	return detections, nil
}

// Close releases the engine
func (t *Client) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.client.Close()
}
