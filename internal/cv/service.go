package cv

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/vcaesar/imgo"
)

// Service turns screen regions into recognizer-ready images
type Service struct {
	capturer Capturer
	encode   Encoder
	scale    float64
	debugDir string
	logger   zerolog.Logger

	captures int
	mu       sync.Mutex
}

// NewService creates a new CV service
func NewService(capturer Capturer, encode Encoder, logger zerolog.Logger) *Service {
	return &Service{
		capturer: capturer,
		encode:   encode,
		scale:    1,
		logger:   logger,
	}
}

// WithScale sets the upscale factor applied before encoding
func (s *Service) WithScale(scale float64) *Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scale = scale
	return s
}

// WithDebugDir enables writing every raw capture into dir
func (s *Service) WithDebugDir(dir string) *Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debugDir = dir
	return s
}

// Capture grabs r and returns it normalized and PNG encoded.
// label only names debug dumps.
func (s *Service) Capture(label string, r Region) ([]byte, error) {
	if err := CheckRegion(r); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	img, err := s.capturer.CaptureRegion(r)
	if err != nil {
		return nil, err
	}

	s.captures++
	if s.debugDir != "" {
		s.dump(label, img)
	}

	data, err := s.encode(img, s.scale)
	if err != nil {
		return nil, &CaptureError{Region: r, Err: err}
	}
	return data, nil
}

// Captures returns how many regions were grabbed successfully
func (s *Service) Captures() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captures
}

func (s *Service) dump(label string, img image.Image) {
	if err := os.MkdirAll(s.debugDir, 0755); err != nil {
		s.logger.Warn().Err(err).Str("dir", s.debugDir).Msg("Cannot create debug capture directory")
		return
	}

	path := filepath.Join(s.debugDir, fmt.Sprintf("%04d_%s.png", s.captures, sanitizeLabel(label)))
	if err := imgo.Save(path, img); err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("Failed to save debug capture")
	}
}

func sanitizeLabel(label string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, label)
}
