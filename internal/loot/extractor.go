package loot

import (
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"jordanella.com/coc-farm-go/internal/cv"
	"jordanella.com/coc-farm-go/internal/ocr"
)

// Source produces a recognizer-ready image of a region.
// cv.Service implements it.
type Source interface {
	Capture(label string, r cv.Region) ([]byte, error)
}

// Field binds a resource to the region it is displayed in
type Field struct {
	Kind   Kind
	Region cv.Region
}

// Extractor turns screen regions into amounts
type Extractor struct {
	source     Source
	recognizer ocr.Recognizer
	logger     zerolog.Logger
}

// NewExtractor creates an extractor
func NewExtractor(source Source, recognizer ocr.Recognizer, logger zerolog.Logger) *Extractor {
	return &Extractor{
		source:     source,
		recognizer: recognizer,
		logger:     logger,
	}
}

// ReadValue reads the amount shown in r. It never fails: capture errors,
// recognizer errors, panics and unparseable text all yield 0 and a log line.
func (e *Extractor) ReadValue(r cv.Region, kind Kind) (value int) {
	log := e.logger.With().Str("resource", string(kind)).Stringer("region", r).Logger()

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Msg("Recognizer panicked")
			value = 0
		}
	}()

	img, err := e.source.Capture(string(kind), r)
	if err != nil {
		log.Warn().Err(err).Msg("Capture failed")
		return 0
	}

	detections, err := e.recognizer.Recognize(img, ocr.NumericAllowlist)
	if err != nil {
		log.Warn().Err(err).Msg("Recognition failed")
		return 0
	}

	if len(detections) == 0 {
		log.Warn().Msg("No text detected")
		return 0
	}

	// Every detection overwrites the previous one, so the last line wins
	// even when it fails to parse.
	for _, d := range detections {
		parsed, err := ParseAmount(d.Text)
		if err != nil {
			log.Warn().Err(err).Float64("confidence", d.Confidence).Msg("Could not parse amount")
			value = 0
			continue
		}
		log.Debug().Str("text", d.Text).Float64("confidence", d.Confidence).Msg("Detected amount")
		value = parsed
	}

	log.Info().Msgf("%s: %s", kind, humanize.Comma(int64(value)))
	return value
}

// ReadAll reads every field into a fresh reading. screen only labels the logs.
func (e *Extractor) ReadAll(screen string, fields []Field) Reading {
	reading := NewReading()
	for _, f := range fields {
		reading[f.Kind] = e.ReadValue(f.Region, f.Kind)
	}
	e.logger.Debug().Str("screen", screen).Stringer("reading", reading).Msg("Read complete")
	return reading
}
