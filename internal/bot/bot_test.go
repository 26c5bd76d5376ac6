package bot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"jordanella.com/coc-farm-go/internal/actions"
	"jordanella.com/coc-farm-go/internal/config"
	"jordanella.com/coc-farm-go/internal/cv"
	"jordanella.com/coc-farm-go/internal/events"
	"jordanella.com/coc-farm-go/internal/loot"
	"jordanella.com/coc-farm-go/internal/ocr"
)

// regionSource hands the region back as image bytes so the recognizer can
// script answers per region
type regionSource struct{}

func (regionSource) Capture(label string, r cv.Region) ([]byte, error) {
	return []byte(r.String()), nil
}

// scriptedRecognizer answers each region from a queue; an empty queue means no text
type scriptedRecognizer struct {
	mu      sync.Mutex
	answers map[string][]string
	repeat  map[string]string
}

func newScriptedRecognizer() *scriptedRecognizer {
	return &scriptedRecognizer{
		answers: make(map[string][]string),
		repeat:  make(map[string]string),
	}
}

func (s *scriptedRecognizer) queue(r cv.Region, texts ...string) {
	s.answers[r.String()] = append(s.answers[r.String()], texts...)
}

func (s *scriptedRecognizer) always(r cv.Region, text string) {
	s.repeat[r.String()] = text
}

func (s *scriptedRecognizer) Recognize(img []byte, allowlist string) ([]ocr.Detection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := string(img)
	if text, ok := s.repeat[key]; ok {
		return []ocr.Detection{{Text: text, Confidence: 0.99}}, nil
	}
	queue := s.answers[key]
	if len(queue) == 0 {
		return nil, nil
	}
	s.answers[key] = queue[1:]
	return []ocr.Detection{{Text: queue[0], Confidence: 0.99}}, nil
}

type recordingInput struct {
	clicks []cv.Point
	drags  int
	err    error
}

func (r *recordingInput) Click(p cv.Point) error {
	if r.err != nil {
		return r.err
	}
	r.clicks = append(r.clicks, p)
	return nil
}

func (r *recordingInput) Drag(from, to cv.Point) error {
	r.drags++
	return nil
}

type recordingPublisher struct {
	events []events.Event
}

func (p *recordingPublisher) Publish(e events.Event) {
	p.events = append(p.events, e)
}

func (p *recordingPublisher) count(t events.EventType) int {
	n := 0
	for _, e := range p.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

const testRoutine = `routine_name: "test attack"
steps:
  - action: click
    target: select_troop_btn
  - action: deploy
    line: 1
  - action: sleep
    duration: 1
  - action: collect_loot
`

type harness struct {
	bot        *Bot
	cal        *config.Calibration
	recognizer *scriptedRecognizer
	input      *recordingInput
	events     *recordingPublisher
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()

	routine, err := actions.NewRoutineLoader().LoadFromBytes([]byte(testRoutine))
	if err != nil {
		t.Fatalf("failed to load routine: %v", err)
	}

	h := &harness{
		cal:        config.NewDefaultCalibration(),
		recognizer: newScriptedRecognizer(),
		input:      &recordingInput{},
		events:     &recordingPublisher{},
	}

	b, err := New(context.Background(), cfg, Dependencies{
		Calibration: h.cal,
		Reader:      loot.NewExtractor(regionSource{}, h.recognizer, zerolog.Nop()),
		Input:       h.input,
		Attack:      routine,
		Events:      h.events,
		Logger:      zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	h.bot = b
	return h
}

func defaultConfig() Config {
	return Config{
		Thresholds: loot.Thresholds{Gold: 500000, Elixir: 500000, DarkElixir: 50000},
		Targets:    loot.Amounts{Gold: 1000000, Elixir: 0, DarkElixir: 0},
		SkipDelay:  time.Millisecond,
	}
}

func TestFindBaseQualifiesImmediately(t *testing.T) {
	h := newHarness(t, defaultConfig())
	h.recognizer.queue(h.cal.Gold, "600,000")

	reading, err := h.bot.FindBase()
	if err != nil {
		t.Fatalf("FindBase failed: %v", err)
	}

	if reading[loot.Gold] != 600000 || reading[loot.Elixir] != 0 || reading[loot.DarkElixir] != 0 {
		t.Errorf("unexpected reading %v", reading)
	}
	if len(h.input.clicks) != 0 {
		t.Errorf("no skip click expected, got %v", h.input.clicks)
	}
	if h.bot.State().Searches != 1 {
		t.Errorf("Searches = %d, want 1", h.bot.State().Searches)
	}
	if h.events.count(events.EventTypeBaseFound) != 1 {
		t.Error("expected a base.found event")
	}
}

func TestFindBaseSkipsPoorBase(t *testing.T) {
	h := newHarness(t, defaultConfig())
	h.recognizer.queue(h.cal.Gold, "100,000", "600,000")
	h.recognizer.queue(h.cal.Elixir, "100,000")
	h.recognizer.queue(h.cal.DarkElixir, "10,000")

	reading, err := h.bot.FindBase()
	if err != nil {
		t.Fatalf("FindBase failed: %v", err)
	}

	if len(h.input.clicks) != 1 || h.input.clicks[0] != h.cal.NextBtn {
		t.Errorf("expected exactly one click on next_btn, got %v", h.input.clicks)
	}
	if reading[loot.Gold] != 600000 {
		t.Errorf("unexpected reading %v", reading)
	}
	if h.events.count(events.EventTypeBaseChecked) != 1 {
		t.Errorf("expected one base.checked event, got %d", h.events.count(events.EventTypeBaseChecked))
	}
}

func TestFindBaseSearchLimit(t *testing.T) {
	cfg := defaultConfig()
	cfg.MaxSearches = 3
	h := newHarness(t, cfg)

	_, err := h.bot.FindBase()
	if !errors.Is(err, ErrSearchLimit) {
		t.Fatalf("expected ErrSearchLimit, got %v", err)
	}
	if len(h.input.clicks) != 2 {
		t.Errorf("expected 2 skip clicks, got %d", len(h.input.clicks))
	}
}

func TestFindBaseStopsOnCancel(t *testing.T) {
	h := newHarness(t, defaultConfig())
	h.bot.Stop()

	if _, err := h.bot.FindBase(); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunUntilTargets(t *testing.T) {
	h := newHarness(t, defaultConfig())
	h.recognizer.always(h.cal.Gold, "600,000")
	h.recognizer.always(h.cal.ExtGold, "600,000")
	h.recognizer.always(h.cal.ExtElixir, "1,000")

	summary, err := h.bot.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.Attacks != 2 || summary.Searches != 2 {
		t.Errorf("unexpected summary %+v", summary)
	}
	if summary.Totals != (loot.Totals{Gold: 1200000, Elixir: 2000}) {
		t.Errorf("unexpected totals %+v", summary.Totals)
	}

	// Each attack: select troop click, deploy start click, one drag
	if len(h.input.clicks) != 4 || h.input.drags != 2 {
		t.Errorf("clicks=%d drags=%d", len(h.input.clicks), h.input.drags)
	}

	if h.events.count(events.EventTypeSessionStarted) != 1 ||
		h.events.count(events.EventTypeAttackCompleted) != 2 ||
		h.events.count(events.EventTypeSessionCompleted) != 1 {
		t.Errorf("unexpected events %v", h.events.events)
	}
}

func TestRunWithReachedTargetsDoesNothing(t *testing.T) {
	cfg := defaultConfig()
	cfg.Targets = loot.Amounts{}
	h := newHarness(t, cfg)

	summary, err := h.bot.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Attacks != 0 || summary.Searches != 0 || len(h.input.clicks) != 0 {
		t.Errorf("expected no activity, got %+v clicks=%v", summary, h.input.clicks)
	}
}

func TestRunAbortsOnInputFailure(t *testing.T) {
	h := newHarness(t, defaultConfig())
	h.recognizer.always(h.cal.Gold, "600,000")
	h.input.err = errors.New("display gone")

	summary, err := h.bot.Run()
	if !errors.Is(err, h.input.err) {
		t.Fatalf("expected input error, got %v", err)
	}
	if summary.Attacks != 0 {
		t.Errorf("Attacks = %d", summary.Attacks)
	}

	last := h.events.events[len(h.events.events)-1]
	if last.Type != events.EventTypeSessionCompleted || last.Data[events.KeyError] == nil {
		t.Errorf("expected failed session.completed event, got %+v", last)
	}
}

func TestDefaultAttackRoutine(t *testing.T) {
	routine, err := LoadAttackRoutine("", zerolog.Nop())
	if err != nil {
		t.Fatalf("built-in routine failed to load: %v", err)
	}
	if routine.Name() != "Attack" {
		t.Errorf("Name() = %q", routine.Name())
	}
	// select, sleep, repeat, sleep, end, sleep, confirm, sleep, collect,
	// return, sleep, attack, sleep, find match, sleep
	if routine.Len() != 15 {
		t.Errorf("expected 15 top-level steps, got %d", routine.Len())
	}

	if _, err := LoadAttackRoutine("/nonexistent/attack.yaml", zerolog.Nop()); err == nil {
		t.Error("expected error for missing routine file")
	}
}

func TestNewRequiresDependencies(t *testing.T) {
	if _, err := New(context.Background(), defaultConfig(), Dependencies{}); err == nil {
		t.Error("expected error for missing dependencies")
	}
}

func ExampleConfigFromSettings() {
	cfg := ConfigFromSettings(config.NewDefaultSettings())
	fmt.Println(cfg.Thresholds.Gold, cfg.SkipDelay, cfg.MaxSearches)
	// Output: 500000 4s 0
}
