package bot

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"jordanella.com/coc-farm-go/internal/actions"
	"jordanella.com/coc-farm-go/internal/config"
	"jordanella.com/coc-farm-go/internal/events"
	"jordanella.com/coc-farm-go/internal/input"
	"jordanella.com/coc-farm-go/internal/loot"
)

//go:embed routines/attack.yaml
var defaultAttackRoutine []byte

// Reader reads a set of screen fields into a reading. loot.Extractor implements it.
type Reader interface {
	ReadAll(screen string, fields []loot.Field) loot.Reading
}

// Dependencies are the collaborators a bot drives
type Dependencies struct {
	Calibration *config.Calibration
	Reader      Reader
	Input       input.Controller
	Attack      *actions.ActionBuilder
	Events      events.Publisher // optional
	Logger      zerolog.Logger
}

// Core Bot struct definition
type Bot struct {
	config      Config
	calibration *config.Calibration
	reader      Reader
	input       input.Controller
	attack      *actions.ActionBuilder
	events      events.Publisher
	logger      zerolog.Logger
	state       *State
	ctx         context.Context
	cancel      context.CancelFunc
}

// New creates a bot bound to parent; cancelling parent stops it
func New(parent context.Context, cfg Config, deps Dependencies) (*Bot, error) {
	if deps.Calibration == nil || deps.Reader == nil || deps.Input == nil || deps.Attack == nil {
		return nil, fmt.Errorf("bot requires calibration, reader, input and attack routine")
	}

	ctx, cancel := context.WithCancel(parent)
	return &Bot{
		config:      cfg,
		calibration: deps.Calibration,
		reader:      deps.Reader,
		input:       deps.Input,
		attack:      deps.Attack,
		events:      deps.Events,
		logger:      deps.Logger,
		state:       &State{},
		ctx:         ctx,
		cancel:      cancel,
	}, nil
}

// LoadAttackRoutine loads the attack routine from path, or the built-in one when path is empty
func LoadAttackRoutine(path string, logger zerolog.Logger) (*actions.ActionBuilder, error) {
	loader := actions.NewRoutineLoader().WithLogger(logger)
	if path == "" {
		return loader.LoadFromBytes(defaultAttackRoutine)
	}
	return loader.LoadFromFile(path)
}

// Stop cancels any running session
func (b *Bot) Stop() {
	b.cancel()
}

// State returns the session state
func (b *Bot) State() *State {
	return b.state
}

// Context implements actions.BotInterface
func (b *Bot) Context() context.Context {
	return b.ctx
}

// Input implements actions.BotInterface
func (b *Bot) Input() input.Controller {
	return b.input
}

// Calibration implements actions.BotInterface
func (b *Bot) Calibration() *config.Calibration {
	return b.calibration
}

func (b *Bot) publish(e events.Event) {
	if b.events != nil {
		b.events.Publish(e)
	}
}

func (b *Bot) sleep(d time.Duration) error {
	if d <= 0 {
		return b.ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-b.ctx.Done():
		return b.ctx.Err()
	case <-timer.C:
		return nil
	}
}
