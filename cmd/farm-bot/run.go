package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"jordanella.com/coc-farm-go/internal/adb"
	"jordanella.com/coc-farm-go/internal/bot"
	"jordanella.com/coc-farm-go/internal/calibrate"
	"jordanella.com/coc-farm-go/internal/config"
	"jordanella.com/coc-farm-go/internal/cv"
	"jordanella.com/coc-farm-go/internal/cv/opencv"
	"jordanella.com/coc-farm-go/internal/cv/screen"
	"jordanella.com/coc-farm-go/internal/database"
	"jordanella.com/coc-farm-go/internal/events"
	"jordanella.com/coc-farm-go/internal/input"
	"jordanella.com/coc-farm-go/internal/input/desktop"
	"jordanella.com/coc-farm-go/internal/logging"
	"jordanella.com/coc-farm-go/internal/loot"
	"jordanella.com/coc-farm-go/internal/ocr/tesseract"
)

// loadSettings reads path, writing the defaults there first when it does not exist
func loadSettings(path string) (*config.Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		settings := config.NewDefaultSettings()
		if err := config.SaveToINI(settings, path); err != nil {
			return nil, fmt.Errorf("failed to write default settings: %w", err)
		}
		return settings, nil
	}

	settings, err := config.LoadFromINI(path)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func setupLogging(settings *config.Settings) (io.Closer, error) {
	closer, err := logging.Setup(settings.LogLevel, settings.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return closer, nil
}

func loadCalibration(path string) *config.Calibration {
	cal, err := config.LoadCalibration(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Str("path", path).Msg("Using default calibration")
	}
	return cal
}

func runSetup(cmd *cobra.Command, path string) error {
	cal := loadCalibration(path)

	edited, saved, err := calibrate.Run(cal, desktop.NewRobot())
	if err != nil {
		return err
	}
	if !saved {
		fmt.Fprintln(cmd.OutOrStdout(), "Calibration cancelled, nothing was written")
		return nil
	}

	if err := config.SaveCalibration(edited, path); err != nil {
		return fmt.Errorf("failed to save calibration: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Calibration saved to %s\n", path)
	return nil
}

func runFarm(parent context.Context, settings *config.Settings, calPath string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.Component("main")
	cal := loadCalibration(calPath)

	recognizer, err := tesseract.New(settings.OCRLanguage)
	if err != nil {
		return fmt.Errorf("failed to initialize text recognition: %w", err)
	}
	defer recognizer.Close()

	capture := cv.NewService(screen.NewCapturer(), opencv.EncodeForRecognition, logging.Component("capture")).
		WithScale(settings.OCRScale).
		WithDebugDir(settings.DebugCaptureDir)
	extractor := loot.NewExtractor(capture, recognizer, logging.Component("extractor"))

	controller, cleanup, err := newInputController(settings)
	if err != nil {
		return err
	}
	defer cleanup()

	attack, err := bot.LoadAttackRoutine(settings.AttackRoutine, logging.Component("routine"))
	if err != nil {
		return fmt.Errorf("failed to load attack routine: %w", err)
	}

	bus := events.NewEventBus(100, logging.Component("events"))
	eventLogger := logging.NewEventLogger(bus, logging.Component("events"))
	history := openHistory(settings, bus)
	// Stop drains the queue, so subscribers close only afterwards
	defer func() {
		bus.Stop()
		eventLogger.Close()
		if history == nil {
			return
		}
		if id := history.SessionID(); id > 0 {
			logger.Info().Int64("session", id).Msg("Session recorded")
		}
		if err := history.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close history database")
		}
	}()

	b, err := bot.New(ctx, bot.ConfigFromSettings(settings), bot.Dependencies{
		Calibration: cal,
		Reader:      extractor,
		Input:       controller,
		Attack:      attack,
		Events:      bus,
		Logger:      logging.Component("bot"),
	})
	if err != nil {
		return err
	}

	delay := time.Duration(settings.StartDelay) * time.Millisecond
	logger.Info().Msgf("Starting in %.1f seconds, switch to the game window", delay.Seconds())
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
	}

	summary, err := b.Run()
	if err != nil {
		logger.Error().Err(err).
			Int("attacks", summary.Attacks).
			Str("loot", summary.Totals.String()).
			Msg("Farming stopped")
		return err
	}

	logger.Info().
		Int("attacks", summary.Attacks).
		Int("searches", summary.Searches).
		Str("loot", summary.Totals.String()).
		Msgf("Finished in %.1f minutes", summary.Elapsed.Minutes())
	return nil
}

// openHistory records the session into the history database. A database
// that cannot be opened or migrated only disables history.
func openHistory(settings *config.Settings, bus events.EventBus) *database.History {
	if !settings.HistoryEnabled {
		return nil
	}

	history, err := database.OpenHistory(settings.DatabasePath, bus, logging.Component("history"))
	if err != nil {
		logging.Component("history").Warn().Err(err).Msg("Attack history disabled")
		return nil
	}
	return history
}

// newInputController builds the configured input backend. cleanup releases it.
func newInputController(settings *config.Settings) (input.Controller, func(), error) {
	if settings.InputBackend != config.InputADB {
		return desktop.NewRobot(), func() {}, nil
	}

	path, err := adb.FindADB(settings.ADBPath)
	if err != nil {
		return nil, nil, err
	}

	controller := adb.NewController(path, settings.ADBDevice, logging.Component("adb"))
	translator := adb.NewCoordinateTranslator(adb.CoordinateConfig{
		WindowLeft:   settings.WindowLeft,
		WindowTop:    settings.WindowTop,
		WindowWidth:  settings.WindowWidth,
		WindowHeight: settings.WindowHeight,
		DeviceWidth:  settings.DeviceWidth,
		DeviceHeight: settings.DeviceHeight,
	})
	if err := translator.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid coordinate translation: %w", err)
	}
	controller.SetCoordinateTranslator(translator)
	controller.SetSwipeDuration(settings.SwipeDuration)

	if err := controller.Connect(); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", settings.ADBDevice, err)
	}
	return controller, func() {
		if err := controller.Disconnect(); err != nil {
			logging.Component("adb").Warn().Err(err).Msg("Disconnect failed")
		}
	}, nil
}
