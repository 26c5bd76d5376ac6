package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// LoadFromINI loads settings from a Settings.ini file. Keys that are absent
// keep their default values.
func LoadFromINI(path string) (*Settings, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings file: %w", err)
	}

	def := NewDefaultSettings()
	s := &Settings{}

	farm := cfg.Section("Farm")
	s.GoldThreshold = farm.Key("goldThreshold").MustInt(def.GoldThreshold)
	s.ElixirThreshold = farm.Key("elixirThreshold").MustInt(def.ElixirThreshold)
	s.DarkThreshold = farm.Key("darkThreshold").MustInt(def.DarkThreshold)
	s.TargetGold = farm.Key("targetGold").MustInt(def.TargetGold)
	s.TargetElixir = farm.Key("targetElixir").MustInt(def.TargetElixir)
	s.TargetDark = farm.Key("targetDark").MustInt(def.TargetDark)
	s.SkipDelay = farm.Key("skipDelay").MustInt(def.SkipDelay)
	s.MaxSearches = farm.Key("maxSearches").MustInt(def.MaxSearches)
	s.StartDelay = farm.Key("startDelay").MustInt(def.StartDelay)
	s.AttackRoutine = farm.Key("attackRoutine").MustString(def.AttackRoutine)

	ocr := cfg.Section("OCR")
	s.OCRLanguage = ocr.Key("language").MustString(def.OCRLanguage)
	s.OCRScale = ocr.Key("scale").MustFloat64(def.OCRScale)
	s.DebugCaptureDir = ocr.Key("debugCaptureDir").MustString(def.DebugCaptureDir)

	input := cfg.Section("Input")
	s.InputBackend = parseInputBackend(input.Key("backend").MustString(string(def.InputBackend)))
	s.ADBPath = input.Key("adbPath").MustString(def.ADBPath)
	s.ADBDevice = input.Key("adbDevice").MustString(def.ADBDevice)
	s.SwipeDuration = input.Key("swipeDuration").MustInt(def.SwipeDuration)
	s.WindowLeft = input.Key("windowLeft").MustInt(def.WindowLeft)
	s.WindowTop = input.Key("windowTop").MustInt(def.WindowTop)
	s.WindowWidth = input.Key("windowWidth").MustInt(def.WindowWidth)
	s.WindowHeight = input.Key("windowHeight").MustInt(def.WindowHeight)
	s.DeviceWidth = input.Key("deviceWidth").MustInt(def.DeviceWidth)
	s.DeviceHeight = input.Key("deviceHeight").MustInt(def.DeviceHeight)

	logging := cfg.Section("Logging")
	s.LogLevel = logging.Key("logLevel").MustString(def.LogLevel)
	s.LogFile = logging.Key("logFile").MustString(def.LogFile)

	history := cfg.Section("History")
	s.HistoryEnabled = history.Key("enabled").MustBool(def.HistoryEnabled)
	s.DatabasePath = history.Key("databasePath").MustString(def.DatabasePath)

	return s, nil
}

func parseInputBackend(s string) InputBackend {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adb":
		return InputADB
	default:
		return InputDesktop
	}
}

// SaveToINI saves settings to an INI file
func SaveToINI(s *Settings, path string) error {
	cfg := ini.Empty()

	farm := cfg.Section("Farm")
	farm.Key("goldThreshold").SetValue(fmt.Sprintf("%d", s.GoldThreshold))
	farm.Key("elixirThreshold").SetValue(fmt.Sprintf("%d", s.ElixirThreshold))
	farm.Key("darkThreshold").SetValue(fmt.Sprintf("%d", s.DarkThreshold))
	farm.Key("targetGold").SetValue(fmt.Sprintf("%d", s.TargetGold))
	farm.Key("targetElixir").SetValue(fmt.Sprintf("%d", s.TargetElixir))
	farm.Key("targetDark").SetValue(fmt.Sprintf("%d", s.TargetDark))
	farm.Key("skipDelay").SetValue(fmt.Sprintf("%d", s.SkipDelay))
	farm.Key("maxSearches").SetValue(fmt.Sprintf("%d", s.MaxSearches))
	farm.Key("startDelay").SetValue(fmt.Sprintf("%d", s.StartDelay))
	farm.Key("attackRoutine").SetValue(s.AttackRoutine)

	ocr := cfg.Section("OCR")
	ocr.Key("language").SetValue(s.OCRLanguage)
	ocr.Key("scale").SetValue(fmt.Sprintf("%g", s.OCRScale))
	ocr.Key("debugCaptureDir").SetValue(s.DebugCaptureDir)

	input := cfg.Section("Input")
	input.Key("backend").SetValue(string(s.InputBackend))
	input.Key("adbPath").SetValue(s.ADBPath)
	input.Key("adbDevice").SetValue(s.ADBDevice)
	input.Key("swipeDuration").SetValue(fmt.Sprintf("%d", s.SwipeDuration))
	input.Key("windowLeft").SetValue(fmt.Sprintf("%d", s.WindowLeft))
	input.Key("windowTop").SetValue(fmt.Sprintf("%d", s.WindowTop))
	input.Key("windowWidth").SetValue(fmt.Sprintf("%d", s.WindowWidth))
	input.Key("windowHeight").SetValue(fmt.Sprintf("%d", s.WindowHeight))
	input.Key("deviceWidth").SetValue(fmt.Sprintf("%d", s.DeviceWidth))
	input.Key("deviceHeight").SetValue(fmt.Sprintf("%d", s.DeviceHeight))

	logging := cfg.Section("Logging")
	logging.Key("logLevel").SetValue(s.LogLevel)
	logging.Key("logFile").SetValue(s.LogFile)

	history := cfg.Section("History")
	history.Key("enabled").SetValue(fmt.Sprintf("%t", s.HistoryEnabled))
	history.Key("databasePath").SetValue(s.DatabasePath)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save settings file: %w", err)
	}
	return nil
}
