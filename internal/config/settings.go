package config

import "jordanella.com/coc-farm-go/internal/loot"

// InputBackend selects how clicks and drags reach the game
type InputBackend string

const (
	InputDesktop InputBackend = "desktop"
	InputADB     InputBackend = "adb"
)

// Settings holds the operator-tunable behaviour loaded from Settings.ini
type Settings struct {
	// Farm
	GoldThreshold   int
	ElixirThreshold int
	DarkThreshold   int
	TargetGold      int
	TargetElixir    int
	TargetDark      int
	SkipDelay       int // ms to wait after skipping a base
	MaxSearches     int // 0 searches forever
	StartDelay      int // ms before the first search
	AttackRoutine   string

	// OCR
	OCRLanguage     string
	OCRScale        float64
	DebugCaptureDir string

	// Input
	InputBackend  InputBackend
	ADBPath       string
	ADBDevice     string
	SwipeDuration int
	WindowLeft    int
	WindowTop     int
	WindowWidth   int
	WindowHeight  int
	DeviceWidth   int
	DeviceHeight  int

	// Logging
	LogLevel string
	LogFile  string

	// History
	HistoryEnabled bool
	DatabasePath   string
}

// Thresholds returns the base selection thresholds
func (s *Settings) Thresholds() loot.Thresholds {
	return loot.Thresholds{
		Gold:       s.GoldThreshold,
		Elixir:     s.ElixirThreshold,
		DarkElixir: s.DarkThreshold,
	}
}

// Targets returns the session goals
func (s *Settings) Targets() loot.Amounts {
	return loot.Amounts{
		Gold:       s.TargetGold,
		Elixir:     s.TargetElixir,
		DarkElixir: s.TargetDark,
	}
}

// NewDefaultSettings creates settings with default values
func NewDefaultSettings() *Settings {
	return &Settings{
		GoldThreshold:   500000,
		ElixirThreshold: 500000,
		DarkThreshold:   50000,
		TargetGold:      14000000,
		TargetElixir:    14000000,
		TargetDark:      500,
		SkipDelay:       4000,
		MaxSearches:     0,
		StartDelay:      3000,
		OCRLanguage:     "eng",
		OCRScale:        2.0,
		InputBackend:    InputDesktop,
		ADBPath:         "adb",
		ADBDevice:       "127.0.0.1:16384",
		SwipeDuration:   300,
		WindowWidth:     1920,
		WindowHeight:    1080,
		DeviceWidth:     1920,
		DeviceHeight:    1080,
		LogLevel:        "INFO",
		HistoryEnabled:  true,
		DatabasePath:    "data/history.db",
	}
}
