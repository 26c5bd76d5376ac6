package adb

import "fmt"

// CoordinateConfig describes where the emulator window sits on the desktop
// and the resolution of the device behind it
type CoordinateConfig struct {
	WindowLeft   int
	WindowTop    int
	WindowWidth  int
	WindowHeight int
	DeviceWidth  int
	DeviceHeight int
}

// CoordinateTranslator maps calibrated desktop coordinates onto the device screen
type CoordinateTranslator struct {
	config CoordinateConfig
}

// NewCoordinateTranslator creates a new translator with the given configuration
func NewCoordinateTranslator(config CoordinateConfig) *CoordinateTranslator {
	return &CoordinateTranslator{
		config: config,
	}
}

// TranslateX translates a desktop X coordinate to the device
func (ct *CoordinateTranslator) TranslateX(x int) int {
	x -= ct.config.WindowLeft
	if ct.config.WindowWidth == 0 || ct.config.DeviceWidth == 0 {
		return x
	}
	return int(float64(x) * float64(ct.config.DeviceWidth) / float64(ct.config.WindowWidth))
}

// TranslateY translates a desktop Y coordinate to the device
func (ct *CoordinateTranslator) TranslateY(y int) int {
	y -= ct.config.WindowTop
	if ct.config.WindowHeight == 0 || ct.config.DeviceHeight == 0 {
		return y
	}
	return int(float64(y) * float64(ct.config.DeviceHeight) / float64(ct.config.WindowHeight))
}

// TranslatePoint translates a point (x, y) to the device
func (ct *CoordinateTranslator) TranslatePoint(x, y int) (int, int) {
	return ct.TranslateX(x), ct.TranslateY(y)
}

// Validate ensures the coordinate configuration is valid
func (ct *CoordinateTranslator) Validate() error {
	if ct.config.WindowWidth <= 0 {
		return fmt.Errorf("invalid WindowWidth: %d (must be > 0)", ct.config.WindowWidth)
	}
	if ct.config.WindowHeight <= 0 {
		return fmt.Errorf("invalid WindowHeight: %d (must be > 0)", ct.config.WindowHeight)
	}
	if ct.config.DeviceWidth <= 0 {
		return fmt.Errorf("invalid DeviceWidth: %d (must be > 0)", ct.config.DeviceWidth)
	}
	if ct.config.DeviceHeight <= 0 {
		return fmt.Errorf("invalid DeviceHeight: %d (must be > 0)", ct.config.DeviceHeight)
	}
	return nil
}

func (ct *CoordinateTranslator) String() string {
	return fmt.Sprintf("CoordinateTranslator{Window: %dx%d+%d+%d, Device: %dx%d}",
		ct.config.WindowWidth, ct.config.WindowHeight,
		ct.config.WindowLeft, ct.config.WindowTop,
		ct.config.DeviceWidth, ct.config.DeviceHeight)
}
