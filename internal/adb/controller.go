package adb

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// runner executes the adb binary and returns its combined output
type runner func(path string, args ...string) ([]byte, error)

func execRunner(path string, args ...string) ([]byte, error) {
	return exec.Command(path, args...).CombinedOutput()
}

// ADB controller type and lifecycle
type Controller struct {
	path          string
	device        string // Device ID: "127.0.0.1:port"
	translator    *CoordinateTranslator
	swipeDuration int // milliseconds
	run           runner
	logger        zerolog.Logger

	mu        sync.Mutex
	connected bool
}

// NewController creates a new ADB controller
func NewController(adbPath, device string, logger zerolog.Logger) *Controller {
	return &Controller{
		path:          adbPath,
		device:        device,
		translator:    NewCoordinateTranslator(CoordinateConfig{}),
		swipeDuration: 300,
		run:           execRunner,
		logger:        logger,
	}
}

// SetCoordinateTranslator sets how desktop coordinates map onto the device
func (c *Controller) SetCoordinateTranslator(translator *CoordinateTranslator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translator = translator
}

// SetSwipeDuration sets the drag duration in milliseconds
func (c *Controller) SetSwipeDuration(ms int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ms > 0 {
		c.swipeDuration = ms
	}
}

// Connect establishes connection to the ADB device
func (c *Controller) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	output, err := c.run(c.path, "connect", c.device)
	if err != nil {
		return fmt.Errorf("failed to connect to device %s: %w, output: %s", c.device, err, output)
	}

	if !strings.Contains(string(output), "connected") {
		return fmt.Errorf("unexpected connect output: %s", output)
	}

	c.connected = true
	c.logger.Info().Str("device", c.device).Msg("Connected to device")
	return nil
}

// Disconnect closes the ADB connection
func (c *Controller) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}
	c.connected = false

	if output, err := c.run(c.path, "disconnect", c.device); err != nil {
		return fmt.Errorf("failed to disconnect %s: %w, output: %s", c.device, err, output)
	}
	return nil
}
