package adb

import (
	"fmt"

	"jordanella.com/coc-farm-go/internal/cv"
)

// Click performs a tap at the specified desktop coordinates
func (c *Controller) Click(p cv.Point) error {
	x, y := c.translator.TranslatePoint(p.X, p.Y)
	_, err := c.Shell(fmt.Sprintf("input tap %d %d", x, y))
	return err
}

// Drag swipes from one desktop coordinate to another
func (c *Controller) Drag(from, to cv.Point) error {
	x1, y1 := c.translator.TranslatePoint(from.X, from.Y)
	x2, y2 := c.translator.TranslatePoint(to.X, to.Y)

	c.mu.Lock()
	duration := c.swipeDuration
	c.mu.Unlock()

	_, err := c.Shell(fmt.Sprintf("input swipe %d %d %d %d %d", x1, y1, x2, y2, duration))
	return err
}

// Shell executes a shell command and returns output
func (c *Controller) Shell(command string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return "", fmt.Errorf("device %s not connected", c.device)
	}

	c.logger.Debug().Str("command", command).Msg("adb shell")
	output, err := c.run(c.path, "-s", c.device, "shell", command)
	if err != nil {
		return "", fmt.Errorf("shell command failed: %w, output: %s", err, output)
	}
	return string(output), nil
}
