// Package desktop injects input with the host mouse.
package desktop

import (
	"fmt"
	"sync"
	"time"

	"jordanella.com/coc-farm-go/internal/cv"
	"jordanella.com/coc-farm-go/internal/input"
)

var (
	_ input.Controller = (*Robot)(nil)
	_ input.Locator    = (*Robot)(nil)
)

// Robot drives the desktop mouse
type Robot struct {
	mouse      mouse
	dragSettle time.Duration
	mu         sync.Mutex
}

// NewRobot creates a desktop input controller
func NewRobot() *Robot {
	return &Robot{mouse: robotgoMouse{}, dragSettle: 50 * time.Millisecond}
}

func (r *Robot) checkBounds(p cv.Point) error {
	w, h := r.mouse.ScreenSize()
	if w <= 0 || h <= 0 {
		return nil
	}
	if p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h {
		return &input.OutOfBoundsError{Point: p, Width: w, Height: h}
	}
	return nil
}

// Click moves to p and clicks the left button
func (r *Robot) Click(p cv.Point) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkBounds(p); err != nil {
		return err
	}
	r.mouse.Move(p.X, p.Y)
	r.mouse.Click()
	return nil
}

// Drag presses at from, moves to to and releases
func (r *Robot) Drag(from, to cv.Point) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkBounds(from); err != nil {
		return err
	}
	if err := r.checkBounds(to); err != nil {
		return err
	}

	r.mouse.Move(from.X, from.Y)
	if err := r.mouse.Toggle("left"); err != nil {
		return fmt.Errorf("failed to press mouse button at %s: %w", from, err)
	}
	r.mouse.MoveSmooth(to.X, to.Y)
	time.Sleep(r.dragSettle)
	if err := r.mouse.Toggle("left", "up"); err != nil {
		return fmt.Errorf("failed to release mouse button at %s: %w", to, err)
	}
	return nil
}

// Position returns the cursor location
func (r *Robot) Position() cv.Point {
	x, y := r.mouse.Location()
	return cv.Point{X: x, Y: y}
}
