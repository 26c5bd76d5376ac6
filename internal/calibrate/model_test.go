package calibrate

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"jordanella.com/coc-farm-go/internal/config"
	"jordanella.com/coc-farm-go/internal/cv"
)

// fakeLocator returns a new point for every call
type fakeLocator struct {
	next int
}

func (f *fakeLocator) Position() cv.Point {
	f.next++
	return cv.Point{X: f.next * 10, Y: f.next * 100}
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func pressEnterUntilDone(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; i < 200; i++ {
		_, cmd := m.Update(enter)
		if isQuit(cmd) {
			return
		}
	}
	t.Fatal("wizard never finished")
}

func TestWizardResourceRegions(t *testing.T) {
	original := config.NewDefaultCalibration()
	m := NewModel(original, &fakeLocator{})

	m.Update(key('1'))
	if !strings.Contains(m.View(), "base search screen") {
		t.Errorf("expected screen note first, got:\n%s", m.View())
	}

	pressEnterUntilDone(t, m)

	if !m.Completed() || m.Cancelled() {
		t.Fatal("expected completed wizard")
	}

	cal := m.Calibration()
	if cal.Gold != cv.NewRegion(10, 100, 20, 200) {
		t.Errorf("Gold = %v", cal.Gold)
	}
	if cal.DarkElixir != cv.NewRegion(50, 500, 60, 600) {
		t.Errorf("DarkElixir = %v", cal.DarkElixir)
	}
	if cal.NextBtn != original.NextBtn || cal.ExtGold != original.ExtGold {
		t.Error("groups that were not chosen must keep their values")
	}
	if *original != *config.NewDefaultCalibration() {
		t.Error("wizard must not modify the caller's calibration")
	}
}

func TestWizardDeploymentZones(t *testing.T) {
	m := NewModel(config.NewDefaultCalibration(), &fakeLocator{})

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(enter)
	if m.choice != ChoiceDeploymentZones {
		t.Fatalf("choice = %v", m.choice)
	}

	pressEnterUntilDone(t, m)

	line, _ := m.Calibration().DeployLine(4)
	want := config.DeploymentLine{Start: cv.Point{X: 70, Y: 700}, End: cv.Point{X: 80, Y: 800}}
	if line != want {
		t.Errorf("line 4 = %v, want %v", line, want)
	}
}

func TestWizardEverythingCaptureCount(t *testing.T) {
	locator := &fakeLocator{}
	m := NewModel(config.NewDefaultCalibration(), locator)

	m.Update(key('5'))
	pressEnterUntilDone(t, m)

	if locator.next != 27 {
		t.Errorf("expected 27 selections, got %d", locator.next)
	}
}

func TestWizardCancel(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
	}{
		{"menu entry", []tea.KeyMsg{key('6')}},
		{"quit key", []tea.KeyMsg{key('q')}},
		{"escape mid-way", []tea.KeyMsg{key('3'), enter, {Type: tea.KeyEsc}}},
		{"ctrl+c", []tea.KeyMsg{{Type: tea.KeyCtrlC}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(config.NewDefaultCalibration(), &fakeLocator{})

			var cmd tea.Cmd
			for _, k := range tt.keys {
				_, cmd = m.Update(k)
			}

			if !isQuit(cmd) || !m.Cancelled() || m.Completed() {
				t.Errorf("expected cancelled wizard, completed=%v cancelled=%v", m.Completed(), m.Cancelled())
			}
		})
	}
}
