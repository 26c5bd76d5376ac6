package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"jordanella.com/coc-farm-go/internal/cv"
)

// Button names as stored in the calibration file
const (
	ButtonSelectTroop = "select_troop_btn"
	ButtonEndBattle   = "end_battle_btn"
	ButtonConfirmEnd  = "confirm_end_btn"
	ButtonReturnLobby = "return_lobby_btn"
	ButtonAttack      = "attack_btn"
	ButtonFindMatch   = "find_match_btn"
	ButtonNext        = "next_btn"
)

// DeployLineCount is the number of deployment lines per attack
const DeployLineCount = 4

// DeploymentLine is the drag path troops are released along
type DeploymentLine struct {
	Start cv.Point
	End   cv.Point
}

// Calibration holds every screen position the bot needs.
// It is loaded once and read-only during a run.
type Calibration struct {
	Gold       cv.Region
	Elixir     cv.Region
	DarkElixir cv.Region

	ExtGold       cv.Region
	ExtElixir     cv.Region
	ExtDarkElixir cv.Region

	SelectTroop cv.Point
	EndBattle   cv.Point
	ConfirmEnd  cv.Point
	ReturnLobby cv.Point
	AttackBtn   cv.Point
	FindMatch   cv.Point
	NextBtn     cv.Point

	DeployLines [DeployLineCount]DeploymentLine
}

// NewDefaultCalibration returns the compiled-in positions
func NewDefaultCalibration() *Calibration {
	return &Calibration{
		Gold:       cv.NewRegion(211, 148, 320, 176),
		Elixir:     cv.NewRegion(211, 191, 330, 226),
		DarkElixir: cv.NewRegion(210, 236, 291, 265),

		ExtGold:       cv.NewRegion(825, 440, 1028, 490),
		ExtElixir:     cv.NewRegion(825, 500, 1028, 550),
		ExtDarkElixir: cv.NewRegion(825, 570, 1028, 615),

		SelectTroop: cv.Point{X: 435, Y: 943},
		EndBattle:   cv.Point{X: 227, Y: 799},
		ConfirmEnd:  cv.Point{X: 1148, Y: 634},
		ReturnLobby: cv.Point{X: 1000, Y: 868},
		AttackBtn:   cv.Point{X: 230, Y: 916},
		FindMatch:   cv.Point{X: 380, Y: 720},
		NextBtn:     cv.Point{X: 1740, Y: 777},

		DeployLines: [DeployLineCount]DeploymentLine{
			{Start: cv.Point{X: 571, Y: 725}, End: cv.Point{X: 880, Y: 60}},
			{Start: cv.Point{X: 1080, Y: 60}, End: cv.Point{X: 1630, Y: 445}},
			{Start: cv.Point{X: 1600, Y: 570}, End: cv.Point{X: 1260, Y: 850}},
			{Start: cv.Point{X: 710, Y: 840}, End: cv.Point{X: 380, Y: 580}},
		},
	}
}

// ButtonNames lists the buttons in wizard order
var ButtonNames = []string{
	ButtonSelectTroop,
	ButtonEndBattle,
	ButtonConfirmEnd,
	ButtonReturnLobby,
	ButtonAttack,
	ButtonFindMatch,
	ButtonNext,
}

// Button returns a pointer to the named button position
func (c *Calibration) Button(name string) (*cv.Point, bool) {
	switch name {
	case ButtonSelectTroop:
		return &c.SelectTroop, true
	case ButtonEndBattle:
		return &c.EndBattle, true
	case ButtonConfirmEnd:
		return &c.ConfirmEnd, true
	case ButtonReturnLobby:
		return &c.ReturnLobby, true
	case ButtonAttack:
		return &c.AttackBtn, true
	case ButtonFindMatch:
		return &c.FindMatch, true
	case ButtonNext:
		return &c.NextBtn, true
	}
	return nil, false
}

// DeployLine returns deployment line n, numbered from 1
func (c *Calibration) DeployLine(n int) (DeploymentLine, bool) {
	if n < 1 || n > DeployLineCount {
		return DeploymentLine{}, false
	}
	return c.DeployLines[n-1], true
}

// calibrationFile is the on-disk layout: regions as [x1,y1,x2,y2], points as
// [x,y] and lines as [[x,y],[x,y]].
type calibrationFile struct {
	Gold        []int `json:"gold,omitempty"`
	Elixir      []int `json:"elixir,omitempty"`
	DarkElixir  []int `json:"dark_elixir,omitempty"`
	ExtGold     []int `json:"ext_gold,omitempty"`
	ExtElixir   []int `json:"ext_elixir,omitempty"`
	ExtDElixir  []int `json:"ext_delixir,omitempty"`
	SelectTroop []int `json:"select_troop_btn,omitempty"`
	EndBattle   []int `json:"end_battle_btn,omitempty"`
	ConfirmEnd  []int `json:"confirm_end_btn,omitempty"`
	ReturnLobby []int `json:"return_lobby_btn,omitempty"`
	AttackBtn   []int `json:"attack_btn,omitempty"`
	FindMatch   []int `json:"find_match_btn,omitempty"`
	NextBtn     []int `json:"next_btn,omitempty"`

	DeployLine1 [][]int `json:"deploy_line1,omitempty"`
	DeployLine2 [][]int `json:"deploy_line2,omitempty"`
	DeployLine3 [][]int `json:"deploy_line3,omitempty"`
	DeployLine4 [][]int `json:"deploy_line4,omitempty"`
}

// ErrCalibrationShape is returned when a key holds the wrong number of values
var ErrCalibrationShape = errors.New("invalid calibration value")

// LoadCalibration reads the calibration file at path. The returned
// calibration is always usable: a missing or malformed file yields the
// defaults together with an error saying why, and keys absent from an
// otherwise valid file keep their default value.
func LoadCalibration(path string) (*Calibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewDefaultCalibration(), fmt.Errorf("failed to read calibration file: %w", err)
	}

	var file calibrationFile
	if err := sonic.ConfigStd.Unmarshal(data, &file); err != nil {
		return NewDefaultCalibration(), fmt.Errorf("failed to parse calibration file: %w", err)
	}

	cal := NewDefaultCalibration()
	if err := file.apply(cal); err != nil {
		return NewDefaultCalibration(), fmt.Errorf("failed to parse calibration file: %w", err)
	}
	return cal, nil
}

// SaveCalibration overwrites path with every value in c
func SaveCalibration(c *Calibration, path string) error {
	data, err := sonic.ConfigStd.MarshalIndent(toFile(c), "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode calibration: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create calibration directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write calibration file: %w", err)
	}
	return nil
}

func (f *calibrationFile) apply(c *Calibration) error {
	regions := []struct {
		key    string
		values []int
		dst    *cv.Region
	}{
		{"gold", f.Gold, &c.Gold},
		{"elixir", f.Elixir, &c.Elixir},
		{"dark_elixir", f.DarkElixir, &c.DarkElixir},
		{"ext_gold", f.ExtGold, &c.ExtGold},
		{"ext_elixir", f.ExtElixir, &c.ExtElixir},
		{"ext_delixir", f.ExtDElixir, &c.ExtDarkElixir},
	}
	for _, r := range regions {
		if r.values == nil {
			continue
		}
		if len(r.values) != 4 {
			return fmt.Errorf("%w: %s needs 4 values, got %d", ErrCalibrationShape, r.key, len(r.values))
		}
		*r.dst = cv.NewRegion(r.values[0], r.values[1], r.values[2], r.values[3])
	}

	points := map[string][]int{
		ButtonSelectTroop: f.SelectTroop,
		ButtonEndBattle:   f.EndBattle,
		ButtonConfirmEnd:  f.ConfirmEnd,
		ButtonReturnLobby: f.ReturnLobby,
		ButtonAttack:      f.AttackBtn,
		ButtonFindMatch:   f.FindMatch,
		ButtonNext:        f.NextBtn,
	}
	for _, name := range ButtonNames {
		values := points[name]
		if values == nil {
			continue
		}
		p, err := pointFrom(name, values)
		if err != nil {
			return err
		}
		dst, _ := c.Button(name)
		*dst = p
	}

	lines := [DeployLineCount][][]int{f.DeployLine1, f.DeployLine2, f.DeployLine3, f.DeployLine4}
	for i, values := range lines {
		if values == nil {
			continue
		}
		key := fmt.Sprintf("deploy_line%d", i+1)
		if len(values) != 2 {
			return fmt.Errorf("%w: %s needs 2 points, got %d", ErrCalibrationShape, key, len(values))
		}
		start, err := pointFrom(key, values[0])
		if err != nil {
			return err
		}
		end, err := pointFrom(key, values[1])
		if err != nil {
			return err
		}
		c.DeployLines[i] = DeploymentLine{Start: start, End: end}
	}
	return nil
}

func pointFrom(key string, values []int) (cv.Point, error) {
	if len(values) != 2 {
		return cv.Point{}, fmt.Errorf("%w: %s needs 2 values, got %d", ErrCalibrationShape, key, len(values))
	}
	return cv.Point{X: values[0], Y: values[1]}, nil
}

func toFile(c *Calibration) calibrationFile {
	region := func(r cv.Region) []int { return []int{r.X1, r.Y1, r.X2, r.Y2} }
	point := func(p cv.Point) []int { return []int{p.X, p.Y} }
	line := func(l DeploymentLine) [][]int { return [][]int{point(l.Start), point(l.End)} }

	return calibrationFile{
		Gold:        region(c.Gold),
		Elixir:      region(c.Elixir),
		DarkElixir:  region(c.DarkElixir),
		ExtGold:     region(c.ExtGold),
		ExtElixir:   region(c.ExtElixir),
		ExtDElixir:  region(c.ExtDarkElixir),
		SelectTroop: point(c.SelectTroop),
		EndBattle:   point(c.EndBattle),
		ConfirmEnd:  point(c.ConfirmEnd),
		ReturnLobby: point(c.ReturnLobby),
		AttackBtn:   point(c.AttackBtn),
		FindMatch:   point(c.FindMatch),
		NextBtn:     point(c.NextBtn),
		DeployLine1: line(c.DeployLines[0]),
		DeployLine2: line(c.DeployLines[1]),
		DeployLine3: line(c.DeployLines[2]),
		DeployLine4: line(c.DeployLines[3]),
	}
}
