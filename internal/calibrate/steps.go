package calibrate

import (
	"fmt"

	"jordanella.com/coc-farm-go/internal/config"
	"jordanella.com/coc-farm-go/internal/cv"
)

// step is one Enter press in the wizard. Steps without apply only show a
// note, usually asking the user to switch game screens.
type step struct {
	title  string
	prompt string
	apply  func(p cv.Point) string
}

func (s step) captures() bool {
	return s.apply != nil
}

func note(title, text string) step {
	return step{title: title, prompt: text}
}

func regionSteps(name, instruction string, dst *cv.Region) []step {
	var topLeft cv.Point
	return []step{
		{
			title:  name,
			prompt: fmt.Sprintf("%s\nMove mouse to TOP-LEFT corner of %s and press Enter", instruction, name),
			apply: func(p cv.Point) string {
				topLeft = p
				return fmt.Sprintf("%s top-left: %s", name, p)
			},
		},
		{
			title:  name,
			prompt: fmt.Sprintf("Move mouse to BOTTOM-RIGHT corner of %s and press Enter", name),
			apply: func(p cv.Point) string {
				*dst = cv.NewRegion(topLeft.X, topLeft.Y, p.X, p.Y)
				return fmt.Sprintf("%s region saved: %s", name, *dst)
			},
		},
	}
}

func buttonStep(name, instruction string, dst *cv.Point) step {
	return step{
		title:  name,
		prompt: fmt.Sprintf("%s\nMove mouse to %s and press Enter", instruction, name),
		apply: func(p cv.Point) string {
			*dst = p
			return fmt.Sprintf("%s saved: %s", name, p)
		},
	}
}

func lineSteps(n int, dst *config.DeploymentLine) []step {
	var start cv.Point
	name := fmt.Sprintf("Deployment Line %d", n)
	return []step{
		{
			title:  name,
			prompt: fmt.Sprintf("Move mouse to START point of Line %d and press Enter", n),
			apply: func(p cv.Point) string {
				start = p
				return fmt.Sprintf("%s start: %s", name, p)
			},
		},
		{
			title:  name,
			prompt: fmt.Sprintf("Move mouse to END point of Line %d and press Enter", n),
			apply: func(p cv.Point) string {
				*dst = config.DeploymentLine{Start: start, End: p}
				return fmt.Sprintf("Line %d saved: %s -> %s", n, start, p)
			},
		},
	}
}

func resourceRegionSteps(cal *config.Calibration) []step {
	steps := []step{note("Resource regions", "Go to the base search screen (attack mode).\nPress Enter when ready")}
	steps = append(steps, regionSteps("Gold", "The gold amount shown on the base you're searching", &cal.Gold)...)
	steps = append(steps, regionSteps("Elixir", "The elixir amount shown on the base", &cal.Elixir)...)
	steps = append(steps, regionSteps("Dark Elixir", "The dark elixir amount shown on the base", &cal.DarkElixir)...)
	return steps
}

func resultRegionSteps(cal *config.Calibration) []step {
	steps := []step{note("Result regions", "Complete an attack and go to the RESULTS SCREEN.\nPress Enter when you're on the results screen")}
	steps = append(steps, regionSteps("Gold Earned", "The gold amount you earned", &cal.ExtGold)...)
	steps = append(steps, regionSteps("Elixir Earned", "The elixir amount you earned", &cal.ExtElixir)...)
	steps = append(steps, regionSteps("Dark Elixir Earned", "The dark elixir amount you earned", &cal.ExtDarkElixir)...)
	return steps
}

func actionButtonSteps(cal *config.Calibration) []step {
	return []step{
		note("Action buttons", "Go to the ATTACK SCREEN with troops ready.\nPress Enter when ready"),
		buttonStep("Select Troop Button", "The button to select troops", &cal.SelectTroop),
		buttonStep("End Battle Button", "The button to end the attack", &cal.EndBattle),
		note("Action buttons", "Click End Battle to open the confirmation dialog.\nPress Enter when you see it"),
		buttonStep("Confirm End Battle Button", "The button that confirms ending the battle", &cal.ConfirmEnd),
		note("Action buttons", "Go to the RESULTS SCREEN after an attack.\nPress Enter when you're there"),
		buttonStep("Return to Lobby Button", "The button to return home", &cal.ReturnLobby),
		note("Action buttons", "Go to the MAIN HOME SCREEN.\nPress Enter when you're there"),
		buttonStep("Attack Button", "The main Attack button on the home screen", &cal.AttackBtn),
		note("Action buttons", "Click Attack to open matchmaking.\nPress Enter when you see 'Find a Match'"),
		buttonStep("Find Match Button", "The button that starts searching for bases", &cal.FindMatch),
		note("Action buttons", "Click Find a Match and wait for a base.\nPress Enter when you're viewing a base"),
		buttonStep("Next Button", "The button that skips to the next base", &cal.NextBtn),
	}
}

func deploymentSteps(cal *config.Calibration) []step {
	steps := []step{note("Deployment zones", "Go to ATTACK MODE with troops ready to deploy.\nYou'll set 4 drag lines covering all sides of the base.\nPress Enter when ready")}
	for i := range cal.DeployLines {
		steps = append(steps, lineSteps(i+1, &cal.DeployLines[i])...)
	}
	return steps
}
