package loot

// Amounts is a per-resource quantity used for both thresholds and goals
type Amounts struct {
	Gold       int
	Elixir     int
	DarkElixir int
}

// Of returns the amount configured for k
func (a Amounts) Of(k Kind) int {
	switch k {
	case Gold:
		return a.Gold
	case Elixir:
		return a.Elixir
	case DarkElixir:
		return a.DarkElixir
	}
	return 0
}

// Thresholds decide whether a base is worth attacking
type Thresholds Amounts

// Meets reports whether any single resource in the reading reaches its
// threshold. Missing kinds count as zero.
func (t Thresholds) Meets(r Reading) bool {
	return r.Get(Gold) >= t.Gold ||
		r.Get(Elixir) >= t.Elixir ||
		r.Get(DarkElixir) >= t.DarkElixir
}

// Totals accumulate loot over a session
type Totals struct {
	Gold       int
	Elixir     int
	DarkElixir int
}

// Add accumulates a results-screen reading
func (t *Totals) Add(r Reading) {
	t.Gold += r.Get(Gold)
	t.Elixir += r.Get(Elixir)
	t.DarkElixir += r.Get(DarkElixir)
}

// Reached reports whether every goal has been met
func (t Totals) Reached(goal Amounts) bool {
	return t.Gold >= goal.Gold &&
		t.Elixir >= goal.Elixir &&
		t.DarkElixir >= goal.DarkElixir
}

// Remaining returns how much of each goal is still missing, never negative
func (t Totals) Remaining(goal Amounts) Amounts {
	return Amounts{
		Gold:       max(goal.Gold-t.Gold, 0),
		Elixir:     max(goal.Elixir-t.Elixir, 0),
		DarkElixir: max(goal.DarkElixir-t.DarkElixir, 0),
	}
}

func (t Totals) String() string {
	return Reading{Gold: t.Gold, Elixir: t.Elixir, DarkElixir: t.DarkElixir}.String()
}
