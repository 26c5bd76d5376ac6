package loot

import "testing"

func TestThresholdsMeets(t *testing.T) {
	th := Thresholds{Gold: 500000, Elixir: 500000, DarkElixir: 50000}

	tests := []struct {
		name    string
		reading Reading
		want    bool
	}{
		{"nil reading", nil, false},
		{"all zero", NewReading(), false},
		{"gold only", Reading{Gold: 600000}, true},
		{"elixir exactly", Reading{Elixir: 500000}, true},
		{"dark only", Reading{DarkElixir: 50000}, true},
		{"all below", Reading{Gold: 100000, Elixir: 100000, DarkElixir: 10000}, false},
		{"just below", Reading{Gold: 499999, Elixir: 499999, DarkElixir: 49999}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := th.Meets(tt.reading); got != tt.want {
				t.Errorf("Meets(%v) = %v, want %v", tt.reading, got, tt.want)
			}
		})
	}
}

func TestTotals(t *testing.T) {
	goal := Amounts{Gold: 1000, Elixir: 1000, DarkElixir: 10}
	var totals Totals

	if totals.Reached(goal) {
		t.Fatal("empty totals should not reach goal")
	}

	totals.Add(Reading{Gold: 600, Elixir: 1200, DarkElixir: 4})
	totals.Add(Reading{Gold: 500})

	if totals.Gold != 1100 || totals.Elixir != 1200 || totals.DarkElixir != 4 {
		t.Fatalf("unexpected totals %+v", totals)
	}
	if totals.Reached(goal) {
		t.Error("dark elixir goal not yet met")
	}
	if rem := totals.Remaining(goal); rem != (Amounts{DarkElixir: 6}) {
		t.Errorf("Remaining() = %+v", rem)
	}

	totals.Add(Reading{DarkElixir: 6})
	if !totals.Reached(goal) {
		t.Error("expected goal reached")
	}

	if !(Totals{}).Reached(Amounts{}) {
		t.Error("zero goals are always reached")
	}
}

func TestTotalsString(t *testing.T) {
	got := Totals{Gold: 1234567, Elixir: 0, DarkElixir: 950}.String()
	want := "Gold=1,234,567 Elixir=0 Dark Elixir=950"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
