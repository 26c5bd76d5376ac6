package loot

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Kind names a resource
type Kind string

const (
	Gold       Kind = "Gold"
	Elixir     Kind = "Elixir"
	DarkElixir Kind = "Dark Elixir"
)

// Kinds lists every resource in display order
var Kinds = []Kind{Gold, Elixir, DarkElixir}

// Reading holds one read cycle's values. A reading produced by the extractor
// has an entry for every kind it was asked about.
type Reading map[Kind]int

// NewReading returns a reading with every kind set to zero
func NewReading() Reading {
	r := make(Reading, len(Kinds))
	for _, k := range Kinds {
		r[k] = 0
	}
	return r
}

// Get returns the value for k, zero when absent
func (r Reading) Get(k Kind) int {
	if r == nil {
		return 0
	}
	return r[k]
}

func (r Reading) String() string {
	parts := make([]string, 0, len(Kinds))
	for _, k := range Kinds {
		parts = append(parts, fmt.Sprintf("%s=%s", k, humanize.Comma(int64(r.Get(k)))))
	}
	return strings.Join(parts, " ")
}
