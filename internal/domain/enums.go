package domain

import "strings"

// Difficulty selects how many givens a freshly constructed puzzle keeps.
type Difficulty int

const (
	Easy Difficulty = iota
	Standard
	Hard
	Extreme
)

// FilledCells returns the number of cells left filled after reduction.
func (d Difficulty) FilledCells() int {
	switch d {
	case Easy:
		return 50
	case Hard:
		return 30
	case Extreme:
		return 20
	default:
		return 40 // Standard
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Extreme:
		return "extreme"
	default:
		return "standard"
	}
}

// ParseDifficulty maps a user-facing name to a tier, defaulting to Standard.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "extreme":
		return Extreme
	default:
		return Standard
	}
}
