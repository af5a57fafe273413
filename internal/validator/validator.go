package validator

import (
	"context"

	"svw.info/sudokugen/internal/domain"
)

// StrictValidator checks the board as-is against the full-board contract:
// every cell must hold a digit in [1,9] that does not repeat within its row,
// column, or box, and every group's sum of filled cells must stay at or
// below 45. An empty cell fails the range check, so a board with cleared
// cells always reports invalid; use the solver's Solvable for progress
// checks on partial boards.
type StrictValidator struct{}

func New() *StrictValidator { return &StrictValidator{} }

// Validate runs the six checks and reports the offending cells of the
// uniqueness scans. Sum-bound violations flip ok without contributing a
// cell coordinate, since the violation belongs to the group.
func (v *StrictValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	conf := make([]domain.CellCoord, 0, 8)
	conf = uniqueRows(b, conf)
	conf = uniqueCols(b, conf)
	conf = uniqueBoxes(b, conf)
	ok := len(conf) == 0 && rowSumsOK(b) && colSumsOK(b) && boxSumsOK(b)
	return ok, conf, nil
}

// uniqueRows flags cells whose value is outside [1,9] or repeats a value
// already seen in the same row. The other two scans mirror it.
func uniqueRows(b *domain.Board, conf []domain.CellCoord) []domain.CellCoord {
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			v := b.Values[r][c]
			bit := 1 << v
			if v < 1 || v > 9 || m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
				continue
			}
			m |= bit
		}
	}
	return conf
}

func uniqueCols(b *domain.Board, conf []domain.CellCoord) []domain.CellCoord {
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			v := b.Values[r][c]
			bit := 1 << v
			if v < 1 || v > 9 || m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
				continue
			}
			m |= bit
		}
	}
	return conf
}

func uniqueBoxes(b *domain.Board, conf []domain.CellCoord) []domain.CellCoord {
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br*3+dr, bc*3+dc
					v := b.Values[r][c]
					bit := 1 << v
					if v < 1 || v > 9 || m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
						continue
					}
					m |= bit
				}
			}
		}
	}
	return conf
}

// rowSumsOK checks that no row's filled cells sum past 45, the maximum for
// nine distinct digits. Redundant with the uniqueness scan on full rows and
// a pass-through on partial ones, but kept as an independent check.
func rowSumsOK(b *domain.Board) bool {
	for r := 0; r < 9; r++ {
		sum := 0
		for c := 0; c < 9; c++ {
			sum += int(b.Values[r][c])
		}
		if sum > 45 {
			return false
		}
	}
	return true
}

func colSumsOK(b *domain.Board) bool {
	for c := 0; c < 9; c++ {
		sum := 0
		for r := 0; r < 9; r++ {
			sum += int(b.Values[r][c])
		}
		if sum > 45 {
			return false
		}
	}
	return true
}

func boxSumsOK(b *domain.Board) bool {
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			sum := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					sum += int(b.Values[br*3+dr][bc*3+dc])
				}
			}
			if sum > 45 {
				return false
			}
		}
	}
	return true
}
