package usecase

import (
	"context"
	"errors"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Service wires the generation, solving, and validation providers.
type Service struct {
	Generator ports.Generator
	Solver    ports.Solver
	Validator ports.Validator
}

func NewService(g ports.Generator, s ports.Solver, v ports.Validator) *Service {
	return &Service{Generator: g, Solver: s, Validator: v}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Puzzle is a playable board bound to the service that built it. The grid is
// owned exclusively by the puzzle and changes only through SetCell.
type Puzzle struct {
	svc  *Service
	data domain.Puzzle
}

// Construct generates a solved board and reduces it to the tier's
// filled-cell count. Generation retries internally until it succeeds, so the
// only error paths are a missing generator and context cancellation.
func (u *Service) Construct(ctx context.Context, d domain.Difficulty) (*Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	p, st, err := u.Generator.Generate(ctx, d)
	if err != nil {
		return nil, st, err
	}
	return &Puzzle{svc: u, data: *p}, st, nil
}

// Grid returns a copy of the current cell values; mutating it does not
// touch the puzzle.
func (p *Puzzle) Grid() [9][9]uint8 { return p.data.Board.Values }

// Solution returns the solved board the puzzle was reduced from.
func (p *Puzzle) Solution() domain.Board { return p.data.Solution }

func (p *Puzzle) Difficulty() domain.Difficulty { return p.data.Difficulty }

func (p *Puzzle) Seed() int64 { return p.data.Seed }

// Snapshot returns the puzzle's data record, e.g. for JSON output.
func (p *Puzzle) Snapshot() domain.Puzzle { return p.data }

// SetCell overwrites one cell unconditionally. row and col must be in
// [0,9) and v in [0,9], 0 meaning cleared; out-of-range coordinates panic
// through the normal index check rather than returning an error.
func (p *Puzzle) SetCell(row, col int, v uint8) {
	p.data.Board.Values[row][col] = v
}

// Valid runs the strict structural checks on the current grid. Per the
// validator's contract this is true only for a completely filled legal
// board.
func (p *Puzzle) Valid(ctx context.Context) (bool, error) {
	if p.svc.Validator == nil {
		return false, errNotConfigured
	}
	ok, _, err := p.svc.Validator.Validate(ctx, &p.data.Board)
	return ok, err
}

// Conflicts reports the cells the uniqueness scans object to.
func (p *Puzzle) Conflicts(ctx context.Context) ([]domain.CellCoord, error) {
	if p.svc.Validator == nil {
		return nil, errNotConfigured
	}
	_, conf, err := p.svc.Validator.Validate(ctx, &p.data.Board)
	return conf, err
}

// Solvable reports whether the current grid has at least one legal
// completion.
func (p *Puzzle) Solvable(ctx context.Context) (bool, error) {
	if p.svc.Solver == nil {
		return false, errNotConfigured
	}
	ok, _, err := p.svc.Solver.Solvable(ctx, &p.data.Board)
	return ok, err
}

// Render returns the textual dump of the current grid.
func (p *Puzzle) Render() string { return p.data.Board.String() }
