package ports

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
)

// Stats captures the cost of a generation or solving pass.
type Stats struct {
	Nodes    int
	Retries  int
	Duration time.Duration
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Solver completes boards and answers solvability questions.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	Solvable(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Validator performs strict structural checks (row/col/box uniqueness and
// group sum bounds) against the board as-is.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}
