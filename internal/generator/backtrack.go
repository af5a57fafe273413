package generator

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Generate produces a puzzle at the requested difficulty. It cannot fail
// except through context cancellation: a complete valid assignment always
// exists and the backtracking search is exhaustive, so the outer retry loop
// is insurance rather than an expected path.
func (g *BacktrackGenerator) Generate(ctx context.Context, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	var st ports.Stats
	var full domain.Board
	for !g.fill(ctx, &full.Values, &st.Nodes) {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		full = domain.Board{}
		st.Retries++
	}
	puz := full
	g.reduce(&puz.Values, diff.FilledCells())
	st.Duration = time.Since(start)
	g.log.WithFields(logrus.Fields{
		"difficulty": diff,
		"nodes":      st.Nodes,
		"retries":    st.Retries,
		"dur":        st.Duration.Round(time.Microsecond),
	}).Debug("generated puzzle")
	return &domain.Puzzle{
		Seed:       g.seed,
		Difficulty: diff,
		Board:      puz,
		Solution:   full,
		CreatedAt:  time.Now().UnixNano(),
	}, st, nil
}

// fill completes the grid in row-major order, trying candidates for each
// empty cell in a fresh uniformly shuffled order.
func (g *BacktrackGenerator) fill(ctx context.Context, grid *[9][9]uint8, nodes *int) bool {
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		if grid[r][c] != 0 {
			return dfs(nr, nc)
		}
		g.rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		// nums is an array, so range copies the current order before the
		// recursion below reshuffles it.
		for _, v := range nums {
			*nodes++
			if allowed(grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

// reduce clears cells until only target remain filled, resampling
// coordinates that are already empty. The removal fraction never exceeds
// 61/81, so resampling stays cheap.
func (g *BacktrackGenerator) reduce(grid *[9][9]uint8, target int) {
	remove := 81 - target
	for remove > 0 {
		r, c := g.rng.Intn(9), g.rng.Intn(9)
		if grid[r][c] == 0 {
			continue
		}
		grid[r][c] = 0
		remove--
	}
}

// allowed reports whether v can be placed at (r,c) without repeating in the
// row, column, or box.
func allowed(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
