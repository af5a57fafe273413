package domain

import "strings"

// Board is a 9x9 grid of cell values. 0 marks an empty cell, 1-9 a digit.
type Board struct {
	Values [9][9]uint8 `json:"board"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a generated Sudoku together with the solved board it was
// reduced from.
type Puzzle struct {
	Seed       int64      `json:"seed"`
	Difficulty Difficulty `json:"difficulty"`
	Board      Board      `json:"board"`
	Solution   Board      `json:"solution"`
	CreatedAt  int64      `json:"createdAt"`
}

// FilledCells counts the non-empty cells.
func (b *Board) FilledCells() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// String renders the grid one row per line, "." for empty cells,
// space-separated otherwise.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
