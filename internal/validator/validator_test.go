package validator

import (
	"context"
	"testing"

	"svw.info/sudokugen/internal/domain"
)

// The solved counterpart of the classic sample puzzle.
var solved = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestValidateFullBoard(t *testing.T) {
	v := New()
	ok, conf, err := v.Validate(context.Background(), &domain.Board{Values: solved})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok || len(conf) != 0 {
		t.Fatalf("solved board reported invalid: conflicts=%v", conf)
	}
}

func TestValidateEmptyCellFailsRangeCheck(t *testing.T) {
	// Clearing a single cell must flip the verdict: 0 is outside [1,9].
	v := New()
	b := domain.Board{Values: solved}
	b.Values[4][4] = 0
	ok, conf, err := v.Validate(context.Background(), &b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Fatal("board with an empty cell reported valid")
	}
	found := false
	for _, c := range conf {
		if c.Row == 4 && c.Col == 4 {
			found = true
		}
	}
	if !found {
		t.Fatalf("cleared cell missing from conflicts: %v", conf)
	}
}

func TestValidateDuplicateInRow(t *testing.T) {
	v := New()
	b := domain.Board{Values: solved}
	b.Values[0][1] = b.Values[0][0] // duplicate 5 in row 0
	ok, conf, err := v.Validate(context.Background(), &b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Fatal("board with duplicated row value reported valid")
	}
	if len(conf) == 0 {
		t.Fatal("no conflicts reported for duplicate")
	}
}

func TestValidateOutOfRangeValue(t *testing.T) {
	v := New()
	b := domain.Board{Values: solved}
	b.Values[2][2] = 12
	ok, _, err := v.Validate(context.Background(), &b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Fatal("board with out-of-range value reported valid")
	}
}

func TestSumBounds(t *testing.T) {
	// A duplicated high digit pushes the row past 45 while the column and
	// box sums of a partial board stay under the bound.
	var b domain.Board
	b.Values[0] = [9]uint8{9, 9, 1, 2, 3, 4, 5, 6, 7} // 46
	if rowSumsOK(&b) {
		t.Fatal("row summing to 46 passed the bound")
	}
	if !colSumsOK(&b) || !boxSumsOK(&b) {
		t.Fatal("unrelated groups failed the bound")
	}

	// Partial groups can never exceed 45.
	var partial domain.Board
	partial.Values[3][0] = 9
	partial.Values[4][0] = 9
	partial.Values[5][0] = 9
	if !rowSumsOK(&partial) || !colSumsOK(&partial) || !boxSumsOK(&partial) {
		t.Fatal("partial board tripped a sum bound")
	}
}

func TestValidateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := New().Validate(ctx, &domain.Board{Values: solved}); err == nil {
		t.Fatal("expected error from canceled context")
	}
}
