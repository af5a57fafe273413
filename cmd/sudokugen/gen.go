package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/usecase"
	"svw.info/sudokugen/internal/validator"
)

func newGenCommand() *cobra.Command {
	var (
		difficulty   string
		count        int
		seed         int64
		withSolution bool
		asJSON       bool
		cpuProfile   bool
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more Sudoku puzzles at a difficulty tier.

Examples:
  sudokugen gen --difficulty extreme
  sudokugen gen -n 5 -d hard --solution
  sudokugen gen --seed 12345 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfile {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
			}
			diff := domain.ParseDifficulty(difficulty)
			gen := generator.New(seed).WithLogger(log)
			svc := usecase.NewService(gen, solver.NewBacktrackingSolver(), validator.New())
			enc := json.NewEncoder(os.Stdout)

			for i := 0; i < count; i++ {
				p, st, err := svc.Construct(cmd.Context(), diff)
				if err != nil {
					return fmt.Errorf("construct puzzle %d: %w", i+1, err)
				}
				solvable, err := p.Solvable(cmd.Context())
				if err != nil {
					return err
				}
				grid := p.Grid()
				board := domain.Board{Values: grid}
				log.WithFields(logrus.Fields{
					"difficulty": diff,
					"filled":     board.FilledCells(),
					"solvable":   solvable,
					"nodes":      st.Nodes,
					"dur":        st.Duration,
				}).Info("constructed")

				if asJSON {
					if err := enc.Encode(p.Snapshot()); err != nil {
						return err
					}
					continue
				}
				fmt.Printf("Puzzle #%d (%s, seed %d):\n%s", i+1, diff, p.Seed(), p.Render())
				if withSolution {
					fmt.Printf("Solution:\n%s", p.Solution())
				}
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "standard", "easy|standard|hard|extreme")
	cmd.Flags().IntVarP(&count, "number", "n", 1, "number of puzzles to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().BoolVar(&withSolution, "solution", false, "print the solved board as well")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit puzzles as JSON, one object per line")
	cmd.Flags().BoolVar(&cpuProfile, "cpuprofile", false, "write a CPU profile to the working directory")
	return cmd
}
