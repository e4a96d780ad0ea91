package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/story-go/application"
	"github.com/felixgeelhaar/story-go/infrastructure/entropy"
)

// newSmokeCmd creates the smoke command.
func (a *App) newSmokeCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Drive one story through every phase and assert each step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, used, err := entropy.FromSeed(seed)
			if err != nil {
				return err
			}

			report, _ := application.RunSmoke(src)
			for _, line := range report.Transcript() {
				fmt.Fprintln(a.stdout, line)
			}

			if err := report.Err(); err != nil {
				return fmt.Errorf("%w (seed %d)", err, used)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 draws a fresh one)")

	return cmd
}
