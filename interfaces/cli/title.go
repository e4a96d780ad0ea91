package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/story-go/domain/story"
	"github.com/felixgeelhaar/story-go/infrastructure/entropy"
)

// newTitleCmd creates the title command.
func (a *App) newTitleCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "title",
		Short: "Print a story title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, _, err := entropy.FromSeed(seed)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, story.Title(src))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 draws a fresh one)")

	return cmd
}
