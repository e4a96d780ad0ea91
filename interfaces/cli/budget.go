package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/story-go/domain/experiment"
)

// budgetOptions holds options for the budget command.
type budgetOptions struct {
	materials   []string
	budget      float64
	measurement string
	subject     string
	action      string
	stimuli     string
}

// newBudgetCmd creates the budget command.
func (a *App) newBudgetCmd() *cobra.Command {
	opts := &budgetOptions{}

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Describe an experiment and its budget",
		Long: `Describe a standalone experiment. Without --budget the budget is derived
from the materials at 50 per material.

Examples:
  story budget --material beaker --material burner
  story budget --material beaker --budget 10
  story budget --measurement "how fast" --subject rat --action run --stimuli scared`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := experiment.New()
			e.Materials = opts.materials
			e.Measurement = opts.measurement
			e.Subject = opts.subject
			e.Action = opts.action
			e.Stimuli = opts.stimuli
			if cmd.Flags().Changed("budget") {
				e.SetBudget(opts.budget)
			}

			mode := "derived"
			if e.HasBudgetOverride() {
				mode = "override"
			}

			fmt.Fprintf(a.stdout, "Description: %s\n", e.Description())
			fmt.Fprintf(a.stdout, "Materials: %d\n", len(e.Materials))
			fmt.Fprintf(a.stdout, "Material costs: %.2f\n", e.MaterialCosts())
			fmt.Fprintf(a.stdout, "Budget: %.2f (%s)\n", e.Budget(), mode)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&opts.materials, "material", nil, "Add a material (repeatable)")
	cmd.Flags().Float64Var(&opts.budget, "budget", 0, "Pin the budget instead of deriving it")
	cmd.Flags().StringVar(&opts.measurement, "measurement", "", "What is measured")
	cmd.Flags().StringVar(&opts.subject, "subject", "", "Subject of the experiment")
	cmd.Flags().StringVar(&opts.action, "action", "", "Action the subject performs")
	cmd.Flags().StringVar(&opts.stimuli, "stimuli", "", "Condition under which it is measured")

	return cmd
}
