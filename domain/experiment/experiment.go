// Package experiment provides the experiment entity carried by a story.
package experiment

import "fmt"

const (
	// InitialCertainty is the certainty every new experiment starts with.
	InitialCertainty = 50

	// MaterialUnitCost is the cost charged per material when no budget is set.
	MaterialUnitCost = 50.0
)

// Experiment holds measurement parameters, materials and a certainty score.
//
// Certainty is deliberately unbounded: repeated questioning may push it
// below zero or far above 100.
type Experiment struct {
	Measurement string
	Subject     string
	Action      string
	Stimuli     string

	Materials []string
	Certainty int

	budget *float64
}

// New creates an empty experiment with the initial certainty.
func New() *Experiment {
	return &Experiment{
		Certainty: InitialCertainty,
	}
}

// MaterialCosts returns the derived cost of the materials list.
func (e *Experiment) MaterialCosts() float64 {
	return float64(len(e.Materials)) * MaterialUnitCost
}

// Budget returns the explicit budget if one is set, otherwise MaterialCosts.
func (e *Experiment) Budget() float64 {
	if e.budget != nil {
		return *e.budget
	}
	return e.MaterialCosts()
}

// SetBudget pins the budget to v.
func (e *Experiment) SetBudget(v float64) {
	e.budget = &v
}

// ClearBudget removes the explicit budget so Budget falls back to
// MaterialCosts again.
func (e *Experiment) ClearBudget() {
	e.budget = nil
}

// HasBudgetOverride reports whether an explicit budget is set.
func (e *Experiment) HasBudgetOverride() bool {
	return e.budget != nil
}

// Description renders the experiment as a one-line plan.
func (e *Experiment) Description() string {
	return fmt.Sprintf("measure %s %ss %s [when %s]", e.Measurement, e.Subject, e.Action, e.Stimuli)
}
