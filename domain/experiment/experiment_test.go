package experiment

import "testing"

func TestNew(t *testing.T) {
	t.Parallel()

	e := New()

	if e.Certainty != InitialCertainty {
		t.Errorf("New().Certainty = %d, want %d", e.Certainty, InitialCertainty)
	}
	if e.Materials != nil {
		t.Errorf("New().Materials = %v, want nil", e.Materials)
	}
	if e.HasBudgetOverride() {
		t.Error("New() should not carry a budget override")
	}
}

func TestExperiment_MaterialCosts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		materials []string
		want      float64
	}{
		{"nil materials", nil, 0},
		{"empty materials", []string{}, 0},
		{"one material", []string{"beaker"}, 50},
		{"three materials", []string{"beaker", "flask", "burner"}, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := New()
			e.Materials = tt.materials
			if got := e.MaterialCosts(); got != tt.want {
				t.Errorf("MaterialCosts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExperiment_BudgetOverride(t *testing.T) {
	t.Parallel()

	for _, m := range []int{0, 1, 4} {
		materials := make([]string, m)
		e := New()
		e.Materials = materials
		fallback := float64(m) * MaterialUnitCost

		if got := e.Budget(); got != fallback {
			t.Errorf("m=%d: initial Budget() = %v, want %v", m, got, fallback)
		}

		e.SetBudget(10)
		if got := e.Budget(); got != 10 {
			t.Errorf("m=%d: Budget() after SetBudget(10) = %v, want 10", m, got)
		}
		if !e.HasBudgetOverride() {
			t.Errorf("m=%d: HasBudgetOverride() = false after SetBudget", m)
		}

		e.ClearBudget()
		if got := e.Budget(); got != fallback {
			t.Errorf("m=%d: Budget() after ClearBudget() = %v, want %v", m, got, fallback)
		}
		if e.HasBudgetOverride() {
			t.Errorf("m=%d: HasBudgetOverride() = true after ClearBudget", m)
		}
	}
}

func TestExperiment_BudgetTracksMaterialsAfterClear(t *testing.T) {
	t.Parallel()

	e := New()
	e.SetBudget(10)
	e.ClearBudget()

	// The fallback is computed on read, never cached.
	e.Materials = []string{"a", "b"}
	if got := e.Budget(); got != 100 {
		t.Errorf("Budget() = %v, want 100", got)
	}
}

func TestExperiment_SetBudgetZero(t *testing.T) {
	t.Parallel()

	e := New()
	e.Materials = []string{"a"}
	e.SetBudget(0)

	if got := e.Budget(); got != 0 {
		t.Errorf("Budget() = %v, want 0 for an explicit zero budget", got)
	}
}

func TestExperiment_Description(t *testing.T) {
	t.Parallel()

	e := &Experiment{
		Measurement: "how fast",
		Subject:     "mouse",
		Action:      "run",
		Stimuli:     "chased",
	}

	want := "measure how fast mouses run [when chased]"
	if got := e.Description(); got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}
}
