package story

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/story-go/domain/experiment"
)

// Certainty thresholds. A proposal can be decided once certainty leaves
// the closed range [CertaintyLow, CertaintyHigh].
const (
	CertaintyLow  = 15
	CertaintyHigh = 80
)

// Story is a narrative that moves through phases and accumulates prose.
//
// A Story is not safe for concurrent use.
type Story struct {
	ID         string
	Phase      Phase
	Prose      []string
	Experiment *experiment.Experiment
}

// New creates a story in the planning phase.
func New() *Story {
	return NewWithID(uuid.NewString())
}

// NewWithID creates a story in the planning phase with a fixed ID.
func NewWithID(id string) *Story {
	return &Story{
		ID:    id,
		Phase: PhasePlanning,
	}
}

// Is reports whether the story is currently in phase p.
func (s *Story) Is(p Phase) bool {
	return s.Phase == p
}

// IsCertain reports whether the experiment's certainty is outside
// [CertaintyLow, CertaintyHigh]. A story without an experiment is never certain.
func (s *Story) IsCertain() bool {
	if s.Experiment == nil {
		return false
	}
	c := s.Experiment.Certainty
	return c < CertaintyLow || c > CertaintyHigh
}

// FormattedProse joins the prose fragments with single spaces.
func (s *Story) FormattedProse() string {
	return strings.Join(s.Prose, " ")
}

var titleNames = []string{"Bob", "Jim", "Joe"}

// TitleNames returns the names a title may be drawn from.
func TitleNames() []string {
	names := make([]string, len(titleNames))
	copy(names, titleNames)
	return names
}

// Title returns "<Name>'s Experiment" with Name drawn uniformly from TitleNames.
func Title(src Source) string {
	src = sourceOrDefault(src)
	return fmt.Sprintf("%s's Experiment", titleNames[src.IntN(len(titleNames))])
}
