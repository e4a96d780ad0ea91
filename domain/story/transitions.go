package story

import "github.com/felixgeelhaar/story-go/domain/experiment"

// Prose fragments written by transition side effects.
const (
	ProseIntroduction = "Hello, this is an introduction."
	ProseProposal     = "I proposed an experiment"
	ProseQuestioning  = "Questioning proposal"
	ProseAccepted     = "proposal accepted"
	ProseRejected     = "proposal rejected"
	ProseConclusion   = "conclusion"
)

// Guard reports whether a transition may fire for s.
type Guard func(s *Story) bool

// Effect mutates a story before its phase changes.
type Effect func(s *Story, src Source)

// Transition is one row of the story transition table.
type Transition struct {
	Event Event
	From  Phase
	To    Phase
	Guard Guard
}

// Guarded reports whether the transition carries a guard.
func (t Transition) Guarded() bool {
	return t.Guard != nil
}

// IsSelfLoop reports whether the transition returns to its source phase.
func (t Transition) IsSelfLoop() bool {
	return t.From == t.To
}

func certain(s *Story) bool { return s.IsCertain() }

var table = []Transition{
	{Event: EventFinishPlanning, From: PhasePlanning, To: PhaseReady},
	{Event: EventWriteIntroduction, From: PhaseReady, To: PhaseHook},
	{Event: EventProposeExperiment, From: PhaseHook, To: PhaseInspection},
	{Event: EventQuestionProposal, From: PhaseInspection, To: PhaseInspection},
	{Event: EventAcceptProposal, From: PhaseInspection, To: PhaseConclusion, Guard: certain},
	{Event: EventRejectProposal, From: PhaseInspection, To: PhaseRejected, Guard: certain},
	{Event: EventWriteConclusion, From: PhaseConclusion, To: PhaseConclusion},
}

// Transitions returns a copy of the transition table.
func Transitions() []Transition {
	out := make([]Transition, len(table))
	copy(out, table)
	return out
}

// Lookup finds the transition for event e leaving phase from.
func Lookup(e Event, from Phase) (Transition, bool) {
	for _, t := range table {
		if t.Event == e && t.From == from {
			return t, true
		}
	}
	return Transition{}, false
}

// enteringAny matches every source phase except the target itself, so a
// self-loop is not an entry.
const enteringAny Phase = "*"

type hook struct {
	From Phase
	To   Phase
	Run  Effect
}

func (h hook) matches(from, to Phase) bool {
	if h.To != to {
		return false
	}
	if h.From == enteringAny {
		return from != to
	}
	return h.From == from
}

// Hooks run in table order before the phase changes.
var hooks = []hook{
	{From: enteringAny, To: PhaseReady, Run: resetProse},
	{From: PhaseReady, To: PhaseHook, Run: writeIntroduction},
	{From: enteringAny, To: PhaseInspection, Run: proposeExperiment},
	{From: PhaseInspection, To: PhaseInspection, Run: questionProposal},
	{From: PhaseInspection, To: PhaseConclusion, Run: acceptProposal},
	{From: PhaseInspection, To: PhaseRejected, Run: rejectProposal},
	{From: PhaseConclusion, To: PhaseConclusion, Run: writeConclusion},
}

// RunHooks applies every side effect registered for a from → to transition.
// It does not change the story's phase.
func RunHooks(s *Story, from, to Phase, src Source) {
	src = sourceOrDefault(src)
	for _, h := range hooks {
		if h.matches(from, to) {
			h.Run(s, src)
		}
	}
}

// CanFire reports whether event e is permitted in the current phase.
func (s *Story) CanFire(e Event) bool {
	t, ok := Lookup(e, s.Phase)
	if !ok {
		return false
	}
	return t.Guard == nil || t.Guard(s)
}

// Fire applies event e. It returns false and leaves the story untouched
// when the event is not permitted.
func (s *Story) Fire(e Event, src Source) bool {
	if !s.CanFire(e) {
		return false
	}
	t, _ := Lookup(e, s.Phase)
	RunHooks(s, t.From, t.To, src)
	s.Phase = t.To
	return true
}

func resetProse(s *Story, _ Source) {
	s.Prose = []string{}
}

func writeIntroduction(s *Story, _ Source) {
	s.Prose = append(s.Prose, ProseIntroduction)
}

func proposeExperiment(s *Story, _ Source) {
	s.Experiment = experiment.New()
	s.Prose = append(s.Prose, ProseProposal)
}

// questionProposal doubles certainty on a zero draw and subtracts 25 otherwise.
func questionProposal(s *Story, src Source) {
	s.Prose = append(s.Prose, ProseQuestioning)
	if s.Experiment == nil {
		return
	}
	if src.IntN(2) == 0 {
		s.Experiment.Certainty *= 2
	} else {
		s.Experiment.Certainty -= 25
	}
}

func acceptProposal(s *Story, _ Source) {
	s.Prose = append(s.Prose, ProseAccepted)
}

func rejectProposal(s *Story, _ Source) {
	s.Prose = append(s.Prose, ProseRejected)
}

func writeConclusion(s *Story, _ Source) {
	s.Prose = append(s.Prose, ProseConclusion)
}
