package application

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/felixgeelhaar/story-go/domain/story"
	"github.com/felixgeelhaar/story-go/infrastructure/entropy"
)

func checkNames(checks []Check) []string {
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = c.Name
	}
	return names
}

func TestReport(t *testing.T) {
	t.Parallel()

	r := &Report{}
	if !r.OK() || r.Err() != nil {
		t.Error("empty report should pass")
	}

	r.Assert("first", true)
	r.Assert("second", false)
	r.Assert("third", false)

	if r.OK() {
		t.Error("report with failures should not be OK")
	}
	if diff := cmp.Diff([]string{"second", "third"}, checkNames(r.Failed())); diff != "" {
		t.Errorf("failed checks mismatch (-want +got):\n%s", diff)
	}
	err := r.Err()
	if !errors.Is(err, ErrSmokeFailed) {
		t.Errorf("Err() = %v, want ErrSmokeFailed", err)
	}
	if got := err.Error(); got != "smoke checks failed: second (2 of 3 failed)" {
		t.Errorf("Err() message = %q", got)
	}
}

func TestReport_ChecksIsCopy(t *testing.T) {
	t.Parallel()

	r := &Report{}
	r.Assert("only", true)
	checks := r.Checks()
	checks[0].Passed = false

	if !r.OK() {
		t.Error("modifying Checks() result should not affect the report")
	}
}

func TestRunSmoke(t *testing.T) {
	t.Parallel()

	r, intro := RunSmoke(entropy.NewScripted(entropy.Double))

	if !r.OK() {
		t.Fatalf("smoke run failed: %v", r.Err())
	}
	if intro != story.ProseIntroduction {
		t.Errorf("introduction = %q", intro)
	}

	want := []string{
		"true is true",
		"budget overrides",
		"budget resets",
		"story in planning mode",
		"story ready to write",
		"story has prose",
		"story ready to hook",
		"story has experiment",
		"more prose was written",
		"questioning proposal adds prose",
		"story concluded",
	}
	if diff := cmp.Diff(want, checkNames(r.Checks())); diff != "" {
		t.Errorf("checks mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSmoke_Transcript(t *testing.T) {
	t.Parallel()

	// 50 -> 100 after one question.
	r, intro := RunSmoke(entropy.NewScripted(entropy.Double))

	want := []string{
		"asserting true is true",
		"asserting budget overrides",
		"asserting budget resets",
		"asserting story in planning mode",
		"asserting story ready to write",
		"asserting story has prose",
		"asserting story ready to hook",
		"\tIntroduction is:\n\n" + intro,
		"asserting story has experiment",
		"asserting more prose was written",
		"questioning proposal",
		"asserting questioning proposal adds prose",
		"proposal was accepted",
		"conclusion",
		"asserting story concluded",
	}
	if diff := cmp.Diff(want, r.Transcript()); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSmoke_TranscriptLowCertainty(t *testing.T) {
	t.Parallel()

	// 50 -> 25 -> 0. Acceptance is tried first, so a certain low proposal
	// is accepted too.
	r, _ := RunSmoke(entropy.NewScripted(entropy.Subtract, entropy.Subtract))
	if !r.OK() {
		t.Fatalf("smoke run failed: %v", r.Err())
	}

	lines := r.Transcript()
	questions := 0
	for _, l := range lines {
		if l == "questioning proposal" {
			questions++
		}
		if l == "proposal was rejected" {
			t.Error("accepted story should not say it was rejected")
		}
	}
	if questions != 2 {
		t.Errorf("questioning proposal said %d times, want 2", questions)
	}
	if diff := cmp.Diff([]string{"proposal was accepted", "conclusion", "asserting story concluded"}, lines[len(lines)-3:]); diff != "" {
		t.Errorf("transcript tail mismatch (-want +got):\n%s", diff)
	}
}

func TestReport_TranscriptMarksFailures(t *testing.T) {
	t.Parallel()

	r := &Report{}
	r.Assert("holds", true)
	r.Say("note")
	r.Assert("breaks", false)

	want := []string{"asserting holds", "note", "asserting breaks", "ASSERT FAILED: breaks"}
	if diff := cmp.Diff(want, r.Transcript()); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSmoke_Seeds(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		if r, _ := RunSmoke(entropy.Seeded(seed)); !r.OK() {
			t.Errorf("seed %d: %v", seed, r.Err())
		}
	}
}

func TestRunSmoke_NeverDecides(t *testing.T) {
	t.Parallel()

	// 50 -> 25 -> 50 -> 25 ...
	r, _ := RunSmoke(entropy.NewScripted(entropy.Subtract, entropy.Double))

	if r.OK() {
		t.Fatal("alternating questioning should never decide")
	}
	failed := r.Failed()
	if len(failed) != 1 || failed[0].Name != "proposal reached a decision" {
		t.Errorf("failed = %+v", failed)
	}
	if !errors.Is(r.Err(), ErrSmokeFailed) {
		t.Errorf("Err() = %v, want ErrSmokeFailed", r.Err())
	}
}
