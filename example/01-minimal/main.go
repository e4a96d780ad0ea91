// Package main demonstrates the smallest possible narration.
// It drives a story with the domain dispatcher alone, no statechart.
package main

import (
	"fmt"

	"github.com/felixgeelhaar/story-go/domain/story"
	"github.com/felixgeelhaar/story-go/infrastructure/entropy"
)

func main() {
	src := entropy.Seeded(42)
	s := story.New()

	// 1. Plan, introduce and propose
	s.Fire(story.EventFinishPlanning, src)
	s.Fire(story.EventWriteIntroduction, src)
	s.Fire(story.EventProposeExperiment, src)

	// 2. Question until the experiment is certain either way
	for !s.IsCertain() {
		s.Fire(story.EventQuestionProposal, src)
		fmt.Printf("certainty is now %d\n", s.Experiment.Certainty)
	}

	// 3. Accept and conclude
	s.Fire(story.EventAcceptProposal, src)
	s.Fire(story.EventWriteConclusion, src)

	fmt.Println()
	fmt.Println(story.Title(src))
	fmt.Println(s.FormattedProse())
}
