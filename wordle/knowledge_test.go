package wordle

import (
	"testing"
)

func TestKnowledgeOrderIndependence(t *testing.T) {
	secret := "crane"
	guesses := []string{"trace", "slate", "brine"}

	forward := NewKnowledge(5)
	for _, g := range guesses {
		forward.Observe(g, Score(secret, g))
	}
	backward := NewKnowledge(5)
	for i := len(guesses) - 1; i >= 0; i-- {
		backward.Observe(guesses[i], Score(secret, guesses[i]))
	}
	if forward.Key() != backward.Key() {
		t.Errorf("keys differ: %s vs %s", forward.Key(), backward.Key())
	}
}

func TestKnowledgeConstraintsOnlyTighten(t *testing.T) {
	secret := "crane"
	words := []string{"crane", "trace", "slate", "brine", "crate", "stone"}
	know := NewKnowledge(5)

	prev := len(know.Filter(words))
	for _, g := range []string{"stone", "trace"} {
		know.Observe(g, Score(secret, g))
		cur := len(know.Filter(words))
		if cur > prev {
			t.Errorf("candidate set grew from %d to %d after %s", prev, cur, g)
		}
		prev = cur
	}
	if !know.Consistent(secret) {
		t.Errorf("secret filtered out by its own feedback")
	}
}

func TestKnowledgeConsistent(t *testing.T) {
	know := NewKnowledge(5)
	know.Observe("trace", Score("crane", "trace"))

	// r, a, e placed, c present elsewhere, t absent
	if know.Consistent("trace") {
		t.Errorf("guessed word still consistent")
	}
	if !know.Consistent("crane") {
		t.Errorf("secret not consistent")
	}
	if know.Consistent("tramp") {
		t.Errorf("word with absent letter consistent")
	}
}

func TestKnowledgeDuplicateCounts(t *testing.T) {
	// three e's confirmed present means words with fewer are out
	know := NewKnowledge(5)
	know.Observe("eerie", Score("geese", "eerie"))
	if know.Consistent("ledge") {
		t.Errorf("two-e word should violate the count constraint")
	}
	if !know.Consistent("geese") {
		t.Errorf("secret not consistent")
	}
}

func TestKnowledgeCloneIsolated(t *testing.T) {
	know := NewKnowledge(5)
	know.Observe("trace", Score("crane", "trace"))
	clone := know.Clone()
	if clone.Key() != know.Key() {
		t.Errorf("clone key differs")
	}
	clone.Observe("brine", Score("crane", "brine"))
	if clone.Key() == know.Key() {
		t.Errorf("observing on the clone mutated the original")
	}
}

func TestKnowledgePlaced(t *testing.T) {
	know := NewKnowledge(5)
	if know.Placed() != 0 {
		t.Errorf("fresh knowledge has placed letters")
	}
	know.Observe("trace", Score("crane", "trace"))
	if know.Placed() != 3 {
		t.Errorf("expected 3 placed, got %d", know.Placed())
	}
}
