package wordle

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
)

func TestRandomStrategyNoCandidates(t *testing.T) {
	s := &randomStrategy{}
	rng := rand.New(rand.NewSource(1))
	if _, err := s.Select(nil, nil, rng); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("expected no candidates error, got %v", err)
	}
}

func TestRandomStrategyDraws(t *testing.T) {
	s := &randomStrategy{}
	rng := rand.New(rand.NewSource(1))
	candidates := []string{"crane", "slate"}
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		w, err := s.Select(candidates, nil, rng)
		if err != nil {
			t.Fatalf("selecting: %v", err)
		}
		seen[w] = true
	}
	if len(seen) != 2 {
		t.Errorf("expected both candidates drawn, got %d", len(seen))
	}
}

func TestEducatedStrategyFilters(t *testing.T) {
	corpus := testCorpus(t)
	s := newEducatedStrategy(corpus)

	know := NewKnowledge(5)
	know.Observe("slate", Score("crane", "slate"))
	word, err := s.Select(corpus.Allowed(), know, nil)
	if err != nil {
		t.Fatalf("selecting: %v", err)
	}
	if !know.Consistent(word) {
		t.Errorf("educated pick %s violates the constraints", word)
	}
}

func TestPickBestTieBreak(t *testing.T) {
	word, err := pickBest([]string{"slate", "crane", "brine"}, func(string) float64 { return 1 })
	if err != nil {
		t.Fatalf("picking: %v", err)
	}
	if word != "brine" {
		t.Errorf("expected lexicographic tie-break to brine, got %s", word)
	}
}

func TestHeuristicPrefersUniqueLetters(t *testing.T) {
	corpus, err := NewCorpus([]string{"geese", "crane"}, nil)
	if err != nil {
		t.Fatalf("building corpus: %v", err)
	}
	s := newHeuristicStrategy(corpus)
	word, err := s.Select(corpus.Allowed(), nil, nil)
	if err != nil {
		t.Fatalf("selecting: %v", err)
	}
	if word != "crane" {
		t.Errorf("expected the all-unique word, got %s", word)
	}
}

func TestGreenProbStrategyDeterministic(t *testing.T) {
	s := &greenProbStrategy{}
	candidates := []string{"crane", "trace", "slate"}
	first, err := s.Select(candidates, nil, nil)
	if err != nil {
		t.Fatalf("selecting: %v", err)
	}
	second, err := s.Select(candidates, nil, nil)
	if err != nil {
		t.Fatalf("selecting: %v", err)
	}
	if first != second {
		t.Errorf("green probability pick not deterministic: %s vs %s", first, second)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, kind := range []StrategyKind{StrategyRandom, StrategyEducated, StrategyGreenProb, StrategyHeuristic} {
		parsed, err := ParseStrategy(kind.String())
		if err != nil {
			t.Fatalf("parsing %s: %v", kind, err)
		}
		if parsed != kind {
			t.Errorf("round trip of %s gave %s", kind, parsed)
		}
	}
	if _, err := ParseStrategy("bogus"); err == nil {
		t.Errorf("expected error for unknown strategy")
	}
}

func TestUniqueLetterFraction(t *testing.T) {
	if f := uniqueLetterFraction("crane"); f != 1 {
		t.Errorf("expected 1, got %v", f)
	}
	if f := uniqueLetterFraction("geese"); f != 0.6 {
		t.Errorf("expected 0.6, got %v", f)
	}
}
