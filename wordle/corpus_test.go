package wordle

import (
	"errors"
	"testing"

	"github.com/zeu5/wordle-rl/types"
	"golang.org/x/exp/rand"
)

func TestNewCorpusDeduplicates(t *testing.T) {
	corpus, err := NewCorpus([]string{"crane", "CRANE", "slate"}, nil)
	if err != nil {
		t.Fatalf("building corpus: %v", err)
	}
	if len(corpus.Answers()) != 2 {
		t.Errorf("expected 2 answers, got %d", len(corpus.Answers()))
	}
	if !corpus.IsAllowed("crane") {
		t.Errorf("answer not allowed as guess")
	}
}

func TestNewCorpusLengthMismatch(t *testing.T) {
	if _, err := NewCorpus([]string{"crane", "cat"}, nil); !errors.Is(err, types.ErrConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
	if _, err := NewCorpus([]string{"crane"}, []string{"toolong"}); !errors.Is(err, types.ErrConfiguration) {
		t.Errorf("expected configuration error for guess word, got %v", err)
	}
}

func TestCorpusSplit(t *testing.T) {
	corpus := testCorpus(t)
	rng := rand.New(rand.NewSource(1))
	train, test, err := corpus.Split(0.75, rng)
	if err != nil {
		t.Fatalf("splitting: %v", err)
	}
	if len(train)+len(test) != len(corpus.Answers()) {
		t.Errorf("split lost words: %d + %d != %d", len(train), len(test), len(corpus.Answers()))
	}
	if len(train) == 0 || len(test) == 0 {
		t.Errorf("empty partition: train=%d test=%d", len(train), len(test))
	}
	seen := make(map[string]bool)
	for _, w := range train {
		seen[w] = true
	}
	for _, w := range test {
		if seen[w] {
			t.Errorf("word %s in both partitions", w)
		}
	}
}

func TestCorpusSplitValidation(t *testing.T) {
	corpus := testCorpus(t)
	for _, frac := range []float64{0, 1, -0.5, 1.5} {
		if _, _, err := corpus.Split(frac, nil); !errors.Is(err, types.ErrConfiguration) {
			t.Errorf("fraction %v: expected configuration error, got %v", frac, err)
		}
	}
}

func TestDefaultCorpus(t *testing.T) {
	corpus := DefaultCorpus()
	if corpus.WordLength() != 5 {
		t.Errorf("expected word length 5, got %d", corpus.WordLength())
	}
	if len(corpus.Answers()) == 0 {
		t.Errorf("empty default answer set")
	}
	if len(corpus.Allowed()) < len(corpus.Answers()) {
		t.Errorf("allowed set smaller than answer set")
	}
}
