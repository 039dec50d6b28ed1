package wordle

import (
	"fmt"
	"strings"

	"github.com/zeu5/wordle-rl/types"
	"golang.org/x/exp/rand"
)

// StrategyKind enumerates the closed set of guess-selection strategies.
type StrategyKind int

const (
	StrategyRandom StrategyKind = iota
	StrategyEducated
	StrategyGreenProb
	StrategyHeuristic
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyRandom:
		return "random"
	case StrategyEducated:
		return "educated"
	case StrategyGreenProb:
		return "greenprob"
	case StrategyHeuristic:
		return "heuristic"
	default:
		return "unknown"
	}
}

func ParseStrategy(name string) (StrategyKind, error) {
	switch strings.ToLower(name) {
	case "random":
		return StrategyRandom, nil
	case "educated":
		return StrategyEducated, nil
	case "greenprob":
		return StrategyGreenProb, nil
	case "heuristic":
		return StrategyHeuristic, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", types.ErrConfiguration, name)
}

// Strategy produces a guess from the current consistent-candidate set.
type Strategy interface {
	Name() string
	Select(candidates []string, know *Knowledge, rng *rand.Rand) (string, error)
}

// NewStrategy constructs a strategy of the given kind. The corpus is used
// by the strategies that precompute positional letter statistics.
func NewStrategy(kind StrategyKind, corpus *Corpus) (Strategy, error) {
	switch kind {
	case StrategyRandom:
		return &randomStrategy{}, nil
	case StrategyEducated:
		return newEducatedStrategy(corpus), nil
	case StrategyGreenProb:
		return &greenProbStrategy{}, nil
	case StrategyHeuristic:
		return newHeuristicStrategy(corpus), nil
	}
	return nil, fmt.Errorf("%w: unknown strategy kind %d", types.ErrConfiguration, kind)
}

// DefaultStrategies mirrors the default action table: an information-
// seeking pick, a green-probability pick and a random pick.
func DefaultStrategies(corpus *Corpus) []Strategy {
	return []Strategy{
		newHeuristicStrategy(corpus),
		&greenProbStrategy{},
		&randomStrategy{},
	}
}

// randomStrategy draws uniformly from the candidate set.
type randomStrategy struct{}

func (s *randomStrategy) Name() string { return StrategyRandom.String() }

func (s *randomStrategy) Select(candidates []string, _ *Knowledge, rng *rand.Rand) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	return candidates[rng.Intn(len(candidates))], nil
}

// educatedStrategy re-filters the candidates against the accumulated
// constraints, then picks the word ranking highest on the positional
// letter frequencies of the full answer corpus. Ties break
// lexicographically, so the pick is reproducible.
type educatedStrategy struct {
	tglp map[string]float64
}

func newEducatedStrategy(corpus *Corpus) *educatedStrategy {
	probs := letterPositionProbs(corpus.Answers(), corpus.WordLength())
	return &educatedStrategy{
		tglp: totalGreenProbs(corpus.Allowed(), probs),
	}
}

func (s *educatedStrategy) Name() string { return StrategyEducated.String() }

func (s *educatedStrategy) Select(candidates []string, know *Knowledge, _ *rand.Rand) (string, error) {
	if know != nil {
		candidates = know.Filter(candidates)
	}
	return pickBest(candidates, func(w string) float64 {
		return s.tglp[w]
	})
}

// greenProbStrategy maximizes the expected number of Correct positions,
// estimated from per-position letter frequencies over the current
// candidate set.
type greenProbStrategy struct{}

func (s *greenProbStrategy) Name() string { return StrategyGreenProb.String() }

func (s *greenProbStrategy) Select(candidates []string, _ *Knowledge, _ *rand.Rand) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	probs := letterPositionProbs(candidates, len(candidates[0]))
	return pickBest(candidates, func(w string) float64 {
		return greenScore(w, probs)
	})
}

// heuristicStrategy blends exactly two scores with fixed weights: the
// unique-letter fraction (an information proxy) and the static green
// probability of the word. Adding a third heuristic means adding a new
// strategy, not extending this one.
type heuristicStrategy struct {
	tglp map[string]float64
}

const (
	heuristicInfoWeight  = 0.5
	heuristicGreenWeight = 0.5
)

func newHeuristicStrategy(corpus *Corpus) *heuristicStrategy {
	probs := letterPositionProbs(corpus.Answers(), corpus.WordLength())
	return &heuristicStrategy{
		tglp: totalGreenProbs(corpus.Allowed(), probs),
	}
}

func (s *heuristicStrategy) Name() string { return StrategyHeuristic.String() }

func (s *heuristicStrategy) Select(candidates []string, _ *Knowledge, _ *rand.Rand) (string, error) {
	return pickBest(candidates, func(w string) float64 {
		return heuristicInfoWeight*uniqueLetterFraction(w) + heuristicGreenWeight*s.tglp[w]
	})
}

// pickBest returns the highest-scoring word, ties broken by lexicographic
// order.
func pickBest(candidates []string, score func(string) float64) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	best := candidates[0]
	bestScore := score(best)
	for _, w := range candidates[1:] {
		s := score(w)
		if s > bestScore || (s == bestScore && w < best) {
			best = w
			bestScore = s
		}
	}
	return best, nil
}

// letterPositionProbs computes, for every letter and position, the
// fraction of words carrying that letter at that position.
func letterPositionProbs(words []string, length int) [][]float64 {
	probs := make([][]float64, 26)
	for i := range probs {
		probs[i] = make([]float64, length)
	}
	if len(words) == 0 {
		return probs
	}
	for _, w := range words {
		for i := 0; i < length && i < len(w); i++ {
			c := w[i]
			if c >= 'a' && c <= 'z' {
				probs[c-'a'][i] += 1
			}
		}
	}
	total := float64(len(words))
	for i := range probs {
		for j := range probs[i] {
			probs[i][j] /= total
		}
	}
	return probs
}

// totalGreenProbs sums the positional probabilities of each word's
// letters, the total green-letter probability table.
func totalGreenProbs(words []string, probs [][]float64) map[string]float64 {
	tglp := make(map[string]float64, len(words))
	for _, w := range words {
		tglp[w] = greenScore(w, probs)
	}
	return tglp
}

func greenScore(word string, probs [][]float64) float64 {
	total := 0.0
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c >= 'a' && c <= 'z' && i < len(probs[c-'a']) {
			total += probs[c-'a'][i]
		}
	}
	return total
}

func uniqueLetterFraction(word string) float64 {
	if len(word) == 0 {
		return 0
	}
	seen := make(map[byte]bool, len(word))
	for i := 0; i < len(word); i++ {
		seen[word[i]] = true
	}
	return float64(len(seen)) / float64(len(word))
}
