package wordle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zeu5/wordle-rl/types"
	"github.com/zeu5/wordle-rl/util"
	"golang.org/x/exp/rand"
)

// Corpus is the immutable vocabulary of a run: the answer set of candidate
// secrets and the larger allowed-guess set. Loaded once, read everywhere.
type Corpus struct {
	answers    []string
	allowed    map[string]bool
	allowedLst []string
	wordLength int
}

// NewCorpus builds a corpus from an answer list and additional allowed
// guesses. Every answer is allowed. All words must share one length.
func NewCorpus(answers, extraGuesses []string) (*Corpus, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: empty answer list", types.ErrConfiguration)
	}
	length := len(answers[0])
	allowed := make(map[string]bool, len(answers)+len(extraGuesses))
	cleanAnswers := make([]string, 0, len(answers))
	for _, w := range answers {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) != length {
			return nil, fmt.Errorf("%w: answer %q is not %d letters", types.ErrConfiguration, w, length)
		}
		if !allowed[w] {
			cleanAnswers = append(cleanAnswers, w)
		}
		allowed[w] = true
	}
	for _, w := range extraGuesses {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) != length {
			return nil, fmt.Errorf("%w: guess word %q is not %d letters", types.ErrConfiguration, w, length)
		}
		allowed[w] = true
	}
	allowedLst := make([]string, 0, len(allowed))
	for w := range allowed {
		allowedLst = append(allowedLst, w)
	}
	sort.Strings(allowedLst)
	return &Corpus{
		answers:    cleanAnswers,
		allowed:    allowed,
		allowedLst: allowedLst,
		wordLength: length,
	}, nil
}

// LoadCorpus reads newline-separated answer and allowed-guess files.
// The words file may be empty to allow only the answers.
func LoadCorpus(answersPath, wordsPath string) (*Corpus, error) {
	answers, err := util.ReadLines(answersPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading answers: %v", types.ErrConfiguration, err)
	}
	extra := []string{}
	if wordsPath != "" {
		extra, err = util.ReadLines(wordsPath)
		if err != nil {
			return nil, fmt.Errorf("%w: reading words: %v", types.ErrConfiguration, err)
		}
	}
	return NewCorpus(answers, extra)
}

// DefaultCorpus returns the built-in five-letter corpus.
func DefaultCorpus() *Corpus {
	c, err := NewCorpus(defaultAnswers, defaultExtraGuesses)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Corpus) WordLength() int {
	return c.wordLength
}

// Answers returns a copy of the answer set.
func (c *Corpus) Answers() []string {
	out := make([]string, len(c.answers))
	copy(out, c.answers)
	return out
}

// Allowed returns the allowed-guess vocabulary in sorted order.
func (c *Corpus) Allowed() []string {
	out := make([]string, len(c.allowedLst))
	copy(out, c.allowedLst)
	return out
}

func (c *Corpus) IsAllowed(word string) bool {
	return c.allowed[word]
}

// Split partitions the answers into a training and a testing set after
// shuffling with the run's randomness source.
func (c *Corpus) Split(trainFrac float64, rng *rand.Rand) ([]string, []string, error) {
	if trainFrac <= 0 || trainFrac >= 1 {
		return nil, nil, fmt.Errorf("%w: train fraction %v outside (0,1)", types.ErrConfiguration, trainFrac)
	}
	shuffled := c.Answers()
	if rng != nil {
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
	}
	cut := int(float64(len(shuffled)) * trainFrac)
	if cut == 0 {
		cut = 1
	}
	if cut == len(shuffled) {
		cut = len(shuffled) - 1
	}
	if cut <= 0 {
		return nil, nil, fmt.Errorf("%w: answer set too small to split", types.ErrConfiguration)
	}
	return shuffled[:cut], shuffled[cut:], nil
}
