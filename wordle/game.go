package wordle

import (
	"fmt"

	"github.com/zeu5/wordle-rl/types"
)

const DefaultMaxGuesses = 6

// Outcome of a finished episode.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSolved
	OutcomeExhausted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeExhausted:
		return "exhausted"
	default:
		return "none"
	}
}

// GuessRecord is one scored guess in the episode history.
type GuessRecord struct {
	Word   string
	Result Feedback
}

type GameConfig struct {
	Corpus     *Corpus
	MaxGuesses int // defaults to DefaultMaxGuesses when zero
	// CheckVocabulary rejects guesses outside the allowed-guess set
	CheckVocabulary bool
}

// Game is the umpire of a single episode: it holds the hidden secret,
// scores guesses and tracks the guess budget. Deterministic given the
// secret and the guess sequence.
type Game struct {
	cfg       GameConfig
	secret    string
	remaining int
	history   []GuessRecord
	done      bool
	outcome   Outcome
}

func NewGame(cfg GameConfig) (*Game, error) {
	if cfg.Corpus == nil {
		return nil, fmt.Errorf("%w: game needs a corpus", types.ErrConfiguration)
	}
	if cfg.MaxGuesses < 0 {
		return nil, fmt.Errorf("%w: max guesses must be positive, got %d", types.ErrConfiguration, cfg.MaxGuesses)
	}
	if cfg.MaxGuesses == 0 {
		cfg.MaxGuesses = DefaultMaxGuesses
	}
	return &Game{cfg: cfg}, nil
}

// Start begins a new episode with the given secret.
func (g *Game) Start(secret string) error {
	if len(secret) != g.cfg.Corpus.WordLength() {
		return fmt.Errorf("%w: %q is not %d letters", ErrInvalidSecret, secret, g.cfg.Corpus.WordLength())
	}
	g.secret = secret
	g.remaining = g.cfg.MaxGuesses
	g.history = g.history[:0]
	g.done = false
	g.outcome = OutcomeNone
	return nil
}

// Guess scores a word against the secret. A failed validation leaves the
// game untouched and does not consume the guess budget.
func (g *Game) Guess(word string) (Feedback, bool, Outcome, error) {
	if g.done || g.secret == "" {
		return nil, g.done, g.outcome, ErrEpisodeTerminated
	}
	if len(word) != g.cfg.Corpus.WordLength() {
		return nil, false, g.outcome, fmt.Errorf("%w: %q is not %d letters", ErrInvalidGuess, word, g.cfg.Corpus.WordLength())
	}
	if g.cfg.CheckVocabulary && !g.cfg.Corpus.IsAllowed(word) {
		return nil, false, g.outcome, fmt.Errorf("%w: %q is not an allowed guess", ErrInvalidGuess, word)
	}

	result := Score(g.secret, word)
	g.remaining -= 1
	g.history = append(g.history, GuessRecord{Word: word, Result: result})

	if result.AllCorrect() {
		g.done = true
		g.outcome = OutcomeSolved
	} else if g.remaining == 0 {
		g.done = true
		g.outcome = OutcomeExhausted
	}
	return result, g.done, g.outcome, nil
}

func (g *Game) Remaining() int {
	return g.remaining
}

func (g *Game) Done() bool {
	return g.done
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

// History returns the scored guesses of the current episode in order.
func (g *Game) History() []GuessRecord {
	out := make([]GuessRecord, len(g.history))
	copy(out, g.history)
	return out
}

// Secret exposes the hidden word, for reporting after the episode ended.
func (g *Game) Secret() string {
	return g.secret
}
