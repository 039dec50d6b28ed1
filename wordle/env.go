package wordle

import (
	"fmt"

	"github.com/zeu5/wordle-rl/types"
	"golang.org/x/exp/rand"
)

// ActionSpace selects how guesses are exposed to the policy.
type ActionSpace int

const (
	// ActionSpaceStrategies exposes one abstract action per selection
	// strategy; the strategy resolves the concrete word. Keeps the value
	// table small. The default.
	ActionSpaceStrategies ActionSpace = iota
	// ActionSpaceWords exposes the filtered candidate words directly.
	// Intended for small vocabularies.
	ActionSpaceWords
)

// StrategyAction is the abstract action "let this strategy pick".
type StrategyAction struct {
	S Strategy
}

var _ types.Action = &StrategyAction{}

func (a *StrategyAction) Hash() string {
	return "strategy:" + a.S.Name()
}

// WordAction is a literal guess.
type WordAction string

var _ types.Action = WordAction("")

func (a WordAction) Hash() string {
	return string(a)
}

type EnvironmentConfig struct {
	Corpus *Corpus
	// Secrets is the answer partition to draw from. Defaults to the full
	// answer set.
	Secrets    []string
	MaxGuesses int
	// Strategies form the action table in ActionSpaceStrategies mode.
	// Defaults to DefaultStrategies.
	Strategies      []Strategy
	ActionSpace     ActionSpace
	CheckVocabulary bool
	Seed            uint64
	// Sequential plays the partition in order instead of sampling
	Sequential bool
}

// Environment adapts the game umpire to the RL environment contract. The
// policy observes only the knowledge abstraction, never the secret.
type Environment struct {
	cfg        EnvironmentConfig
	game       *Game
	rand       *rand.Rand
	secrets    []string
	index      int
	know       *Knowledge
	candidates []string
	actions    []types.Action
	state      *GameState
}

var _ types.Environment = &Environment{}

func NewEnvironment(cfg EnvironmentConfig) (*Environment, error) {
	if cfg.Corpus == nil {
		return nil, fmt.Errorf("%w: environment needs a corpus", types.ErrConfiguration)
	}
	secrets := cfg.Secrets
	if len(secrets) == 0 {
		secrets = cfg.Corpus.Answers()
	}
	for _, s := range secrets {
		if len(s) != cfg.Corpus.WordLength() {
			return nil, fmt.Errorf("%w: %q is not %d letters", ErrInvalidSecret, s, cfg.Corpus.WordLength())
		}
	}
	if cfg.ActionSpace == ActionSpaceStrategies && len(cfg.Strategies) == 0 {
		cfg.Strategies = DefaultStrategies(cfg.Corpus)
	}
	game, err := NewGame(GameConfig{
		Corpus:          cfg.Corpus,
		MaxGuesses:      cfg.MaxGuesses,
		CheckVocabulary: cfg.CheckVocabulary,
	})
	if err != nil {
		return nil, err
	}
	actions := make([]types.Action, 0, len(cfg.Strategies))
	for _, s := range cfg.Strategies {
		actions = append(actions, &StrategyAction{S: s})
	}
	return &Environment{
		cfg:     cfg,
		game:    game,
		rand:    rand.New(rand.NewSource(cfg.Seed)),
		secrets: secrets,
		actions: actions,
	}, nil
}

// Reset draws a new secret and clears the accumulated knowledge.
func (e *Environment) Reset(_ *types.EpisodeContext) (types.State, error) {
	var secret string
	if e.cfg.Sequential {
		secret = e.secrets[e.index%len(e.secrets)]
		e.index += 1
	} else {
		secret = e.secrets[e.rand.Intn(len(e.secrets))]
	}
	if err := e.game.Start(secret); err != nil {
		return nil, err
	}
	e.know = NewKnowledge(e.cfg.Corpus.WordLength())
	e.candidates = e.cfg.Corpus.Allowed()
	e.state = e.newState("", nil)
	return e.state, nil
}

// Step resolves the chosen action to a concrete word, scores it and folds
// the feedback into the knowledge state.
func (e *Environment) Step(a types.Action, _ *types.EpisodeContext) (types.State, error) {
	if e.state == nil {
		return nil, ErrEpisodeTerminated
	}
	var word string
	var err error
	switch act := a.(type) {
	case *StrategyAction:
		word, err = act.S.Select(e.candidates, e.know, e.rand)
		if err != nil {
			return nil, err
		}
	case WordAction:
		word = string(act)
	default:
		return nil, fmt.Errorf("%w: unknown action type %T", ErrInvalidGuess, a)
	}

	result, _, _, err := e.game.Guess(word)
	if err != nil {
		return nil, err
	}
	e.know.Observe(word, result)
	e.candidates = e.know.Filter(e.candidates)
	e.state = e.newState(word, result)
	return e.state, nil
}

func (e *Environment) newState(guess string, result Feedback) *GameState {
	candidates := make([]string, len(e.candidates))
	copy(candidates, e.candidates)
	return &GameState{
		Know:        e.know.Clone(),
		PlacedCount: e.know.Placed(),
		Candidates:  candidates,
		GuessesLeft: e.game.Remaining(),
		Done:        e.game.Done(),
		Outcome:     e.game.Outcome(),
		LastGuess:   guess,
		LastResult:  result,
		actions:     e.actions,
		actionSpace: e.cfg.ActionSpace,
	}
}

// GameState is the policy-visible snapshot of one step: the knowledge
// abstraction plus episode bookkeeping. The secret never appears here.
type GameState struct {
	Know        *Knowledge
	PlacedCount int
	Candidates  []string
	GuessesLeft int
	Done        bool
	Outcome     Outcome
	LastGuess   string
	LastResult  Feedback

	actions     []types.Action
	actionSpace ActionSpace
}

var _ types.State = &GameState{}

// Hash keys the state by its constraint set. Terminal states carry the
// outcome so that solved and exhausted endings never alias.
func (s *GameState) Hash() string {
	if s.Done {
		return s.Know.Key() + "#" + s.Outcome.String()
	}
	return s.Know.Key()
}

func (s *GameState) Actions() []types.Action {
	if s.Done {
		return nil
	}
	if s.actionSpace == ActionSpaceWords {
		actions := make([]types.Action, 0, len(s.Candidates))
		for _, w := range s.Candidates {
			actions = append(actions, WordAction(w))
		}
		return actions
	}
	return s.actions
}
