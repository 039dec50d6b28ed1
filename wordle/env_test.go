package wordle

import (
	"strings"
	"testing"

	"github.com/zeu5/wordle-rl/types"
)

func testEnv(t *testing.T, cfg EnvironmentConfig) *Environment {
	t.Helper()
	if cfg.Corpus == nil {
		cfg.Corpus = testCorpus(t)
	}
	env, err := NewEnvironment(cfg)
	if err != nil {
		t.Fatalf("creating environment: %v", err)
	}
	return env
}

func TestEnvironmentStrategyActions(t *testing.T) {
	env := testEnv(t, EnvironmentConfig{Seed: 1})
	eCtx := types.NewEpisodeContext(0)
	state, err := env.Reset(eCtx)
	if err != nil {
		t.Fatalf("resetting: %v", err)
	}
	actions := state.Actions()
	if len(actions) != 3 {
		t.Fatalf("expected 3 strategy actions, got %d", len(actions))
	}
	for _, a := range actions {
		if !strings.HasPrefix(a.Hash(), "strategy:") {
			t.Errorf("unexpected action hash %s", a.Hash())
		}
	}
}

func TestEnvironmentStepShrinksCandidates(t *testing.T) {
	env := testEnv(t, EnvironmentConfig{Seed: 1})
	eCtx := types.NewEpisodeContext(0)
	state, err := env.Reset(eCtx)
	if err != nil {
		t.Fatalf("resetting: %v", err)
	}
	before := len(state.(*GameState).Candidates)
	next, err := env.Step(state.Actions()[0], eCtx)
	if err != nil {
		t.Fatalf("stepping: %v", err)
	}
	after := len(next.(*GameState).Candidates)
	if after > before {
		t.Errorf("candidates grew from %d to %d", before, after)
	}
	if next.(*GameState).LastGuess == "" {
		t.Errorf("step recorded no guess")
	}
}

func TestEnvironmentEpisodeToTermination(t *testing.T) {
	env := testEnv(t, EnvironmentConfig{
		Secrets:    []string{"crane"},
		MaxGuesses: 6,
		Seed:       1,
	})
	eCtx := types.NewEpisodeContext(0)
	state, err := env.Reset(eCtx)
	if err != nil {
		t.Fatalf("resetting: %v", err)
	}
	for i := 0; i < 6; i++ {
		gs := state.(*GameState)
		if gs.Done {
			break
		}
		state, err = env.Step(state.Actions()[0], eCtx)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	final := state.(*GameState)
	if !final.Done {
		t.Fatalf("episode not terminated after the guess budget")
	}
	if final.Actions() != nil {
		t.Errorf("terminal state still offers actions")
	}
	if !strings.Contains(final.Hash(), "#") {
		t.Errorf("terminal hash %s carries no outcome", final.Hash())
	}
}

func TestEnvironmentSequentialSecrets(t *testing.T) {
	secrets := []string{"crane", "slate"}
	env := testEnv(t, EnvironmentConfig{
		Secrets:    secrets,
		Sequential: true,
		Seed:       1,
	})
	for i := 0; i < 4; i++ {
		eCtx := types.NewEpisodeContext(i)
		if _, err := env.Reset(eCtx); err != nil {
			t.Fatalf("reset %d: %v", i, err)
		}
		if got := env.game.Secret(); got != secrets[i%2] {
			t.Errorf("episode %d: expected secret %s, got %s", i, secrets[i%2], got)
		}
	}
}

func TestEnvironmentWordActions(t *testing.T) {
	env := testEnv(t, EnvironmentConfig{
		ActionSpace: ActionSpaceWords,
		Seed:        1,
	})
	eCtx := types.NewEpisodeContext(0)
	state, err := env.Reset(eCtx)
	if err != nil {
		t.Fatalf("resetting: %v", err)
	}
	gs := state.(*GameState)
	actions := gs.Actions()
	if len(actions) != len(gs.Candidates) {
		t.Fatalf("expected %d word actions, got %d", len(gs.Candidates), len(actions))
	}
	next, err := env.Step(actions[0], eCtx)
	if err != nil {
		t.Fatalf("stepping: %v", err)
	}
	if next.(*GameState).LastGuess != actions[0].Hash() {
		t.Errorf("word action %s played %s", actions[0].Hash(), next.(*GameState).LastGuess)
	}
}

func TestEnvironmentSecretNotInState(t *testing.T) {
	env := testEnv(t, EnvironmentConfig{
		Secrets: []string{"crane"},
		Seed:    1,
	})
	eCtx := types.NewEpisodeContext(0)
	state, err := env.Reset(eCtx)
	if err != nil {
		t.Fatalf("resetting: %v", err)
	}
	if strings.Contains(state.Hash(), "crane") {
		t.Errorf("state hash leaks the secret: %s", state.Hash())
	}
}
