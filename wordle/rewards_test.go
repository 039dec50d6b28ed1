package wordle

import (
	"testing"
)

func gameState(placed int, done bool, outcome Outcome) *GameState {
	return &GameState{
		PlacedCount: placed,
		Done:        done,
		Outcome:     outcome,
	}
}

func TestShapedReward(t *testing.T) {
	reward := ShapedReward(DefaultRewardConfig())

	if r := reward(gameState(1, false, OutcomeNone), nil, gameState(3, false, OutcomeNone)); r != 2 {
		t.Errorf("expected 2 for two new greens, got %v", r)
	}
	if r := reward(gameState(3, false, OutcomeNone), nil, gameState(5, true, OutcomeSolved)); r != 7 {
		t.Errorf("expected 2 greens + solve bonus = 7, got %v", r)
	}
	if r := reward(gameState(2, false, OutcomeNone), nil, gameState(2, true, OutcomeExhausted)); r != -5 {
		t.Errorf("expected exhaust penalty -5, got %v", r)
	}
}

func TestTerminalOnlyReward(t *testing.T) {
	reward := TerminalOnlyReward(DefaultRewardConfig())

	if r := reward(gameState(1, false, OutcomeNone), nil, gameState(3, false, OutcomeNone)); r != 0 {
		t.Errorf("expected no shaping mid-episode, got %v", r)
	}
	if r := reward(gameState(3, false, OutcomeNone), nil, gameState(5, true, OutcomeSolved)); r != 5 {
		t.Errorf("expected solve bonus 5, got %v", r)
	}
	if r := reward(gameState(2, false, OutcomeNone), nil, gameState(2, true, OutcomeExhausted)); r != -5 {
		t.Errorf("expected exhaust penalty -5, got %v", r)
	}
}
