package wordle

import (
	"github.com/zeu5/wordle-rl/types"
)

// RewardConfig weights the reward signal of a transition.
type RewardConfig struct {
	// GreenDelta is the reward per position newly confirmed Correct
	GreenDelta float64
	// SolveBonus is added when the episode ends Solved
	SolveBonus float64
	// ExhaustPenalty is added when the guess budget runs out
	ExhaustPenalty float64
}

func DefaultRewardConfig() RewardConfig {
	return RewardConfig{
		GreenDelta:     1,
		SolveBonus:     5,
		ExhaustPenalty: -5,
	}
}

// ShapedReward rewards every newly placed letter plus the terminal signal.
func ShapedReward(cfg RewardConfig) types.RewardFunc {
	return func(state types.State, _ types.Action, nextState types.State) float64 {
		next, ok := nextState.(*GameState)
		if !ok {
			return 0
		}
		prevPlaced := 0
		if prev, ok := state.(*GameState); ok {
			prevPlaced = prev.PlacedCount
		}
		r := cfg.GreenDelta * float64(next.PlacedCount-prevPlaced)
		return r + terminalReward(next, cfg)
	}
}

// TerminalOnlyReward drops the per-step shaping and keeps only the
// terminal signal. Used to isolate the effect of shaping on convergence.
func TerminalOnlyReward(cfg RewardConfig) types.RewardFunc {
	return func(_ types.State, _ types.Action, nextState types.State) float64 {
		next, ok := nextState.(*GameState)
		if !ok {
			return 0
		}
		return terminalReward(next, cfg)
	}
}

func terminalReward(s *GameState, cfg RewardConfig) float64 {
	if !s.Done {
		return 0
	}
	if s.Outcome == OutcomeSolved {
		return cfg.SolveBonus
	}
	return cfg.ExhaustPenalty
}
