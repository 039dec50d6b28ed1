package types

// RewardFunc scores a transition (state, action, nextState).
// Policies call it exactly once per environment step.
type RewardFunc func(State, Action, State) float64
