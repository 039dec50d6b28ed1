package types

// Environment is a single-episode simulator driven by the agent loop.
type Environment interface {
	// Reset starts a new episode and returns its initial state
	Reset(*EpisodeContext) (State, error)
	// Step applies an action and returns the resulting state
	Step(Action, *EpisodeContext) (State, error)
}

// State of the system that RL policies observe
type State interface {
	// Indexed by the Hash
	// Should be deterministic
	Hash() string
	// Actions possible from the state
	// Empty for terminal states
	Actions() []Action
}

// An Action that a RL policy can take
type Action interface {
	// Index of the action
	// Should be deterministic
	Hash() string
}
