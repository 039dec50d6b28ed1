package types

type AgentConfig struct {
	Episodes    int
	Horizon     int
	Policy      Policy
	Environment Environment
}

// RL Agent configured with the corresponding
// policy and environment
type Agent struct {
	config      *AgentConfig
	policy      Policy
	environment Environment
}

// Instantiates a new Agent
func NewAgent(config *AgentConfig) *Agent {
	return &Agent{
		config:      config,
		policy:      config.Policy,
		environment: config.Environment,
	}
}

// Run the agent for the configured number of episodes.
// Returns the context of every episode, in order.
func (a *Agent) Run() []*EpisodeContext {
	episodes := make([]*EpisodeContext, a.config.Episodes)
	for i := 0; i < a.config.Episodes; i++ {
		eCtx := NewEpisodeContext(i)
		a.RunEpisode(eCtx)
		episodes[i] = eCtx
	}
	return episodes
}

// RunEpisode runs a single episode to termination or the horizon.
// Exactly one policy update happens per environment step.
func (a *Agent) RunEpisode(eCtx *EpisodeContext) {
	state, err := a.environment.Reset(eCtx)
	if err != nil {
		eCtx.SetError(err)
		return
	}

	for i := 0; i < a.config.Horizon; i++ {
		actions := state.Actions()
		if len(actions) == 0 {
			break
		}
		nextAction, ok := a.policy.NextAction(i, state, actions)
		if !ok {
			break
		}
		nextState, err := a.environment.Step(nextAction, eCtx)
		if err != nil {
			eCtx.SetError(err)
			return
		}
		a.policy.Update(i, state, nextAction, nextState)

		eCtx.Trace.Append(i, state, nextAction, nextState)
		eCtx.Timesteps += 1
		state = nextState
	}
	a.policy.UpdateIteration(eCtx.Episode, eCtx.Trace)
}
