package policies

import (
	"github.com/zeu5/wordle-rl/types"
)

// QLearningPolicy learns off-policy: the bootstrap term is the maximum
// stored value of the next state, regardless of the action the policy
// goes on to take.
type QLearningPolicy struct {
	*egreedy
}

var _ types.TabularPolicy = &QLearningPolicy{}

func NewQLearningPolicy(cfg TabularConfig) (*QLearningPolicy, error) {
	core, err := newEGreedy(cfg)
	if err != nil {
		return nil, err
	}
	return &QLearningPolicy{egreedy: core}, nil
}

func (p *QLearningPolicy) Update(step int, state types.State, action types.Action, nextState types.State) {
	stateHash := state.Hash()
	actionHash := action.Hash()

	r := p.reward(state, action, nextState)
	bootstrap := 0.0
	if len(nextState.Actions()) > 0 {
		_, bootstrap = p.qTable.Max(nextState.Hash(), 0)
	}
	curVal := p.qTable.Get(stateHash, actionHash, 0)
	p.qTable.Set(stateHash, actionHash, curVal+p.alpha*(r+p.gamma*bootstrap-curVal))
}

func (p *QLearningPolicy) UpdateIteration(_ int, _ *types.Trace) {
}
