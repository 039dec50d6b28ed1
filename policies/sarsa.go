package policies

import (
	"github.com/zeu5/wordle-rl/types"
)

// SarsaPolicy learns on-policy: during the update it commits to the next
// action with the same epsilon-greedy draw and bootstraps on that
// action's value. The committed action is the one returned by the next
// NextAction call, so the bootstrap term and the executed action always
// agree.
type SarsaPolicy struct {
	*egreedy

	committed     types.Action
	committedFrom string
}

var _ types.TabularPolicy = &SarsaPolicy{}

func NewSarsaPolicy(cfg TabularConfig) (*SarsaPolicy, error) {
	core, err := newEGreedy(cfg)
	if err != nil {
		return nil, err
	}
	return &SarsaPolicy{egreedy: core}, nil
}

func (p *SarsaPolicy) NextAction(step int, state types.State, actions []types.Action) (types.Action, bool) {
	if p.committed != nil && p.committedFrom == state.Hash() {
		a := p.committed
		p.committed = nil
		p.committedFrom = ""
		return a, true
	}
	p.committed = nil
	p.committedFrom = ""
	return p.egreedy.NextAction(step, state, actions)
}

func (p *SarsaPolicy) Update(step int, state types.State, action types.Action, nextState types.State) {
	stateHash := state.Hash()
	actionHash := action.Hash()

	r := p.reward(state, action, nextState)
	bootstrap := 0.0
	nextActions := nextState.Actions()
	if len(nextActions) > 0 {
		if next, ok := p.egreedy.NextAction(step+1, nextState, nextActions); ok {
			p.committed = next
			p.committedFrom = nextState.Hash()
			bootstrap = p.qTable.Get(nextState.Hash(), next.Hash(), 0)
		}
	}
	curVal := p.qTable.Get(stateHash, actionHash, 0)
	p.qTable.Set(stateHash, actionHash, curVal+p.alpha*(r+p.gamma*bootstrap-curVal))
}

func (p *SarsaPolicy) UpdateIteration(_ int, _ *types.Trace) {
	p.committed = nil
	p.committedFrom = ""
}

func (p *SarsaPolicy) Reset() {
	p.egreedy.Reset()
	p.committed = nil
	p.committedFrom = ""
}
