package policies

import (
	"fmt"
	"math"

	"github.com/zeu5/wordle-rl/types"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// SoftMaxPolicy samples actions with Boltzmann weights over the stored
// values instead of epsilon-greedy selection. Updates are off-policy,
// the same rule as QLearningPolicy. Kept as an extra comparison arm.
type SoftMaxPolicy struct {
	qTable *QTable
	alpha  float64
	gamma  float64
	temp   float64
	reward types.RewardFunc
	src    rand.Source
}

var _ types.TabularPolicy = &SoftMaxPolicy{}

func NewSoftMaxPolicy(alpha, gamma, temp float64, seed uint64, reward types.RewardFunc) (*SoftMaxPolicy, error) {
	if alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: alpha %v outside (0,1]", types.ErrConfiguration, alpha)
	}
	if gamma < 0 || gamma > 1 {
		return nil, fmt.Errorf("%w: gamma %v outside [0,1]", types.ErrConfiguration, gamma)
	}
	if temp <= 0 {
		return nil, fmt.Errorf("%w: temperature must be positive, got %v", types.ErrConfiguration, temp)
	}
	if reward == nil {
		return nil, fmt.Errorf("%w: reward function is required", types.ErrConfiguration)
	}
	return &SoftMaxPolicy{
		qTable: NewQTable(),
		alpha:  alpha,
		gamma:  gamma,
		temp:   temp,
		reward: reward,
		src:    rand.NewSource(seed),
	}, nil
}

func (s *SoftMaxPolicy) NextAction(step int, state types.State, actions []types.Action) (types.Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	stateHash := state.Hash()

	sum := float64(0)
	vals := make([]float64, len(actions))
	for i, action := range actions {
		val := s.qTable.Get(stateHash, action.Hash(), 0)
		exp := math.Exp(val / s.temp)
		vals[i] = exp
		sum += exp
	}
	weights := make([]float64, len(actions))
	for i, v := range vals {
		weights[i] = v / sum
	}
	i, ok := sampleuv.NewWeighted(weights, s.src).Take()
	if !ok {
		return nil, false
	}
	return actions[i], true
}

func (s *SoftMaxPolicy) Update(step int, state types.State, action types.Action, nextState types.State) {
	stateHash := state.Hash()
	actionHash := action.Hash()

	r := s.reward(state, action, nextState)
	bootstrap := 0.0
	if len(nextState.Actions()) > 0 {
		_, bootstrap = s.qTable.Max(nextState.Hash(), 0)
	}
	curVal := s.qTable.Get(stateHash, actionHash, 0)
	s.qTable.Set(stateHash, actionHash, curVal+s.alpha*(r+s.gamma*bootstrap-curVal))
}

func (s *SoftMaxPolicy) UpdateIteration(_ int, _ *types.Trace) {
}

func (s *SoftMaxPolicy) Record(savePath string) {
	s.qTable.Record(savePath)
}

func (s *SoftMaxPolicy) Reset() {
	s.qTable = NewQTable()
}

func (s *SoftMaxPolicy) Values() map[string]map[string]float64 {
	return s.qTable.Values()
}
