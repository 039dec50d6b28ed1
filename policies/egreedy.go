package policies

import (
	"fmt"

	"github.com/zeu5/wordle-rl/types"
	"golang.org/x/exp/rand"
)

// TabularConfig holds the hyperparameters shared by the tabular policies.
type TabularConfig struct {
	Alpha   float64 // step size, in (0,1]
	Gamma   float64 // discount, in [0,1]
	Epsilon float64 // exploration rate, in [0,1]
	Seed    uint64
	// Reward scores each transition. Required.
	Reward types.RewardFunc
	// Table seeds the policy with previously learned values
	Table *QTable
}

func (c *TabularConfig) validate() error {
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("%w: alpha %v outside (0,1]", types.ErrConfiguration, c.Alpha)
	}
	if c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("%w: gamma %v outside [0,1]", types.ErrConfiguration, c.Gamma)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("%w: epsilon %v outside [0,1]", types.ErrConfiguration, c.Epsilon)
	}
	if c.Reward == nil {
		return fmt.Errorf("%w: reward function is required", types.ErrConfiguration)
	}
	return nil
}

// egreedy is the shared epsilon-greedy action-selection and table-lookup
// core of the tabular policies.
type egreedy struct {
	qTable  *QTable
	alpha   float64
	gamma   float64
	epsilon float64
	reward  types.RewardFunc
	rand    *rand.Rand
}

func newEGreedy(cfg TabularConfig) (*egreedy, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	table := cfg.Table
	if table == nil {
		table = NewQTable()
	}
	return &egreedy{
		qTable:  table,
		alpha:   cfg.Alpha,
		gamma:   cfg.Gamma,
		epsilon: cfg.Epsilon,
		reward:  cfg.Reward,
		rand:    rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// NextAction explores with probability epsilon, otherwise exploits the
// table. Exploit ties resolve to the earliest action in the list, which
// is the exploration preference order of the action table.
func (e *egreedy) NextAction(step int, state types.State, actions []types.Action) (types.Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	if e.rand.Float64() < e.epsilon {
		return actions[e.rand.Intn(len(actions))], true
	}
	return e.GreedyAction(state, actions)
}

// GreedyAction picks the highest-valued of the given actions without
// exploring.
func (e *egreedy) GreedyAction(state types.State, actions []types.Action) (types.Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	actionsMap := make(map[string]types.Action, len(actions))
	hashes := make([]string, len(actions))
	for i, a := range actions {
		h := a.Hash()
		actionsMap[h] = a
		hashes[i] = h
	}
	maxAction, _ := e.qTable.MaxAmong(state.Hash(), hashes, 0)
	if maxAction == "" {
		return nil, false
	}
	return actionsMap[maxAction], true
}

func (e *egreedy) Record(savePath string) {
	e.qTable.Record(savePath)
}

func (e *egreedy) Reset() {
	e.qTable = NewQTable()
}

func (e *egreedy) Values() map[string]map[string]float64 {
	return e.qTable.Values()
}

// Table exposes the learned value table, for persistence or evaluation.
func (e *egreedy) Table() *QTable {
	return e.qTable
}
