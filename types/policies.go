package types

import (
	"golang.org/x/exp/rand"
)

type Policy interface {
	// NextAction picks the action to take at the given step, false when
	// the policy cannot choose
	NextAction(int, State, []Action) (Action, bool)
	// Update is invoked once per environment transition
	Update(int, State, Action, State)
	// UpdateIteration is invoked at the end of each episode with its trace
	UpdateIteration(int, *Trace)
	// Record writes the learned values to the given path
	Record(string)
	Reset()
}

// TabularPolicy is implemented by policies backed by an explicit
// (state, action) value table.
type TabularPolicy interface {
	Policy
	// Values exposes the current table, keyed by state then action hash
	Values() map[string]map[string]float64
}

// RandomPolicy picks uniformly among the available actions. Used as a
// learning-free baseline.
type RandomPolicy struct {
	rand *rand.Rand
}

var _ Policy = &RandomPolicy{}

func NewRandomPolicy(seed uint64) *RandomPolicy {
	return &RandomPolicy{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomPolicy) Reset() {
}

func (r *RandomPolicy) UpdateIteration(_ int, _ *Trace) {
}

func (r *RandomPolicy) Record(_ string) {
}

func (r *RandomPolicy) NextAction(step int, state State, actions []Action) (Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	i := r.rand.Intn(len(actions))
	return actions[i], true
}

func (r *RandomPolicy) Update(_ int, _ State, _ Action, _ State) {}
