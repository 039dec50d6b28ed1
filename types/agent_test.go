package types

import (
	"errors"
	"fmt"
	"testing"
)

type chainAction string

func (a chainAction) Hash() string { return string(a) }

type chainState struct {
	position int
	terminal bool
}

func (s *chainState) Hash() string { return fmt.Sprintf("pos-%d", s.position) }

func (s *chainState) Actions() []Action {
	if s.terminal {
		return nil
	}
	return []Action{chainAction("advance")}
}

// chainEnvironment terminates after a fixed number of steps.
type chainEnvironment struct {
	length  int
	current *chainState
	failAt  int
}

func (e *chainEnvironment) Reset(_ *EpisodeContext) (State, error) {
	e.current = &chainState{}
	return e.current, nil
}

func (e *chainEnvironment) Step(_ Action, _ *EpisodeContext) (State, error) {
	if e.failAt > 0 && e.current.position+1 >= e.failAt {
		return nil, errors.New("injected failure")
	}
	e.current = &chainState{
		position: e.current.position + 1,
		terminal: e.current.position+1 >= e.length,
	}
	return e.current, nil
}

// countingPolicy records how often each hook fires.
type countingPolicy struct {
	nextActions int
	updates     int
	iterations  int
}

func (p *countingPolicy) NextAction(_ int, _ State, actions []Action) (Action, bool) {
	p.nextActions += 1
	if len(actions) == 0 {
		return nil, false
	}
	return actions[0], true
}

func (p *countingPolicy) Update(_ int, _ State, _ Action, _ State) { p.updates += 1 }

func (p *countingPolicy) UpdateIteration(_ int, _ *Trace) { p.iterations += 1 }

func (p *countingPolicy) Record(_ string) {}

func (p *countingPolicy) Reset() {}

func TestAgentOneUpdatePerStep(t *testing.T) {
	policy := &countingPolicy{}
	agent := NewAgent(&AgentConfig{
		Episodes:    1,
		Horizon:     10,
		Policy:      policy,
		Environment: &chainEnvironment{length: 4},
	})
	eCtx := NewEpisodeContext(0)
	agent.RunEpisode(eCtx)

	if eCtx.Err != nil {
		t.Fatalf("unexpected error: %v", eCtx.Err)
	}
	if eCtx.Timesteps != 4 {
		t.Errorf("expected 4 timesteps, got %d", eCtx.Timesteps)
	}
	if policy.updates != 4 {
		t.Errorf("expected 4 updates, got %d", policy.updates)
	}
	if policy.iterations != 1 {
		t.Errorf("expected 1 end-of-episode update, got %d", policy.iterations)
	}
	if eCtx.Trace.Len() != 4 {
		t.Errorf("expected trace of length 4, got %d", eCtx.Trace.Len())
	}
}

func TestAgentRespectsHorizon(t *testing.T) {
	policy := &countingPolicy{}
	agent := NewAgent(&AgentConfig{
		Episodes:    1,
		Horizon:     3,
		Policy:      policy,
		Environment: &chainEnvironment{length: 100},
	})
	eCtx := NewEpisodeContext(0)
	agent.RunEpisode(eCtx)

	if eCtx.Timesteps != 3 {
		t.Errorf("expected horizon cutoff at 3, got %d", eCtx.Timesteps)
	}
}

func TestAgentPropagatesStepError(t *testing.T) {
	policy := &countingPolicy{}
	agent := NewAgent(&AgentConfig{
		Episodes:    1,
		Horizon:     10,
		Policy:      policy,
		Environment: &chainEnvironment{length: 10, failAt: 2},
	})
	eCtx := NewEpisodeContext(0)
	agent.RunEpisode(eCtx)

	if eCtx.Err == nil {
		t.Fatalf("expected the step error on the episode context")
	}
	// the failed transition must not be recorded or learned from
	if eCtx.Trace.Len() != 1 || policy.updates != 1 {
		t.Errorf("failed step leaked into trace (%d) or updates (%d)", eCtx.Trace.Len(), policy.updates)
	}
}

func TestAgentRunAllEpisodes(t *testing.T) {
	policy := &countingPolicy{}
	agent := NewAgent(&AgentConfig{
		Episodes:    5,
		Horizon:     10,
		Policy:      policy,
		Environment: &chainEnvironment{length: 2},
	})
	episodes := agent.Run()
	if len(episodes) != 5 {
		t.Fatalf("expected 5 episode contexts, got %d", len(episodes))
	}
	if policy.iterations != 5 {
		t.Errorf("expected 5 end-of-episode updates, got %d", policy.iterations)
	}
}
