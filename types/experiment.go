package types

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path"
	"strconv"
)

// ExperimentRunConfig is the per-run execution configuration handed to an
// experiment by the comparison (or the spread runner).
type ExperimentRunConfig struct {
	CurrentRun int
	Episodes   int
	Horizon    int
	Analyzers  []Analyzer

	// CheckpointInterval is the number of episodes between convergence
	// samples of a tabular policy
	CheckpointInterval int

	// thresholds to abort the experiment
	ConsecutiveErrorsAbort int

	RecordPolicy   bool
	ReportSavePath string

	// Status receives progress lines. Nil means print to the terminal.
	Status func(string)
}

// Experiment encapsulates a policy and an environment to run against each
// other, together with the convergence series of the last run.
type Experiment struct {
	Name        string
	policy      Policy
	environment Environment

	// Convergence is the RMS change of the policy's value table between
	// checkpoints, one sample per checkpoint. Empty for non-tabular
	// policies.
	Convergence []float64
}

// NewExperiment creates a new experiment instance
func NewExperiment(name string, policy Policy, environment Environment) *Experiment {
	return &Experiment{
		Name:        name,
		policy:      policy,
		environment: environment,
		Convergence: make([]float64, 0),
	}
}

func (e *Experiment) Policy() Policy {
	return e.policy
}

// Run the experiment for the specified number of episodes, feeding every
// trace to the configured analyzers.
func (e *Experiment) Run(ctx context.Context, rConfig *ExperimentRunConfig) error {
	agent := NewAgent(&AgentConfig{
		Episodes:    rConfig.Episodes,
		Horizon:     rConfig.Horizon,
		Policy:      e.policy,
		Environment: e.environment,
	})

	tabular, isTabular := e.policy.(TabularPolicy)
	var checkpoint map[string]map[string]float64
	if isTabular {
		checkpoint = snapshotValues(tabular.Values())
	}
	e.Convergence = e.Convergence[:0]

	totalTerminal := 0
	totalWithError := 0
	consecutiveErrors := 0

	for episode := 0; episode < rConfig.Episodes; episode++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		eCtx := NewEpisodeContext(episode)
		agent.RunEpisode(eCtx)

		if eCtx.Err != nil {
			totalWithError += 1
			consecutiveErrors += 1
		} else {
			consecutiveErrors = 0
			// a terminal state offers no actions, even when it was reached
			// on the last step of the horizon
			if _, _, last, ok := eCtx.Trace.Last(); ok && len(last.Actions()) == 0 {
				totalTerminal += 1
			}
		}

		for _, a := range rConfig.Analyzers {
			a.Analyze(rConfig.CurrentRun, episode, e.Name, eCtx.Trace)
		}

		if isTabular && rConfig.CheckpointInterval > 0 && (episode+1)%rConfig.CheckpointInterval == 0 {
			current := snapshotValues(tabular.Values())
			e.Convergence = append(e.Convergence, rmsDelta(checkpoint, current))
			checkpoint = current
		}

		if consecutiveErrors >= rConfig.ConsecutiveErrorsAbort {
			return fmt.Errorf("aborting experiment %s: %d consecutive errors, last: %w", e.Name, consecutiveErrors, eCtx.Err)
		}

		if (episode+1)%100 == 0 || episode+1 == rConfig.Episodes {
			status := fmt.Sprintf("Exp:%s, Eps:%d/%d, Terminal:%d, Err:%d",
				e.Name, episode+1, rConfig.Episodes, totalTerminal, totalWithError)
			if rConfig.Status != nil {
				rConfig.Status(status)
			} else {
				fmt.Printf("\r%s", status)
			}
		}
	}
	if rConfig.Status == nil {
		fmt.Println("")
	}

	if rConfig.RecordPolicy {
		e.policy.Record(path.Join(rConfig.ReportSavePath, "policies", e.Name+"_"+strconv.Itoa(rConfig.CurrentRun)+".json"))
	}
	return nil
}

// Reset the experiment between runs
func (e *Experiment) Reset() {
	e.policy.Reset()
}

func snapshotValues(values map[string]map[string]float64) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(values))
	for s, actions := range values {
		row := make(map[string]float64, len(actions))
		for a, v := range actions {
			row[a] = v
		}
		out[s] = row
	}
	return out
}

// rmsDelta computes the root-mean-square change between two value-table
// snapshots over the union of their keys. Missing entries count as zero.
func rmsDelta(before, after map[string]map[string]float64) float64 {
	sum := 0.0
	n := 0
	seen := make(map[string]map[string]bool)
	for s, actions := range after {
		seen[s] = make(map[string]bool, len(actions))
		for a, v := range actions {
			prev := 0.0
			if row, ok := before[s]; ok {
				prev = row[a]
			}
			d := v - prev
			sum += d * d
			n += 1
			seen[s][a] = true
		}
	}
	for s, actions := range before {
		for a, v := range actions {
			if row, ok := seen[s]; ok && row[a] {
				continue
			}
			sum += v * v
			n += 1
		}
	}
	if n == 0 {
		return 0
	}
	return math.Sqrt(sum / float64(n))
}

// ComparisonConfig contains the configuration for the comparison
type ComparisonConfig struct {
	Runs     int // number of independent runs
	Episodes int // number of episodes per run
	Horizon  int // number of steps per episode

	// CheckpointInterval is the number of episodes between convergence
	// samples. Zero disables convergence tracking.
	CheckpointInterval int

	RecordPath   string // path to store the results
	RecordPolicy bool   // record the value tables of tabular policies

	ConsecutiveErrorsAbort int
}

func (c *ComparisonConfig) validate() error {
	if c.Runs <= 0 {
		return fmt.Errorf("%w: runs must be positive, got %d", ErrConfiguration, c.Runs)
	}
	if c.Episodes <= 0 {
		return fmt.Errorf("%w: episodes must be positive, got %d", ErrConfiguration, c.Episodes)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %d", ErrConfiguration, c.Horizon)
	}
	if c.CheckpointInterval < 0 {
		return fmt.Errorf("%w: checkpoint interval must not be negative, got %d", ErrConfiguration, c.CheckpointInterval)
	}
	return nil
}

// Comparison contains the different experiments to compare.
// The traces obtained from the experiments are analyzed and the analyzed
// datasets are then compared.
type Comparison struct {
	Experiments []*Experiment
	analyzers   map[string]Analyzer
	comparators map[string]Comparator
	cConfig     *ComparisonConfig
}

// NewComparison creates a comparison instance. Fails fast on an invalid
// configuration.
func NewComparison(config *ComparisonConfig) (*Comparison, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if config.ConsecutiveErrorsAbort == 0 {
		config.ConsecutiveErrorsAbort = 10
	}
	if config.RecordPath != "" {
		foldersToCreate := []string{config.RecordPath}
		if config.RecordPolicy {
			foldersToCreate = append(foldersToCreate, path.Join(config.RecordPath, "policies"))
		}
		for _, fldPath := range foldersToCreate {
			if _, err := os.Stat(fldPath); err != nil {
				os.MkdirAll(fldPath, os.ModePerm)
			}
		}
	}
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		analyzers:   make(map[string]Analyzer),
		comparators: make(map[string]Comparator),
		cConfig:     config,
	}, nil
}

// AddAnalysis adds an analyzer and comparator to the comparison
func (c *Comparison) AddAnalysis(name string, analyzer Analyzer, comparator Comparator) {
	c.analyzers[name] = analyzer
	c.comparators[name] = comparator
}

// Add experiments to compare
func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

// Run the comparison
func (c *Comparison) Run(ctx context.Context) error {
	c.recordConfig()

	for run := 0; run < c.cConfig.Runs; run++ {
		fmt.Printf("Run %d\n", run+1)
		datasets := make(map[string][]DataSet)
		for name := range c.analyzers {
			datasets[name] = make([]DataSet, len(c.Experiments))
		}

		names := make([]string, len(c.Experiments))
		convergence := make([][]float64, len(c.Experiments))
		for i, e := range c.Experiments {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := e.Run(ctx, c.prepareRunConfig(run)); err != nil {
				return err
			}
			for name, a := range c.analyzers {
				datasets[name][i] = a.DataSet()
				a.Reset()
			}
			names[i] = e.Name
			convergence[i] = append([]float64(nil), e.Convergence...)
			e.Reset()
		}
		for name, comp := range c.comparators {
			comp(run, c.cConfig.Episodes, names, datasets[name])
		}
		if c.cConfig.CheckpointInterval > 0 && c.cConfig.RecordPath != "" {
			LinePlot(path.Join(c.cConfig.RecordPath, strconv.Itoa(run)+"_convergence.png"),
				"Convergence", "Checkpoint", "RMS delta", names, convergence)
		}
	}
	return nil
}

func (c *Comparison) prepareRunConfig(run int) *ExperimentRunConfig {
	rCfg := &ExperimentRunConfig{
		CurrentRun:             run,
		Episodes:               c.cConfig.Episodes,
		Horizon:                c.cConfig.Horizon,
		CheckpointInterval:     c.cConfig.CheckpointInterval,
		Analyzers:              make([]Analyzer, 0),
		ConsecutiveErrorsAbort: c.cConfig.ConsecutiveErrorsAbort,
		RecordPolicy:           c.cConfig.RecordPolicy,
		ReportSavePath:         c.cConfig.RecordPath,
	}
	for _, a := range c.analyzers {
		rCfg.Analyzers = append(rCfg.Analyzers, a)
	}
	return rCfg
}

// record the configuration of the comparison
func (c *Comparison) recordConfig() {
	cfg := c.cConfig
	if cfg.RecordPath == "" {
		return
	}
	f, err := os.Create(path.Join(cfg.RecordPath, "comparison_config.json"))
	if err != nil {
		return
	}
	defer f.Close()

	out := make(map[string]interface{})
	out["runs"] = cfg.Runs
	out["episodes"] = cfg.Episodes
	out["horizon"] = cfg.Horizon
	out["checkpoint_interval"] = cfg.CheckpointInterval
	out["record_policy"] = cfg.RecordPolicy

	experiments := make([]string, 0)
	for _, e := range c.Experiments {
		experiments = append(experiments, e.Name)
	}
	out["experiments"] = experiments

	analyzers := make([]string, 0)
	for name := range c.analyzers {
		analyzers = append(analyzers, name)
	}
	out["analyzers"] = analyzers

	bs, err := json.Marshal(out)
	if err != nil {
		return
	}
	f.Write(bs)
}
