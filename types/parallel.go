package types

import (
	"context"
	"fmt"
	"io"
	"path"
	"sync"
	"time"

	"github.com/gosuri/uilive"
	"gonum.org/v1/gonum/stat"
)

// SpreadExperiment describes one configuration to repeat across seeds.
// The factories are invoked once per repetition so that every repetition
// owns its own value table and randomness stream.
type SpreadExperiment struct {
	Name        string
	Policy      func(seed uint64) (Policy, error)
	Environment func(seed uint64) (Environment, error)
}

// SpreadConfig configures a set of independent seeded repetitions of the
// same experiments.
type SpreadConfig struct {
	Repetitions        int
	Episodes           int
	Horizon            int
	CheckpointInterval int
	Seed               uint64
	MaxConcurrent      int
	RecordPath         string
}

func (c *SpreadConfig) validate() error {
	if c.Repetitions <= 0 {
		return fmt.Errorf("%w: repetitions must be positive, got %d", ErrConfiguration, c.Repetitions)
	}
	if c.Episodes <= 0 {
		return fmt.Errorf("%w: episodes must be positive, got %d", ErrConfiguration, c.Episodes)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %d", ErrConfiguration, c.Horizon)
	}
	if c.CheckpointInterval <= 0 {
		return fmt.Errorf("%w: spread runs need a positive checkpoint interval, got %d", ErrConfiguration, c.CheckpointInterval)
	}
	return nil
}

// SpreadResult aggregates the convergence series of all repetitions of one
// experiment configuration.
type SpreadResult struct {
	Name   string
	Series [][]float64 // one convergence series per repetition
	Mean   []float64   // per-checkpoint mean across repetitions
	StdDev []float64   // per-checkpoint standard deviation
}

// RunSpread runs every experiment configuration Repetitions times with
// distinct seeds. Repetitions share no mutable state and run concurrently,
// bounded by MaxConcurrent.
func RunSpread(ctx context.Context, cfg *SpreadConfig, experiments []SpreadExperiment) ([]SpreadResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	type job struct {
		exp int
		rep int
	}
	type outcome struct {
		job    job
		series []float64
		err    error
	}

	jobs := make([]job, 0, len(experiments)*cfg.Repetitions)
	for i := range experiments {
		for r := 0; r < cfg.Repetitions; r++ {
			jobs = append(jobs, job{exp: i, rep: r})
		}
	}

	outputs := make([]*parallelOutput, len(jobs))
	for i := range outputs {
		outputs[i] = newParallelOutput()
	}
	printer := newTerminalPrinter(ctx, outputs, 1)
	printer.Start()
	defer printer.Stop()

	sem := make(chan struct{}, maxConcurrent)
	results := make(chan outcome, len(jobs))
	var wg sync.WaitGroup

	for i, j := range jobs {
		wg.Add(1)
		go func(slot int, j job) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			spec := experiments[j.exp]
			seed := cfg.Seed + uint64(j.rep)
			name := fmt.Sprintf("%s-rep%d", spec.Name, j.rep)

			policy, err := spec.Policy(seed)
			if err != nil {
				results <- outcome{job: j, err: err}
				return
			}
			env, err := spec.Environment(seed)
			if err != nil {
				results <- outcome{job: j, err: err}
				return
			}
			e := NewExperiment(name, policy, env)
			outputs[slot].SetRunning(true)
			err = e.Run(ctx, &ExperimentRunConfig{
				CurrentRun:             j.rep,
				Episodes:               cfg.Episodes,
				Horizon:                cfg.Horizon,
				CheckpointInterval:     cfg.CheckpointInterval,
				ConsecutiveErrorsAbort: 10,
				Status:                 outputs[slot].TrySet,
			})
			outputs[slot].SetRunning(false)
			results <- outcome{job: j, series: append([]float64(nil), e.Convergence...), err: err}
		}(i, j)
	}
	wg.Wait()
	close(results)

	out := make([]SpreadResult, len(experiments))
	for i, spec := range experiments {
		out[i] = SpreadResult{
			Name:   spec.Name,
			Series: make([][]float64, cfg.Repetitions),
		}
	}
	for res := range results {
		if res.err != nil {
			return nil, res.err
		}
		out[res.job.exp].Series[res.job.rep] = res.series
	}

	for i := range out {
		out[i].Mean, out[i].StdDev = aggregateSeries(out[i].Series)
	}

	if cfg.RecordPath != "" {
		names := make([]string, 0, 2*len(out))
		series := make([][]float64, 0, 2*len(out))
		for _, r := range out {
			names = append(names, r.Name+"-mean", r.Name+"-stddev")
			series = append(series, r.Mean, r.StdDev)
		}
		LinePlot(path.Join(cfg.RecordPath, "spread_convergence.png"),
			"Spread convergence", "Checkpoint", "RMS delta", names, series)
	}
	return out, nil
}

// aggregateSeries computes the per-checkpoint mean and standard deviation
// across repetitions, up to the shortest series.
func aggregateSeries(series [][]float64) ([]float64, []float64) {
	shortest := -1
	for _, s := range series {
		if shortest == -1 || len(s) < shortest {
			shortest = len(s)
		}
	}
	if shortest <= 0 {
		return []float64{}, []float64{}
	}
	mean := make([]float64, shortest)
	stddev := make([]float64, shortest)
	sample := make([]float64, len(series))
	for i := 0; i < shortest; i++ {
		for j, s := range series {
			sample[j] = s[i]
		}
		mean[i] = stat.Mean(sample, nil)
		if len(sample) > 1 {
			stddev[i] = stat.StdDev(sample, nil)
		}
	}
	return mean, stddev
}

// parallelOutput holds the latest printable status of one running
// repetition.
type parallelOutput struct {
	mu        sync.Mutex
	printable string
	running   bool
}

func newParallelOutput() *parallelOutput {
	return &parallelOutput{}
}

// TrySet updates the status without blocking the experiment on the printer.
func (p *parallelOutput) TrySet(s string) {
	if p.mu.TryLock() {
		p.printable = s
		p.mu.Unlock()
	}
}

func (p *parallelOutput) SetRunning(running bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.running = running
}

func (p *parallelOutput) Get() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.printable, p.running
}

// terminalPrinter periodically rewrites one terminal line per running
// repetition.
type terminalPrinter struct {
	outputs       []*parallelOutput
	ctx           context.Context
	printerCtx    context.Context
	printerCancel context.CancelFunc
	frequency     int

	writer  *uilive.Writer
	writers []io.Writer
}

func newTerminalPrinter(ctx context.Context, outputs []*parallelOutput, frequency int) *terminalPrinter {
	printerCtx, cancel := context.WithCancel(ctx)
	writer := uilive.New()
	writers := make([]io.Writer, 0, len(outputs))
	for i := 0; i < len(outputs)-1; i++ {
		writers = append(writers, writer.Newline())
	}
	return &terminalPrinter{
		outputs:       outputs,
		ctx:           ctx,
		printerCtx:    printerCtx,
		printerCancel: cancel,
		frequency:     frequency,
		writer:        writer,
		writers:       writers,
	}
}

func (p *terminalPrinter) Start() {
	go func() {
		for {
			select {
			case <-p.printerCtx.Done():
				p.writer.Stop()
				return
			case <-p.ctx.Done():
				p.writer.Stop()
				return
			case <-time.After(time.Duration(p.frequency) * time.Second):
				p.print()
			}
		}
	}()
}

func (p *terminalPrinter) Stop() {
	p.printerCancel()
}

func (p *terminalPrinter) print() {
	for i, output := range p.outputs {
		s, running := output.Get()
		if !running {
			continue
		}
		if i == 0 {
			fmt.Fprint(p.writer, s+"\n")
		} else {
			fmt.Fprint(p.writers[i-1], s+"\n")
		}
	}
	p.writer.Flush()
}
