package types

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestSpreadConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  SpreadConfig
	}{
		{"zero repetitions", SpreadConfig{Repetitions: 0, Episodes: 10, Horizon: 5, CheckpointInterval: 2}},
		{"zero episodes", SpreadConfig{Repetitions: 2, Episodes: 0, Horizon: 5, CheckpointInterval: 2}},
		{"zero checkpoint", SpreadConfig{Repetitions: 2, Episodes: 10, Horizon: 5, CheckpointInterval: 0}},
	}
	for _, tc := range cases {
		cfg := tc.cfg
		if _, err := RunSpread(context.Background(), &cfg, nil); !errors.Is(err, ErrConfiguration) {
			t.Errorf("%s: expected configuration error, got %v", tc.name, err)
		}
	}
}

func TestRunSpread(t *testing.T) {
	experiments := []SpreadExperiment{
		{
			Name:   "drift",
			Policy: func(seed uint64) (Policy, error) { return &driftingPolicy{}, nil },
			Environment: func(seed uint64) (Environment, error) {
				return &chainEnvironment{length: 2}, nil
			},
		},
	}
	results, err := RunSpread(context.Background(), &SpreadConfig{
		Repetitions:        3,
		Episodes:           6,
		Horizon:            5,
		CheckpointInterval: 2,
		Seed:               1,
		MaxConcurrent:      2,
	}, experiments)
	if err != nil {
		t.Fatalf("running spread: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if len(r.Series) != 3 {
		t.Errorf("expected 3 repetition series, got %d", len(r.Series))
	}
	if len(r.Mean) != 3 || len(r.StdDev) != 3 {
		t.Errorf("expected 3 aggregated checkpoints, got %d mean %d stddev", len(r.Mean), len(r.StdDev))
	}
	// identical deterministic repetitions: no spread
	for i, sd := range r.StdDev {
		if sd != 0 {
			t.Errorf("checkpoint %d: expected zero stddev, got %v", i, sd)
		}
	}
}

func TestRunSpreadSurfacesPolicyError(t *testing.T) {
	experiments := []SpreadExperiment{
		{
			Name: "invalid",
			Policy: func(seed uint64) (Policy, error) {
				return nil, fmt.Errorf("%w: alpha out of range", ErrConfiguration)
			},
			Environment: func(seed uint64) (Environment, error) {
				return &chainEnvironment{length: 2}, nil
			},
		},
	}
	_, err := RunSpread(context.Background(), &SpreadConfig{
		Repetitions:        2,
		Episodes:           6,
		Horizon:            5,
		CheckpointInterval: 2,
		Seed:               1,
		MaxConcurrent:      2,
	}, experiments)
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected the factory's configuration error, got %v", err)
	}
}

func TestAggregateSeries(t *testing.T) {
	mean, stddev := aggregateSeries([][]float64{
		{1, 2, 3},
		{3, 4}, // shorter series truncates the aggregate
	})
	if len(mean) != 2 || len(stddev) != 2 {
		t.Fatalf("expected aggregation over 2 checkpoints, got %d", len(mean))
	}
	if mean[0] != 2 || mean[1] != 3 {
		t.Errorf("unexpected means %v", mean)
	}
	if stddev[0] == 0 {
		t.Errorf("expected nonzero stddev for differing repetitions")
	}
}
