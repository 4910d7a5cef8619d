package laws

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHarness_AllLawsPass(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	h, err := New(cfg, WithLogger(zap.NewNop()))
	require.NoError(t, err)
	assert.Equal(t, StateConfigured, h.State())

	report, err := h.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, report.AllPassed())
	assert.Equal(t, cfg.Trials*len(AllLaws()), report.Trials)
	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.Equal(t, StateReported, h.State())

	stored, ok := h.Report()
	require.True(t, ok)
	assert.Equal(t, report.RunID, stored.RunID)
}

func TestHarness_ReportsCounterexample(t *testing.T) {
	t.Parallel()
	broken := Law{
		Name: "always false",
		Check: func(rng *rand.Rand, cfg Config) Outcome {
			return score(false, "input", "left", "right")
		},
	}

	passing := Law{
		Name: "always true",
		Check: func(rng *rand.Rand, cfg Config) Outcome {
			return pass()
		},
	}

	h, err := New(DefaultConfig(), WithLaws([]Law{passing, broken}))
	require.NoError(t, err)

	report, err := h.Run(context.Background())
	require.NoError(t, err)

	require.False(t, report.AllPassed())
	// trial 0 is the passing law, trial 1 the broken one
	assert.Equal(t, "always false", report.Failure.Law)
	assert.Equal(t, 1, report.Failure.Trial)
	assert.Equal(t, "input", report.Failure.Input)
	assert.Equal(t, "left", report.Failure.Left)
	assert.Equal(t, "right", report.Failure.Right)
	assert.Contains(t, report.String(), "falsified at trial 1")
}

func TestHarness_CounterexampleIndependentOfWorkers(t *testing.T) {
	t.Parallel()
	oddFails := Law{
		Name: "fails on odd input",
		Check: func(rng *rand.Rand, cfg Config) Outcome {
			x := genInt(rng, cfg)
			if x%2 != 0 {
				return score(false, "odd input", "", "")
			}
			return pass()
		},
	}

	run := func(workers int) Report {
		cfg := DefaultConfig()
		cfg.Workers = workers
		cfg.Seed = 42
		h, err := New(cfg, WithLaws([]Law{oddFails}))
		require.NoError(t, err)
		report, err := h.Run(context.Background())
		require.NoError(t, err)
		return report
	}

	solo := run(1)
	wide := run(8)
	require.False(t, solo.AllPassed())
	require.False(t, wide.AllPassed())
	assert.Equal(t, solo.Failure.Trial, wide.Failure.Trial)
	assert.Equal(t, solo.Failure.Law, wide.Failure.Law)
}

func TestHarness_RunTwice(t *testing.T) {
	t.Parallel()
	h, err := New(DefaultConfig())
	require.NoError(t, err)

	_, err = h.Run(context.Background())
	require.NoError(t, err)

	_, err = h.Run(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyRun)
}

func TestHarness_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := DefaultConfig()
	cfg.Trials = 10000
	h, err := New(cfg)
	require.NoError(t, err)

	_, err = h.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateReported, h.State())

	_, ok := h.Report()
	assert.False(t, ok, "an aborted run stores no report")
}

func TestNew_ConfigValidation(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero trials", func(c *Config) { c.Trials = 0 }, ErrNoTrials},
		{"empty int range", func(c *Config) { c.IntMax = c.IntMin - 1 }, ErrIntRange},
		{"negative seq min", func(c *Config) { c.SeqLenMin = -1 }, ErrSeqRange},
		{"inverted seq range", func(c *Config) { c.SeqLenMin = 5; c.SeqLenMax = 2 }, ErrSeqRange},
		{"zero workers", func(c *Config) { c.Workers = 0 }, ErrNoWorkers},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			_, err := New(cfg)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_EmptyLaws(t *testing.T) {
	t.Parallel()
	_, err := New(DefaultConfig(), WithLaws(nil))
	assert.ErrorIs(t, err, ErrNoLaws)
}

func TestState_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "configured", StateConfigured.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "reported", StateReported.String())
	assert.Equal(t, "unknown", State(99).String())
}
