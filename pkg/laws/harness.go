package laws

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// State is the harness lifecycle: Configured until Run is called, Running
// while trials execute, Reported once a Report exists. Terminal either way.
type State int32

const (
	StateConfigured State = iota
	StateRunning
	StateReported
)

func (s State) String() string {
	switch s {
	case StateConfigured:
		return "configured"
	case StateRunning:
		return "running"
	case StateReported:
		return "reported"
	default:
		return "unknown"
	}
}

// Harness drives one verification run. A Harness is single-use: Run may be
// called exactly once.
type Harness struct {
	cfg   Config
	laws  []Law
	log   *zap.Logger
	state atomic.Int32

	mu        sync.Mutex
	report    Report
	hasReport bool
}

type Option func(*Harness)

func WithLogger(log *zap.Logger) Option {
	return func(h *Harness) {
		h.log = log
	}
}

// WithLaws replaces the default law catalogue, mainly for tests that need to
// inject a falsifiable law.
func WithLaws(laws []Law) Option {
	return func(h *Harness) {
		h.laws = laws
	}
}

func New(cfg Config, opts ...Option) (*Harness, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	h := &Harness{
		cfg:  cfg,
		laws: AllLaws(),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if len(h.laws) == 0 {
		return nil, ErrNoLaws
	}
	return h, nil
}

func (h *Harness) State() State {
	return State(h.state.Load())
}

// Report returns the stored report once the harness has reported. An aborted
// run reaches the reported state without storing one.
func (h *Harness) Report() (Report, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.report, h.hasReport
}

// Run executes Trials trials per law, fanned out over Workers goroutines.
// Trial t exercises law t%len(laws) with a generator seeded Seed+t, so the
// outcome does not depend on the worker count. Cancelling ctx aborts the
// whole run; individual trials are never cancelled mid-flight.
func (h *Harness) Run(ctx context.Context) (Report, error) {
	if !h.state.CompareAndSwap(int32(StateConfigured), int32(StateRunning)) {
		return Report{}, ErrAlreadyRun
	}

	start := time.Now()
	total := h.cfg.Trials * len(h.laws)

	var mu sync.Mutex
	var failure *Counterexample

	trials := make(chan int)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(trials)
		for t := 0; t < total; t++ {
			select {
			case trials <- t:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < h.cfg.Workers; i++ {
		g.Go(func() error {
			for t := range trials {
				if err := gctx.Err(); err != nil {
					return err
				}
				law := h.laws[t%len(h.laws)]
				rng := rand.New(rand.NewSource(h.cfg.Seed + int64(t)))
				out := law.Check(rng, h.cfg)
				if out.OK {
					continue
				}
				h.log.Debug("counterexample found",
					zap.String("law", law.Name),
					zap.Int("trial", t),
					zap.String("input", out.Input),
					zap.String("left", out.Left),
					zap.String("right", out.Right))
				mu.Lock()
				if failure == nil || t < failure.Trial {
					failure = &Counterexample{
						Law:   law.Name,
						Trial: t,
						Input: out.Input,
						Left:  out.Left,
						Right: out.Right,
					}
				}
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		h.state.Store(int32(StateReported))
		return Report{}, err
	}

	rep := Report{
		RunID:   uuid.New(),
		Trials:  total,
		Elapsed: time.Since(start),
		Failure: failure,
	}
	h.mu.Lock()
	h.report = rep
	h.hasReport = true
	h.mu.Unlock()
	h.state.Store(int32(StateReported))

	h.log.Info("law verification finished",
		zap.Stringer("run_id", rep.RunID),
		zap.Int("trials", rep.Trials),
		zap.Duration("elapsed", rep.Elapsed),
		zap.Bool("all_passed", rep.AllPassed()))

	return rep, nil
}
