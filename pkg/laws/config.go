package laws

import "errors"

var (
	ErrNoTrials   = errors.New("laws: trials must be positive")
	ErrIntRange   = errors.New("laws: int range is empty")
	ErrSeqRange   = errors.New("laws: sequence length range is invalid")
	ErrNoWorkers  = errors.New("laws: workers must be positive")
	ErrNoLaws     = errors.New("laws: no laws to verify")
	ErrAlreadyRun = errors.New("laws: harness already run")
)

// Config holds the generation bounds and execution parameters for one
// harness run. A Config is fixed once the harness is constructed.
type Config struct {
	// Trials is the number of random inputs checked per law.
	Trials int

	// IntMin and IntMax bound generated integers, inclusive.
	IntMin int
	IntMax int

	// SeqLenMin and SeqLenMax bound generated sequence lengths, inclusive.
	SeqLenMin int
	SeqLenMax int

	// Seed is the base of the per-trial generators.
	Seed int64

	// Workers is the number of goroutines trials are fanned out over.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		Trials:    200,
		IntMin:    -1000,
		IntMax:    1000,
		SeqLenMin: 0,
		SeqLenMax: 16,
		Seed:      1,
		Workers:   4,
	}
}

func (c Config) validate() error {
	if c.Trials <= 0 {
		return ErrNoTrials
	}
	if c.IntMax < c.IntMin {
		return ErrIntRange
	}
	if c.SeqLenMin < 0 || c.SeqLenMax < c.SeqLenMin {
		return ErrSeqRange
	}
	if c.Workers <= 0 {
		return ErrNoWorkers
	}
	return nil
}
