package laws

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Counterexample is an input for which both sides of a law disagreed. Trial
// is the global trial index; when several trials fail, the report keeps the
// lowest one.
type Counterexample struct {
	Law   string
	Trial int
	Input string
	Left  string
	Right string
}

func (c Counterexample) String() string {
	return fmt.Sprintf("law %q falsified at trial %d: input %s, left %s, right %s",
		c.Law, c.Trial, c.Input, c.Left, c.Right)
}

// Report is the terminal outcome of one harness run: either all trials
// passed or the first counterexample found.
type Report struct {
	RunID   uuid.UUID
	Trials  int
	Elapsed time.Duration
	Failure *Counterexample
}

func (r Report) AllPassed() bool {
	return r.Failure == nil
}

func (r Report) String() string {
	if r.AllPassed() {
		return fmt.Sprintf("run %s: all %d trials passed in %s", r.RunID, r.Trials, r.Elapsed)
	}
	return fmt.Sprintf("run %s: %s", r.RunID, r.Failure)
}
