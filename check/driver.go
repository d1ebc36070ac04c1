package check

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/burntcheck/propcheck/gen"
	"github.com/burntcheck/propcheck/internal/obslog"
)

// Check runs prop against DefaultConfig().
func Check(prop Property) Outcome {
	return CheckWith(DefaultConfig(), prop)
}

// CheckWith runs prop under cfg and returns Pass or Fail(witness). It never
// returns Discard: running out of non-discarded samples before reaching
// cfg.Tests is reported as a passing "gave up" outcome, per §4.5.
func CheckWith(cfg Config, prop Property) Outcome {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	run := obslog.NewRun(seed)
	rec := cfg.recorder

	passed := 0
	ran := 0
	for i := 0; ran < cfg.MaxTests && passed < cfg.Tests; i++ {
		ran++
		size := gen.Size{Min: 0, Max: cfg.sizeFor(i)}
		trial := prop(r, size)

		run.Step(i, size.Max, trial.Outcome.Status.String())
		rec.observeTest(trial.Outcome.Status)

		switch trial.Outcome.Status {
		case StatusPass:
			passed++
		case StatusDiscard:
			// doesn't count towards passed; bounded by MaxTests
		case StatusFail:
			if strings.HasPrefix(trial.Outcome.Reason, "panic:") {
				run.Panic(trial.Outcome.Reason)
			}
			return shrinkSearch(trial, run, rec)
		}
	}

	if passed < cfg.Tests {
		run.GaveUp(ran, passed)
		return Outcome{
			Status: StatusPass,
			Reason: fmt.Sprintf("gave up after %d tests, %d passed", ran, passed),
		}
	}
	return Pass()
}

// shrinkSearch consumes a failing Trial's lazy shrink chain, keeping the
// first-encountered-still-failing candidate as the new minimum (the "first
// encountered wins" tie-break) until the stream is exhausted. It never
// touches the random source, so it is a pure function of the initial
// failure and the property's input-to-outcome map.
func shrinkSearch(failing Trial, run *obslog.Run, rec *Recorder) Outcome {
	current := failing
	accept := true
	step := 0
	for {
		next, ok := current.Shrink(accept)
		if !ok {
			return current.Outcome
		}
		step++
		run.Shrink(step, next.Outcome.Status.String())
		rec.observeShrink()
		switch next.Outcome.Status {
		case StatusFail:
			current = next
			accept = true
		case StatusDiscard:
			accept = false
		case StatusPass:
			accept = false
		}
	}
}
