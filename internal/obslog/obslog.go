// Package obslog provides the single optional logging hook the driver
// reads at construction time: when PROPCHECK_VERBOSE is set, every
// check/prop run gets one structured log line per generation step and
// per shrink step; when unset, nothing is emitted.
package obslog

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var enabled = os.Getenv("PROPCHECK_VERBOSE") != ""

// Run is a handle for one check/prop invocation's log output. A nil
// *Run is valid and silently discards every call, so callers don't
// need to branch on whether verbosity is enabled.
type Run struct {
	entry *logrus.Entry
}

// NewRun starts a Run tagged with seed and a fresh correlation id. It
// returns nil when verbosity is disabled.
func NewRun(seed int64) *Run {
	if !enabled {
		return nil
	}
	return &Run{
		entry: logrus.WithFields(logrus.Fields{
			"run_id": uuid.NewString(),
			"seed":   seed,
		}),
	}
}

// Step logs one generation-loop iteration.
func (r *Run) Step(i, size int, status string) {
	if r == nil {
		return
	}
	r.entry.WithFields(logrus.Fields{
		"iteration": i,
		"size":      size,
		"status":    status,
	}).Info("propcheck: test")
}

// Shrink logs one shrink-search step.
func (r *Run) Shrink(step int, status string) {
	if r == nil {
		return
	}
	r.entry.WithFields(logrus.Fields{
		"shrink_step": step,
		"status":      status,
	}).Info("propcheck: shrink")
}

// GaveUp logs the too-many-discards outcome.
func (r *Run) GaveUp(ran, passed int) {
	if r == nil {
		return
	}
	r.entry.WithFields(logrus.Fields{
		"ran":    ran,
		"passed": passed,
	}).Warn("propcheck: gave up")
}

// Panic logs a recovered panic from inside a property.
func (r *Run) Panic(msg string) {
	if r == nil {
		return
	}
	r.entry.WithField("panic", msg).Error("propcheck: recovered panic")
}
