package check

import "github.com/prometheus/client_golang/prometheus"

// Recorder publishes run counters to a prometheus registry. It is
// entirely opt-in: a Config with no Recorder never touches this file's
// types at runtime.
type Recorder struct {
	tests   *prometheus.CounterVec
	shrinks prometheus.Counter
}

// NewRecorder builds a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	rec := &Recorder{
		tests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "propcheck",
			Name:      "tests_total",
			Help:      "Property evaluations by outcome status.",
		}, []string{"status"}),
		shrinks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "propcheck",
			Name:      "shrink_steps_total",
			Help:      "Shrink-search steps taken while narrowing a counter-example.",
		}),
	}
	reg.MustRegister(rec.tests, rec.shrinks)
	return rec
}

// observeTest and observeShrink are nil-receiver-safe so driver.go can
// call them unconditionally whether or not a Recorder was configured.
func (r *Recorder) observeTest(status Status) {
	if r == nil {
		return
	}
	r.tests.WithLabelValues(status.String()).Inc()
}

func (r *Recorder) observeShrink() {
	if r == nil {
		return
	}
	r.shrinks.Inc()
}
