package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// Recorder exports build metrics. A nil *Recorder is valid and records nothing.
type Recorder struct {
	buildDuration prom.Histogram
	buildOutcome  *prom.CounterVec
	lastPosts     prom.Gauge
}

// NewRecorder constructs the collectors and registers them on reg.
func NewRecorder(reg prom.Registerer) *Recorder {
	r := &Recorder{
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "sitegen",
			Name:      "build_duration_seconds",
			Help:      "Total build duration",
			Buckets:   prom.DefBuckets,
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitegen",
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
		lastPosts: prom.NewGauge(prom.GaugeOpts{
			Namespace: "sitegen",
			Name:      "last_build_posts",
			Help:      "Posts written by the most recent successful build",
		}),
	}
	if reg != nil {
		reg.MustRegister(r.buildDuration, r.buildOutcome, r.lastPosts)
	}
	return r
}

func (r *Recorder) ObserveBuild(d time.Duration, posts int, err error) {
	if r == nil {
		return
	}
	r.buildDuration.Observe(d.Seconds())
	if err != nil {
		r.buildOutcome.WithLabelValues("failed").Inc()
		return
	}
	r.buildOutcome.WithLabelValues("success").Inc()
	r.lastPosts.Set(float64(posts))
}
