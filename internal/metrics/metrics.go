// Package metrics records per-step statistics of running sims on a
// private Prometheus registry and dumps them in the text exposition
// format.
package metrics

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"cage/internal/core"
	"cage/pkg/cage"
)

// Recorder implements core.StepObserver.
type Recorder struct {
	reg *prometheus.Registry

	// generations counts completed steps by sim
	generations *prometheus.CounterVec
	// stepDuration tracks the wall time of one step
	stepDuration *prometheus.HistogramVec
	// liveCells is the number of non-zero cells after the last step
	liveCells *prometheus.GaugeVec
	// agents is the number of registered agents after the last step
	agents *prometheus.GaugeVec
}

// NewRecorder registers the collectors on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		reg: reg,
		generations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cage_generations_total",
			Help: "Generations stepped by sim",
		}, []string{"sim"}),
		stepDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cage_step_duration_seconds",
			Help:    "Step duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"sim"}),
		liveCells: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cage_live_cells",
			Help: "Non-zero cells after the last step",
		}, []string{"sim"}),
		agents: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cage_agents",
			Help: "Registered agents after the last step",
		}, []string{"sim"}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveStep records one completed step.
func (r *Recorder) ObserveStep(sim string, a *cage.Automaton, took time.Duration) {
	r.generations.WithLabelValues(sim).Inc()
	r.stepDuration.WithLabelValues(sim).Observe(took.Seconds())
	r.liveCells.WithLabelValues(sim).Set(float64(core.Live(a.Map().Cells())))
	r.agents.WithLabelValues(sim).Set(float64(len(a.Agents())))
}

// WriteText writes every gathered family in the text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteFile writes the text exposition to path, replacing it.
func (r *Recorder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.WriteText(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
