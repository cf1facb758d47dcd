package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder receives round events worth counting
type Recorder interface {
	// RollRecorded counts a committed roll by outcome kind
	RollRecorded(kind string)

	// RollRejected counts a failed roll by reason
	RollRejected(reason string)
}

// Prometheus implements Recorder on its own registry
type Prometheus struct {
	registry *prometheus.Registry
	rolls    *prometheus.CounterVec
	rejects  *prometheus.CounterVec
}

// NewPrometheus creates the collectors and registers them
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		rolls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ceelo",
			Name:      "rolls_total",
			Help:      "Committed rolls by outcome kind.",
		}, []string{"kind"}),
		rejects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ceelo",
			Name:      "roll_rejections_total",
			Help:      "Rolls that were refused, by reason.",
		}, []string{"reason"}),
	}

	p.registry.MustRegister(p.rolls, p.rejects)
	return p
}

// RollRecorded implements Recorder
func (p *Prometheus) RollRecorded(kind string) {
	p.rolls.WithLabelValues(kind).Inc()
}

// RollRejected implements Recorder
func (p *Prometheus) RollRejected(reason string) {
	p.rejects.WithLabelValues(reason).Inc()
}

// Handler serves the registry in the Prometheus text format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Nop discards every event
type Nop struct{}

// RollRecorded implements Recorder
func (Nop) RollRecorded(string) {}

// RollRejected implements Recorder
func (Nop) RollRejected(string) {}
