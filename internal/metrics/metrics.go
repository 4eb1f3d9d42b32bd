package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sglre6355/fishbot/internal/bot"
)

var _ bot.Recorder = (*Collector)(nil)

// Collector records command dispatch metrics.
type Collector struct {
	commandsTotal   *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	droppedTotal    *prometheus.CounterVec
}

// New creates a Collector and registers it with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "fishbot_commands_total", Help: "Total dispatched commands by outcome"},
			[]string{"command", "kind", "outcome"}),

		commandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fishbot_command_duration_seconds",
				Help:    "Command handler run time, including the reply send",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"command"}),

		// Dropped events are not labelled by name: names come from untrusted input.
		droppedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "fishbot_commands_dropped_total", Help: "Events for unknown commands or kinds"},
			[]string{"kind"}),
	}

	for _, collector := range []prometheus.Collector{c.commandsTotal, c.commandDuration, c.droppedTotal} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ObserveCommand records one handled command.
func (c *Collector) ObserveCommand(command string, kind bot.Kind, outcome bot.Outcome, elapsed time.Duration) {
	c.commandsTotal.With(prometheus.Labels{
		"command": command,
		"kind":    kind.String(),
		"outcome": string(outcome),
	}).Inc()
	c.commandDuration.With(prometheus.Labels{"command": command}).Observe(elapsed.Seconds())
}

// ObserveDropped records an event that matched no command.
func (c *Collector) ObserveDropped(kind bot.Kind) {
	c.droppedTotal.With(prometheus.Labels{"kind": kind.String()}).Inc()
}
