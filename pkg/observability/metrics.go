package observability

import (
	"github.com/aretw0/mealy"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts fired transitions and produced outputs with Prometheus counters.
type Metrics[O any] struct {
	machine     string
	transitions *prometheus.CounterVec
	outputs     *prometheus.CounterVec
}

// NewMetrics registers the mealy counters on reg and returns an observer feeding them.
// Several machines may share one registry: collectors already registered are reused.
func NewMetrics[O any](reg prometheus.Registerer, machine string) (*Metrics[O], error) {
	if machine == "" {
		machine = "unknown"
	}

	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mealy_transitions_total",
		Help: "Total number of fired transitions by machine, from_state and to_state",
	}, []string{"machine", "from_state", "to_state"})

	outputs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mealy_outputs_total",
		Help: "Total number of transitions that produced an output, by machine",
	}, []string{"machine"})

	var err error
	if transitions, err = register(reg, transitions); err != nil {
		return nil, err
	}
	if outputs, err = register(reg, outputs); err != nil {
		return nil, err
	}

	return &Metrics[O]{
		machine:     machine,
		transitions: transitions,
		outputs:     outputs,
	}, nil
}

// OnTransition implements mealy.Observer.
func (m *Metrics[O]) OnTransition(from, to string, out mealy.Output[O]) {
	m.transitions.WithLabelValues(m.machine, from, to).Inc()
	if out.Present {
		m.outputs.WithLabelValues(m.machine).Inc()
	}
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}
