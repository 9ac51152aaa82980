package cook

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// ConstructedMetricName is the fully qualified name of the constructed counter.
	ConstructedMetricName = "pizzeria_cook_pizzas_constructed_total"
	BuilderLabel          = "builder"
)

type Metrics struct {
	constructed *prometheus.CounterVec
}

// NewMetrics registers the cook metrics. Registering twice on the same
// registerer reuses the existing collector.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	constructed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pizzeria",
		Subsystem: "cook",
		Name:      "pizzas_constructed_total",
		Help:      "Number of pizzas constructed, per pizza builder",
	}, []string{BuilderLabel})

	err := registerer.Register(constructed)
	if err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if !errors.As(err, &alreadyRegistered) {
			return nil, errors.WithStack(err)
		}

		existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, errors.Errorf("collector %T is registered under the cook metric name", alreadyRegistered.ExistingCollector)
		}

		constructed = existing
	}

	return &Metrics{constructed: constructed}, nil
}

func (m *Metrics) Constructed(builderName string) prometheus.Counter {
	return m.constructed.WithLabelValues(builderName)
}

func (m *Metrics) observeConstructed(builderName string) {
	if m == nil {
		return
	}

	m.Constructed(builderName).Inc()
}
