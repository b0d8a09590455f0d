package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts execution pipeline activity in Prometheus metrics.
type Recorder struct {
	events    *prometheus.CounterVec
	alerts    *prometheus.CounterVec
	delivered prometheus.Counter
}

// NewRecorder registers the execution collectors on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "execution_events_total",
		Help: "Total number of tracking events appended to the log",
	}, []string{"status"})
	alerts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "execution_alerts_total",
		Help: "Total number of execution alerts triggered",
	}, []string{"issue_type"})
	delivered := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliveries_completed_total",
		Help: "Total number of shipments that reached DELIVERED",
	})

	if err := reg.Register(events); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			events = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(alerts); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			alerts = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(delivered); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			delivered = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}

	return &Recorder{events: events, alerts: alerts, delivered: delivered}, nil
}

// EventLogged increments the event counter for one tracking event status.
func (r *Recorder) EventLogged(status string) {
	r.events.WithLabelValues(status).Inc()
}

// AlertTriggered increments the alert counter for one issue type.
func (r *Recorder) AlertTriggered(issueType string) {
	r.alerts.WithLabelValues(issueType).Inc()
}

// DeliveryCompleted increments the completed deliveries counter.
func (r *Recorder) DeliveryCompleted() {
	r.delivered.Inc()
}
