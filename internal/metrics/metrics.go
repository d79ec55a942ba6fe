package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeCommitted = "committed"
	OutcomeRejected  = "rejected"
)

// Checkout holds the checkout counters. A nil *Checkout records nothing.
type Checkout struct {
	Total     *prometheus.CounterVec
	UnitsSold prometheus.Counter
}

func NewCheckout(reg prometheus.Registerer) *Checkout {
	m := &Checkout{
		Total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_total",
			Help: "Checkout attempts by outcome and reason.",
		}, []string{"outcome", "reason"}),
		UnitsSold: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "checkout_units_sold_total",
			Help: "Catalog units removed from stock by committed checkouts.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Total, m.UnitsSold)
	}
	return m
}

func (m *Checkout) Committed(units int) {
	if m == nil {
		return
	}
	m.Total.WithLabelValues(OutcomeCommitted, "").Inc()
	m.UnitsSold.Add(float64(units))
}

func (m *Checkout) Rejected(reason string) {
	if m == nil {
		return
	}
	m.Total.WithLabelValues(OutcomeRejected, reason).Inc()
}
