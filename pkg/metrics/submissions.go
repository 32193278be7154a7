package metrics

import "github.com/prometheus/client_golang/prometheus"

// Submission outcomes as counter label values.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// SubmissionMetrics counts order and contact submissions by outcome.
type SubmissionMetrics struct {
	orders   *prometheus.CounterVec
	contacts *prometheus.CounterVec
}

// NewSubmissionMetrics registers the submission counters on the provided registerer.
func NewSubmissionMetrics(reg prometheus.Registerer) *SubmissionMetrics {
	if reg == nil {
		return &SubmissionMetrics{}
	}
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_submissions_total",
		Help: "Order submissions, labeled by order type and outcome.",
	}, []string{"order_type", "outcome"})
	contacts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_submissions_total",
		Help: "Contact form submissions by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(orders, contacts)
	return &SubmissionMetrics{
		orders:   orders,
		contacts: contacts,
	}
}

// IncOrder counts one order submission.
func (s *SubmissionMetrics) IncOrder(orderType, outcome string) {
	if s == nil || s.orders == nil {
		return
	}
	s.orders.WithLabelValues(normalizeLabel(orderType), normalizeLabel(outcome)).Inc()
}

// IncContact counts one contact submission.
func (s *SubmissionMetrics) IncContact(outcome string) {
	if s == nil || s.contacts == nil {
		return
	}
	s.contacts.WithLabelValues(normalizeLabel(outcome)).Inc()
}
