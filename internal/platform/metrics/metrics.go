package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for question and vote activity.
type Metrics struct {
	QuestionsCreated prometheus.Counter
	VotesCast        prometheus.Counter
	VotesRejected    *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		QuestionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "polls_questions_created_total",
			Help: "Total number of questions created",
		}),
		VotesCast: factory.NewCounter(prometheus.CounterOpts{
			Name: "polls_votes_cast_total",
			Help: "Total number of votes accepted",
		}),
		VotesRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "polls_votes_rejected_total",
			Help: "Total number of votes rejected, by reason",
		}, []string{"reason"}),
	}
}

func (m *Metrics) QuestionCreated() {
	m.QuestionsCreated.Inc()
}

func (m *Metrics) VoteCast() {
	m.VotesCast.Inc()
}

func (m *Metrics) VoteRejected(reason string) {
	m.VotesRejected.WithLabelValues(reason).Inc()
}
