package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JokesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jokeboard_jokes_created_total",
			Help: "Total number of jokes persisted",
		},
	)

	JokeValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jokeboard_joke_validation_failures_total",
			Help: "Total number of rejected joke submissions by field",
		},
		[]string{"field"},
	)

	MalformedSubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jokeboard_malformed_submissions_total",
			Help: "Total number of submissions missing expected form fields",
		},
	)
)
