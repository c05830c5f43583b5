package service

import (
	"github.com/jokeboard/server/internal/observability/metrics"
)

func incrementJokesCreated() {
	metrics.JokesCreatedTotal.Inc()
}

func incrementValidationFailure(field string) {
	metrics.JokeValidationFailuresTotal.WithLabelValues(field).Inc()
}

func incrementMalformedSubmissions() {
	metrics.MalformedSubmissionsTotal.Inc()
}
