package session

import (
	"github.com/jokeboard/server/internal/observability/metrics"
)

func incrementSessionsIssued() {
	metrics.SessionsIssuedTotal.Inc()
}

func incrementSessionsCleared() {
	metrics.SessionsClearedTotal.Inc()
}

func incrementStaleSessions() {
	metrics.StaleSessionsTotal.Inc()
}

func incrementAuthRedirects() {
	metrics.AuthRedirectsTotal.Inc()
}
