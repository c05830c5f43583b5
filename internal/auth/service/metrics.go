package service

import (
	"github.com/jokeboard/server/internal/observability/metrics"
)

func incrementLoginSuccess() {
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
}

func incrementLoginFailure() {
	metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
}

func incrementRegistrations() {
	metrics.RegistrationsTotal.Inc()
}
