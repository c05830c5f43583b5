package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jokeboard_login_attempts_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jokeboard_registrations_total",
			Help: "Total number of successful registrations",
		},
	)

	SessionsIssuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jokeboard_sessions_issued_total",
			Help: "Total number of session cookies issued",
		},
	)

	SessionsClearedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jokeboard_sessions_cleared_total",
			Help: "Total number of session cookies cleared",
		},
	)

	StaleSessionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jokeboard_stale_sessions_total",
			Help: "Total number of valid session cookies referencing a missing user",
		},
	)

	AuthRedirectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jokeboard_auth_redirects_total",
			Help: "Total number of unauthenticated requests redirected to login",
		},
	)
)
