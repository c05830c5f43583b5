package constants

import "time"

const (
	UsernameMinLength      = 3
	UsernameMaxLength      = 32
	PasswordMinLength      = 8
	PasswordMaxLength      = 72
	SessionSecretMinLength = 32
	BcryptCost             = 12

	JokeNameMinLength    = 2
	JokeContentMinLength = 10

	SessionCookieName = "RJ_session"
	SessionMaxAge     = 30 * 24 * time.Hour

	LoginPath          = "/login"
	DefaultLoginTarget = "/jokes"

	DefaultMaxRequestSize = 1 << 20

	DefaultJokesListLimit = 50
	MaxJokesListLimit     = 100

	ServerReadHeaderTimeout = 5 * time.Second
	ServerReadTimeout       = 15 * time.Second
	ServerWriteTimeout      = 15 * time.Second
	ServerIdleTimeout       = 60 * time.Second

	DBPoolMetricsInterval = 30 * time.Second
)
