package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/jokeboard/server/internal/auth/http"
	authservice "github.com/jokeboard/server/internal/auth/service"
	"github.com/jokeboard/server/internal/common/config"
	commoncrypto "github.com/jokeboard/server/internal/common/crypto"
	"github.com/jokeboard/server/internal/common/db"
	commonhttp "github.com/jokeboard/server/internal/common/http"
	"github.com/jokeboard/server/internal/common/logger"
	srv "github.com/jokeboard/server/internal/common/server"
	jokehttp "github.com/jokeboard/server/internal/joke/http"
	jokerepo "github.com/jokeboard/server/internal/joke/repository"
	jokeservice "github.com/jokeboard/server/internal/joke/service"
	"github.com/jokeboard/server/internal/session"
	userrepo "github.com/jokeboard/server/internal/user/repository"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "jokeboard", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool := db.NewPool(log, cfg.DatabaseURL)
	defer pool.Close()

	if err := db.RunMigrations(context.Background(), log, cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	users := userrepo.NewPgRepository(pool)
	jokes := jokerepo.NewPgRepository(pool)
	hasher := &commoncrypto.BcryptHasher{}
	idGenerator := commoncrypto.NewUUIDGenerator()

	codec := session.NewCodec(cfg.SessionSecret)
	cookies := session.Cookies{Secure: cfg.SecureCookies}
	sessions := session.NewAccessor(codec, cookies, users, log)

	authService := authservice.NewAuthService(users, hasher, idGenerator, log)
	jokeService := jokeservice.NewJokeService(jokes, idGenerator, log)

	authHandler := authhttp.NewHandler(authService, codec, cookies, cfg.RequestTimeout, log)
	jokeHandler := jokehttp.NewHandler(jokeService, sessions, cfg.RequestTimeout, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.Handle("/login", authHandler)
	mux.Handle("/logout", authHandler)
	mux.Handle("/register", authHandler)
	mux.Handle("/jokes", jokeHandler)
	mux.Handle("/jokes/", jokeHandler)
	mux.Handle("/api/jokes/validate", jokeHandler)
	mux.Handle("/metrics", promhttp.Handler())

	handler := commonhttp.BuildBaseHandler(log, mux)

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, handler)

	srv.StartWithGracefulShutdown(server, log, "jokeboard")
}
