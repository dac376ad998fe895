package main

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"avantika_admin/internal/adapters/backend"
	server "avantika_admin/internal/adapters/http_server"
	"avantika_admin/internal/adapters/observability"
	redisad "avantika_admin/internal/adapters/redis"
	"avantika_admin/internal/app"
	"avantika_admin/internal/shared"
	"avantika_admin/internal/store"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "api")

	observability.Serve()

	client, err := backend.New(cfg.APIBase, cfg.BackendRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize backend client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// start from the bundled seed data so the site renders even when both
	// the cache and the backend are cold
	st := store.NewSeeded()
	cat := app.NewCatalog(client, cache, st, cfg.CacheTTL)

	srv := server.New(cfg.CORSOrigins)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Cat: cat, Proxy: client, PageSize: cfg.PageSize})

	log.Info().Str("addr", cfg.HTTPAddr).Str("backend", cfg.APIBase).Msg("API listening")
	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
