package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"avantika_admin/internal/adapters/backend"
	"avantika_admin/internal/adapters/observability"
	redisad "avantika_admin/internal/adapters/redis"
	"avantika_admin/internal/adapters/session"
	"avantika_admin/internal/app"
	"avantika_admin/internal/shared"
	"avantika_admin/internal/store"
)

// The syncer repopulates the Redis collections from the backend. With
// SYNC_INTERVAL_SECONDS unset it runs one sweep and exits, which is what
// cron wants; with an interval it loops forever.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, "syncer")

	log.Info().
		Str("backend", cfg.APIBase).
		Int("workers", cfg.Workers).
		Dur("interval", cfg.SyncInterval).
		Msg("syncer starting")

	client, err := backend.New(cfg.APIBase, cfg.BackendRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize backend client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	sess, err := session.Open(cfg.SessionDBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open session store")
	}
	defer sess.Close()

	ref := app.NewRefresher(client, cache, store.New(), sess, cfg.CacheTTL, log.Logger)

	for {
		start := time.Now()
		if err := ref.RefreshAll(ctx, int64(cfg.Workers)); err != nil {
			log.Warn().Err(err).Msg("sweep finished with errors")
		} else {
			log.Info().Dur("took", time.Since(start)).Msg("sweep completed")
		}
		if cfg.SyncInterval <= 0 {
			return
		}
		time.Sleep(cfg.SyncInterval)
	}
}
