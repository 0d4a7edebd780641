package controllers

import (
	"context"
	"net/http"

	"github.com/ensigotrace/ensigotrace-backend/api/responses"
	"github.com/ensigotrace/ensigotrace-backend/pkg/config"
	pkgerrors "github.com/ensigotrace/ensigotrace-backend/pkg/errors"
	"github.com/ensigotrace/ensigotrace-backend/pkg/logger"
	"github.com/ensigotrace/ensigotrace-backend/pkg/redis"
	"github.com/ensigotrace/ensigotrace-backend/pkg/store"
)

const envHeader = "X-EnsigoTrace-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady probes the storage backend with a read and pings redis when
// one is wired. Either failure flips the endpoint to 503.
func HealthReady(cfg *config.Config, logg *logger.Logger, kv store.KV, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		ctx := r.Context()

		if err := probeStore(ctx, kv); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store not ready"))
			return
		}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis not ready"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}

func probeStore(ctx context.Context, kv store.KV) error {
	if kv == nil {
		return nil
	}
	_, _, err := kv.Read(ctx, "health_probe")
	return err
}
