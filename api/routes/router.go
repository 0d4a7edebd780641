package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ensigotrace/ensigotrace-backend/api/controllers"
	"github.com/ensigotrace/ensigotrace-backend/api/middleware"
	"github.com/ensigotrace/ensigotrace-backend/internal/auth"
	"github.com/ensigotrace/ensigotrace-backend/internal/collections"
	"github.com/ensigotrace/ensigotrace-backend/internal/payments"
	"github.com/ensigotrace/ensigotrace-backend/internal/sales"
	"github.com/ensigotrace/ensigotrace-backend/pkg/auth/session"
	"github.com/ensigotrace/ensigotrace-backend/pkg/config"
	"github.com/ensigotrace/ensigotrace-backend/pkg/enums"
	"github.com/ensigotrace/ensigotrace-backend/pkg/logger"
	"github.com/ensigotrace/ensigotrace-backend/pkg/metrics"
	"github.com/ensigotrace/ensigotrace-backend/pkg/redis"
	"github.com/ensigotrace/ensigotrace-backend/pkg/store"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Store       store.KV
	Redis       *redis.Client
	Sessions    *session.Manager
	Metrics     *metrics.APIMetrics
	Gatherer    prometheus.Gatherer
	Auth        auth.Service
	Collections collections.Service
	Sales       sales.Service
	Payments    payments.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, deps.Metrics),
		middleware.CORS(cfg.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Store, readinessRedis(deps.Redis)))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, loginLimiter(deps.Redis), logg)).
			Post("/login", controllers.AuthLogin(deps.Auth, deps.Metrics, logg))
		r.Post("/logout", controllers.AuthLogout(deps.Auth, logg))
	})

	// The gateway posts here after the hosted widget settles; there is no
	// session on that request.
	r.Post("/api/v1/payments/callback", controllers.PaymentCallback(deps.Payments, logg))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Guard(deps.Sessions, logg))

		r.Get("/menu", controllers.Menu(logg))

		r.Route("/collections", func(r chi.Router) {
			r.Use(middleware.RequireRole(logg, enums.RoleCollector, enums.RoleAdmin))
			r.Get("/", controllers.CollectionsList(deps.Collections, logg))
			r.Post("/", controllers.CollectionCreate(deps.Collections, logg))
			r.Patch("/{collectionId}", controllers.CollectionUpdate(deps.Collections, logg))
			r.Delete("/{collectionId}", controllers.CollectionDelete(deps.Collections, logg))
		})

		r.Route("/sales", func(r chi.Router) {
			r.Use(middleware.RequireRole(logg, enums.RoleNursery, enums.RoleAdmin))
			r.Get("/", controllers.SalesList(deps.Sales, logg))
			r.Post("/", controllers.SaleCreate(deps.Sales, logg))
			r.Get("/stats", controllers.SalesStats(deps.Sales, logg))
			r.Get("/{saleId}", controllers.SaleDetail(deps.Sales, logg))
			r.Patch("/{saleId}/payment-status", controllers.SaleUpdatePaymentStatus(deps.Sales, logg))
		})

		r.With(middleware.RequireRole(logg, enums.RoleNursery, enums.RoleAdmin)).
			Post("/payments/checkout", controllers.PaymentCheckout(deps.Payments, logg))

		r.Route("/fixtures", func(r chi.Router) {
			r.Get("/batches", controllers.FixtureSeedBatches())
			r.Get("/mother-trees", controllers.FixtureMotherTrees())
			r.Get("/nurseries", controllers.FixtureNurseries())
			r.Get("/projects", controllers.FixtureRestorationProjects())
			r.Get("/analytics", controllers.FixtureAnalytics())
		})
	})

	return r
}

// A nil *redis.Client must become a nil interface, not a typed nil.
func readinessRedis(client *redis.Client) redis.Pinger {
	if client == nil {
		return nil
	}
	return client
}

func loginLimiter(client *redis.Client) middleware.RateLimiterStore {
	if client == nil {
		return nil
	}
	return client
}
