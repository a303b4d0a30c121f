// Package app assembles the whole storefront behind one router: catalog
// browsing, cart, auth, checkout, and the admin surface. Everything is
// constructed by the caller and passed in; nothing here is a singleton.
package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"Isfahan/internal/cart"
	"Isfahan/internal/catalog"
	"Isfahan/internal/order"
	"Isfahan/internal/session"
	"Isfahan/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

type Deps struct {
	Catalog  catalog.Store
	Cart     *cart.Engine
	Sessions *session.Store
	Orders   order.Store
	Checkout *order.Service
	JWT      *session.TokenMaker
}

const (
	loginLimitPerMin    = 5
	registerLimitPerMin = 3
	limitWindow         = 60 * time.Second
)

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	metricsOn := httpDeps.MetricsEnabled && httpDeps.Registry != nil
	if httpDeps.MetricsEnabled && httpDeps.Registry == nil && httpDeps.Log != nil {
		httpDeps.Log.Warn("metrics enabled but Registry is nil")
	}

	setupMiddleware(r, httpDeps)
	setupRoutes(r, deps, httpDeps, metricsOn)

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupRoutes(r *chi.Mux, deps Deps, httpDeps HTTPDeps, metricsOn bool) {
	if metricsOn {
		metrics := kit.NewMetrics(httpDeps.Registry)
		r.Use(metrics.Middleware(httpDeps.Service, kit.RoutePattern))
	}

	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(deps, httpDeps.Log))

	catalogSrv := &catalog.Server{Store: deps.Catalog, Log: httpDeps.Log}
	cartSrv := &cart.Server{Cart: deps.Cart, Catalog: deps.Catalog, Log: httpDeps.Log}
	sessionSrv := &session.Server{Log: httpDeps.Log, Store: deps.Sessions, JWT: deps.JWT}
	orderSrv := &order.Server{Svc: deps.Checkout, Store: deps.Orders, Log: httpDeps.Log}

	r.Mount("/books", catalogSrv.Routes())
	r.Get("/featured", catalogSrv.FeaturedHandler())
	r.Mount("/cart", cartSrv.Routes())

	setupAuthRoutes(r, sessionSrv)

	r.Group(func(pr chi.Router) {
		pr.Use(session.RequireUser(deps.JWT))
		pr.Post("/checkout", orderSrv.CheckoutHandler())
		pr.Mount("/orders", orderSrv.Routes())
	})

	r.Route("/admin", func(ar chi.Router) {
		ar.Use(session.RequireAdmin(deps.JWT))
		ar.Mount("/books", catalogSrv.AdminRoutes())
		ar.Mount("/orders", orderSrv.AdminRoutes())
	})

	if metricsOn {
		r.With(kit.MetricsAuth(httpDeps.MetricsToken)).Handle(
			"/metrics",
			promhttp.HandlerFor(httpDeps.Registry, promhttp.HandlerOpts{}),
		)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		kit.WriteError(w, req, http.StatusNotFound, "page not found", map[string]any{"path": req.URL.Path})
	})
}

func setupAuthRoutes(r *chi.Mux, s *session.Server) {
	loginLimiter := kit.NewIPRateLimiter(loginLimitPerMin, int(limitWindow.Seconds()))
	registerLimiter := kit.NewIPRateLimiter(registerLimitPerMin, int(limitWindow.Seconds()))

	r.Route("/auth", func(rr chi.Router) {
		rr.With(loginLimiter.Middleware).Post("/login", s.LoginHandler())
		rr.With(loginLimiter.Middleware).Post("/admin-login", s.AdminLoginHandler())
		rr.With(registerLimiter.Middleware).Post("/register", s.RegisterHandler())
		rr.Post("/logout", s.LogoutHandler())
		rr.Get("/whoami", s.WhoAmIHandler())
	})
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func readyz(deps Deps, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Catalog.Ping(r.Context()); err != nil {
			if log != nil {
				log.Warn("readyz failed: catalog", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
