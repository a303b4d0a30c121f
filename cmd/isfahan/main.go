package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"Isfahan/internal/app"
	"Isfahan/internal/cart"
	"Isfahan/internal/catalog"
	"Isfahan/internal/kvstore"
	"Isfahan/internal/mailer"
	"Isfahan/internal/order"
	"Isfahan/internal/session"
	"Isfahan/pkg/kit"
)

const (
	loginDelay = 800 * time.Millisecond
	emailDelay = 1 * time.Second
)

func main() {
	service := "isfahan"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")
	jwtSecret := getenv("JWT_SECRET", "dev-secret")
	dataDir := getenv("DATA_DIR", "data")
	dbURL := os.Getenv("DATABASE_URL")
	metricsEnabled := getenv("METRICS_ENABLED", "false") == "true"
	metricsToken := getenv("METRICS_TOKEN", "")

	ctx := context.Background()

	slots, err := openSlots(ctx, dbURL, dataDir)
	if err != nil {
		log.Fatal("open slot store", zap.Error(err))
	}

	catalogStore := catalog.NewStore()

	cartEngine := cart.NewEngine(slots, cart.LogNotifier{Log: log}, log)
	if err := cartEngine.Hydrate(ctx); err != nil {
		log.Warn("cart hydration failed, starting empty", zap.Error(err))
	}

	sessions := session.NewStore(slots, log, loginDelay)
	if err := sessions.Hydrate(ctx); err != nil {
		log.Warn("session hydration failed, starting logged out", zap.Error(err))
	}

	orders := order.NewStore()
	mail := &mailer.Simulated{Delay: emailDelay, Log: log}

	checkout := &order.Service{
		Orders: orders,
		Cart:   cartEngine,
		Mail:   mail,
		Log:    log,
	}

	h := app.NewHandler(
		app.Deps{
			Catalog:  catalogStore,
			Cart:     cartEngine,
			Sessions: sessions,
			Orders:   orders,
			Checkout: checkout,
			JWT:      session.NewTokenMaker(jwtSecret),
		},
		app.HTTPDeps{
			Log:            log,
			Service:        service,
			Registry:       prometheus.NewRegistry(),
			MetricsEnabled: metricsEnabled,
			MetricsToken:   metricsToken,
		},
	)

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

// openSlots picks the snapshot backend: Postgres when DATABASE_URL is
// set, otherwise files under the data directory.
func openSlots(ctx context.Context, dbURL, dataDir string) (kvstore.Store, error) {
	if dbURL == "" {
		return kvstore.NewFileStore(dataDir)
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, err
	}

	s := kvstore.NewPostgresStore(db)
	if err := s.Ping(ctx); err != nil {
		return nil, err
	}
	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
