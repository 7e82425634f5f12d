package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"washadmin/internal/domain/balance"
	"washadmin/internal/domain/inventory"
	"washadmin/internal/domain/records"
	"washadmin/internal/platform/config"
	"washadmin/internal/platform/db"
	"washadmin/internal/platform/metrics"
	"washadmin/internal/transport/http/api"
	clientshandler "washadmin/internal/transport/http/handlers/clients"
	employeeshandler "washadmin/internal/transport/http/handlers/employees"
	expenseshandler "washadmin/internal/transport/http/handlers/expenses"
	salaryreporthandler "washadmin/internal/transport/http/handlers/salaryreport"
	schemeshandler "washadmin/internal/transport/http/handlers/schemes"
	stockhandler "washadmin/internal/transport/http/handlers/stock"
	washeventshandler "washadmin/internal/transport/http/handlers/washevents"
	"washadmin/internal/transport/http/middleware"
)

func Run() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			log.Error("migrations failed", "err", err)
			os.Exit(1)
		}
	}

	collector := metrics.New()
	store := records.NewStore(pool)
	cache := records.NewCache()
	svc := records.NewService(store, cache)
	inventoryRec := inventory.NewReconciler(store, cache, log, collector)
	balanceRec := balance.NewReconciler(store, cache, log, collector)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log, collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		washeventshandler.NewHandler(svc, inventoryRec).RegisterRoutes(r)
		expenseshandler.NewHandler(svc, inventoryRec).RegisterRoutes(r)
		clientshandler.NewHandler(svc, balanceRec).RegisterRoutes(r)
		employeeshandler.NewHandler(svc, inventoryRec).RegisterRoutes(r)
		schemeshandler.NewHandler(svc).RegisterRoutes(r)
		salaryreporthandler.NewHandler(svc).RegisterRoutes(r)
		stockhandler.NewHandler(svc).RegisterRoutes(r)
	})

	log.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
}
