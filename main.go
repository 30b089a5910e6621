package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"Buildcalc/internal/calc/beam"
	"Buildcalc/internal/calc/concrete"
	"Buildcalc/internal/calc/form"
	"Buildcalc/internal/calc/importer"
	"Buildcalc/internal/calc/joist"
	"Buildcalc/internal/calc/lumber"
	"Buildcalc/internal/calc/report"
	"Buildcalc/internal/calc/stairs"
	"Buildcalc/internal/calc/tables"
	"Buildcalc/internal/calc/wire"
	"Buildcalc/internal/config"
	"Buildcalc/internal/logger"
	"Buildcalc/internal/middleware"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

// newRouter wires every calculator and table endpoint onto one router.
func newRouter(cfg *config.Config, set *tables.Set) (http.Handler, error) {
	beamTable, ok := set.Get(beam.TableName)
	if !ok {
		return nil, fmt.Errorf("table %q is not loaded", beam.TableName)
	}
	wireTable, ok := set.Get(wire.TableName)
	if !ok {
		return nil, fmt.Errorf("table %q is not loaded", wire.TableName)
	}

	r := mux.NewRouter()
	r.Use(middleware.Logging)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		form.JSON(w, http.StatusOK, map[string]any{"status": "ok", "tables": set.Names()})
	}).Methods("GET")

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	beamH := &beam.Handler{Table: beamTable}
	joistH := &joist.Handler{Tables: set}
	wireH := &wire.Handler{Table: wireTable}
	stairsH := &stairs.Handler{}
	concreteH := &concrete.Handler{}
	lumberH := &lumber.Handler{}

	api.HandleFunc("/construction/beam-size", beamH.Calc).Methods("POST")
	api.HandleFunc("/construction/joist-span", joistH.Calc).Methods("POST")
	api.HandleFunc("/construction/wire-size", wireH.Calc).Methods("POST")
	api.HandleFunc("/construction/stair-stringer", stairsH.Calc).Methods("POST")
	api.HandleFunc("/construction/concrete", concreteH.Calc).Methods("POST")
	api.HandleFunc("/construction/board-feet", lumberH.Calc).Methods("POST")

	tablesH := &tables.Handler{Set: set}
	importH := &importer.Handler{Tables: set}
	reportH := &report.Handler{Tables: set}

	api.HandleFunc("/tables", tablesH.List).Methods("GET")
	api.HandleFunc("/tables/{name}", tablesH.Get).Methods("GET")
	api.HandleFunc("/tables/{name}/xlsx", importH.Export).Methods("GET")
	api.HandleFunc("/tables/{name}/import", importH.Import).Methods("POST")
	api.HandleFunc("/reports/sizing", reportH.Generate).Methods("POST")

	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.Server.StaticDir)))

	return middleware.CORS(cfg.Server.CORSOrigin, r), nil
}

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, toml or json)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid config: %v", err)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	set, err := tables.Load(cfg.Tables.Dir)
	if err != nil {
		logger.Fatal("Failed to load tables: %v", err)
	}
	logger.Info("Loaded tables: %v", set.Names())

	handler, err := newRouter(cfg, set)
	if err != nil {
		logger.Fatal("Failed to build router: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on %s", cfg.Server.Addr)
		var err error
		if cfg.Server.TLS() {
			err = server.ListenAndServeTLS(cfg.Server.TLSCert, cfg.Server.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Error("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Failed to stop server: %v", err)
	}
	wg.Wait()
	logger.Info("Server stopped")
}
