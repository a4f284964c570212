package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	_ "fms/cdu/docs"
	"fms/cdu/pkg/catalog"
	"fms/cdu/pkg/config"
	"fms/cdu/pkg/engine/routeplanner"
	"fms/cdu/pkg/kv"
	"fms/cdu/pkg/logger"
	"fms/cdu/pkg/server/rest"
	"fms/cdu/pkg/server/rest/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

//	@title			fms cdu API
//	@version		1.0
//	@description	flight management computer CDU route planner

//	@contact.name	fms cdu
//	@description 	flight management computer CDU route planner. Sequences catalog waypoints between departure and destination by great-circle distance.

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	config.LoadEnv()
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	log := logger.New(cfg.LogLevel, cfg.LogDir)

	wpCatalog, kvStore, closeDB := openCatalog(cfg, log)
	defer closeDB()

	if dups := wpCatalog.Duplicates(); len(dups) > 0 {
		log.Warn("duplicate ICAO codes in catalog, first entry wins", slog.Any("codes", dups))
	}
	log.Info("waypoint catalog ready", slog.Int("waypoints", wpCatalog.Len()))

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost"+cfg.ListenAddr+"/swagger/doc.json"), //The url pointing to API definition
	))

	planner := routeplanner.NewRoutePlanner()
	cduSvc := service.NewCDUService(wpCatalog, planner, kvStore, log)
	rest.CDURouter(r, cduSvc, m)

	log.Info("server started", slog.String("addr", cfg.ListenAddr))
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Error("server stopped", slog.Any("err", err))
		os.Exit(1)
	}
}

// openCatalog prefers the pebble snapshot written by cmd/preprocessing and
// falls back to the json catalog file. The returned KVDB is nil without a
// snapshot, radius search is then unavailable.
func openCatalog(cfg config.Config, log *slog.Logger) (*catalog.Catalog, service.KVDB, func()) {
	kvDB, err := kv.OpenKVDB(cfg.DBPath)
	if err != nil {
		log.Info("no catalog db, run cmd/preprocessing to create one", slog.String("path", cfg.DBPath), slog.Any("err", err))
	} else {
		c, err := kvDB.LoadCatalog()
		if err == nil {
			log.Info("catalog loaded from db", slog.String("path", cfg.DBPath))
			return c, kvDB, func() { kvDB.Close() }
		}
		log.Info("no catalog snapshot in db", slog.Any("err", err))
		kvDB.Close()
	}

	c, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		log.Error("cannot load waypoint catalog", slog.String("file", cfg.CatalogFile), slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("catalog loaded from file", slog.String("file", cfg.CatalogFile))
	return c, nil, func() {}
}
