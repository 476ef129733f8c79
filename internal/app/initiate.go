package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkglog"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkguid"
)

func defaultConfig() map[string]any {
	return map[string]any{
		"tz":                          "UTC",
		"log.level":                   "info",
		"server.address.http":         ":8000",
		"server.request_id":           "uuid",
		"server.shutdown_timeout":     "10s",
		"server.cors.allowed_origins": "*",
		"modules.ledger.enabled":      true,
	}
}

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path, defaultConfig())
	if err != nil {
		slog.Error("failed to init config", "path", path, "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	a.config = cfg
}

func (a *App) initLogging() {
	pkglog.InitLogging(serviceName, pkglog.ParseLevel(a.config.GetString("log.level")))
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(pkgroutine.DefaultMaxGoroutine)

	cid, err := newCorrelationIDGenerator(a.config.GetString("server.request_id"))
	if err != nil {
		slog.Error("failed to init correlation id generator", "error", err)
		os.Exit(1)
	}
	a.cid = cid
}

func newCorrelationIDGenerator(strategy string) (pkguid.StringID, error) {
	if strategy != "snowflake" {
		return pkguid.NewUUID(), nil
	}

	node, err := pkguid.NewSnowflake()
	if err != nil {
		return nil, err
	}
	return pkguid.AsString(node), nil
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.cid)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("server.cors.allowed_origins"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{pkgrouter.HeaderCorrelationID, "X-Total-Count"},
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initClosers() {
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}

// ShutdownTimeout bounds how long Stop may take.
func (a *App) ShutdownTimeout() time.Duration {
	if d := a.config.GetDuration("server.shutdown_timeout"); d > 0 {
		return d
	}
	return 10 * time.Second
}
