package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/txsummary/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkglog"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkguid"
)

const serviceName = "txsummary"

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	cid       pkguid.StringID
	goroutine *pkgroutine.Manager

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging(serviceName, slog.LevelInfo)

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:      ctx,
		cancel:   cancel,
		closerFn: map[string]func(context.Context) error{},
	}

	app.initConfig()
	app.initLogging()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
