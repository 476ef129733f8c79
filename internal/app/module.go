package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/txsummary/internal/ledger"
)

func (a *App) initModules() {
	if !a.config.GetBool("modules.ledger.enabled") {
		slog.Warn("module ledger disabled")
		return
	}

	closer, err := ledger.New(a.ctx, ledger.Dependency{
		Router: a.router,
	})
	if err != nil {
		slog.Error("failed to init module ledger", "error", err)
		os.Exit(1)
	}
	if closer != nil {
		a.closerFn["Ledger"] = closer
	}
}
