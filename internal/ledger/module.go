package ledger

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/txsummary/internal/ledger/inbound"
	"github.com/shandysiswandi/txsummary/internal/ledger/store"
	"github.com/shandysiswandi/txsummary/internal/ledger/usecase"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkgrouter"
)

type Dependency struct {
	Router *pkgrouter.Router
}

// New wires the transaction listing and customer summary endpoints onto the
// router. The returned closer is nil: the store holds no resources.
func New(ctx context.Context, dep Dependency) (func(context.Context) error, error) {
	storage, err := store.NewInMemoryStore(store.SeedTransactions())
	if err != nil {
		return nil, err
	}

	uc := usecase.New(usecase.Dependency{Store: storage})
	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	slog.InfoContext(ctx, "ledger module ready")

	return nil, nil
}
