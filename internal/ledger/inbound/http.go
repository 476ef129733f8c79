package inbound

import (
	"context"

	"github.com/shandysiswandi/txsummary/internal/ledger/entity"
	"github.com/shandysiswandi/txsummary/internal/ledger/usecase"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkgrouter"
)

type uc interface {
	ListTransactions(ctx context.Context, filter usecase.ListFilter, limit int) (usecase.ListResult, error)
	CustomerSummary(ctx context.Context, customerID int64) (entity.CustomerSummary, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := NewHTTPEndpoint(uc)

	r.GET("/transactions/", end.ListTransactions) // ?status=&customer_id=&limit=
	r.GET("/customers/:customer_id/summary", end.CustomerSummary)
}
