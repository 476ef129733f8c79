package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/txsummary/internal/ledger/entity"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkgerror"
	"github.com/shopspring/decimal"
)

type Store interface {
	All(ctx context.Context) ([]entity.Transaction, error)
}

type Dependency struct {
	Store Store
}

type Usecase struct {
	store Store
}

func New(dep Dependency) *Usecase {
	return &Usecase{store: dep.Store}
}

// ListTransactions returns, in store order, the first limit transactions
// matching filter.
func (u *Usecase) ListTransactions(ctx context.Context, filter ListFilter, limit int) (ListResult, error) {
	if limit < MinLimit || limit > MaxLimit {
		return ListResult{}, pkgerror.NewValidation(pkgerror.FieldError{
			Field:   "limit",
			Message: fmt.Sprintf("Value must be between %d and %d", MinLimit, MaxLimit),
			Type:    "range",
		})
	}

	if filter.Status != nil && !filter.Status.Valid() {
		return ListResult{}, pkgerror.NewValidation(pkgerror.FieldError{
			Field:   "status",
			Message: "Value must be one of: " + entity.JoinTxStatuses(", "),
			Type:    "oneof",
		})
	}

	txs, err := u.all(ctx)
	if err != nil {
		return ListResult{}, err
	}

	total := 0
	items := make([]entity.Transaction, 0, min(limit, len(txs)))
	for _, tx := range txs {
		if !filter.Matches(tx) {
			continue
		}

		if total < limit {
			items = append(items, tx)
		}
		total++
	}

	slog.DebugContext(ctx, "transactions listed", "matched", total, "returned", len(items), "limit", limit)

	return ListResult{
		Transactions: items,
		Total:        total,
	}, nil
}

// CustomerSummary counts and sums every transaction of customerID, pending
// and failed ones included.
func (u *Usecase) CustomerSummary(ctx context.Context, customerID int64) (entity.CustomerSummary, error) {
	txs, err := u.all(ctx)
	if err != nil {
		return entity.CustomerSummary{}, err
	}

	summary := entity.CustomerSummary{
		CustomerID:  customerID,
		TotalAmount: decimal.Zero,
	}
	for _, tx := range txs {
		if tx.CustomerID != customerID {
			continue
		}

		summary.TotalTransactions++
		summary.TotalAmount = summary.TotalAmount.Add(tx.Amount)
	}

	if summary.TotalTransactions == 0 {
		return entity.CustomerSummary{}, pkgerror.NewBusiness(
			"Customer "+strconv.FormatInt(customerID, 10)+" not found or has no transactions.",
			pkgerror.CodeNotFound,
		)
	}

	return summary, nil
}

func (u *Usecase) all(ctx context.Context) ([]entity.Transaction, error) {
	if u.store == nil {
		return nil, pkgerror.NewServer(errors.New("missing dependency"))
	}

	txs, err := u.store.All(ctx)
	if err != nil {
		return nil, normalizeErr(err)
	}

	return txs, nil
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return pkgerror.NewTimeout(err)
	}
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewBusiness("Resource not found", pkgerror.CodeNotFound)
	}
	return pkgerror.NewServer(err)
}
