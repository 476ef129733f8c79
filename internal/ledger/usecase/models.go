package usecase

import "github.com/shandysiswandi/txsummary/internal/ledger/entity"

const (
	DefaultLimit = 100
	MinLimit     = 1
	MaxLimit     = 1000
)

type ListResult struct {
	Transactions []entity.Transaction
	// Total counts matches before the limit was applied.
	Total int
}

// ListFilter narrows a listing. Nil fields do not filter; set fields must
// all match.
type ListFilter struct {
	Status     *entity.TxStatus
	CustomerID *int64
}

func (f ListFilter) Matches(tx entity.Transaction) bool {
	if f.Status != nil && tx.Status != *f.Status {
		return false
	}

	if f.CustomerID != nil && tx.CustomerID != *f.CustomerID {
		return false
	}

	return true
}
