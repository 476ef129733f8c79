package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/shandysiswandi/txsummary/internal/ledger/entity"
)

// ErrInvalidSeed is returned when seed records break the store invariants.
var ErrInvalidSeed = errors.New("invalid seed transaction")

// InMemoryStore holds an ordered, read-only list of transactions.
//
// Contents are fixed at construction, so concurrent readers need no locking.
type InMemoryStore struct {
	txs []entity.Transaction
}

func NewInMemoryStore(seed []entity.Transaction) (*InMemoryStore, error) {
	seen := make(map[int64]struct{}, len(seed))
	for i, tx := range seed {
		if tx.ID <= 0 {
			return nil, fmt.Errorf("%w: record %d has non-positive id %d", ErrInvalidSeed, i, tx.ID)
		}
		if _, dup := seen[tx.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidSeed, tx.ID)
		}
		if tx.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: id %d has negative amount %s", ErrInvalidSeed, tx.ID, tx.Amount)
		}
		if !tx.Status.Valid() {
			return nil, fmt.Errorf("%w: id %d has status %q", ErrInvalidSeed, tx.ID, tx.Status)
		}
		seen[tx.ID] = struct{}{}
	}

	return &InMemoryStore{txs: slices.Clone(seed)}, nil
}

// All returns every transaction in insertion order. The slice is a copy.
func (s *InMemoryStore) All(ctx context.Context) ([]entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return slices.Clone(s.txs), nil
}
