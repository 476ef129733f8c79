package store

import (
	"github.com/shandysiswandi/txsummary/internal/ledger/entity"
	"github.com/shopspring/decimal"
)

// SeedTransactions returns the fixed records the service starts with.
func SeedTransactions() []entity.Transaction {
	return []entity.Transaction{
		{ID: 1, CustomerID: 10, Amount: decimal.RequireFromString("100.0"), Currency: "GBP", Status: entity.TxStatusCompleted},
		{ID: 2, CustomerID: 10, Amount: decimal.RequireFromString("50.0"), Currency: "GBP", Status: entity.TxStatusPending},
		{ID: 3, CustomerID: 20, Amount: decimal.RequireFromString("200.0"), Currency: "EUR", Status: entity.TxStatusCompleted},
		{ID: 4, CustomerID: 20, Amount: decimal.RequireFromString("25.0"), Currency: "EUR", Status: entity.TxStatusFailed},
		{ID: 5, CustomerID: 30, Amount: decimal.RequireFromString("300.0"), Currency: "GBP", Status: entity.TxStatusCompleted},
	}
}
