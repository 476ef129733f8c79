package entity

import "github.com/shopspring/decimal"

// CustomerSummary aggregates every transaction of one customer, whatever
// its status.
type CustomerSummary struct {
	CustomerID        int64
	TotalTransactions int
	TotalAmount       decimal.Decimal
}
