package entity

import "github.com/shopspring/decimal"

type Transaction struct {
	ID         int64
	CustomerID int64
	Amount     decimal.Decimal
	Currency   string
	Status     TxStatus
}
