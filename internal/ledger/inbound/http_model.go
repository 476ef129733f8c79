package inbound

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shandysiswandi/txsummary/internal/ledger/entity"
	"github.com/shandysiswandi/txsummary/internal/ledger/usecase"
)

// HeaderTotalCount carries the number of matches before the limit was applied.
const HeaderTotalCount = "X-Total-Count"

type Transaction struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customer_id"`
	Amount     float64         `json:"amount"`
	Currency   string          `json:"currency"`
	Status     entity.TxStatus `json:"status"`
}

// TransactionListResponse encodes as a bare JSON array.
type TransactionListResponse struct {
	Transactions []Transaction
	total        int
}

func (r TransactionListResponse) MarshalJSON() ([]byte, error) {
	if r.Transactions == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Transactions)
}

func (r TransactionListResponse) Header() http.Header {
	return http.Header{HeaderTotalCount: []string{strconv.Itoa(r.total)}}
}

type CustomerSummaryResponse struct {
	CustomerID        int64   `json:"customer_id"`
	TotalTransactions int     `json:"total_transactions"`
	TotalAmount       float64 `json:"total_amount"`
}

var (
	statusRule = "oneof=" + entity.JoinTxStatuses(" ")
	limitRule  = fmt.Sprintf("min=%d,max=%d", usecase.MinLimit, usecase.MaxLimit)
)

// listQuery is the validated form of the listing query string.
type listQuery struct {
	Status     string
	CustomerID *int64
	Limit      int
}
