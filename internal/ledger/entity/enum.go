package entity

import (
	"fmt"
	"strings"
)

type TxStatus string

const (
	TxStatusCompleted TxStatus = "completed"
	TxStatusPending   TxStatus = "pending"
	TxStatusFailed    TxStatus = "failed"
)

// TxStatuses lists every valid status in declaration order.
func TxStatuses() []TxStatus {
	return []TxStatus{TxStatusCompleted, TxStatusPending, TxStatusFailed}
}

// JoinTxStatuses joins every valid status with sep.
func JoinTxStatuses(sep string) string {
	names := make([]string, 0, 3)
	for _, s := range TxStatuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, sep)
}

func (s TxStatus) Valid() bool {
	switch s {
	case TxStatusCompleted, TxStatusPending, TxStatusFailed:
		return true
	default:
		return false
	}
}

// ParseTxStatus matches value exactly; "Completed" is not a status.
func ParseTxStatus(value string) (TxStatus, error) {
	status := TxStatus(value)
	if !status.Valid() {
		return "", fmt.Errorf("invalid tx status: %q", value)
	}
	return status, nil
}
