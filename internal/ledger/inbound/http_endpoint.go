package inbound

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shandysiswandi/txsummary/internal/ledger/entity"
	"github.com/shandysiswandi/txsummary/internal/ledger/usecase"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkgerror"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc       uc
	validate *validator.Validate
}

func NewHTTPEndpoint(uc uc) *HTTPEndpoint {
	return &HTTPEndpoint{uc: uc, validate: validator.New()}
}

func (h *HTTPEndpoint) ListTransactions(ctx context.Context, r *http.Request) (any, error) {
	q, err := h.parseListQuery(r)
	if err != nil {
		return nil, err
	}

	filter := usecase.ListFilter{CustomerID: q.CustomerID}
	if q.Status != "" {
		status, err := entity.ParseTxStatus(q.Status)
		if err != nil {
			return nil, pkgerror.NewInvalidInput(err)
		}
		filter.Status = &status
	}

	result, err := h.uc.ListTransactions(ctx, filter, q.Limit)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, 0, len(result.Transactions))
	for _, tx := range result.Transactions {
		transactions = append(transactions, toHTTPTransaction(tx))
	}

	return TransactionListResponse{
		Transactions: transactions,
		total:        result.Total,
	}, nil
}

func (h *HTTPEndpoint) CustomerSummary(ctx context.Context, r *http.Request) (any, error) {
	customerID, err := strconv.ParseInt(pkgrouter.GetParam(ctx, "customer_id"), 10, 64)
	if err != nil {
		return nil, pkgerror.NewValidation(intParsingError("customer_id"))
	}

	summary, err := h.uc.CustomerSummary(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return CustomerSummaryResponse{
		CustomerID:        summary.CustomerID,
		TotalTransactions: summary.TotalTransactions,
		TotalAmount:       summary.TotalAmount.InexactFloat64(),
	}, nil
}

// parseListQuery reports every bad parameter at once rather than the first.
// A parameter given more than once takes its last value; one given empty is
// invalid rather than absent.
func (h *HTTPEndpoint) parseListQuery(r *http.Request) (listQuery, error) {
	query := r.URL.Query()
	q := listQuery{Limit: usecase.DefaultLimit}

	var fields []pkgerror.FieldError

	if raw, ok := lastValue(query, "status"); ok {
		if err := h.validate.Var(raw, statusRule); err != nil {
			fields = append(fields, fieldErrors("status", err)...)
		} else {
			q.Status = raw
		}
	}

	if raw, ok := lastValue(query, "customer_id"); ok {
		value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			fields = append(fields, intParsingError("customer_id"))
		} else {
			q.CustomerID = &value
		}
	}

	if raw, ok := lastValue(query, "limit"); ok {
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			fields = append(fields, intParsingError("limit"))
		} else if err := h.validate.Var(value, limitRule); err != nil {
			fields = append(fields, fieldErrors("limit", err)...)
		} else {
			q.Limit = value
		}
	}

	if len(fields) > 0 {
		return listQuery{}, pkgerror.NewValidation(fields...)
	}

	return q, nil
}

func lastValue(query url.Values, key string) (string, bool) {
	vals, ok := query[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

func fieldErrors(field string, err error) []pkgerror.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []pkgerror.FieldError{{Field: field, Message: "Invalid value", Type: "invalid"}}
	}

	fields := make([]pkgerror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, pkgerror.FieldError{
			Field:   field,
			Message: validationMessage(fe),
			Type:    fe.Tag(),
		})
	}
	return fields
}

func intParsingError(field string) pkgerror.FieldError {
	return pkgerror.FieldError{
		Field:   field,
		Message: "Value must be a valid integer",
		Type:    "int_parsing",
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "Value must be greater than or equal to " + fe.Param()
	case "max":
		return "Value must be less than or equal to " + fe.Param()
	case "oneof":
		return "Value must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "Invalid value"
	}
}

func toHTTPTransaction(tx entity.Transaction) Transaction {
	return Transaction{
		ID:         tx.ID,
		CustomerID: tx.CustomerID,
		Amount:     tx.Amount.InexactFloat64(),
		Currency:   tx.Currency,
		Status:     tx.Status,
	}
}
