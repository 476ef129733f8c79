package inbound

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/txsummary/internal/ledger/store"
	"github.com/shandysiswandi/txsummary/internal/ledger/usecase"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/txsummary/internal/pkg/pkguid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
}

type fieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func newTestRouter(t *testing.T) *pkgrouter.Router {
	t.Helper()

	storage, err := store.NewInMemoryStore(store.SeedTransactions())
	require.NoError(t, err)

	router := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(router, usecase.New(usecase.Dependency{Store: storage}))

	return router
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func listTransactions(t *testing.T, router http.Handler, target string) []Transaction {
	t.Helper()
	rec := get(t, router, target)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var txs []Transaction
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&txs))
	return txs
}

func txIDs(txs []Transaction) []int64 {
	out := make([]int64, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.ID)
	}
	return out
}

func validationFields(t *testing.T, rec *httptest.ResponseRecorder) []fieldDetail {
	t.Helper()
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	var fields []fieldDetail
	require.NoError(t, json.Unmarshal(body.Detail, &fields))
	return fields
}

func TestListTransactionsNoFilter(t *testing.T) {
	router := newTestRouter(t)

	txs := listTransactions(t, router, "/transactions/")
	require.Len(t, txs, 5)
	assert.Equal(t, int64(1), txs[0].ID)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, txIDs(txs))
}

func TestListTransactionsFilters(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		target string
		want   []int64
	}{
		{target: "/transactions/?status=pending", want: []int64{2}},
		{target: "/transactions/?customer_id=20", want: []int64{3, 4}},
		{target: "/transactions/?limit=2", want: []int64{1, 2}},
		{target: "/transactions/?limit=1000", want: []int64{1, 2, 3, 4, 5}},
		{target: "/transactions/?limit=1", want: []int64{1}},
		{target: "/transactions/?status=completed&customer_id=10", want: []int64{1}},
		{target: "/transactions/?status=completed&customer_id=10&limit=1", want: []int64{1}},
		{target: "/transactions/?customer_id=999", want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, txIDs(listTransactions(t, router, tt.target)))
		})
	}
}

func TestListTransactionsShape(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/transactions/?status=pending")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`[{"id":2,"customer_id":10,"amount":50,"currency":"GBP","status":"pending"}]`,
		rec.Body.String(),
	)
}

func TestListTransactionsEmptyIsArray(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/transactions/?status=failed&customer_id=30")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Equal(t, "0", rec.Header().Get(HeaderTotalCount))
}

func TestListTransactionsTotalCountHeader(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/transactions/?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get(HeaderTotalCount))
}

func TestListTransactionsValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		target    string
		wantField string
		wantType  string
	}{
		{target: "/transactions/?limit=1001", wantField: "limit", wantType: "max"},
		{target: "/transactions/?limit=0", wantField: "limit", wantType: "min"},
		{target: "/transactions/?limit=abc", wantField: "limit", wantType: "int_parsing"},
		{target: "/transactions/?status=nonexistent", wantField: "status", wantType: "oneof"},
		{target: "/transactions/?status=COMPLETED", wantField: "status", wantType: "oneof"},
		{target: "/transactions/?customer_id=ten", wantField: "customer_id", wantType: "int_parsing"},
		{target: "/transactions/?limit=", wantField: "limit", wantType: "int_parsing"},
		{target: "/transactions/?customer_id=", wantField: "customer_id", wantType: "int_parsing"},
		{target: "/transactions/?status=", wantField: "status", wantType: "oneof"},
		{target: "/transactions/?limit=5&limit=0", wantField: "limit", wantType: "min"},
		{target: "/transactions/?status=pending&status=bogus", wantField: "status", wantType: "oneof"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			fields := validationFields(t, get(t, router, tt.target))
			require.Len(t, fields, 1)
			assert.Equal(t, tt.wantField, fields[0].Field)
			assert.Equal(t, tt.wantType, fields[0].Type)
			assert.NotEmpty(t, fields[0].Message)
		})
	}
}

func TestListTransactionsReportsEveryBadField(t *testing.T) {
	router := newTestRouter(t)

	fields := validationFields(t, get(t, router, "/transactions/?status=bogus&limit=5000&customer_id=x"))

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	assert.ElementsMatch(t, []string{"status", "limit", "customer_id"}, names)
}

func TestListTransactionsRepeatedParamUsesLastValue(t *testing.T) {
	router := newTestRouter(t)

	txs := listTransactions(t, router, "/transactions/?status=bogus&status=pending&limit=0&limit=5")
	assert.Equal(t, []int64{2}, txIDs(txs))
}

func TestListTransactionsWithoutTrailingSlashRedirects(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/transactions?status=pending")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/transactions/?status=pending", rec.Header().Get("Location"))
}

func TestPathsAreCaseSensitive(t *testing.T) {
	router := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, get(t, router, "/TRANSACTIONS/").Code)
	assert.Equal(t, http.StatusNotFound, get(t, router, "/Customers/10/summary").Code)
}

func TestCustomerSummary(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		target string
		want   string
	}{
		{target: "/customers/10/summary", want: `{"customer_id":10,"total_transactions":2,"total_amount":150}`},
		{target: "/customers/20/summary", want: `{"customer_id":20,"total_transactions":2,"total_amount":225}`},
		{target: "/customers/30/summary", want: `{"customer_id":30,"total_transactions":1,"total_amount":300}`},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, router, tt.target)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestCustomerSummaryNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/customers/999/summary")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	var detail string
	require.NoError(t, json.Unmarshal(body.Detail, &detail))
	assert.Equal(t, "Customer 999 not found or has no transactions.", detail)
}

func TestCustomerSummaryInvalidID(t *testing.T) {
	router := newTestRouter(t)

	fields := validationFields(t, get(t, router, "/customers/invalid/summary"))
	require.Len(t, fields, 1)
	assert.Equal(t, "customer_id", fields[0].Field)
	assert.Equal(t, "int_parsing", fields[0].Type)
}

func TestResponsesAreIdempotent(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{
		"/transactions/",
		"/transactions/?status=completed&limit=2",
		"/customers/20/summary",
		"/customers/999/summary",
	} {
		first := get(t, router, target)
		second := get(t, router, target)

		assert.Equal(t, first.Code, second.Code, target)
		assert.Equal(t, first.Body.Bytes(), second.Body.Bytes(), target)
	}
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"It Works!"}`, rec.Body.String())
}
