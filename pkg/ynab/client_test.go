package ynab_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-client"
	tinyagent "github.com/mutablelogic/go-tinyagent"
	ynab "github.com/mutablelogic/go-tinyagent/pkg/ynab"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SERVER

const (
	budgetsResponse = `{"data":{"budgets":[
		{"id":"b1","name":"Household","last_modified_on":"2025-05-01T10:00:00+00:00","currency_format":{"iso_code":"USD","decimal_digits":2,"symbol_first":true,"currency_symbol":"$","display_symbol":true}}
	]}}`
	accountsResponse = `{"data":{"accounts":[
		{"id":"a1","name":"Checking","type":"checking","on_budget":true,"closed":false,"note":null,"balance":123450,"cleared_balance":100000,"uncleared_balance":23450,"deleted":false}
	]}}`
	transactionsResponse = `{"data":{"transactions":[
		{"id":"t1","date":"2025-05-02","amount":-45990,"memo":"Weekly shop","cleared":"cleared","approved":true,"account_id":"a1","account_name":"Checking","payee_id":"p1","payee_name":"Grocer","category_id":null,"category_name":null,"deleted":false}
	]}}`
	budgetResponse = `{"data":{"budget":{"id":"b1","name":"Household","currency_format":{"iso_code":"GBP","decimal_digits":2},
		"accounts":[],"categories":[
		{"id":"c1","category_group_id":"g1","name":"Groceries","hidden":false,"note":null,"budgeted":400000,"activity":-45990,"balance":354010,"deleted":false}
	]}}}`
)

type recorder struct {
	sync.Mutex
	requests atomic.Int32
	method   string
	path     string
	query    string
	auth     string
	body     map[string]any
}

func newServer(t *testing.T, rec *recorder) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Lock()
		defer rec.Unlock()
		rec.requests.Add(1)
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.auth = r.Header.Get("Authorization")
		if r.Body != nil && r.Method == http.MethodPost {
			rec.body = nil
			_ = json.NewDecoder(r.Body).Decode(&rec.body)
		}

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/budgets":
			w.Write([]byte(budgetsResponse))
		case r.Method == http.MethodGet && r.URL.Path == "/budgets/b1/accounts":
			w.Write([]byte(accountsResponse))
		case r.Method == http.MethodGet && r.URL.Path == "/budgets/b1/accounts/a1/transactions":
			w.Write([]byte(transactionsResponse))
		case r.Method == http.MethodGet && r.URL.Path == "/budgets/b1":
			w.Write([]byte(budgetResponse))
		case r.Method == http.MethodPost && r.URL.Path == "/budgets/b1/transactions":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"data":{"transaction_ids":["t2"],"transaction":{"id":"t2","date":"2025-05-03","amount":-12340,"cleared":"uncleared","approved":false,"account_id":"a1","payee_name":"Cafe","memo":"Lunch","deleted":false}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"id":"404.2","name":"resource_not_found","detail":"Resource not found"}}`))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newClient(t *testing.T, token string, rec *recorder) *ynab.Client {
	t.Helper()
	server := newServer(t, rec)
	c, err := ynab.New(token, client.OptEndpoint(server.URL))
	require.NoError(t, err)
	return c
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_client_001(t *testing.T) {
	assert := assert.New(t)
	rec := new(recorder)
	c := newClient(t, "token", rec)

	budgets, err := c.Budgets(context.Background())
	assert.NoError(err)
	if assert.Len(budgets, 1) {
		assert.Equal("b1", budgets[0].ID)
		assert.Equal("Household", budgets[0].Name)
		assert.Equal("USD", budgets[0].CurrencyFormat.ISOCode)
	}
	assert.Equal("Bearer token", rec.auth)
	assert.Equal(http.MethodGet, rec.method)
}

func Test_client_002(t *testing.T) {
	assert := assert.New(t)
	rec := new(recorder)
	c := newClient(t, "token", rec)

	accounts, err := c.Accounts(context.Background(), &ynab.AccountsRequest{BudgetID: "b1"})
	assert.NoError(err)
	if assert.Len(accounts, 1) {
		assert.Equal("Checking", accounts[0].Name)
		assert.Equal(123.45, accounts[0].Balance)
		assert.Equal(100.0, accounts[0].ClearedBalance)
		assert.Equal(23.45, accounts[0].UnclearedBalance)
		assert.Empty(accounts[0].Note)
	}
	assert.Equal("/budgets/b1/accounts", rec.path)
}

func Test_client_003(t *testing.T) {
	assert := assert.New(t)
	rec := new(recorder)
	c := newClient(t, "token", rec)

	transactions, err := c.Transactions(context.Background(), &ynab.TransactionsRequest{BudgetID: "b1", AccountID: "a1", SinceDate: "2025-05-01"})
	assert.NoError(err)
	if assert.Len(transactions, 1) {
		assert.Equal(-45.99, transactions[0].Amount)
		assert.Equal("Grocer", transactions[0].PayeeName)
		assert.Empty(transactions[0].CategoryID)
	}
	assert.Equal("since_date=2025-05-01", rec.query)

	_, err = c.Transactions(context.Background(), &ynab.TransactionsRequest{BudgetID: "b1", AccountID: "a1"})
	assert.NoError(err)
	assert.Empty(rec.query)
}

func Test_client_004(t *testing.T) {
	assert := assert.New(t)
	rec := new(recorder)
	c := newClient(t, "token", rec)

	summary, err := c.BudgetSummary(context.Background(), &ynab.BudgetSummaryRequest{BudgetID: "b1"})
	assert.NoError(err)
	assert.Equal("Household", summary.Name)
	assert.Equal("GBP", summary.CurrencyFormat.ISOCode)
	if assert.Len(summary.Categories, 1) {
		category := summary.Categories[0]
		assert.Equal("Groceries", category.Name)
		assert.Equal(400.0, category.Budgeted)
		assert.Equal(-45.99, category.Activity)
		assert.Equal(354.01, category.Balance)
	}
}

func Test_client_005(t *testing.T) {
	assert := assert.New(t)
	rec := new(recorder)
	c := newClient(t, "token", rec)

	transaction, err := c.CreateTransaction(context.Background(), &ynab.CreateTransactionRequest{
		BudgetID:  "b1",
		AccountID: "a1",
		Date:      "2025-05-03",
		Amount:    -12.34,
		PayeeName: "Cafe",
		Memo:      "Lunch",
	})
	assert.NoError(err)
	assert.Equal("t2", transaction.ID)
	assert.Equal(-12.34, transaction.Amount)

	assert.Equal(http.MethodPost, rec.method)
	assert.Equal("/budgets/b1/transactions", rec.path)
	body, ok := rec.body["transaction"].(map[string]any)
	if assert.True(ok) {
		assert.Equal("a1", body["account_id"])
		assert.Equal("2025-05-03", body["date"])
		assert.EqualValues(-12340, body["amount"])
		assert.Equal("Cafe", body["payee_name"])
		assert.Equal("Lunch", body["memo"])
		assert.NotContains(body, "category_id")
		assert.NotContains(body, "cleared")
		assert.NotContains(body, "approved")
	}
}

func Test_client_006(t *testing.T) {
	// Missing token fails without sending a request
	assert := assert.New(t)
	rec := new(recorder)
	c := newClient(t, "", rec)

	_, err := c.Budgets(context.Background())
	assert.ErrorIs(err, tinyagent.ErrConfig)
	assert.Contains(err.Error(), "YNAB_TOKEN not set")
	_, err = c.Accounts(context.Background(), &ynab.AccountsRequest{BudgetID: "b1"})
	assert.ErrorIs(err, tinyagent.ErrConfig)
	assert.Equal(int32(0), rec.requests.Load())
}

func Test_client_007(t *testing.T) {
	// Upstream errors and validation errors
	assert := assert.New(t)
	rec := new(recorder)
	c := newClient(t, "token", rec)

	_, err := c.Accounts(context.Background(), &ynab.AccountsRequest{BudgetID: "unknown"})
	assert.Error(err)
	assert.Equal(int32(1), rec.requests.Load())

	_, err = c.Accounts(context.Background(), &ynab.AccountsRequest{})
	assert.ErrorIs(err, tinyagent.ErrBadParameter)
	_, err = c.Accounts(context.Background(), &ynab.AccountsRequest{BudgetID: "../b1"})
	assert.ErrorIs(err, tinyagent.ErrBadParameter)
	_, err = c.Transactions(context.Background(), &ynab.TransactionsRequest{BudgetID: "b1", AccountID: "a1", SinceDate: "May 1st"})
	assert.ErrorIs(err, tinyagent.ErrBadParameter)
	_, err = c.CreateTransaction(context.Background(), &ynab.CreateTransactionRequest{BudgetID: "b1", AccountID: "a1", Date: "2025-05-03", PayeeName: " "})
	assert.ErrorIs(err, tinyagent.ErrBadParameter)
	assert.Equal(int32(1), rec.requests.Load())
}
