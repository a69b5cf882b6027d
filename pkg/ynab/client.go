/*
ynab implements an API client for the YNAB (You Need A Budget) API.
https://api.ynab.com/
*/
package ynab

import (
	"context"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	tinyagent "github.com/mutablelogic/go-tinyagent"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	token string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://api.ynab.com/v1"
	TokenEnv = "YNAB_TOKEN"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client. A missing token does not prevent the client
// from being created, but every request will then fail without being sent.
// The endpoint can be overridden with client.OptEndpoint.
func New(token string, opts ...client.ClientOpt) (*Client, error) {
	token = strings.TrimSpace(token)
	opts = append([]client.ClientOpt{client.OptEndpoint(endPoint)}, opts...)
	if token != "" {
		opts = append(opts, client.OptReqToken(client.Token{Scheme: client.Bearer, Value: token}))
	}
	c, err := client.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Client{
		Client: c,
		token:  token,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Budgets returns the list of budgets
func (c *Client) Budgets(ctx context.Context) ([]Budget, error) {
	var response struct {
		Data struct {
			Budgets []Budget `json:"budgets"`
		} `json:"data"`
	}
	if err := c.do(ctx, nil, &response, client.OptPath("budgets")); err != nil {
		return nil, err
	}
	return response.Data.Budgets, nil
}

// Accounts returns the accounts for a budget
func (c *Client) Accounts(ctx context.Context, req *AccountsRequest) ([]Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var response struct {
		Data struct {
			Accounts []account `json:"accounts"`
		} `json:"data"`
	}
	if err := c.do(ctx, nil, &response, client.OptPath("budgets", req.BudgetID, "accounts")); err != nil {
		return nil, err
	}
	result := make([]Account, 0, len(response.Data.Accounts))
	for _, a := range response.Data.Accounts {
		result = append(result, a.Account())
	}
	return result, nil
}

// Transactions returns the transactions for an account, optionally since
// a date
func (c *Client) Transactions(ctx context.Context, req *TransactionsRequest) ([]Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var response struct {
		Data struct {
			Transactions []transaction `json:"transactions"`
		} `json:"data"`
	}
	if err := c.do(ctx, nil, &response, client.OptPath("budgets", req.BudgetID, "accounts", req.AccountID, "transactions"), client.OptQuery(req.Values())); err != nil {
		return nil, err
	}
	result := make([]Transaction, 0, len(response.Data.Transactions))
	for _, t := range response.Data.Transactions {
		result = append(result, t.Transaction())
	}
	return result, nil
}

// BudgetSummary returns the name, currency format and categories of a budget
func (c *Client) BudgetSummary(ctx context.Context, req *BudgetSummaryRequest) (*BudgetSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var response struct {
		Data struct {
			Budget budgetDetail `json:"budget"`
		} `json:"data"`
	}
	if err := c.do(ctx, nil, &response, client.OptPath("budgets", req.BudgetID)); err != nil {
		return nil, err
	}
	return response.Data.Budget.Summary(), nil
}

// CreateTransaction creates a transaction and returns it
func (c *Client) CreateTransaction(ctx context.Context, req *CreateTransactionRequest) (*Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	payload, err := client.NewJSONRequest(req.payload())
	if err != nil {
		return nil, err
	}
	var response struct {
		Data struct {
			Transaction transaction `json:"transaction"`
		} `json:"data"`
	}
	if err := c.do(ctx, payload, &response, client.OptPath("budgets", req.BudgetID, "transactions")); err != nil {
		return nil, err
	}
	result := response.Data.Transaction.Transaction()
	return &result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// do checks for a token and then sends the request
func (c *Client) do(ctx context.Context, payload client.Payload, response any, opts ...client.RequestOpt) error {
	if c.token == "" {
		return tinyagent.ErrConfig.With(TokenEnv, " not set")
	}
	return c.DoWithContext(ctx, payload, response, opts...)
}
