package ynab

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	tool "github.com/mutablelogic/go-tinyagent/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the budgeting tools. A missing token is reported when a
// tool is run, not here.
func NewTools(token string, opts ...client.ClientOpt) ([]tool.Tool, error) {
	c, err := New(token, opts...)
	if err != nil {
		return nil, err
	}
	return c.Tools()
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns the tools which wrap the client
func (c *Client) Tools() ([]tool.Tool, error) {
	var result []tool.Tool
	for _, fn := range []func() (tool.Tool, error){
		func() (tool.Tool, error) {
			return tool.New("get_budgets", "Get a list of budgets from YNAB", c.getBudgets)
		},
		func() (tool.Tool, error) {
			return tool.New("get_accounts", "Get a list of accounts for a specific budget", c.getAccounts)
		},
		func() (tool.Tool, error) {
			return tool.New("get_transactions", "Get transactions for a specific account, with amounts in currency units", c.getTransactions)
		},
		func() (tool.Tool, error) {
			return tool.New("get_budget_summary", "Get a summary of budget categories and their balances", c.getBudgetSummary)
		},
		func() (tool.Tool, error) {
			return tool.New("create_transaction", "Create a new transaction in YNAB", c.createTransaction)
		},
	} {
		t, err := fn()
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) getBudgets(ctx context.Context, _ BudgetsRequest) ([]Budget, error) {
	return c.Budgets(ctx)
}

func (c *Client) getAccounts(ctx context.Context, req AccountsRequest) ([]Account, error) {
	return c.Accounts(ctx, &req)
}

func (c *Client) getTransactions(ctx context.Context, req TransactionsRequest) ([]Transaction, error) {
	return c.Transactions(ctx, &req)
}

func (c *Client) getBudgetSummary(ctx context.Context, req BudgetSummaryRequest) (*BudgetSummary, error) {
	return c.BudgetSummary(ctx, &req)
}

func (c *Client) createTransaction(ctx context.Context, req CreateTransactionRequest) (*Transaction, error) {
	return c.CreateTransaction(ctx, &req)
}
