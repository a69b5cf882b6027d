package ynab

import (
	"net/url"
	"strings"
	"time"

	// Packages
	tinyagent "github.com/mutablelogic/go-tinyagent"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// BudgetsRequest has no parameters
type BudgetsRequest struct{}

// AccountsRequest defines the input for listing accounts
type AccountsRequest struct {
	BudgetID string `json:"budget_id" jsonschema:"The ID of the budget to get accounts from"`
}

// TransactionsRequest defines the input for listing transactions
type TransactionsRequest struct {
	BudgetID  string `json:"budget_id" jsonschema:"The ID of the budget"`
	AccountID string `json:"account_id" jsonschema:"The ID of the account"`
	SinceDate string `json:"since_date,omitempty" jsonschema:"The earliest date for transactions (YYYY-MM-DD)"`
}

// BudgetSummaryRequest defines the input for a budget summary
type BudgetSummaryRequest struct {
	BudgetID string `json:"budget_id" jsonschema:"The ID of the budget"`
}

// CreateTransactionRequest defines the input for creating a transaction
type CreateTransactionRequest struct {
	BudgetID   string  `json:"budget_id" jsonschema:"The ID of the budget"`
	AccountID  string  `json:"account_id" jsonschema:"The ID of the account"`
	Date       string  `json:"date" jsonschema:"The date of the transaction (YYYY-MM-DD)"`
	Amount     float64 `json:"amount" jsonschema:"The amount of the transaction (negative for outflow, positive for inflow)"`
	PayeeName  string  `json:"payee_name" jsonschema:"The name of the payee"`
	CategoryID string  `json:"category_id,omitempty" jsonschema:"The ID of the category"`
	Memo       string  `json:"memo,omitempty" jsonschema:"A memo for the transaction"`
}

type transactionPayload struct {
	Transaction struct {
		AccountID  string     `json:"account_id"`
		Date       string     `json:"date"`
		Amount     Milliunits `json:"amount"`
		PayeeName  string     `json:"payee_name"`
		CategoryID string     `json:"category_id,omitempty"`
		Memo       string     `json:"memo,omitempty"`
	} `json:"transaction"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const dateFormat = time.DateOnly

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Validate checks the budget ID
func (r *AccountsRequest) Validate() error {
	if r == nil {
		return tinyagent.ErrBadParameter.With("missing request")
	}
	return validateID("budget_id", r.BudgetID)
}

// Validate checks the IDs and date
func (r *TransactionsRequest) Validate() error {
	if r == nil {
		return tinyagent.ErrBadParameter.With("missing request")
	}
	if err := validateID("budget_id", r.BudgetID); err != nil {
		return err
	}
	if err := validateID("account_id", r.AccountID); err != nil {
		return err
	}
	if r.SinceDate != "" {
		return validateDate("since_date", r.SinceDate)
	}
	return nil
}

// Values converts TransactionsRequest to URL query parameters
func (r *TransactionsRequest) Values() url.Values {
	result := url.Values{}
	if r.SinceDate != "" {
		result.Set("since_date", r.SinceDate)
	}
	return result
}

// Validate checks the budget ID
func (r *BudgetSummaryRequest) Validate() error {
	if r == nil {
		return tinyagent.ErrBadParameter.With("missing request")
	}
	return validateID("budget_id", r.BudgetID)
}

// Validate checks the IDs, date and payee
func (r *CreateTransactionRequest) Validate() error {
	if r == nil {
		return tinyagent.ErrBadParameter.With("missing request")
	}
	if err := validateID("budget_id", r.BudgetID); err != nil {
		return err
	}
	if err := validateID("account_id", r.AccountID); err != nil {
		return err
	}
	if err := validateDate("date", r.Date); err != nil {
		return err
	}
	if strings.TrimSpace(r.PayeeName) == "" {
		return tinyagent.ErrBadParameter.With("payee_name is required")
	}
	if r.CategoryID != "" {
		return validateID("category_id", r.CategoryID)
	}
	return nil
}

// payload returns the request body, with the amount in milliunits. The
// cleared and approved flags are left for the server to set.
func (r *CreateTransactionRequest) payload() transactionPayload {
	var p transactionPayload
	p.Transaction.AccountID = r.AccountID
	p.Transaction.Date = r.Date
	p.Transaction.Amount = ToMilliunits(r.Amount)
	p.Transaction.PayeeName = strings.TrimSpace(r.PayeeName)
	p.Transaction.CategoryID = r.CategoryID
	p.Transaction.Memo = r.Memo
	return p
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func validateID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return tinyagent.ErrBadParameter.Withf("%s is required", name)
	}
	if strings.ContainsAny(value, "/?#") {
		return tinyagent.ErrBadParameter.Withf("%s is invalid: %q", name, value)
	}
	return nil
}

func validateDate(name, value string) error {
	if _, err := time.Parse(dateFormat, value); err != nil {
		return tinyagent.ErrBadParameter.Withf("%s must be YYYY-MM-DD: %q", name, value)
	}
	return nil
}
