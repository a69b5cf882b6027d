package ynab

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Budget is a budget without its contents
type Budget struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastModifiedOn string          `json:"last_modified_on,omitempty"`
	FirstMonth     string          `json:"first_month,omitempty"`
	LastMonth      string          `json:"last_month,omitempty"`
	CurrencyFormat *CurrencyFormat `json:"currency_format,omitempty"`
}

// CurrencyFormat describes how amounts in a budget are displayed
type CurrencyFormat struct {
	ISOCode          string `json:"iso_code"`
	ExampleFormat    string `json:"example_format,omitempty"`
	DecimalDigits    int    `json:"decimal_digits"`
	DecimalSeparator string `json:"decimal_separator,omitempty"`
	SymbolFirst      bool   `json:"symbol_first"`
	GroupSeparator   string `json:"group_separator,omitempty"`
	CurrencySymbol   string `json:"currency_symbol,omitempty"`
	DisplaySymbol    bool   `json:"display_symbol"`
}

// Account is an account with balances in currency units
type Account struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	OnBudget         bool    `json:"on_budget"`
	Closed           bool    `json:"closed"`
	Note             string  `json:"note,omitempty"`
	Balance          float64 `json:"balance"`
	ClearedBalance   float64 `json:"cleared_balance"`
	UnclearedBalance float64 `json:"uncleared_balance"`
	Deleted          bool    `json:"deleted,omitempty"`
}

// Transaction is a transaction with the amount in currency units
type Transaction struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
	Memo         string  `json:"memo,omitempty"`
	Cleared      string  `json:"cleared,omitempty"`
	Approved     bool    `json:"approved"`
	AccountID    string  `json:"account_id"`
	AccountName  string  `json:"account_name,omitempty"`
	PayeeID      string  `json:"payee_id,omitempty"`
	PayeeName    string  `json:"payee_name,omitempty"`
	CategoryID   string  `json:"category_id,omitempty"`
	CategoryName string  `json:"category_name,omitempty"`
	Deleted      bool    `json:"deleted,omitempty"`
}

// Category is a budget category with amounts in currency units
type Category struct {
	ID              string  `json:"id"`
	CategoryGroupID string  `json:"category_group_id,omitempty"`
	Name            string  `json:"name"`
	Hidden          bool    `json:"hidden"`
	Note            string  `json:"note,omitempty"`
	Budgeted        float64 `json:"budgeted"`
	Activity        float64 `json:"activity"`
	Balance         float64 `json:"balance"`
	Deleted         bool    `json:"deleted,omitempty"`
}

// BudgetSummary is the name, currency format and categories of a budget
type BudgetSummary struct {
	Name           string          `json:"name"`
	CurrencyFormat *CurrencyFormat `json:"currency_format,omitempty"`
	Categories     []Category      `json:"categories"`
}

///////////////////////////////////////////////////////////////////////////////
// WIRE TYPES

type account struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Type             string     `json:"type"`
	OnBudget         bool       `json:"on_budget"`
	Closed           bool       `json:"closed"`
	Note             *string    `json:"note"`
	Balance          Milliunits `json:"balance"`
	ClearedBalance   Milliunits `json:"cleared_balance"`
	UnclearedBalance Milliunits `json:"uncleared_balance"`
	Deleted          bool       `json:"deleted"`
}

type transaction struct {
	ID           string     `json:"id"`
	Date         string     `json:"date"`
	Amount       Milliunits `json:"amount"`
	Memo         *string    `json:"memo"`
	Cleared      string     `json:"cleared"`
	Approved     bool       `json:"approved"`
	AccountID    string     `json:"account_id"`
	AccountName  string     `json:"account_name"`
	PayeeID      *string    `json:"payee_id"`
	PayeeName    *string    `json:"payee_name"`
	CategoryID   *string    `json:"category_id"`
	CategoryName *string    `json:"category_name"`
	Deleted      bool       `json:"deleted"`
}

type category struct {
	ID              string     `json:"id"`
	CategoryGroupID string     `json:"category_group_id"`
	Name            string     `json:"name"`
	Hidden          bool       `json:"hidden"`
	Note            *string    `json:"note"`
	Budgeted        Milliunits `json:"budgeted"`
	Activity        Milliunits `json:"activity"`
	Balance         Milliunits `json:"balance"`
	Deleted         bool       `json:"deleted"`
}

type budgetDetail struct {
	Budget
	Categories []category `json:"categories"`
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (a account) Account() Account {
	return Account{
		ID:               a.ID,
		Name:             a.Name,
		Type:             a.Type,
		OnBudget:         a.OnBudget,
		Closed:           a.Closed,
		Note:             value(a.Note),
		Balance:          a.Balance.Float(),
		ClearedBalance:   a.ClearedBalance.Float(),
		UnclearedBalance: a.UnclearedBalance.Float(),
		Deleted:          a.Deleted,
	}
}

func (t transaction) Transaction() Transaction {
	return Transaction{
		ID:           t.ID,
		Date:         t.Date,
		Amount:       t.Amount.Float(),
		Memo:         value(t.Memo),
		Cleared:      t.Cleared,
		Approved:     t.Approved,
		AccountID:    t.AccountID,
		AccountName:  t.AccountName,
		PayeeID:      value(t.PayeeID),
		PayeeName:    value(t.PayeeName),
		CategoryID:   value(t.CategoryID),
		CategoryName: value(t.CategoryName),
		Deleted:      t.Deleted,
	}
}

func (c category) Category() Category {
	return Category{
		ID:              c.ID,
		CategoryGroupID: c.CategoryGroupID,
		Name:            c.Name,
		Hidden:          c.Hidden,
		Note:            value(c.Note),
		Budgeted:        c.Budgeted.Float(),
		Activity:        c.Activity.Float(),
		Balance:         c.Balance.Float(),
		Deleted:         c.Deleted,
	}
}

func (b budgetDetail) Summary() *BudgetSummary {
	result := &BudgetSummary{
		Name:           b.Name,
		CurrencyFormat: b.CurrencyFormat,
		Categories:     make([]Category, 0, len(b.Categories)),
	}
	for _, c := range b.Categories {
		result.Categories = append(result.Categories, c.Category())
	}
	return result
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (b Budget) String() string {
	return types.Stringify(b)
}

func (a Account) String() string {
	return types.Stringify(a)
}

func (t Transaction) String() string {
	return types.Stringify(t)
}

func (s BudgetSummary) String() string {
	return types.Stringify(s)
}
