package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency identifies the currency an amount is denominated in.
// Amounts in different currencies are never summed together.
type Currency string

const (
	CurrencyPEN Currency = "PEN"
	CurrencyUSD Currency = "USD"
)

// TxType classifies a transaction as money in or money out.
type TxType string

const (
	TypeIncome  TxType = "income"
	TypeExpense TxType = "expense"
)

// Source records how a transaction entered the ledger.
type Source string

const (
	SourceManual Source = "manual"
	SourceImport Source = "import"
)

// AccountType classifies the account a transaction was booked against.
type AccountType string

const (
	AccountDebit  AccountType = "debit"
	AccountCredit AccountType = "credit"
)

// Assignment is a classification attached to a transaction or split part.
// The schema evolved from a single category to a set of tags; both shapes
// are carried so either workflow can run against the same engine.
type Assignment struct {
	CategoryID int   // 0 = no category
	TagIDs     []int // empty = no tags
}

// IsZero reports whether the assignment carries no classification at all.
func (a Assignment) IsZero() bool {
	return a.CategoryID == 0 && len(a.TagIDs) == 0
}

// Clone returns a deep copy so annotated lines never alias a caller's slice.
func (a Assignment) Clone() Assignment {
	out := Assignment{CategoryID: a.CategoryID}
	if len(a.TagIDs) > 0 {
		out.TagIDs = append([]int(nil), a.TagIDs...)
	}
	return out
}

// Transaction is a persisted ledger row.
// Amount is always non-negative; the sign is derived from Type.
type Transaction struct {
	ID          int
	Description string // verbatim from the bank statement
	Detail      string // user-editable free text
	Amount      decimal.Decimal
	Currency    Currency
	Type        TxType
	Date        time.Time // calendar date, no time component
	Source      Source
	AccountType AccountType
	Assignment  Assignment
	LinkedTo    int // id of the netted counterpart transaction, 0 = none
	RawText     string
}

// SameDay reports whether two dates fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
