package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParsedLine is a transaction candidate extracted from an uploaded statement
// by the external parser. It is transient: after the user confirms an import
// batch, each surviving line becomes one Transaction and the line is discarded.
type ParsedLine struct {
	Description string
	Detail      string
	Amount      decimal.Decimal
	Currency    Currency
	Type        TxType
	Date        time.Time
	RawText     string

	// Assignment is the classification chosen during review. The import
	// workflow seeds it from the suggestion; the user may override it.
	Assignment Assignment

	// Fields below are filled in by the resolver.
	IsDuplicate        bool
	ExistingID         int // id of the matching stored transaction, 0 = none
	ExistingAssignment Assignment
	Suggested          Assignment
	SuggestedDetail    string
}

// SplitPart is one piece of a transaction being decomposed during a split
// session. Ephemeral: a balanced set of parts replaces exactly one line.
type SplitPart struct {
	Amount     decimal.Decimal
	Assignment Assignment
	Detail     string
}
