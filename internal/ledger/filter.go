// Package ledger is the filter and sort pipeline for the transaction view.
// Filters are explicit predicate values combined by logical AND; the result
// is recomputed from the full input on every call, no incremental state.
package ledger

import (
	"time"

	"github.com/centavo-dev/centavo/internal/model"
)

// Predicate is one filter dimension. Predicates compose by AND.
type Predicate interface {
	Match(tx model.Transaction) bool
}

// TypeFilter matches transactions of one type.
type TypeFilter struct {
	Type model.TxType
}

func (f TypeFilter) Match(tx model.Transaction) bool {
	return tx.Type == f.Type
}

// DateRangeFilter matches transactions within an inclusive calendar range.
// A zero Start or End leaves that side unbounded.
type DateRangeFilter struct {
	Start time.Time
	End   time.Time
}

func (f DateRangeFilter) Match(tx model.Transaction) bool {
	if !f.Start.IsZero() && tx.Date.Before(f.Start) && !model.SameDay(tx.Date, f.Start) {
		return false
	}
	if !f.End.IsZero() && tx.Date.After(f.End) && !model.SameDay(tx.Date, f.End) {
		return false
	}
	return true
}

// CategoryFilter matches transactions assigned to any of the listed
// categories. Build it with CategoryWithDescendants so selecting a parent
// also matches its children's transactions.
type CategoryFilter struct {
	CategoryIDs []int
}

func (f CategoryFilter) Match(tx model.Transaction) bool {
	if tx.Assignment.CategoryID == 0 {
		return false
	}
	for _, id := range f.CategoryIDs {
		if tx.Assignment.CategoryID == id {
			return true
		}
	}
	return false
}

// SubcategoryLister resolves a category's direct children.
type SubcategoryLister interface {
	CategoryAndDescendants(id int) []int
}

// CategoryWithDescendants builds a CategoryFilter for a category and its
// subcategories, resolved through the tree rather than a stored field.
func CategoryWithDescendants(id int, tree SubcategoryLister) CategoryFilter {
	return CategoryFilter{CategoryIDs: tree.CategoryAndDescendants(id)}
}

// TagFilter matches transactions carrying any of the selected tags
// (OR within the tag dimension, AND against the other dimensions).
type TagFilter struct {
	TagIDs []int
}

func (f TagFilter) Match(tx model.Transaction) bool {
	for _, want := range f.TagIDs {
		for _, have := range tx.Assignment.TagIDs {
			if want == have {
				return true
			}
		}
	}
	return false
}

// AccountTypeFilter matches transactions booked against one account type.
type AccountTypeFilter struct {
	AccountType model.AccountType
}

func (f AccountTypeFilter) Match(tx model.Transaction) bool {
	return tx.AccountType == f.AccountType
}

// Filter is an AND-list of predicates. The zero value matches everything.
type Filter struct {
	Predicates []Predicate
}

// Apply returns the transactions matching every predicate, in input order.
// Pure: the input slice is never mutated.
func (f Filter) Apply(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, tx := range txns {
		if f.matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}

func (f Filter) matches(tx model.Transaction) bool {
	for _, p := range f.Predicates {
		if !p.Match(tx) {
			return false
		}
	}
	return true
}

// ExcludeLinked drops both members of every linked refund pair: transactions
// pointing at a counterpart and the counterparts they point at. Used for
// local views when linked netting has not been applied upstream.
func ExcludeLinked(txns []model.Transaction) []model.Transaction {
	referenced := make(map[int]bool)
	for _, tx := range txns {
		if tx.LinkedTo != 0 {
			referenced[tx.LinkedTo] = true
		}
	}
	out := make([]model.Transaction, 0, len(txns))
	for _, tx := range txns {
		if tx.LinkedTo != 0 || referenced[tx.ID] {
			continue
		}
		out = append(out, tx)
	}
	return out
}
