package ledger

import (
	"sort"

	"github.com/centavo-dev/centavo/internal/model"
)

// SortOrder selects the transaction list ordering.
type SortOrder string

const (
	AmountDesc SortOrder = "amount-desc"
	AmountAsc  SortOrder = "amount-asc"
	DateDesc   SortOrder = "date-desc"
	DateAsc    SortOrder = "date-asc"
)

// Sort returns a sorted copy. Sorts are stable: ties keep input order.
func Sort(txns []model.Transaction, order SortOrder) []model.Transaction {
	out := append([]model.Transaction(nil), txns...)

	switch order {
	case AmountDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount.GreaterThan(out[j].Amount)
		})
	case AmountAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount.LessThan(out[j].Amount)
		})
	case DateDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.After(out[j].Date)
		})
	case DateAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.Before(out[j].Date)
		})
	}
	return out
}
