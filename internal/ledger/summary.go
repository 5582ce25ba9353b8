package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/centavo-dev/centavo/internal/model"
	"github.com/centavo-dev/centavo/internal/rollup"
)

// ServerTotals are the base headline numbers for the active date range,
// normally provided by the persistence layer. Single-currency: totals in
// different currencies are computed separately, never summed.
type ServerTotals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	Count        int
}

// DisplayTotals are the headline numbers actually shown.
type DisplayTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Totals computes ServerTotals over transactions of one currency. The CLI
// uses this in place of a server; callers with a real backend pass the
// server's numbers straight to Summary.
func Totals(txns []model.Transaction, currency model.Currency) ServerTotals {
	var t ServerTotals
	t.TotalIncome = decimal.Zero
	t.TotalExpense = decimal.Zero
	for _, tx := range txns {
		if tx.Currency != currency {
			continue
		}
		switch tx.Type {
		case model.TypeIncome:
			t.TotalIncome = t.TotalIncome.Add(tx.Amount)
		case model.TypeExpense:
			t.TotalExpense = t.TotalExpense.Add(tx.Amount)
		}
		t.Count++
	}
	t.Balance = t.TotalIncome.Sub(t.TotalExpense)
	return t
}

// Summary derives the displayed headline numbers. When a rollup node is
// selected, every headline is scoped to that node's subtree total: income
// selections contribute +total to balance, expense selections -total. With
// no selection the base totals pass through unchanged.
func Summary(totals ServerTotals, selected *rollup.Node) DisplayTotals {
	if selected == nil {
		return DisplayTotals{
			Income:  totals.TotalIncome,
			Expense: totals.TotalExpense,
			Balance: totals.Balance,
		}
	}

	if selected.Type == model.TypeIncome {
		return DisplayTotals{
			Income:  selected.Total,
			Expense: decimal.Zero,
			Balance: selected.Total,
		}
	}
	return DisplayTotals{
		Income:  decimal.Zero,
		Expense: selected.Total,
		Balance: selected.Total.Neg(),
	}
}
