package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/centavo-dev/centavo/internal/config"
	"github.com/centavo-dev/centavo/internal/ledger"
	"github.com/centavo-dev/centavo/internal/model"
	"github.com/centavo-dev/centavo/internal/store"
	"github.com/centavo-dev/centavo/internal/taxonomy"
)

func newListCommand() *cobra.Command {
	var dataDir string
	var from, to string
	var txType string
	var accountType string
	var categoryID int
	var tagIDs []int
	var sortOrder string
	var includeLinked bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions matching filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			opts := listOptions{
				txType:        txType,
				accountType:   accountType,
				categoryID:    categoryID,
				tagIDs:        tagIDs,
				sortOrder:     ledger.SortOrder(sortOrder),
				includeLinked: includeLinked,
			}
			if cmd.Flags().Changed("include-linked") {
				opts.includeLinkedSet = true
			}
			if opts.from, opts.to, err = parseRange(from, to); err != nil {
				return err
			}
			return runList(absDir, opts)
		},
	}

	cmd.Flags().StringVar(&dataDir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&txType, "type", "", "transaction type (income or expense)")
	cmd.Flags().StringVar(&accountType, "account-type", "", "account type (debit or credit)")
	cmd.Flags().IntVar(&categoryID, "category", 0, "category ID (includes subcategories)")
	cmd.Flags().IntSliceVar(&tagIDs, "tag", nil, "tag ID (repeatable, matches any)")
	cmd.Flags().StringVar(&sortOrder, "sort", string(ledger.DateDesc), "sort order (date-desc, date-asc, amount-desc, amount-asc)")
	cmd.Flags().BoolVar(&includeLinked, "include-linked", false, "include linked transfer pairs")

	return cmd
}

type listOptions struct {
	from, to         time.Time
	txType           string
	accountType      string
	categoryID       int
	tagIDs           []int
	sortOrder        ledger.SortOrder
	includeLinked    bool
	includeLinkedSet bool
}

func runList(dataDir string, opts listOptions) error {
	cfg, err := config.Load(filepath.Join(dataDir, "centavo.yaml"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	switch opts.sortOrder {
	case ledger.DateDesc, ledger.DateAsc, ledger.AmountDesc, ledger.AmountAsc:
	default:
		return fmt.Errorf("unknown sort order %q", opts.sortOrder)
	}

	txns, err := store.NewService(dataDir).Load()
	if err != nil {
		return err
	}

	includeLinked := cfg.Defaults.IncludeLinked
	if opts.includeLinkedSet {
		includeLinked = opts.includeLinked
	}
	if !includeLinked {
		txns = ledger.ExcludeLinked(txns)
	}

	var preds []ledger.Predicate
	preds = append(preds, ledger.DateRangeFilter{Start: opts.from, End: opts.to})
	if opts.txType != "" {
		t := model.TxType(opts.txType)
		if t != model.TypeIncome && t != model.TypeExpense {
			return fmt.Errorf("unknown type %q", opts.txType)
		}
		preds = append(preds, ledger.TypeFilter{Type: t})
	}
	if opts.accountType != "" {
		at := model.AccountType(opts.accountType)
		if at != model.AccountDebit && at != model.AccountCredit {
			return fmt.Errorf("unknown account type %q", opts.accountType)
		}
		preds = append(preds, ledger.AccountTypeFilter{AccountType: at})
	}
	if opts.categoryID != 0 {
		tax, err := taxonomy.Load(dataDir)
		if err != nil {
			return err
		}
		if _, ok := tax.Category(opts.categoryID); !ok {
			return fmt.Errorf("unknown category %d", opts.categoryID)
		}
		preds = append(preds, ledger.CategoryWithDescendants(opts.categoryID, tax))
	}
	if len(opts.tagIDs) > 0 {
		preds = append(preds, ledger.TagFilter{TagIDs: opts.tagIDs})
	}

	matched := ledger.Filter{Predicates: preds}.Apply(txns)
	matched = ledger.Sort(matched, opts.sortOrder)

	printList(matched)
	return nil
}

func printList(txns []model.Transaction) {
	if len(txns) == 0 {
		fmt.Println("No transactions match.")
		return
	}

	for _, tx := range txns {
		sign := "-"
		if tx.Type == model.TypeIncome {
			sign = "+"
		}
		fmt.Printf("#%-5d %s  %s%10s %s  %s\n",
			tx.ID,
			tx.Date.Format("2006-01-02"),
			sign,
			tx.Amount.StringFixed(2),
			tx.Currency,
			tx.Description,
		)
	}

	for _, currency := range []model.Currency{model.CurrencyPEN, model.CurrencyUSD} {
		totals := ledger.Totals(txns, currency)
		if totals.Count == 0 {
			continue
		}
		fmt.Printf("\n%s: %d transactions, income %s, expense %s, balance %s\n",
			currency,
			totals.Count,
			totals.TotalIncome.StringFixed(2),
			totals.TotalExpense.StringFixed(2),
			totals.Balance.StringFixed(2),
		)
	}
}
