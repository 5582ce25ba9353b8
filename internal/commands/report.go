package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/centavo-dev/centavo/internal/config"
	"github.com/centavo-dev/centavo/internal/ledger"
	"github.com/centavo-dev/centavo/internal/model"
	"github.com/centavo-dev/centavo/internal/rollup"
	"github.com/centavo-dev/centavo/internal/store"
	"github.com/centavo-dev/centavo/internal/taxonomy"
)

const flagDateFormat = "2006-01-02"

func newReportCommand() *cobra.Command {
	var dataDir string
	var from, to string
	var txType string
	var currency string
	var includeLinked bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Category and tag breakdown for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			opts := reportOptions{
				txType:        txType,
				currency:      currency,
				includeLinked: includeLinked,
			}
			if cmd.Flags().Changed("include-linked") {
				opts.includeLinkedSet = true
			}
			if opts.from, opts.to, err = parseRange(from, to); err != nil {
				return err
			}
			return runReport(absDir, opts)
		},
	}

	cmd.Flags().StringVar(&dataDir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&txType, "type", "expense", "transaction type (income or expense)")
	cmd.Flags().StringVar(&currency, "currency", "", "currency (defaults to profile currency)")
	cmd.Flags().BoolVar(&includeLinked, "include-linked", false, "include linked transfer pairs")

	return cmd
}

type reportOptions struct {
	from, to         time.Time
	txType           string
	currency         string
	includeLinked    bool
	includeLinkedSet bool
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error
	if from != "" {
		start, err = time.Parse(flagDateFormat, from)
		if err != nil {
			return start, end, fmt.Errorf("parsing --from %q: %w", from, err)
		}
	}
	if to != "" {
		end, err = time.Parse(flagDateFormat, to)
		if err != nil {
			return start, end, fmt.Errorf("parsing --to %q: %w", to, err)
		}
	}
	return start, end, nil
}

func runReport(dataDir string, opts reportOptions) error {
	cfg, err := config.Load(filepath.Join(dataDir, "centavo.yaml"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	txType := model.TxType(opts.txType)
	if txType != model.TypeIncome && txType != model.TypeExpense {
		return fmt.Errorf("unknown type %q", opts.txType)
	}
	currency := model.Currency(opts.currency)
	if currency == "" {
		currency = model.Currency(cfg.Profile.Currency)
	}
	includeLinked := cfg.Defaults.IncludeLinked
	if opts.includeLinkedSet {
		includeLinked = opts.includeLinked
	}

	txns, err := store.NewService(dataDir).Load()
	if err != nil {
		return err
	}
	tax, err := taxonomy.Load(dataDir)
	if err != nil {
		return err
	}

	if !includeLinked {
		txns = ledger.ExcludeLinked(txns)
	}

	filter := ledger.Filter{Predicates: []ledger.Predicate{
		ledger.DateRangeFilter{Start: opts.from, End: opts.to},
	}}
	period := filter.Apply(txns)

	var inCurrency []model.Transaction
	for _, tx := range period {
		if tx.Currency == currency {
			inCurrency = append(inCurrency, tx)
		}
	}

	totals := ledger.Totals(period, currency)
	display := ledger.Summary(totals, nil)

	typed := ledger.Filter{Predicates: []ledger.Predicate{
		ledger.TypeFilter{Type: txType},
	}}.Apply(inCurrency)

	catSummaries := rollup.CategorySummaries(typed, tax)
	nodes := rollup.Categories(rollup.FilterType(catSummaries, txType), tax)
	tagSummaries := rollup.Tags(rollup.TagSummaries(typed, tax), txType)

	printReport(currency, txType, nodes, tagSummaries, display, totals.Count)
	return nil
}

func printReport(currency model.Currency, txType model.TxType, nodes []rollup.Node, tags []rollup.TagSummary, display ledger.DisplayTotals, count int) {
	fmt.Printf("Income:  %12s %s\n", display.Income.StringFixed(2), currency)
	fmt.Printf("Expense: %12s %s\n", display.Expense.StringFixed(2), currency)
	fmt.Printf("Balance: %12s %s  (%d transactions)\n\n", display.Balance.StringFixed(2), currency, count)

	if len(nodes) == 0 {
		fmt.Printf("No %s categories in range.\n", txType)
		return
	}

	fmt.Printf("Categories (%s):\n", txType)
	max := rollup.MaxTotal(nodes)
	for _, node := range nodes {
		fmt.Printf("  %-20s %10s  %5.1f%%  %s\n",
			node.Name,
			node.Total.StringFixed(2),
			rollup.Percentage(node.Total, max),
			bar(rollup.Percentage(node.Total, max)),
		)
		for _, child := range node.Children {
			fmt.Printf("    %-18s %10s\n", child.Name, child.Total.StringFixed(2))
		}
	}

	if len(tags) > 0 {
		fmt.Printf("\nTags (%s):\n", txType)
		for _, t := range tags {
			fmt.Printf("  %-20s", t.Name)
			if !t.TotalPEN.IsZero() {
				fmt.Printf("  %10s PEN", t.TotalPEN.StringFixed(2))
			}
			if !t.TotalUSD.IsZero() {
				fmt.Printf("  %10s USD", t.TotalUSD.StringFixed(2))
			}
			fmt.Printf("  (%d)\n", t.Count)
		}
	}
}

// bar renders a proportional text gauge, 20 chars at 100%.
func bar(pct float64) string {
	n := int(pct / 5)
	if n < 0 {
		n = 0
	}
	if n > 20 {
		n = 20
	}
	return strings.Repeat("█", n)
}
