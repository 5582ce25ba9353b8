// Package rollup builds parent-aware category rollups and flat per-type tag
// rollups from pre-aggregated summaries. An ancestor always reports the full
// subtree total, never just its direct total.
package rollup

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/centavo-dev/centavo/internal/model"
)

// Summary is a pre-aggregated total for one category: the server (or local
// store) computes base totals; this package only handles hierarchy.
type Summary struct {
	CategoryID int
	Name       string
	Color      string
	Type       model.TxType
	Total      decimal.Decimal
	Count      int
}

// Node is a root-level rollup: the category's own summary folded together
// with all of its children. Totals are recomputed from the input on every
// call, never cached.
type Node struct {
	Summary
	Children []Summary
}

// CategoryTree resolves category IDs to tree entries.
type CategoryTree interface {
	Category(id int) (model.Category, bool)
}

// Categories attaches subcategory summaries to their parents and folds child
// totals and counts into each parent. A parent with no activity of its own is
// synthesized with a zero total so its active subcategories stay reachable.
// Summaries referencing a category missing from the tree are tolerated as
// nameless roots; masking them as "uncategorized" is the caller's concern.
// Roots come back sorted by total descending; children keep summary order.
func Categories(summaries []Summary, tree CategoryTree) []Node {
	var roots []Node
	rootIndex := make(map[int]int) // category id -> index in roots
	var children []Summary

	for _, s := range summaries {
		cat, ok := tree.Category(s.CategoryID)
		if ok && cat.ParentID != 0 {
			children = append(children, s)
			continue
		}
		if !ok {
			// Orphan: the referenced category no longer exists.
			s.Name = ""
		}
		rootIndex[s.CategoryID] = len(roots)
		roots = append(roots, Node{Summary: s})
	}

	for _, child := range children {
		cat, _ := tree.Category(child.CategoryID)
		idx, ok := rootIndex[cat.ParentID]
		if !ok {
			parent, found := tree.Category(cat.ParentID)
			if !found {
				// Parent vanished from the tree as well; surface the child
				// as its own nameless root.
				child.Name = ""
				rootIndex[child.CategoryID] = len(roots)
				roots = append(roots, Node{Summary: child})
				continue
			}
			idx = len(roots)
			rootIndex[parent.ID] = idx
			roots = append(roots, Node{Summary: Summary{
				CategoryID: parent.ID,
				Name:       parent.Name,
				Color:      parent.Color,
				Type:       parent.Type,
				Total:      decimal.Zero,
			}})
		}
		roots[idx].Children = append(roots[idx].Children, child)
	}

	for i := range roots {
		for _, child := range roots[i].Children {
			roots[i].Total = roots[i].Total.Add(child.Total)
			roots[i].Count += child.Count
		}
	}

	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].Total.GreaterThan(roots[j].Total)
	})
	return roots
}

// FilterType keeps only summaries of the given type, preserving order.
func FilterType(summaries []Summary, t model.TxType) []Summary {
	var out []Summary
	for _, s := range summaries {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

// TagSummary is a flat rollup for one tag and one observed transaction type.
// TotalPEN and TotalUSD are independent numbers and are never summed together;
// Total is only meaningful for single-currency activity and ordering.
type TagSummary struct {
	TagID    int
	Name     string
	Color    string
	Type     model.TxType
	Total    decimal.Decimal
	TotalPEN decimal.Decimal
	TotalUSD decimal.Decimal
	Count    int
}

// Tags returns the tag rollups of the given type, sorted by total descending.
func Tags(summaries []TagSummary, t model.TxType) []TagSummary {
	var out []TagSummary
	for _, s := range summaries {
		if s.Type == t {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// Percentage returns total/max as a percentage, or 0 when max is not
// positive. Relative bar widths only, not a financial quantity.
func Percentage(total, max decimal.Decimal) float64 {
	if !max.IsPositive() {
		return 0
	}
	f, _ := total.Div(max).Mul(decimal.NewFromInt(100)).Float64()
	return f
}

// MaxTotal returns the largest total among the given rollup nodes.
func MaxTotal(nodes []Node) decimal.Decimal {
	max := decimal.Zero
	for _, n := range nodes {
		if n.Total.GreaterThan(max) {
			max = n.Total
		}
	}
	return max
}
