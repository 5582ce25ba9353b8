package rollup

import (
	"github.com/centavo-dev/centavo/internal/model"
)

// TagTree resolves tag IDs to tag entries.
type TagTree interface {
	Tag(id int) (model.Tag, bool)
}

// CategorySummaries computes base per-category totals from transactions.
// Normally the server provides these pre-aggregated; the CLI plays that role
// for the local store. Unclassified transactions are skipped. Output keeps
// first-seen order; run the result through Categories for the tree view.
func CategorySummaries(txns []model.Transaction, tree CategoryTree) []Summary {
	var out []Summary
	index := make(map[int]int)

	for _, tx := range txns {
		id := tx.Assignment.CategoryID
		if id == 0 {
			continue
		}
		i, ok := index[id]
		if !ok {
			s := Summary{CategoryID: id, Type: tx.Type}
			if cat, found := tree.Category(id); found {
				s.Name = cat.Name
				s.Color = cat.Color
				s.Type = cat.Type
			}
			i = len(out)
			index[id] = i
			out = append(out, s)
		}
		out[i].Total = out[i].Total.Add(tx.Amount)
		out[i].Count++
	}
	return out
}

// TagSummaries computes base per-tag totals from transactions, one entry per
// (tag, observed type) pair. Per-currency totals are accumulated separately
// and never merged.
func TagSummaries(txns []model.Transaction, tags TagTree) []TagSummary {
	type key struct {
		tagID int
		t     model.TxType
	}
	var out []TagSummary
	index := make(map[key]int)

	for _, tx := range txns {
		for _, tagID := range tx.Assignment.TagIDs {
			k := key{tagID: tagID, t: tx.Type}
			i, ok := index[k]
			if !ok {
				s := TagSummary{TagID: tagID, Type: tx.Type}
				if tag, found := tags.Tag(tagID); found {
					s.Name = tag.Name
					s.Color = tag.Color
				}
				i = len(out)
				index[k] = i
				out = append(out, s)
			}
			out[i].Total = out[i].Total.Add(tx.Amount)
			out[i].Count++
			switch tx.Currency {
			case model.CurrencyPEN:
				out[i].TotalPEN = out[i].TotalPEN.Add(tx.Amount)
			case model.CurrencyUSD:
				out[i].TotalUSD = out[i].TotalUSD.Add(tx.Amount)
			}
		}
	}
	return out
}
