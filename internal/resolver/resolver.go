// Package resolver matches freshly parsed statement lines against the stored
// transaction history: it flags duplicates and proposes a classification and
// detail for new lines based on past user choices for the same description.
package resolver

import (
	"github.com/centavo-dev/centavo/internal/model"
)

// Stats summarizes a resolved batch.
type Stats struct {
	New        int
	Duplicates int
}

// dupKey identifies an exact duplicate: same description (byte-exact), amount,
// calendar date, and currency.
type dupKey struct {
	Description string
	Amount      string // StringFixed(2), decimal values compare by cents
	Date        string
	Currency    model.Currency
}

// Resolve annotates a copy of the parsed lines against the transaction
// history. It never mutates its inputs. Output ordering: non-duplicate lines
// first, then duplicates, each group preserving original parse order.
func Resolve(lines []model.ParsedLine, history []model.Transaction) []model.ParsedLine {
	if len(lines) == 0 {
		return []model.ParsedLine{}
	}

	existing := indexByKey(history)
	suggestions := indexByDescription(history)

	annotated := make([]model.ParsedLine, len(lines))
	for i, line := range lines {
		out := line
		out.Assignment = line.Assignment.Clone()

		key := dupKey{
			Description: line.Description,
			Amount:      line.Amount.StringFixed(2),
			Date:        line.Date.Format("2006-01-02"),
			Currency:    line.Currency,
		}

		if match, ok := existing[key]; ok {
			out.IsDuplicate = true
			out.ExistingID = match.ID
			out.ExistingAssignment = match.Assignment.Clone()
			// A re-imported duplicate shows its stored classification so the
			// user can still override and import it anyway.
			out.Suggested = match.Assignment.Clone()
			out.SuggestedDetail = match.Detail
		} else if src, ok := suggestions[line.Description]; ok {
			out.Suggested = src.Assignment.Clone()
			out.SuggestedDetail = src.Detail
		}

		annotated[i] = out
	}

	return sortNewFirst(annotated)
}

// Apply seeds each line's chosen assignment and detail from its suggestion,
// leaving explicit user choices untouched.
func Apply(lines []model.ParsedLine) []model.ParsedLine {
	out := make([]model.ParsedLine, len(lines))
	for i, line := range lines {
		if line.Assignment.IsZero() && !line.Suggested.IsZero() {
			line.Assignment = line.Suggested.Clone()
		}
		if line.Detail == "" {
			line.Detail = line.SuggestedDetail
		}
		out[i] = line
	}
	return out
}

// BatchStats counts new and duplicate lines in a resolved batch.
func BatchStats(lines []model.ParsedLine) Stats {
	var s Stats
	for _, line := range lines {
		if line.IsDuplicate {
			s.Duplicates++
		} else {
			s.New++
		}
	}
	return s
}

// indexByKey maps every historical transaction by its duplicate key. When two
// stored transactions share a key the later one (by date, then id) wins.
func indexByKey(history []model.Transaction) map[dupKey]model.Transaction {
	index := make(map[dupKey]model.Transaction, len(history))
	for _, tx := range history {
		key := dupKey{
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
			Date:        tx.Date.Format("2006-01-02"),
			Currency:    tx.Currency,
		}
		if prev, ok := index[key]; !ok || moreRecent(tx, prev) {
			index[key] = tx
		}
	}
	return index
}

// indexByDescription maps each byte-exact description to the transaction that
// should drive suggestions: the most recent one that actually carries a
// classification or a detail. No partial or fuzzy matching, ever.
func indexByDescription(history []model.Transaction) map[string]model.Transaction {
	index := make(map[string]model.Transaction, len(history))
	for _, tx := range history {
		if tx.Assignment.IsZero() && tx.Detail == "" {
			continue
		}
		if prev, ok := index[tx.Description]; !ok || moreRecent(tx, prev) {
			index[tx.Description] = tx
		}
	}
	return index
}

// moreRecent reports whether a should beat b as a match source: later date
// first, then higher id.
func moreRecent(a, b model.Transaction) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	return a.ID > b.ID
}

// sortNewFirst surfaces non-duplicate lines before duplicates, keeping the
// relative parse order within each group. A workflow decision, not a data
// invariant: users review new lines first.
func sortNewFirst(lines []model.ParsedLine) []model.ParsedLine {
	out := make([]model.ParsedLine, 0, len(lines))
	for _, line := range lines {
		if !line.IsDuplicate {
			out = append(out, line)
		}
	}
	for _, line := range lines {
		if line.IsDuplicate {
			out = append(out, line)
		}
	}
	return out
}
