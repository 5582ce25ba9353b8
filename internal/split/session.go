// Package split decomposes one imported line into multiple balanced parts,
// each carrying its own classification. A session exclusively owns its working
// parts until Confirm returns a finalized result or the session is discarded.
package split

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/centavo-dev/centavo/internal/model"
)

// ErrTooFewParts is returned when an operation would leave fewer than two parts.
var ErrTooFewParts = errors.New("a split needs at least two parts")

// ErrBadIndex is returned when a part index is out of range.
var ErrBadIndex = errors.New("part index out of range")

// ImbalanceError reports a part set that cannot be committed: the parts do not
// sum exactly to the original amount, or some part is not strictly positive.
// Recoverable: the session stays open and the user corrects and retries.
type ImbalanceError struct {
	Original decimal.Decimal
	Sum      decimal.Decimal
	BadParts []int // indexes of non-positive parts
}

func (e ImbalanceError) Error() string {
	if len(e.BadParts) > 0 {
		return fmt.Sprintf("split has non-positive parts at %v", e.BadParts)
	}
	return fmt.Sprintf("split parts sum to %s, original is %s (difference %s)",
		e.Sum.StringFixed(2), e.Original.StringFixed(2), e.Difference().StringFixed(2))
}

// Difference returns original minus parts sum, rounded to cents.
func (e ImbalanceError) Difference() decimal.Decimal {
	return e.Original.Round(2).Sub(e.Sum.Round(2))
}

// Session owns the parts for one line being split. Not safe for concurrent
// use; each session is scoped to one open editing workflow.
type Session struct {
	original model.ParsedLine
	parts    []model.SplitPart
}

// NewSession starts a split for the given line. The initial state mirrors the
// editing dialog: part one holds the full amount and the line's current
// classification, part two is empty.
func NewSession(original model.ParsedLine) *Session {
	return &Session{
		original: original,
		parts: []model.SplitPart{
			{Amount: original.Amount, Assignment: original.Assignment.Clone()},
			{Amount: decimal.Zero},
		},
	}
}

// Original returns the line being split.
func (s *Session) Original() model.ParsedLine {
	return s.original
}

// Parts returns a copy of the current parts.
func (s *Session) Parts() []model.SplitPart {
	out := make([]model.SplitPart, len(s.parts))
	for i, p := range s.parts {
		p.Assignment = p.Assignment.Clone()
		out[i] = p
	}
	return out
}

// AddPart appends an empty part.
func (s *Session) AddPart() {
	s.parts = append(s.parts, model.SplitPart{Amount: decimal.Zero})
}

// RemovePart removes the part at index. Going below two parts is rejected.
func (s *Session) RemovePart(index int) error {
	if index < 0 || index >= len(s.parts) {
		return ErrBadIndex
	}
	if len(s.parts) <= 2 {
		return ErrTooFewParts
	}
	s.parts = append(s.parts[:index], s.parts[index+1:]...)
	return nil
}

// SetAmount sets the amount of the part at index.
func (s *Session) SetAmount(index int, amount decimal.Decimal) error {
	if index < 0 || index >= len(s.parts) {
		return ErrBadIndex
	}
	s.parts[index].Amount = amount
	return nil
}

// SetDetail sets the free-text detail of the part at index.
func (s *Session) SetDetail(index int, detail string) error {
	if index < 0 || index >= len(s.parts) {
		return ErrBadIndex
	}
	s.parts[index].Detail = detail
	return nil
}

// SetAssignment sets the classification of the part at index.
func (s *Session) SetAssignment(index int, a model.Assignment) error {
	if index < 0 || index >= len(s.parts) {
		return ErrBadIndex
	}
	s.parts[index].Assignment = a.Clone()
	return nil
}

// Sum returns the current parts total.
func (s *Session) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range s.parts {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// Difference returns original minus parts sum, rounded to cents.
func (s *Session) Difference() decimal.Decimal {
	return s.original.Amount.Round(2).Sub(s.Sum().Round(2))
}

// Balanced reports whether the parts sum exactly to the original amount.
// Money values are cent-denominated decimals; the tolerance is zero.
func (s *Session) Balanced() bool {
	return s.Difference().IsZero()
}

// SplitEvenly replaces the parts with n equal parts. Each part is the amount
// divided by n floored to cents; the leftover cents go to the first part, so
// an even split always balances exactly. The first part keeps the original
// classification.
func (s *Session) SplitEvenly(n int) error {
	if n < 2 {
		return ErrTooFewParts
	}

	per := s.original.Amount.Div(decimal.NewFromInt(int64(n))).RoundDown(2)
	remainder := s.original.Amount.Round(2).Sub(per.Mul(decimal.NewFromInt(int64(n))))

	parts := make([]model.SplitPart, n)
	for i := range parts {
		parts[i] = model.SplitPart{Amount: per}
	}
	parts[0].Amount = per.Add(remainder)
	parts[0].Assignment = s.original.Assignment.Clone()

	s.parts = parts
	return nil
}

// DistributeRemaining assigns the current imbalance to the first part with a
// zero amount, or adds it to the first part when none is empty.
func (s *Session) DistributeRemaining() {
	diff := s.Difference()
	if diff.IsZero() {
		return
	}
	for i := range s.parts {
		if s.parts[i].Amount.IsZero() {
			s.parts[i].Amount = diff
			return
		}
	}
	s.parts[0].Amount = s.parts[0].Amount.Add(diff).Round(2)
}

// Confirm validates the invariants and finalizes the split. On success each
// part becomes a line inheriting the original's description, date, currency,
// type, and raw text, with its own amount, detail, and classification. On
// error the session stays open for correction.
func (s *Session) Confirm() ([]model.ParsedLine, error) {
	var bad []int
	for i, p := range s.parts {
		if !p.Amount.IsPositive() {
			bad = append(bad, i)
		}
	}
	if len(bad) > 0 {
		return nil, ImbalanceError{Original: s.original.Amount, Sum: s.Sum(), BadParts: bad}
	}
	if !s.Balanced() {
		return nil, ImbalanceError{Original: s.original.Amount, Sum: s.Sum()}
	}

	lines := make([]model.ParsedLine, len(s.parts))
	for i, p := range s.parts {
		lines[i] = model.ParsedLine{
			Description: s.original.Description,
			Detail:      p.Detail,
			Amount:      p.Amount,
			Currency:    s.original.Currency,
			Type:        s.original.Type,
			Date:        s.original.Date,
			RawText:     s.original.RawText,
			Assignment:  p.Assignment.Clone(),
		}
	}
	return lines, nil
}

// Replace splices parts into the batch at the original's position, replacing
// exactly one line. The input slice is not mutated.
func Replace(lines []model.ParsedLine, index int, parts []model.ParsedLine) ([]model.ParsedLine, error) {
	if index < 0 || index >= len(lines) {
		return nil, ErrBadIndex
	}
	out := make([]model.ParsedLine, 0, len(lines)+len(parts)-1)
	out = append(out, lines[:index]...)
	out = append(out, parts...)
	out = append(out, lines[index+1:]...)
	return out, nil
}
