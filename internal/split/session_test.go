package split

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centavo-dev/centavo/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func groceriesLine(amount string) model.ParsedLine {
	return model.ParsedLine{
		Description: "SUPERMERCADO PLAZA",
		Amount:      dec(amount),
		Currency:    model.CurrencyPEN,
		Type:        model.TypeExpense,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		RawText:     "10/03 SUPERMERCADO PLAZA 120.50",
		Assignment:  model.Assignment{CategoryID: 3, TagIDs: []int{1}},
	}
}

func TestNewSession_InitialState(t *testing.T) {
	s := NewSession(groceriesLine("120.50"))

	parts := s.Parts()
	require.Len(t, parts, 2)
	assert.True(t, parts[0].Amount.Equal(dec("120.50")))
	assert.Equal(t, 3, parts[0].Assignment.CategoryID)
	assert.Equal(t, []int{1}, parts[0].Assignment.TagIDs)
	assert.True(t, parts[1].Amount.IsZero())
	assert.True(t, parts[1].Assignment.IsZero())
	assert.True(t, s.Balanced())
}

func TestConfirm_BalancedSplit(t *testing.T) {
	s := NewSession(groceriesLine("120.50"))
	require.NoError(t, s.SetAmount(0, dec("80.50")))
	require.NoError(t, s.SetAmount(1, dec("40.00")))
	require.NoError(t, s.SetAssignment(1, model.Assignment{CategoryID: 8}))
	require.NoError(t, s.SetDetail(1, "regalo"))

	lines, err := s.Confirm()
	require.NoError(t, err)
	require.Len(t, lines, 2)

	for _, l := range lines {
		assert.Equal(t, "SUPERMERCADO PLAZA", l.Description)
		assert.Equal(t, model.CurrencyPEN, l.Currency)
		assert.Equal(t, model.TypeExpense, l.Type)
		assert.Equal(t, "10/03 SUPERMERCADO PLAZA 120.50", l.RawText)
	}
	assert.True(t, lines[0].Amount.Equal(dec("80.50")))
	assert.Equal(t, 3, lines[0].Assignment.CategoryID)
	assert.True(t, lines[1].Amount.Equal(dec("40.00")))
	assert.Equal(t, 8, lines[1].Assignment.CategoryID)
	assert.Equal(t, "regalo", lines[1].Detail)
}

func TestConfirm_RejectsImbalance(t *testing.T) {
	s := NewSession(groceriesLine("120.50"))
	require.NoError(t, s.SetAmount(0, dec("80.00")))
	require.NoError(t, s.SetAmount(1, dec("40.00")))

	_, err := s.Confirm()
	var ierr ImbalanceError
	require.ErrorAs(t, err, &ierr)
	assert.True(t, ierr.Difference().Equal(dec("0.50")))

	// Session stays open: fix and retry.
	require.NoError(t, s.SetAmount(1, dec("40.50")))
	lines, err := s.Confirm()
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestConfirm_RejectsOffByOneCent(t *testing.T) {
	s := NewSession(groceriesLine("100.00"))
	require.NoError(t, s.SetAmount(0, dec("50.00")))
	require.NoError(t, s.SetAmount(1, dec("50.01")))

	_, err := s.Confirm()
	var ierr ImbalanceError
	require.ErrorAs(t, err, &ierr)
	assert.True(t, ierr.Difference().Equal(dec("-0.01")))
}

func TestConfirm_RejectsNonPositiveParts(t *testing.T) {
	s := NewSession(groceriesLine("100.00"))
	require.NoError(t, s.SetAmount(0, dec("100.00")))
	// Part two still zero.

	_, err := s.Confirm()
	var ierr ImbalanceError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, []int{1}, ierr.BadParts)
}

func TestSplitEvenly_RemainderGoesToFirstPart(t *testing.T) {
	s := NewSession(groceriesLine("100.00"))
	require.NoError(t, s.SplitEvenly(3))

	parts := s.Parts()
	require.Len(t, parts, 3)
	assert.True(t, parts[0].Amount.Equal(dec("33.34")))
	assert.True(t, parts[1].Amount.Equal(dec("33.33")))
	assert.True(t, parts[2].Amount.Equal(dec("33.33")))
	assert.Equal(t, 3, parts[0].Assignment.CategoryID)
	assert.True(t, parts[1].Assignment.IsZero())
	assert.True(t, s.Balanced())
}

func TestSplitEvenly_AlwaysBalances(t *testing.T) {
	amounts := []string{"100.00", "0.05", "999.99", "1234.56", "0.02"}
	for _, amount := range amounts {
		for n := 2; n <= 50; n++ {
			s := NewSession(groceriesLine(amount))
			require.NoError(t, s.SplitEvenly(n))
			assert.True(t, s.Balanced(), fmt.Sprintf("%s into %d parts", amount, n))
			assert.Len(t, s.Parts(), n)
		}
	}
}

func TestSplitEvenly_RejectsFewerThanTwo(t *testing.T) {
	s := NewSession(groceriesLine("100.00"))
	assert.ErrorIs(t, s.SplitEvenly(1), ErrTooFewParts)
	assert.ErrorIs(t, s.SplitEvenly(0), ErrTooFewParts)
}

func TestDistributeRemaining_FillsFirstZeroPart(t *testing.T) {
	s := NewSession(groceriesLine("120.50"))
	require.NoError(t, s.SetAmount(0, dec("80.00")))

	s.DistributeRemaining()

	parts := s.Parts()
	assert.True(t, parts[1].Amount.Equal(dec("40.50")))
	assert.True(t, s.Balanced())
}

func TestDistributeRemaining_AddsToFirstPartWhenNoneEmpty(t *testing.T) {
	s := NewSession(groceriesLine("120.50"))
	require.NoError(t, s.SetAmount(0, dec("80.00")))
	require.NoError(t, s.SetAmount(1, dec("30.00")))

	s.DistributeRemaining()

	parts := s.Parts()
	assert.True(t, parts[0].Amount.Equal(dec("90.50")))
	assert.True(t, s.Balanced())
}

func TestDistributeRemaining_NoopWhenBalanced(t *testing.T) {
	s := NewSession(groceriesLine("120.50"))
	before := s.Parts()
	s.DistributeRemaining()
	assert.Equal(t, before, s.Parts())
}

func TestRemovePart_KeepsAtLeastTwo(t *testing.T) {
	s := NewSession(groceriesLine("100.00"))
	assert.ErrorIs(t, s.RemovePart(1), ErrTooFewParts)

	s.AddPart()
	require.NoError(t, s.RemovePart(2))
	assert.Len(t, s.Parts(), 2)

	assert.ErrorIs(t, s.RemovePart(5), ErrBadIndex)
}

func TestParts_ReturnsCopies(t *testing.T) {
	s := NewSession(groceriesLine("100.00"))
	parts := s.Parts()
	parts[0].Amount = dec("1.00")
	parts[0].Assignment.TagIDs[0] = 99

	fresh := s.Parts()
	assert.True(t, fresh[0].Amount.Equal(dec("100.00")))
	assert.Equal(t, []int{1}, fresh[0].Assignment.TagIDs)
}

func TestReplace_SplicesAtPosition(t *testing.T) {
	batch := []model.ParsedLine{
		{Description: "A"},
		{Description: "B"},
		{Description: "C"},
	}
	parts := []model.ParsedLine{
		{Description: "B1"},
		{Description: "B2"},
	}

	got, err := Replace(batch, 1, parts)
	require.NoError(t, err)

	var names []string
	for _, l := range got {
		names = append(names, l.Description)
	}
	assert.Equal(t, []string{"A", "B1", "B2", "C"}, names)

	// Input untouched.
	assert.Len(t, batch, 3)
	assert.Equal(t, "B", batch[1].Description)

	_, err = Replace(batch, 3, parts)
	assert.ErrorIs(t, err, ErrBadIndex)
}
