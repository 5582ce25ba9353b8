// Package store persists transactions as transactions.csv in the data
// directory.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/centavo-dev/centavo/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,date,description,detail,amount,currency,type,source,account_type,category_id,tag_ids,linked_to,raw_text"

const (
	numFields      = 13
	dateFormat     = "2006-01-02"
	colID          = 0
	colDate        = 1
	colDesc        = 2
	colDetail      = 3
	colAmount      = 4
	colCurrency    = 5
	colType        = 6
	colSource      = 7
	colAccountType = 8
	colCategoryID  = 9
	colTagIDs      = 10
	colLinkedTo    = 11
	colRawText     = 12
)

// ReadTransactions reads all transactions from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, tx)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a writer (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txns {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendTransactions appends rows to an existing file (no header).
func AppendTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, tx := range txns {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(tx.ID)
	row[colDate] = tx.Date.Format(dateFormat)
	row[colDesc] = tx.Description
	row[colDetail] = tx.Detail
	row[colAmount] = tx.Amount.StringFixed(2)
	row[colCurrency] = string(tx.Currency)
	row[colType] = string(tx.Type)
	row[colSource] = string(tx.Source)
	row[colAccountType] = string(tx.AccountType)
	if tx.Assignment.CategoryID != 0 {
		row[colCategoryID] = strconv.Itoa(tx.Assignment.CategoryID)
	}
	row[colTagIDs] = joinIDs(tx.Assignment.TagIDs)
	if tx.LinkedTo != 0 {
		row[colLinkedTo] = strconv.Itoa(tx.LinkedTo)
	}
	row[colRawText] = tx.RawText
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}
	if amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("amount %s is negative; sign is derived from type", record[colAmount])
	}

	var categoryID int
	if record[colCategoryID] != "" {
		categoryID, err = strconv.Atoi(record[colCategoryID])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing category_id %q: %w", record[colCategoryID], err)
		}
	}

	tagIDs, err := splitIDs(record[colTagIDs])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing tag_ids %q: %w", record[colTagIDs], err)
	}

	var linkedTo int
	if record[colLinkedTo] != "" {
		linkedTo, err = strconv.Atoi(record[colLinkedTo])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing linked_to %q: %w", record[colLinkedTo], err)
		}
	}

	return model.Transaction{
		ID:          id,
		Date:        date,
		Description: record[colDesc],
		Detail:      record[colDetail],
		Amount:      amount,
		Currency:    model.Currency(record[colCurrency]),
		Type:        model.TxType(record[colType]),
		Source:      model.Source(record[colSource]),
		AccountType: model.AccountType(record[colAccountType]),
		Assignment:  model.Assignment{CategoryID: categoryID, TagIDs: tagIDs},
		LinkedTo:    linkedTo,
		RawText:     record[colRawText],
	}, nil
}

// joinIDs renders tag IDs as a semicolon-separated list.
func joinIDs(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ";")
}

func splitIDs(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ";")
	ids := make([]int, len(parts))
	for i, p := range parts {
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
