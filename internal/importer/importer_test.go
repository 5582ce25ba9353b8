package importer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centavo-dev/centavo/internal/model"
)

const sampleBatch = `{
  "transactions": [
    {
      "description": "SUPERMERCADO PLAZA",
      "amount": "120.50",
      "type": "expense",
      "date": "2025-03-10",
      "raw_text": "10/03 SUPERMERCADO PLAZA 120.50"
    },
    {
      "description": "PAGO HABERES",
      "amount": "3000.00",
      "currency": "PEN",
      "type": "income",
      "date": "2025-03-01"
    }
  ]
}`

func TestReadBatch(t *testing.T) {
	lines, err := ReadBatch(strings.NewReader(sampleBatch))
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "SUPERMERCADO PLAZA", lines[0].Description)
	assert.True(t, lines[0].Amount.Equal(decimal.RequireFromString("120.50")))
	assert.Equal(t, model.CurrencyPEN, lines[0].Currency) // defaulted
	assert.Equal(t, model.TypeExpense, lines[0].Type)
	assert.True(t, lines[0].Date.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "10/03 SUPERMERCADO PLAZA 120.50", lines[0].RawText)
	assert.Equal(t, model.TypeIncome, lines[1].Type)
}

func TestReadBatch_Validation(t *testing.T) {
	cases := map[string]string{
		"missing description": `{"transactions":[{"description":" ","amount":"1.00","type":"expense","date":"2025-03-10"}]}`,
		"zero amount":         `{"transactions":[{"description":"X","amount":"0.00","type":"expense","date":"2025-03-10"}]}`,
		"negative amount":     `{"transactions":[{"description":"X","amount":"-1.00","type":"expense","date":"2025-03-10"}]}`,
		"bad type":            `{"transactions":[{"description":"X","amount":"1.00","type":"transfer","date":"2025-03-10"}]}`,
		"bad currency":        `{"transactions":[{"description":"X","amount":"1.00","currency":"EUR","type":"expense","date":"2025-03-10"}]}`,
		"bad date":            `{"transactions":[{"description":"X","amount":"1.00","type":"expense","date":"10/03/2025"}]}`,
	}
	for name, body := range cases {
		_, err := ReadBatch(strings.NewReader(body))
		assert.Error(t, err, name)
	}
}

func TestWriteBatchRoundTrip(t *testing.T) {
	lines, err := ReadBatch(strings.NewReader(sampleBatch))
	require.NoError(t, err)

	lines[0].IsDuplicate = true
	lines[0].ExistingID = 7
	lines[1].Assignment = model.Assignment{CategoryID: 1, TagIDs: []int{2}}
	lines[1].Suggested = model.Assignment{CategoryID: 1}
	lines[1].SuggestedDetail = "sueldo marzo"

	var buf bytes.Buffer
	require.NoError(t, WriteBatch(&buf, lines))

	got, err := ReadBatch(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsDuplicate)
	assert.Equal(t, 7, got[0].ExistingID)
	assert.Equal(t, 1, got[1].Assignment.CategoryID)
	assert.Equal(t, []int{2}, got[1].Assignment.TagIDs)
	assert.Equal(t, "sueldo marzo", got[1].SuggestedDetail)
}

func TestScanAndMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	importDirPath := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDirPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(importDirPath, "march.json"), []byte(sampleBatch), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(importDirPath, "notes.txt"), []byte("x"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "march.json", files[0].Name)

	require.NoError(t, MarkProcessed(dir, "march.json"))

	files, err = Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.FileExists(t, filepath.Join(dir, "import", "processed", "march.json"))
}

func TestScan_MissingDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestConfirmRecords_SkipsDuplicates(t *testing.T) {
	lines, err := ReadBatch(strings.NewReader(sampleBatch))
	require.NoError(t, err)
	lines[0].IsDuplicate = true
	lines[1].Assignment = model.Assignment{CategoryID: 1}

	txns := ConfirmRecords(lines, model.AccountDebit)

	require.Len(t, txns, 1)
	assert.Equal(t, "PAGO HABERES", txns[0].Description)
	assert.Equal(t, model.SourceImport, txns[0].Source)
	assert.Equal(t, model.AccountDebit, txns[0].AccountType)
	assert.Equal(t, 1, txns[0].Assignment.CategoryID)
	assert.Zero(t, txns[0].ID)
}
