// Package importer reads and writes import batch files: raw batches of
// parsed bank lines dropped into import/, and annotated review files
// produced after duplicate resolution.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/centavo-dev/centavo/internal/model"
)

// importDir is the subdirectory for incoming batch files.
const importDir = "import"

// processedDir is the subdirectory for batches already confirmed.
const processedDir = "import/processed"

const dateFormat = "2006-01-02"

// FileInfo describes a batch file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Line is the wire shape of one parsed bank line.
type Line struct {
	Description string `json:"description"`
	Detail      string `json:"detail,omitempty"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency,omitempty"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	RawText     string `json:"raw_text,omitempty"`

	// Annotation fields, present only in review files.
	CategoryID      int    `json:"category_id,omitempty"`
	TagIDs          []int  `json:"tag_ids,omitempty"`
	IsDuplicate     bool   `json:"is_duplicate,omitempty"`
	ExistingID      int    `json:"existing_id,omitempty"`
	SuggestedCatID  int    `json:"suggested_category_id,omitempty"`
	SuggestedTagIDs []int  `json:"suggested_tag_ids,omitempty"`
	SuggestedDetail string `json:"suggested_detail,omitempty"`
}

// Batch is the wire shape of a batch file.
type Batch struct {
	Lines []Line `json:"transactions"`
}

// Scan returns JSON batch files in <dataDir>/import/.
func Scan(dataDir string) ([]FileInfo, error) {
	dir := filepath.Join(dataDir, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// ReadBatch decodes and validates a batch file.
func ReadBatch(r io.Reader) ([]model.ParsedLine, error) {
	var batch Batch
	if err := json.NewDecoder(r).Decode(&batch); err != nil {
		return nil, fmt.Errorf("decoding batch: %w", err)
	}

	lines := make([]model.ParsedLine, len(batch.Lines))
	for i, l := range batch.Lines {
		line, err := toParsedLine(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		lines[i] = line
	}
	return lines, nil
}

// WriteBatch encodes annotated lines as a review file.
func WriteBatch(w io.Writer, lines []model.ParsedLine) error {
	batch := Batch{Lines: make([]Line, len(lines))}
	for i, line := range lines {
		batch.Lines[i] = fromParsedLine(line)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(batch); err != nil {
		return fmt.Errorf("encoding batch: %w", err)
	}
	return nil
}

// MarkProcessed moves a batch file from import/ to import/processed/.
func MarkProcessed(dataDir, fileName string) error {
	src := filepath.Join(dataDir, importDir, fileName)
	dstDir := filepath.Join(dataDir, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}

func toParsedLine(l Line) (model.ParsedLine, error) {
	if strings.TrimSpace(l.Description) == "" {
		return model.ParsedLine{}, fmt.Errorf("description is required")
	}

	amount, err := decimal.NewFromString(l.Amount)
	if err != nil {
		return model.ParsedLine{}, fmt.Errorf("parsing amount %q: %w", l.Amount, err)
	}
	if !amount.IsPositive() {
		return model.ParsedLine{}, fmt.Errorf("amount %s must be positive", l.Amount)
	}

	txType := model.TxType(l.Type)
	if txType != model.TypeIncome && txType != model.TypeExpense {
		return model.ParsedLine{}, fmt.Errorf("unknown type %q", l.Type)
	}

	currency := model.Currency(l.Currency)
	if currency == "" {
		currency = model.CurrencyPEN
	}
	if currency != model.CurrencyPEN && currency != model.CurrencyUSD {
		return model.ParsedLine{}, fmt.Errorf("unknown currency %q", l.Currency)
	}

	date, err := time.Parse(dateFormat, l.Date)
	if err != nil {
		return model.ParsedLine{}, fmt.Errorf("parsing date %q: %w", l.Date, err)
	}

	return model.ParsedLine{
		Description: l.Description,
		Detail:      l.Detail,
		Amount:      amount,
		Currency:    currency,
		Type:        txType,
		Date:        date,
		RawText:     l.RawText,
		Assignment:  model.Assignment{CategoryID: l.CategoryID, TagIDs: l.TagIDs},
		IsDuplicate: l.IsDuplicate,
		ExistingID:  l.ExistingID,
		Suggested: model.Assignment{
			CategoryID: l.SuggestedCatID,
			TagIDs:     l.SuggestedTagIDs,
		},
		SuggestedDetail: l.SuggestedDetail,
	}, nil
}

func fromParsedLine(line model.ParsedLine) Line {
	return Line{
		Description:     line.Description,
		Detail:          line.Detail,
		Amount:          line.Amount.StringFixed(2),
		Currency:        string(line.Currency),
		Type:            string(line.Type),
		Date:            line.Date.Format(dateFormat),
		RawText:         line.RawText,
		CategoryID:      line.Assignment.CategoryID,
		TagIDs:          line.Assignment.TagIDs,
		IsDuplicate:     line.IsDuplicate,
		ExistingID:      line.ExistingID,
		SuggestedCatID:  line.Suggested.CategoryID,
		SuggestedTagIDs: line.Suggested.TagIDs,
		SuggestedDetail: line.SuggestedDetail,
	}
}
