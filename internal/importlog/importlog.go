// Package importlog records one audit row per import batch in
// logs/imports.csv.
package importlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Batch statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

// Entry is one row in the import log.
type Entry struct {
	BatchID    string
	File       string
	Status     string
	Parsed     int
	New        int
	Duplicates int
	Saved      int
	CreatedAt  time.Time
}

// Header is the CSV header for imports.csv.
const Header = "batch_id,file,status,parsed,new,duplicates,saved,created_at"

const (
	numFields     = 8
	logDir        = "logs"
	logFile       = "logs/imports.csv"
	colBatchID    = 0
	colFile       = 1
	colStatus     = 2
	colParsed     = 3
	colNew        = 4
	colDuplicates = 5
	colSaved      = 6
	colCreatedAt  = 7
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colBatchID] = e.BatchID
	row[colFile] = e.File
	row[colStatus] = e.Status
	row[colParsed] = strconv.Itoa(e.Parsed)
	row[colNew] = strconv.Itoa(e.New)
	row[colDuplicates] = strconv.Itoa(e.Duplicates)
	row[colSaved] = strconv.Itoa(e.Saved)
	row[colCreatedAt] = e.CreatedAt.Format(time.RFC3339)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	counts := make([]int, 4)
	for i, col := range []int{colParsed, colNew, colDuplicates, colSaved} {
		n, err := strconv.Atoi(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing count %q: %w", record[col], err)
		}
		counts[i] = n
	}

	ts, err := time.Parse(time.RFC3339, record[colCreatedAt])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing created_at %q: %w", record[colCreatedAt], err)
	}

	return Entry{
		BatchID:    record[colBatchID],
		File:       record[colFile],
		Status:     record[colStatus],
		Parsed:     counts[0],
		New:        counts[1],
		Duplicates: counts[2],
		Saved:      counts[3],
		CreatedAt:  ts,
	}, nil
}

// Append writes entries to <dataDir>/logs/imports.csv, creating the file
// and header if needed.
func Append(dataDir string, entries []Entry) error {
	dir := filepath.Join(dataDir, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(dataDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <dataDir>/logs/imports.csv.
// Returns an empty slice if the file does not exist.
func Read(dataDir string) ([]Entry, error) {
	path := filepath.Join(dataDir, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

// MarkConfirmed updates the batch row for file to confirmed status with
// the number of saved transactions, rewriting the log.
func MarkConfirmed(dataDir, file string, saved int) error {
	entries, err := Read(dataDir)
	if err != nil {
		return err
	}

	found := false
	for i := range entries {
		if entries[i].File == file && entries[i].Status == StatusPending {
			entries[i].Status = StatusConfirmed
			entries[i].Saved = saved
			found = true
		}
	}
	if !found {
		return fmt.Errorf("no pending import log entry for %s", file)
	}

	path := filepath.Join(dataDir, logFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rewriting import log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	return cw.Error()
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
