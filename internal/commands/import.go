package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/centavo-dev/centavo/internal/importer"
	"github.com/centavo-dev/centavo/internal/importlog"
	"github.com/centavo-dev/centavo/internal/model"
	"github.com/centavo-dev/centavo/internal/resolver"
	"github.com/centavo-dev/centavo/internal/store"
)

func newImportCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Resolve an import batch against the ledger",
		Long: "Reads a parsed batch file from import/, marks duplicates against the " +
			"ledger, fills in suggestions from matching history, and rewrites the " +
			"file as an annotated review batch. With no argument, lists pending batches.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			if len(args) == 0 {
				return runImportList(absDir)
			}
			return runImport(absDir, args[0])
		},
	}

	cmd.Flags().StringVar(&dataDir, "dir", ".", "data directory")

	return cmd
}

func runImportList(dataDir string) error {
	files, err := importer.Scan(dataDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No pending import batches.")
		return nil
	}

	fmt.Println("Pending import batches:")
	for _, f := range files {
		fmt.Printf("  %s (%d bytes)\n", f.Name, f.Size)
	}
	return nil
}

func runImport(dataDir, fileName string) error {
	path := filepath.Join(dataDir, "import", fileName)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening batch: %w", err)
	}
	lines, err := importer.ReadBatch(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("reading batch %s: %w", fileName, err)
	}

	history, err := store.NewService(dataDir).Load()
	if err != nil {
		return err
	}

	resolved := resolver.Resolve(lines, history)
	resolved = resolver.Apply(resolved)
	stats := resolver.BatchStats(resolved)

	// Rewrite the batch in place as an annotated review file.
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing review batch: %w", err)
	}
	defer out.Close()
	if err := importer.WriteBatch(out, resolved); err != nil {
		return err
	}

	entry := importlog.Entry{
		BatchID:    uuid.NewString(),
		File:       fileName,
		Status:     importlog.StatusPending,
		Parsed:     len(resolved),
		New:        stats.New,
		Duplicates: stats.Duplicates,
		CreatedAt:  time.Now(),
	}
	if err := importlog.Append(dataDir, []importlog.Entry{entry}); err != nil {
		return err
	}

	printReview(fileName, resolved, stats)
	return nil
}

func printReview(fileName string, lines []model.ParsedLine, stats resolver.Stats) {
	fmt.Printf("Batch %s: %d parsed, %d new, %d duplicates\n\n", fileName, len(lines), stats.New, stats.Duplicates)
	for _, line := range lines {
		mark := " "
		if line.IsDuplicate {
			mark = "D"
		}
		fmt.Printf("%s %s  %8s %s  %s\n",
			mark,
			line.Date.Format("2006-01-02"),
			line.Amount.StringFixed(2),
			line.Currency,
			line.Description,
		)
		if line.IsDuplicate {
			fmt.Printf("    duplicate of #%d\n", line.ExistingID)
			continue
		}
		if !line.Assignment.IsZero() {
			fmt.Printf("    suggested: category %d tags %v\n", line.Assignment.CategoryID, line.Assignment.TagIDs)
		}
	}
	fmt.Printf("\nReview %s, then run: centavo confirm %s\n", fileName, fileName)
}
