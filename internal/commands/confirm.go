package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/centavo-dev/centavo/internal/config"
	"github.com/centavo-dev/centavo/internal/gitops"
	"github.com/centavo-dev/centavo/internal/importer"
	"github.com/centavo-dev/centavo/internal/importlog"
	"github.com/centavo-dev/centavo/internal/model"
	"github.com/centavo-dev/centavo/internal/store"
)

func newConfirmCommand() *cobra.Command {
	var dataDir string
	var accountType string

	cmd := &cobra.Command{
		Use:   "confirm <file>",
		Short: "Save a reviewed import batch to the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			at := model.AccountType(accountType)
			if at != model.AccountDebit && at != model.AccountCredit {
				return fmt.Errorf("unknown account type %q", accountType)
			}
			return runConfirm(absDir, args[0], at)
		},
	}

	cmd.Flags().StringVar(&dataDir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&accountType, "account-type", "debit", "account the batch came from (debit or credit)")

	return cmd
}

func runConfirm(dataDir, fileName string, accountType model.AccountType) error {
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

	txns := importer.ConfirmRecords(lines, accountType)
	stored, err := store.NewService(dataDir).Append(txns)
	if err != nil {
		return err
	}

	if err := importer.MarkProcessed(dataDir, fileName); err != nil {
		return err
	}
	if err := importlog.MarkConfirmed(dataDir, fileName, len(stored)); err != nil {
		return err
	}

	skipped := len(lines) - len(stored)
	fmt.Printf("Saved %d transactions from %s (%d duplicates skipped)\n", len(stored), fileName, skipped)

	cfg, err := config.Load(filepath.Join(dataDir, "centavo.yaml"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Git.AutoCommit && gitops.IsRepo(dataDir) {
		msg := fmt.Sprintf("import: Confirm %s (%d transactions)", fileName, len(stored))
		hash, err := gitops.CommitAll(dataDir, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("auto-commit: %w", err)
		}
		if hash != "" {
			fmt.Printf("Committed %s\n", hash)
		}
	}
	return nil
}
