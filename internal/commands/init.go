package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/centavo-dev/centavo/internal/config"
	"github.com/centavo-dev/centavo/internal/gitops"
	"github.com/centavo-dev/centavo/internal/store"
	"github.com/centavo-dev/centavo/internal/taxonomy"
)

func newInitCommand() *cobra.Command {
	var name string
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new Centavo ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, currency)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "profile name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&currency, "currency", "PEN", "default currency (PEN or USD)")

	return cmd
}

func runInit(dir, name, currency string) error {
	// Create directory structure.
	dirs := []string{
		"taxonomy",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write centavo.yaml.
	cfg := config.Default(name, currency)
	if err := config.Save(filepath.Join(dir, "centavo.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write starter taxonomy.
	tax := taxonomy.NewService(taxonomy.DefaultCategories(), taxonomy.DefaultTags())
	if err := tax.Save(dir); err != nil {
		return fmt.Errorf("writing taxonomy: %w", err)
	}

	// Write empty ledger.
	if err := store.NewService(dir).Rewrite(nil); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	// Write .gitignore.
	gitignore := "exports/\n.centavo-cache/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	// Write import/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	// Initialize git and create initial commit.
	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	hash, err := gitops.CommitAll(dir, "init: Initialize "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized Centavo ledger at %s (%s)\n", dir, hash)
	return nil
}
