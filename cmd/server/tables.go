package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/destiny-api/internal/config"
	"github.com/KirkDiggler/destiny-api/internal/engine/progression"
	"github.com/KirkDiggler/destiny-api/internal/repositories/catalog"
)

var (
	tablesCatalog string
	tablesOut     string
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Build progression tables from an item catalog",
	Long: `Build the mastery and specialization progression tables for every table id
referenced by the item catalog and write them as a byte-stable JSON document.
Use --out - to write to stdout.`,
	RunE: runTables,
}

func init() {
	tablesCmd.Flags().StringVar(&tablesCatalog, "catalog", "", "Item catalog JSON (DESTINY_CATALOG_PATH)")
	tablesCmd.Flags().StringVar(&tablesOut, "out", "", "Output file (DESTINY_TABLES_OUT)")
}

func runTables(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("catalog") {
		cfg.CatalogPath = tablesCatalog
	}
	if cmd.Flags().Changed("out") {
		cfg.TablesOut = tablesOut
	}

	repo, err := catalog.NewFile(cfg.CatalogPath)
	if err != nil {
		return err
	}

	items, err := repo.List(context.Background(), catalog.ListInput{})
	if err != nil {
		return err
	}

	tables := progression.BuildTables(items.Items)

	if cfg.TablesOut == "-" {
		return progression.WriteJSON(os.Stdout, tables)
	}
	if err := writeTablesFile(cfg.TablesOut, tables); err != nil {
		return err
	}

	mastery := 0
	for i := range tables {
		if tables[i].IsMastery() {
			mastery++
		}
	}

	slog.Info("progression tables written", "path", cfg.TablesOut)
	fmt.Printf("Built %s tables (%s mastery, %s specialization) from %s items -> %s\n",
		humanize.Comma(int64(len(tables))),
		humanize.Comma(int64(mastery)),
		humanize.Comma(int64(len(tables)-mastery)),
		humanize.Comma(int64(len(items.Items))),
		cfg.TablesOut)

	return nil
}

// writeTablesFile writes to a temp file first so a failed run never leaves a
// truncated document behind
func writeTablesFile(path string, tables []progression.Table) (err error) {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if err = progression.WriteJSON(w, tables); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write tables: %w", err)
	}
	if err = flushAndClose(w, f); err != nil {
		return err
	}

	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to move tables into place: %w", err)
	}
	return nil
}

func flushAndClose(w *bufio.Writer, c io.Closer) error {
	if err := w.Flush(); err != nil {
		_ = c.Close()
		return fmt.Errorf("failed to flush tables: %w", err)
	}
	if err := c.Close(); err != nil {
		return fmt.Errorf("failed to close tables file: %w", err)
	}
	return nil
}
