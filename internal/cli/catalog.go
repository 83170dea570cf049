package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/progmatch/progmatch/internal/catalog"
	"github.com/progmatch/progmatch/internal/config"
	"github.com/progmatch/progmatch/internal/output"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the imported program catalog",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <csv>",
	Short: "Validate, normalize and store a catalog spreadsheet export",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogImport,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stored programs",
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <name-or-id>",
	Short: "Show one program in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	RunE:  runCatalogStats,
}

func init() {
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogStatsCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	entries, err := catalog.LoadCSV(args[0])
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("import failed: no usable rows in %s", args[0])
	}

	store, err := catalog.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open catalog store: %w", err)
	}
	defer store.Close()

	if err := store.Replace(ctx, entries); err != nil {
		return fmt.Errorf("failed to store catalog: %w", err)
	}

	fmt.Printf("Imported %d program(s) into %s\n", len(entries), cfg.Database.Path)
	return nil
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, err := catalog.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open catalog store: %w", err)
	}
	defer store.Close()

	entries, err := store.LoadAll(cmd.Context())
	if err != nil {
		return err
	}

	return output.Output(outputFmt, entries)
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, err := catalog.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open catalog store: %w", err)
	}
	defer store.Close()

	entry, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return output.Output(outputFmt, entry)
}

func runCatalogStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, err := catalog.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open catalog store: %w", err)
	}
	defer store.Close()

	stats, err := store.GetStats(cmd.Context())
	if err != nil {
		return err
	}

	return output.Output(outputFmt, stats)
}
