package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harlowd/shopgen/internal/config"
	"github.com/harlowd/shopgen/internal/database"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Bulk-load previously generated CSV files into MySQL",
	Long: `Load the CSV files from the output directory into their tables without
regenerating them. The schema is created first if it does not exist.
Tables whose file is missing are skipped with a warning.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bindViperFlags(cmd)
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := connect(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.EnsureSchema(cfg.Database); err != nil {
			return err
		}

		loaded := 0
		for _, table := range database.TableNames() {
			path := filepath.Join(cfg.OutDir, table+".csv")
			if _, err := os.Stat(path); err != nil {
				color.Yellow("skipping %s: %v", table, err)
				continue
			}

			color.Cyan("loading %s into MySQL...", table)
			if warn := db.EnsureLocalInfile(); warn != nil {
				color.Yellow("warning: %v", warn)
			}
			if err := db.LoadCSV(table, path); err != nil {
				return err
			}
			loaded++
		}

		if loaded == 0 {
			return fmt.Errorf("no CSV files found in %s", cfg.OutDir)
		}
		color.Green("loaded %d table(s)", loaded)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().String("host", "127.0.0.1", "MySQL host")
	loadCmd.Flags().Int("port", 3306, "MySQL port")
	loadCmd.Flags().String("user", "root", "MySQL user")
	loadCmd.Flags().String("password", "", "MySQL password")
	loadCmd.Flags().String("database", "ecommerce_synth", "target database name")
	loadCmd.Flags().String("outdir", "data", "directory holding the CSV files")
}
