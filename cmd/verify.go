package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlowd/shopgen/internal/config"
	"github.com/harlowd/shopgen/internal/database"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Print per-table row counts from the database",
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

		if err := db.Use(cfg.Database); err != nil {
			return err
		}

		counts, err := db.TableRowCounts(database.TableNames())
		if err != nil {
			return err
		}

		for _, table := range database.TableNames() {
			fmt.Printf("  %-12s %d rows\n", table, counts[table])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().String("host", "127.0.0.1", "MySQL host")
	verifyCmd.Flags().Int("port", 3306, "MySQL port")
	verifyCmd.Flags().String("user", "root", "MySQL user")
	verifyCmd.Flags().String("password", "", "MySQL password")
	verifyCmd.Flags().String("database", "ecommerce_synth", "target database name")
}
