package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harlowd/shopgen/internal/config"
	"github.com/harlowd/shopgen/internal/database"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the database and tables without generating data",
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

		color.Green("schema ready in database %s", cfg.Database)
		return nil
	},
}

func connect(cfg *config.Config) (*database.Client, error) {
	return database.Connect(database.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
	})
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().String("host", "127.0.0.1", "MySQL host")
	schemaCmd.Flags().Int("port", 3306, "MySQL port")
	schemaCmd.Flags().String("user", "root", "MySQL user")
	schemaCmd.Flags().String("password", "", "MySQL password")
	schemaCmd.Flags().String("database", "ecommerce_synth", "target database name")
}
