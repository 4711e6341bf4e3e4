package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harlowd/shopgen/internal/config"
	"github.com/harlowd/shopgen/internal/database"
	"github.com/harlowd/shopgen/internal/pipeline"
)

var (
	genSkipLoad    bool
	genForeignKeys bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset and bulk-load it into MySQL",
	Long: `Create the schema, then for each entity generate rows, stream them to a
CSV file in the output directory, and bulk-load that file into MySQL.

Entities are processed in dependency order: products, customers, orders,
order items. The run aborts on the first failure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bindViperFlags(cmd)
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var db *database.Client
		if !genSkipLoad {
			color.Cyan("connecting to MySQL at %s:%d...", cfg.Host, cfg.Port)
			db, err = connect(cfg)
			if err != nil {
				return err
			}
			defer db.Close()
		}

		p := pipeline.New(cfg, db)
		p.AddForeignKeys = genForeignKeys

		counts, err := p.Run()
		if err != nil {
			return err
		}

		color.Green("all done")
		fmt.Print(pipeline.Summary(counts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("host", "127.0.0.1", "MySQL host")
	generateCmd.Flags().Int("port", 3306, "MySQL port")
	generateCmd.Flags().String("user", "root", "MySQL user")
	generateCmd.Flags().String("password", "", "MySQL password")
	generateCmd.Flags().String("database", "ecommerce_synth", "target database name")
	generateCmd.Flags().String("outdir", "data", "directory for the generated CSV files")
	generateCmd.Flags().Int("customers", 1_200_000, "number of customers to generate")
	generateCmd.Flags().Int("products", 1_200_000, "number of products to generate")
	generateCmd.Flags().Int("orders", 2_000_000, "number of orders to generate")
	generateCmd.Flags().Float64("items-avg", 3.0, "approximate average items per order")
	generateCmd.Flags().Uint64("seed", 42, "random seed (non-zero)")
	generateCmd.Flags().Int64("progress-every", 100_000, "row interval between progress lines")
	generateCmd.Flags().BoolVar(&genSkipLoad, "skip-load", false, "write CSV files without loading them")
	generateCmd.Flags().BoolVar(&genForeignKeys, "add-foreign-keys", false, "add foreign key constraints after loading")
}
