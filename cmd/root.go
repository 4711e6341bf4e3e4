package cmd

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/harlowd/shopgen/internal/config"
)

var (
	cfgFile string
	Version = "1.3.0"
)

var rootCmd = &cobra.Command{
	Use:   "shopgen",
	Short: "Synthetic e-commerce dataset generator and MySQL bulk loader",
	Long: `shopgen synthesizes a fake relational e-commerce dataset (customers,
products, orders, order items), streams each entity to a CSV file, and
bulk-loads the files into MySQL with LOAD DATA LOCAL INFILE.

The generated values are plausible-looking, not statistically faithful.
Runs are reproducible: the same seed and counts produce the same files.`,
	SilenceUsage: true,
	Version:      Version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./shopgen.config.json)")
}

// bindViperFlags binds every flag of the invoked command to the viper key
// of the same name (dashes become underscores). Binding at run time keeps
// commands that share key names from clobbering each other's bindings.
func bindViperFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("shopgen.config")
	}

	viper.SetEnvPrefix("SHOPGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	config.SetDefaults()

	// Missing config file is fine, flags and defaults cover everything.
	viper.ReadInConfig()
}
