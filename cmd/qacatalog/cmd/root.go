package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "qacatalog",
	Short: "QA Catalog manages application endpoint catalogs",
	Long: `QA Catalog imports Postman collections into a normalized catalog of
application endpoints, grouped by application, environment and country.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var dbPath string

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "qa-catalog.db", "path to the sqlite database file")
	_ = viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	viper.SetEnvPrefix("QACATALOG")
	viper.AutomaticEnv()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("error executing root command: %s", err)
	}
}
