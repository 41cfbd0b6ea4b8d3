package cmd

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	_ "modernc.org/sqlite"

	"qa-catalog/internal/importer"
	"qa-catalog/pkg/sqlc"
	"qa-catalog/pkg/sqlc/gen"
)

var (
	collectionFile  string
	environmentFile string
	applicationCode string
	environmentCode string
	countryCode     string
)

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&collectionFile, "collection", "", "Postman collection v2.1 JSON file (required)")
	importCmd.Flags().StringVar(&environmentFile, "environment", "", "Postman environment export JSON file")
	importCmd.Flags().StringVar(&applicationCode, "application-code", "", "application code (required)")
	importCmd.Flags().StringVar(&environmentCode, "environment-code", "", "environment code (required)")
	importCmd.Flags().StringVar(&countryCode, "country-code", "", "country code (required)")

	_ = importCmd.MarkFlagRequired("collection")
	_ = importCmd.MarkFlagRequired("application-code")
	_ = importCmd.MarkFlagRequired("environment-code")
	_ = importCmd.MarkFlagRequired("country-code")
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a Postman collection into the endpoint catalog",
	Long: `Import a Postman collection v2.1 export. Folder structure is flattened,
request URLs are normalized into catalog paths, and endpoints are upserted
under the application+environment+country mapping. An optional environment
export seeds the mapping's base URL, default headers and variable catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		collectionData, err := os.ReadFile(collectionFile)
		if err != nil {
			return fmt.Errorf("failed to read collection file: %w", err)
		}

		var environmentData []byte
		if environmentFile != "" {
			environmentData, err = os.ReadFile(environmentFile)
			if err != nil {
				return fmt.Errorf("failed to read environment file: %w", err)
			}
		}

		db, err := sql.Open("sqlite", viper.GetString("db"))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		if err := sqlc.CreateLocalTables(ctx, db); err != nil {
			return fmt.Errorf("failed to prepare schema: %w", err)
		}

		queries, err := gen.Prepare(ctx, db)
		if err != nil {
			return fmt.Errorf("failed to prepare queries: %w", err)
		}
		defer queries.Close()

		svc := importer.New(db, queries, importer.WithLogger(slog.Default()))
		summary, err := svc.ImportCollection(ctx, importer.Request{
			CollectionData:  collectionData,
			EnvironmentData: environmentData,
			ApplicationCode: applicationCode,
			EnvironmentCode: environmentCode,
			CountryCode:     countryCode,
		})
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		printSummary(summary)
		return nil
	},
}

func printSummary(summary importer.Summary) {
	fmt.Printf("Import %s\n", summary.Outcome)
	fmt.Printf("  Application: %s\n", summary.Application)
	fmt.Printf("  Environment: %s\n", summary.Environment)
	fmt.Printf("  Country:     %s\n", summary.Country)
	fmt.Printf("  Mapping:     %s\n", summary.MappingID)
	fmt.Printf("  Endpoints:   %d created, %d updated, %d total\n",
		summary.EndpointsCreated, summary.EndpointsUpdated, summary.EndpointsTotal)
	if len(summary.SkippedItems) > 0 {
		fmt.Printf("  Skipped:\n")
		for _, item := range summary.SkippedItems {
			fmt.Printf("    - %s: %s\n", item.Name, item.Reason)
		}
	}
	fmt.Printf("  Variables:   %d extracted, %d runtime values\n",
		summary.ExecutionVariables.VariablesExtracted,
		summary.ExecutionVariables.RuntimeValuesSet)
}
