package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"partnerup/internal/config"
	"partnerup/internal/database/migrations"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the PartnerUp database schema",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	},
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.NewPostgresDB(config.Load())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if err := migrations.MigrateUp(db.DB); err != nil {
			return err
		}

		status, err := migrations.GetStatus(db.DB)
		if err != nil {
			return err
		}
		fmt.Printf("Schema at version %d\n", status.Current)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.NewPostgresDB(config.Load())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		status, err := migrations.GetStatus(db.DB)
		if err != nil {
			return err
		}

		fmt.Printf("Current: %d\n", status.Current)
		fmt.Printf("Latest:  %d\n", status.Latest)
		fmt.Printf("Dirty:   %t\n", status.Dirty)
		if !status.UpToDate() {
			return fmt.Errorf("schema is not up to date")
		}
		fmt.Println("Schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(statusCmd)
}
