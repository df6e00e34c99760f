package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the database to be ready",
	Long: `Wait for the database to be ready by polling the connection.

This command will repeatedly check the database until it responds
successfully or the maximum number of retries is reached.

Example:
  pamctl wait
  pamctl wait --retries 60`,
	Run: func(cmd *cobra.Command, args []string) {
		retries, _ := cmd.Flags().GetInt("retries")

		if err := waitForDatabase(retries); err != nil {
			fmt.Fprintf(os.Stderr, "Database did not become ready: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().IntP("retries", "r", 90, "Number of retries")
}

func waitForDatabase(retries int) error {
	dbURL := getDatabaseURL()
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	fmt.Println("Waiting for the database to be ready...")

	for i := 0; i < retries; i++ {
		conn, err := sql.Open("postgres", dbURL)
		if err == nil {
			pingErr := conn.Ping()
			_ = conn.Close()
			if pingErr == nil {
				fmt.Println()
				fmt.Println("Database is ready!")
				return nil
			}
		}

		fmt.Print(".")
		time.Sleep(1 * time.Second)
	}

	fmt.Println()
	return fmt.Errorf("database is not ready after %d seconds", retries)
}
