package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "barangay-health",
		Short: "Barangay health records API",
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to an optional env file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the vaccination reminder worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(envFile)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the MongoDB indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(envFile)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\nTag: %s\n", Version, Tag)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
