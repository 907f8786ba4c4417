package main

import (
	"os"

	"github.com/spf13/cobra"

	"shop/internal/interfaces/cli/migrate"
	"shop/internal/interfaces/cli/server"
	"shop/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "shop",
		Short:   "Shop - products and subscribers API",
		Long:    `Shop serves the products and subscribers REST API and manages its database schema.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
