package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pricing-datagen",
	Short: "Synthetic Pricing Dataset Generator",
	Long: `A tool to generate synthetic price/quantity datasets for
price-optimization experiments. Produces a raw CSV dataset, a scatter
plot of the distribution, and optionally stores generation runs in a
database (SQLite or PostgreSQL).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
