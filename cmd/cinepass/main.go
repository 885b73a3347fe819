package main

import (
	"os"

	"github.com/spf13/cobra"

	"cinepass/internal/interfaces/cli/quote"
	"cinepass/internal/interfaces/cli/tariffs"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cinepass",
		Short: "CinePass - cinema membership pricing",
		Long:  `CinePass computes membership quotes: the prorated first payment and the total cost of a subscription over its commitment.`,
	}

	rootCmd.AddCommand(
		quote.NewCommand(),
		tariffs.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
