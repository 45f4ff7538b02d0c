package main

import (
	"os"

	"github.com/spf13/cobra"

	"escala/internal/interfaces/cli/migrate"
	"escala/internal/interfaces/cli/roster"
	"escala/internal/interfaces/cli/swap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "escala",
		Short: "Escala - duty-roster allocation and exchange engine",
		Long:  `Escala resolves duty-roster eligibility, generates daily allocations with fairness accounting, and manages the shift-exchange workflow.`,
	}

	rootCmd.AddCommand(
		migrate.NewCommand(),
		roster.NewCommand(),
		swap.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
