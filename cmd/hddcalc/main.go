package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hddcalc",
		Short: "Drilling fluid and pulling force calculator for HDD crossings (SP 341.1325800.2017)",
	}

	rootCmd.AddCommand(calcCmd())
	rootCmd.AddCommand(soilsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
