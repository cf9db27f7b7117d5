package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	hdd "Burmix/internal/calc/SP/hdd-SP"

	"github.com/spf13/cobra"
)

func soilsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "soils",
		Short: "List soil types with their group, norms and reserve coefficient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printSoils(cmd.OutOrStdout())
		},
	}
}

func printSoils(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tGROUP\tF\tBENTONITE kg/m3\tPOLYMER kg/m3\tRESERVE k")
	for _, s := range hdd.Soils() {
		k, err := hdd.ReserveCoefficient(s.Group)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%g\t%g\t%.1f\n",
			s.Code, s.Name, s.Group, s.VolumeFactor, s.BentoniteNorm, s.PolymerNorm, k)
	}
	return w.Flush()
}
