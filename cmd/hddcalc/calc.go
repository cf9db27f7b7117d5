package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	hdd "Burmix/internal/calc/SP/hdd-SP"
	"Burmix/internal/calc/batch"
	"Burmix/internal/calc/report"

	"github.com/spf13/cobra"
)

var errSectionFormat = errors.New("section must be DIAMETER:LENGTH:SOIL")

type calcOptions struct {
	sections []string
	xlsxPath string
	pdfPath  string
	title    string
}

func calcCmd() *cobra.Command {
	var opts calcOptions

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate drilling fluid consumption and pulling force per section",
		Long: `Calculate borehole diameter, drilling fluid volume, bentonite and polymer
consumption and the required pulling force for up to 20 sections.

Each section is DIAMETER_MM:LENGTH_M:SOIL, SOIL being the soil name or code
(see "hddcalc soils").

Examples:
  hddcalc calc -s 200:100:sandy-loam
  hddcalc calc -s 200:100:Супесь -s 630:450:clay -o crossing.xlsx --pdf crossing.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.sections, "section", "s", nil, "Section DIAMETER_MM:LENGTH_M:SOIL (repeatable) [required]")
	cmd.Flags().StringVarP(&opts.xlsxPath, "output", "o", "", "Write the calculation workbook (xlsx)")
	cmd.Flags().StringVar(&opts.pdfPath, "pdf", "", "Write a PDF summary")
	cmd.Flags().StringVar(&opts.title, "title", "", "PDF title")
	cmd.MarkFlagRequired("section")
	return cmd
}

func runCalc(out io.Writer, opts calcOptions) error {
	in := batch.Input{Title: opts.title}
	for _, s := range opts.sections {
		section, err := parseSection(s)
		if err != nil {
			return err
		}
		in.Sections = append(in.Sections, section)
	}
	res, err := batch.Calculate(in)
	if err != nil {
		return err
	}
	if err := printResults(out, res.Results); err != nil {
		return err
	}
	if opts.xlsxPath != "" {
		if err := writeFileAtomic(opts.xlsxPath, func(w io.Writer) error {
			return report.WriteWorkbook(w, res.Results)
		}); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		fmt.Fprintf(out, "Workbook written to %s\n", opts.xlsxPath)
	}
	if opts.pdfPath != "" {
		if err := writeFileAtomic(opts.pdfPath, func(w io.Writer) error {
			return report.WritePDF(w, in.Title, res.Results)
		}); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		fmt.Fprintf(out, "PDF written to %s\n", opts.pdfPath)
	}
	return nil
}

func parseSection(s string) (hdd.Input, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return hdd.Input{}, fmt.Errorf("%w: %q", errSectionFormat, s)
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return hdd.Input{}, fmt.Errorf("%w: diameter %q", errSectionFormat, parts[0])
	}
	l, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return hdd.Input{}, fmt.Errorf("%w: length %q", errSectionFormat, parts[1])
	}
	soil, err := hdd.FindSoil(parts[2])
	if err != nil {
		return hdd.Input{}, err
	}
	return hdd.Input{PipeDiameterMM: d, LengthM: l, SoilType: soil.Name}, nil
}

func printResults(out io.Writer, results []hdd.Result) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "#\tPipe mm\tL m\tSoil\tGroup\tD bore mm\tV m3\tBentonite kg\tkg/m\tPolymer kg\tkg/m\tF tab kN\tk\tF kN\t")
	for _, r := range results {
		r = r.Rounded()
		fmt.Fprintf(w, "%d\t%g\t%g\t%s\t%s\t%d\t%.2f\t%.1f\t%.2f\t%.1f\t%.2f\t%g\t%g\t%.1f\t\n",
			r.Index, r.PipeDiameterMM, r.LengthM, r.SoilCode, r.Group, r.BoreholeDiameterMM,
			r.VolumeM3, r.BentoniteTotalKG, r.BentonitePerMKG, r.PolymerTotalKG, r.PolymerPerMKG,
			r.TabulatedForceKN, r.ReserveCoefficient, r.TotalForceKN)
	}
	return w.Flush()
}

// writeFileAtomic renames a fully written temp file over path, so a failed
// export never leaves a partial file behind.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".hddcalc-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
