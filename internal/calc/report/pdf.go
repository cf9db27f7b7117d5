package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	hdd "Burmix/internal/calc/SP/hdd-SP"

	"github.com/phpdave11/gofpdf"
)

const DefaultTitle = "HDD drilling fluid and pulling force (SP 341.1325800.2017)"

// Core PDF fonts have no Cyrillic, so the PDF uses Latin labels and soil codes.
var pdfColumns = []struct {
	title string
	width float64
}{
	{"No", 10},
	{"Pipe, mm", 16},
	{"L, m", 16},
	{"Soil", 30},
	{"Group", 12},
	{"F coef", 12},
	{"D bore, mm", 18},
	{"V, m3", 18},
	{"Bent., kg", 20},
	{"Bent., kg/m", 18},
	{"Poly., kg", 18},
	{"Poly., kg/m", 18},
	{"F tab, kN", 16},
	{"Reserve k", 14},
	{"F total, kN", 18},
}

var pdfMethodology = []string{
	"1. Inputs: pipe outer diameter (mm), crossing length (m), soil type (SP 341 annex L).",
	"2. Soil group, volume factor and bentonite/polymer norms are taken from the soil table.",
	"3. Borehole diameter D is taken from table 8.3; untabulated pipes use 1.3 x pipe diameter.",
	"4. V = pi x D^2 / 4 x (L + 0.1 L) x F; material = V x norm; per metre = material / L.",
	"5. F tab from table A.3 at the nearest diameter and length; F total = F tab x reserve k.",
}

func pdfRow(r hdd.Result) []string {
	r = r.Rounded()
	return []string{
		fmt.Sprint(r.Index),
		fmt.Sprint(r.PipeDiameterMM),
		fmt.Sprint(r.LengthM),
		r.SoilCode,
		string(r.Group),
		fmt.Sprint(r.VolumeFactor),
		fmt.Sprint(r.BoreholeDiameterMM),
		fmt.Sprintf("%.2f", r.VolumeM3),
		fmt.Sprintf("%.1f", r.BentoniteTotalKG),
		fmt.Sprintf("%.2f", r.BentonitePerMKG),
		fmt.Sprintf("%.1f", r.PolymerTotalKG),
		fmt.Sprintf("%.2f", r.PolymerPerMKG),
		fmt.Sprint(r.TabulatedForceKN),
		fmt.Sprint(r.ReserveCoefficient),
		fmt.Sprintf("%.1f", r.TotalForceKN),
	}
}

// WritePDF renders a one-page summary of the results. Nothing is written to
// w unless rendering succeeds.
func WritePDF(w io.Writer, title string, results []hdd.Result) error {
	if title == "" {
		title = DefaultTitle
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 7)
	for _, c := range pdfColumns {
		pdf.CellFormat(c.width, 6, c.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 7)
	for _, r := range results {
		for i, v := range pdfRow(r) {
			pdf.CellFormat(pdfColumns[i].width, 5, v, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Method")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range pdfMethodology {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
