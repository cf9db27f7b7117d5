package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	hdd "Burmix/internal/calc/SP/hdd-SP"

	"github.com/xuri/excelize/v2"
)

var ErrBadRow = errors.New("bad row")

// ParseSections reads sections from the first sheet of a workbook.
// Row 1 is a header. Columns: pipe diameter mm, length m, soil name or code.
// Blank rows are skipped; any other unreadable row fails the import.
func ParseSections(r io.Reader) ([]hdd.Input, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	var out []hdd.Input
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		in, err := parseRow(rows[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		in.Index = len(out) + 1
		out = append(out, in)
	}
	return out, nil
}

func parseRow(row []string) (hdd.Input, error) {
	if len(row) < 3 {
		return hdd.Input{}, fmt.Errorf("%w: want 3 columns, got %d", ErrBadRow, len(row))
	}
	diameter, err := toFloat(row[0])
	if err != nil {
		return hdd.Input{}, fmt.Errorf("%w: diameter %q", ErrBadRow, row[0])
	}
	length, err := toFloat(row[1])
	if err != nil {
		return hdd.Input{}, fmt.Errorf("%w: length %q", ErrBadRow, row[1])
	}
	soil, err := hdd.FindSoil(row[2])
	if err != nil {
		return hdd.Input{}, err
	}
	return hdd.Input{PipeDiameterMM: diameter, LengthM: length, SoilType: soil.Name}, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Spreadsheets saved with a Russian locale use a decimal comma.
func toFloat(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}
