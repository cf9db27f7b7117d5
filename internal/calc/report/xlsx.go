package report

import (
	"io"

	hdd "Burmix/internal/calc/SP/hdd-SP"

	"github.com/xuri/excelize/v2"
)

const (
	SheetCalculation = "Расчет"
	SheetMethodology = "Методика расчета"

	FileName = "bur_mix_with_ftyagi.xlsx"
)

var Columns = []string{
	"Участок",
	"Диаметр трубы (мм)",
	"Длина (м)",
	"Тип грунта",
	"Группа",
	"Коэф. F",
	"D бур. (мм)",
	"Объем (м³)",
	"Бентонит (всего, кг)",
	"Бентонит (кг/м)",
	"Полимер (всего, кг)",
	"Полимер (кг/м)",
	"F табл. (кН)",
	"Коэф. запаса",
	"F итог. (кН)",
}

// Methodology is the fixed text of the second sheet.
var Methodology = []string{
	"Методика расчёта расхода бурового раствора и силы тяги (по СП 341.1325800.2017)",
	"",
	"1. Вводные параметры:",
	"   - Диаметр трубопровода (dн), мм",
	"   - Длина перехода, м",
	"   - Тип грунта (по классификации Приложения Л)",
	"",
	"2. Определение группы грунта по таблице соответствия.",
	"3. Определение диаметра бурового канала (Dбур): по таблице 8.3 СП.",
	"4. Расчёт объёма и расхода раствора по грунту и диаметру канала.",
	"5. Расчёт F табличная по таблицам А.2 и А.3, и умножение на коэффициент запаса.",
	"",
	"F_итого = Fтаб × коэффициент запаса",
}

func row(r hdd.Result) []any {
	r = r.Rounded()
	return []any{
		r.Index,
		r.PipeDiameterMM,
		r.LengthM,
		r.SoilType,
		string(r.Group),
		r.VolumeFactor,
		r.BoreholeDiameterMM,
		r.VolumeM3,
		r.BentoniteTotalKG,
		r.BentonitePerMKG,
		r.PolymerTotalKG,
		r.PolymerPerMKG,
		r.TabulatedForceKN,
		r.ReserveCoefficient,
		r.TotalForceKN,
	}
}

// NewWorkbook builds the calculation and methodology sheets in memory.
// The caller owns the returned file and must Close it.
func NewWorkbook(results []hdd.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := fillWorkbook(f, results); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func fillWorkbook(f *excelize.File, results []hdd.Result) error {
	if err := f.SetSheetName(f.GetSheetName(0), SheetCalculation); err != nil {
		return err
	}
	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetCalculation, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetCalculation, 1, 1, bold); err != nil {
		return err
	}
	for i, r := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row(r)
		if err := f.SetSheetRow(SheetCalculation, cell, &values); err != nil {
			return err
		}
	}
	lastCol, err := excelize.ColumnNumberToName(len(Columns))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(SheetCalculation, "A", lastCol, 16); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetMethodology); err != nil {
		return err
	}
	for i, line := range Methodology {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(SheetMethodology, cell, line); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetMethodology, "A", "A", 90)
}

// WriteWorkbook serializes the whole workbook before writing anything to w.
func WriteWorkbook(w io.Writer, results []hdd.Result) error {
	f, err := NewWorkbook(results)
	if err != nil {
		return err
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}
