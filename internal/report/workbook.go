package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Simplici0/printquote/internal/budget"
	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/pricing"
)

const currencyFormat = `"R$" #,##0.00`

type styles struct {
	header   int
	currency int
	bold     int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1E3A8A"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles{}, fmt.Errorf("create header style: %w", err)
	}

	numFmt := currencyFormat
	s.currency, err = f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return styles{}, fmt.Errorf("create currency style: %w", err)
	}

	s.bold, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return styles{}, fmt.Errorf("create bold style: %w", err)
	}

	return s, nil
}

// writeTable writes a header row and data rows starting at startRow.
// Columns listed in currencyCols get the currency number format.
func writeTable(f *excelize.File, sheet string, startRow int, header []string, rows [][]any, st styles, currencyCols ...int) error {
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, startRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("write header %s: %w", cell, err)
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, startRow)
	last, _ := excelize.CoordinatesToCellName(len(header), startRow)
	if err := f.SetCellStyle(sheet, first, last, st.header); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, row := range rows {
		r := startRow + 1 + i
		cell, _ := excelize.CoordinatesToCellName(1, r)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", r, err)
		}
	}

	if len(rows) > 0 {
		for _, col := range currencyCols {
			top, _ := excelize.CoordinatesToCellName(col, startRow+1)
			bottom, _ := excelize.CoordinatesToCellName(col, startRow+len(rows))
			if err := f.SetCellStyle(sheet, top, bottom, st.currency); err != nil {
				return fmt.Errorf("style currency column: %w", err)
			}
		}
	}

	return nil
}

func finish(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// CatalogWorkbook exports the price list, one sheet per category.
func CatalogWorkbook(cat catalog.Catalog) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	papers := make([][]any, 0, len(cat.Papers))
	for _, p := range cat.Papers {
		var perPack any
		if p.SheetsPerPack != nil {
			perPack = *p.SheetsPerPack
		}
		papers = append(papers, []any{p.Name, p.PriceA4, p.PriceA3, p.PriceSheet, p.PricePack, perPack})
	}

	materials := make([][]any, 0)
	for _, m := range cat.Materials {
		if len(m.Variants) == 0 {
			materials = append(materials, []any{m.Name, nil, nil})
			continue
		}
		for _, v := range m.Variants {
			materials = append(materials, []any{m.Name, v.Name, v.Price})
		}
	}

	prints := make([][]any, 0, len(cat.Prints))
	for _, p := range cat.Prints {
		prints = append(prints, []any{p.Type, p.Format, p.Price})
	}

	labor := make([][]any, 0, len(cat.Labor))
	for _, l := range cat.Labor {
		labor = append(labor, []any{l.Role, l.HourlyRate, l.PerMinute()})
	}

	sheets := []struct {
		name     string
		header   []string
		rows     [][]any
		currency []int
	}{
		{"Papéis", []string{"Nome", "A4", "A3", "Folha", "Pacote", "Folhas/Pacote"}, papers, []int{2, 3, 4, 5}},
		{"Materiais", []string{"Material", "Tipo", "Valor"}, materials, []int{3}},
		{"Impressões", []string{"Tipo", "Formato", "Valor"}, prints, []int{3}},
		{"Mão de Obra", []string{"Profissional", "Hora", "Minuto"}, labor, []int{2, 3}},
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				return nil, fmt.Errorf("set sheet name: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if err := writeTable(f, s.name, 1, s.header, s.rows, st, s.currency...); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", s.name, err)
		}
		if err := f.SetColWidth(s.name, "A", "A", 28); err != nil {
			return nil, fmt.Errorf("set col width: %w", err)
		}
	}

	return finish(f)
}

// BudgetWorkbook exports the current budget: job info, priced lines and the
// financial summary on a single sheet.
func BudgetWorkbook(state budget.State, totals pricing.Totals) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Orçamento"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	info := [][]any{
		{"Descrição", state.Info.Description},
		{"Quantidade total", state.Info.TotalQuantity},
		{"Formato final", state.Info.FinalSize},
		{"Tecnologia", string(state.Info.Technology)},
		{"Observações técnicas", state.Info.TechnicalNotes},
	}
	for i, row := range info {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write info row: %w", err)
		}
	}

	lines := budgetLines(state)
	rows := make([][]any, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []any{string(l.Category), l.Description, l.Quantity, l.UnitLabel, l.UnitPrice, l.Total})
	}

	tableRow := len(info) + 2
	header := []string{"Categoria", "Descrição", "Qtd", "Unidade", "Unitário", "Total"}
	if err := writeTable(f, sheet, tableRow, header, rows, st, 5, 6); err != nil {
		return nil, err
	}

	summaryRow := tableRow + len(rows) + 2
	for i, fig := range summaryFigures(totals) {
		labelCell, _ := excelize.CoordinatesToCellName(5, summaryRow+i)
		valueCell, _ := excelize.CoordinatesToCellName(6, summaryRow+i)
		if err := f.SetCellValue(sheet, labelCell, fig.Label); err != nil {
			return nil, fmt.Errorf("write summary label: %w", err)
		}
		if err := f.SetCellValue(sheet, valueCell, fig.Value); err != nil {
			return nil, fmt.Errorf("write summary value: %w", err)
		}
		if err := f.SetCellStyle(sheet, valueCell, valueCell, st.bold); err != nil {
			return nil, fmt.Errorf("style summary value: %w", err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 24); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}

	return finish(f)
}
