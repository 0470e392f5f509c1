package report

import (
	"fmt"

	"github.com/Simplici0/printquote/internal/budget"
	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/pricing"
)

const unselected = "(sem seleção)"

type category string

const (
	categoryPapers    category = "Papéis"
	categoryMaterials category = "Materiais"
	categoryPrints    category = "Impressão"
	categoryLabor     category = "Mão de Obra"
)

// line is one priced row of a budget, described with catalog names.
type line struct {
	Category    category
	Description string
	Quantity    float64
	UnitLabel   string
	UnitPrice   float64
	Total       float64
}

func budgetLines(state budget.State) []line {
	cat := state.Catalog
	items := state.Items
	lines := make([]line, 0, len(items.Papers)+len(items.Materials)+len(items.Prints)+len(items.Labor))

	for _, item := range items.Papers {
		lines = append(lines, line{
			Category:    categoryPapers,
			Description: paperDescription(cat, item),
			Quantity:    item.Quantity,
			UnitLabel:   "un",
			UnitPrice:   item.UnitPrice,
			Total:       item.Quantity * item.UnitPrice,
		})
	}
	for _, item := range items.Materials {
		lines = append(lines, line{
			Category:    categoryMaterials,
			Description: materialDescription(cat, item),
			Quantity:    item.Quantity,
			UnitLabel:   "un",
			UnitPrice:   item.UnitPrice,
			Total:       item.Quantity * item.UnitPrice,
		})
	}
	for _, item := range items.Prints {
		lines = append(lines, line{
			Category:    categoryPrints,
			Description: printDescription(item),
			Quantity:    item.Quantity,
			UnitLabel:   "un",
			UnitPrice:   item.UnitPrice,
			Total:       item.Quantity * item.UnitPrice,
		})
	}
	for _, item := range items.Labor {
		lines = append(lines, line{
			Category:    categoryLabor,
			Description: laborDescription(cat, item),
			Quantity:    item.Minutes,
			UnitLabel:   "min",
			UnitPrice:   item.PerMinuteRate,
			Total:       item.Minutes * item.PerMinuteRate,
		})
	}

	return lines
}

func paperDescription(cat catalog.Catalog, item pricing.PaperItem) string {
	idx, ok := item.PaperIndex.Get()
	if !ok {
		return unselected
	}
	entry, ok := cat.Paper(idx)
	if !ok {
		return unselected
	}
	if item.SizeTag == catalog.SizeNone {
		return entry.Name
	}
	return fmt.Sprintf("%s (%s)", entry.Name, sizeLabel(item.SizeTag))
}

func sizeLabel(tag catalog.SizeTag) string {
	switch tag {
	case catalog.SizeSheet:
		return "Folha"
	case catalog.SizePack:
		return "Pacote"
	}
	return string(tag)
}

func materialDescription(cat catalog.Catalog, item pricing.MaterialItem) string {
	idx, ok := item.MaterialIndex.Get()
	if !ok {
		return unselected
	}
	entry, ok := cat.Material(idx)
	if !ok {
		return unselected
	}
	v, ok := item.VariantIndex.Get()
	if !ok || v < 0 || v >= len(entry.Variants) {
		return entry.Name
	}
	return fmt.Sprintf("%s - %s", entry.Name, entry.Variants[v].Name)
}

func printDescription(item pricing.PrintItem) string {
	switch {
	case item.Type == "" && item.Format == "":
		return unselected
	case item.Format == "":
		return item.Type
	case item.Type == "":
		return item.Format
	}
	return fmt.Sprintf("%s %s", item.Type, item.Format)
}

func laborDescription(cat catalog.Catalog, item pricing.LaborItem) string {
	idx, ok := item.RoleIndex.Get()
	if !ok {
		return unselected
	}
	entry, ok := cat.Role(idx)
	if !ok {
		return unselected
	}
	return entry.Role
}

type figure struct {
	Label string
	Value float64
}

// summaryFigures lists the financial summary in display order.
func summaryFigures(totals pricing.Totals) []figure {
	return []figure{
		{"Papéis", totals.PaperSubtotal},
		{"Materiais", totals.MaterialSubtotal},
		{"Impressão", totals.PrintSubtotal},
		{"Mão de Obra", totals.LaborSubtotal},
		{"Subtotal", totals.Subtotal},
		{"Acréscimo 10%", totals.Surcharge},
		{"TOTAL GERAL", totals.GrandTotal},
		{"Valor Unitário", totals.UnitPrice},
	}
}
