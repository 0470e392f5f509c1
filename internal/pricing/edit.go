package pricing

import "github.com/Simplici0/printquote/internal/catalog"

// Edits are applied in order to a copy of the item, then the item is resolved
// once against the catalog, so resolution always sees the post-edit selection.

type PaperEdit func(*PaperItem)

func SetPaperIndex(i Index) PaperEdit {
	return func(p *PaperItem) { p.PaperIndex = i }
}

func SetSizeTag(tag catalog.SizeTag) PaperEdit {
	return func(p *PaperItem) { p.SizeTag = tag }
}

func SetPaperQuantity(q float64) PaperEdit {
	return func(p *PaperItem) { p.Quantity = q }
}

func EditPaper(cat catalog.Catalog, item PaperItem, edits ...PaperEdit) PaperItem {
	for _, edit := range edits {
		edit(&item)
	}
	return ResolvePaper(cat, item)
}

type MaterialEdit func(*MaterialItem)

// SelectMaterial changes the parent selection. The variant is cleared and the
// price zeroed in the same step: a variant index is only meaningful against
// the material it was picked from.
func SelectMaterial(i Index) MaterialEdit {
	return func(m *MaterialItem) {
		m.MaterialIndex = i
		m.VariantIndex = NoIndex
		m.UnitPrice = 0
	}
}

func SetVariantIndex(i Index) MaterialEdit {
	return func(m *MaterialItem) { m.VariantIndex = i }
}

func SetMaterialQuantity(q float64) MaterialEdit {
	return func(m *MaterialItem) { m.Quantity = q }
}

func EditMaterial(cat catalog.Catalog, item MaterialItem, edits ...MaterialEdit) MaterialItem {
	for _, edit := range edits {
		edit(&item)
	}
	return ResolveMaterial(cat, item)
}

type PrintEdit func(*PrintItem)

func SetPrintType(t string) PrintEdit {
	return func(p *PrintItem) { p.Type = t }
}

func SetPrintFormat(f string) PrintEdit {
	return func(p *PrintItem) { p.Format = f }
}

func SetPrintQuantity(q float64) PrintEdit {
	return func(p *PrintItem) { p.Quantity = q }
}

func EditPrint(cat catalog.Catalog, item PrintItem, edits ...PrintEdit) PrintItem {
	for _, edit := range edits {
		edit(&item)
	}
	return ResolvePrint(cat, item)
}

type LaborEdit func(*LaborItem)

func SetRoleIndex(i Index) LaborEdit {
	return func(l *LaborItem) { l.RoleIndex = i }
}

func SetMinutes(m float64) LaborEdit {
	return func(l *LaborItem) { l.Minutes = m }
}

func EditLabor(cat catalog.Catalog, item LaborItem, edits ...LaborEdit) LaborItem {
	for _, edit := range edits {
		edit(&item)
	}
	return ResolveLabor(cat, item)
}
