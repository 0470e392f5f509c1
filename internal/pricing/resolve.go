package pricing

import "github.com/Simplici0/printquote/internal/catalog"

// Resolution derives an item's cached price from its selection. It is
// best-effort: an incomplete selection or one that no longer matches the
// catalog leaves the cached price untouched.

func ResolvePaper(cat catalog.Catalog, item PaperItem) PaperItem {
	index, ok := item.PaperIndex.Get()
	if !ok || item.SizeTag == catalog.SizeNone {
		return item
	}
	if price, ok := cat.PaperPrice(index, item.SizeTag); ok {
		item.UnitPrice = price
	}
	return item
}

func ResolveMaterial(cat catalog.Catalog, item MaterialItem) MaterialItem {
	materialIndex, ok := item.MaterialIndex.Get()
	if !ok {
		return item
	}
	variantIndex, ok := item.VariantIndex.Get()
	if !ok {
		return item
	}
	if price, ok := cat.VariantPrice(materialIndex, variantIndex); ok {
		item.UnitPrice = price
	}
	return item
}

func ResolvePrint(cat catalog.Catalog, item PrintItem) PrintItem {
	if item.Type == "" || item.Format == "" {
		return item
	}
	if price, ok := cat.PrintPrice(item.Type, item.Format); ok {
		item.UnitPrice = price
	}
	return item
}

func ResolveLabor(cat catalog.Catalog, item LaborItem) LaborItem {
	index, ok := item.RoleIndex.Get()
	if !ok {
		return item
	}
	if rate, ok := cat.PerMinuteRate(index); ok {
		item.PerMinuteRate = rate
	}
	return item
}
