package pricing

import "github.com/Simplici0/printquote/internal/catalog"

// StaleItem identifies a line item whose selection no longer resolves.
type StaleItem struct {
	Kind Kind   `json:"kind"`
	ID   string `json:"id"`
}

// Stale lists items whose set selection points at nothing in cat, typically
// after catalog rows were deleted or reordered. It is a report only; cached
// prices are never touched.
func Stale(cat catalog.Catalog, items Items) []StaleItem {
	stale := make([]StaleItem, 0)

	for _, p := range items.Papers {
		if i, ok := p.PaperIndex.Get(); ok {
			if _, found := cat.Paper(i); !found {
				stale = append(stale, StaleItem{Kind: KindPaper, ID: p.ID})
			}
		}
	}

	for _, m := range items.Materials {
		mi, ok := m.MaterialIndex.Get()
		if !ok {
			continue
		}
		if _, found := cat.Material(mi); !found {
			stale = append(stale, StaleItem{Kind: KindMaterial, ID: m.ID})
			continue
		}
		if vi, ok := m.VariantIndex.Get(); ok {
			if _, found := cat.VariantPrice(mi, vi); !found {
				stale = append(stale, StaleItem{Kind: KindMaterial, ID: m.ID})
			}
		}
	}

	for _, p := range items.Prints {
		if p.Type == "" || p.Format == "" {
			continue
		}
		if _, found := cat.PrintPrice(p.Type, p.Format); !found {
			stale = append(stale, StaleItem{Kind: KindPrint, ID: p.ID})
		}
	}

	for _, l := range items.Labor {
		if i, ok := l.RoleIndex.Get(); ok {
			if _, found := cat.Role(i); !found {
				stale = append(stale, StaleItem{Kind: KindLabor, ID: l.ID})
			}
		}
	}

	return stale
}
