package pricing

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Simplici0/printquote/internal/catalog"
)

// Kind names one of the four line item collections.
type Kind string

const (
	KindPaper    Kind = "papers"
	KindMaterial Kind = "materials"
	KindPrint    Kind = "prints"
	KindLabor    Kind = "labor"
)

func ParseKind(raw string) (Kind, error) {
	switch k := Kind(raw); k {
	case KindPaper, KindMaterial, KindPrint, KindLabor:
		return k, nil
	}
	return "", fmt.Errorf("unknown item kind %q", raw)
}

// PaperItem is a quantity of a paper stock in one size tier.
type PaperItem struct {
	ID         string          `json:"id"`
	PaperIndex Index           `json:"paperIndex"`
	SizeTag    catalog.SizeTag `json:"sizeTag"`
	Quantity   float64         `json:"quantity"`
	UnitPrice  float64         `json:"unitPrice"`
}

type MaterialItem struct {
	ID            string  `json:"id"`
	MaterialIndex Index   `json:"materialIndex"`
	VariantIndex  Index   `json:"variantIndex"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
}

// PrintItem references its catalog entry by value rather than position.
type PrintItem struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Format    string  `json:"format"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type LaborItem struct {
	ID            string  `json:"id"`
	RoleIndex     Index   `json:"roleIndex"`
	Minutes       float64 `json:"minutes"`
	PerMinuteRate float64 `json:"perMinuteRate"`
}

func (p PaperItem) itemID() string    { return p.ID }
func (m MaterialItem) itemID() string { return m.ID }
func (p PrintItem) itemID() string    { return p.ID }
func (l LaborItem) itemID() string    { return l.ID }

func newID() string {
	return uuid.NewString()
}

func NewPaperItem() PaperItem       { return PaperItem{ID: newID()} }
func NewMaterialItem() MaterialItem { return MaterialItem{ID: newID()} }
func NewPrintItem() PrintItem       { return PrintItem{ID: newID()} }
func NewLaborItem() LaborItem       { return LaborItem{ID: newID()} }

// Items holds the four line item collections of a budget.
type Items struct {
	Papers    []PaperItem    `json:"papers"`
	Materials []MaterialItem `json:"materials"`
	Prints    []PrintItem    `json:"prints"`
	Labor     []LaborItem    `json:"labor"`
}

// Clone copies every collection so the result can be mutated independently.
func (it Items) Clone() Items {
	return Items{
		Papers:    append([]PaperItem{}, it.Papers...),
		Materials: append([]MaterialItem{}, it.Materials...),
		Prints:    append([]PrintItem{}, it.Prints...),
		Labor:     append([]LaborItem{}, it.Labor...),
	}
}

func (it *Items) AddPaper() PaperItem {
	item := NewPaperItem()
	it.Papers = append(it.Papers, item)
	return item
}

func (it *Items) AddMaterial() MaterialItem {
	item := NewMaterialItem()
	it.Materials = append(it.Materials, item)
	return item
}

func (it *Items) AddPrint() PrintItem {
	item := NewPrintItem()
	it.Prints = append(it.Prints, item)
	return item
}

func (it *Items) AddLabor() LaborItem {
	item := NewLaborItem()
	it.Labor = append(it.Labor, item)
	return item
}

// Remove filters the item with id out of the kind's collection and reports
// whether anything was removed.
func (it *Items) Remove(kind Kind, id string) bool {
	var removed bool
	switch kind {
	case KindPaper:
		it.Papers, removed = removeByID(it.Papers, id)
	case KindMaterial:
		it.Materials, removed = removeByID(it.Materials, id)
	case KindPrint:
		it.Prints, removed = removeByID(it.Prints, id)
	case KindLabor:
		it.Labor, removed = removeByID(it.Labor, id)
	}
	return removed
}

// EditPaper applies edits to the paper item with id and re-resolves its price
// against cat. Sibling items are left alone.
func (it *Items) EditPaper(cat catalog.Catalog, id string, edits ...PaperEdit) (PaperItem, bool) {
	return editByID(it.Papers, id, func(item PaperItem) PaperItem {
		return EditPaper(cat, item, edits...)
	})
}

func (it *Items) EditMaterial(cat catalog.Catalog, id string, edits ...MaterialEdit) (MaterialItem, bool) {
	return editByID(it.Materials, id, func(item MaterialItem) MaterialItem {
		return EditMaterial(cat, item, edits...)
	})
}

func (it *Items) EditPrint(cat catalog.Catalog, id string, edits ...PrintEdit) (PrintItem, bool) {
	return editByID(it.Prints, id, func(item PrintItem) PrintItem {
		return EditPrint(cat, item, edits...)
	})
}

func (it *Items) EditLabor(cat catalog.Catalog, id string, edits ...LaborEdit) (LaborItem, bool) {
	return editByID(it.Labor, id, func(item LaborItem) LaborItem {
		return EditLabor(cat, item, edits...)
	})
}

type identified interface {
	itemID() string
}

func editByID[T identified](list []T, id string, fn func(T) T) (T, bool) {
	for i, item := range list {
		if item.itemID() == id {
			list[i] = fn(item)
			return list[i], true
		}
	}
	var zero T
	return zero, false
}

func removeByID[T identified](list []T, id string) ([]T, bool) {
	out := make([]T, 0, len(list))
	removed := false
	for _, item := range list {
		if item.itemID() == id {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out, removed
}
