// Package catalog holds the editable price list the quoting engine resolves
// line items against: paper stocks, materials with variants, print pricing
// and labor roles.
package catalog

import (
	"encoding/json"
	"fmt"
)

// SizeTag selects one of the four price tiers of a paper entry.
type SizeTag string

const (
	SizeNone  SizeTag = ""
	SizeA4    SizeTag = "A4"
	SizeA3    SizeTag = "A3"
	SizeSheet SizeTag = "Sheet"
	SizePack  SizeTag = "Pack"
)

// ParseSizeTag accepts the canonical tags plus the legacy "Folha" and
// "Pacote" spellings found in older saved budgets.
func ParseSizeTag(raw string) (SizeTag, error) {
	switch raw {
	case "":
		return SizeNone, nil
	case "A4":
		return SizeA4, nil
	case "A3":
		return SizeA3, nil
	case "Sheet", "Folha":
		return SizeSheet, nil
	case "Pack", "Pacote":
		return SizePack, nil
	}
	return SizeNone, fmt.Errorf("unknown size tag %q", raw)
}

func (t *SizeTag) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSizeTag(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// PaperEntry is a paper stock priced per size tier.
type PaperEntry struct {
	Name          string  `json:"nome"`
	PriceA4       float64 `json:"a4"`
	PriceA3       float64 `json:"a3"`
	PriceSheet    float64 `json:"folha"`
	PricePack     float64 `json:"pacote"`
	SheetsPerPack *int    `json:"folhasPacote"`
}

// Price returns the tier matching tag.
func (p PaperEntry) Price(tag SizeTag) (float64, bool) {
	switch tag {
	case SizeA4:
		return p.PriceA4, true
	case SizeA3:
		return p.PriceA3, true
	case SizeSheet:
		return p.PriceSheet, true
	case SizePack:
		return p.PricePack, true
	}
	return 0, false
}

type MaterialVariant struct {
	Name  string  `json:"nome"`
	Price float64 `json:"valor"`
}

// MaterialEntry is a named material with an ordered, possibly empty, list of
// priced variants.
type MaterialEntry struct {
	Name     string            `json:"nome"`
	Variants []MaterialVariant `json:"tipos"`
}

// PrintEntry prices one print technique on one paper format.
type PrintEntry struct {
	Type   string  `json:"tipo"`
	Format string  `json:"formato"`
	Price  float64 `json:"valor"`
}

type LaborEntry struct {
	Role       string  `json:"profissional"`
	HourlyRate float64 `json:"hora"`
}

// PerMinute is the hourly rate spread over sixty minutes.
func (l LaborEntry) PerMinute() float64 {
	return l.HourlyRate / 60
}

// Catalog is the full price list. Line items reference papers, materials and
// labor roles by position, so reordering or deleting entries changes what
// outstanding indices point at.
type Catalog struct {
	Papers    []PaperEntry    `json:"papeis"`
	Materials []MaterialEntry `json:"materiais"`
	Prints    []PrintEntry    `json:"impressoes"`
	Labor     []LaborEntry    `json:"maoObra"`
}

func (c Catalog) Paper(index int) (PaperEntry, bool) {
	if index < 0 || index >= len(c.Papers) {
		return PaperEntry{}, false
	}
	return c.Papers[index], true
}

func (c Catalog) Material(index int) (MaterialEntry, bool) {
	if index < 0 || index >= len(c.Materials) {
		return MaterialEntry{}, false
	}
	return c.Materials[index], true
}

func (c Catalog) Role(index int) (LaborEntry, bool) {
	if index < 0 || index >= len(c.Labor) {
		return LaborEntry{}, false
	}
	return c.Labor[index], true
}

// PaperPrice resolves the tier price of the paper at index.
func (c Catalog) PaperPrice(index int, tag SizeTag) (float64, bool) {
	paper, ok := c.Paper(index)
	if !ok {
		return 0, false
	}
	return paper.Price(tag)
}

// VariantPrice resolves the price of a variant nested under a material.
func (c Catalog) VariantPrice(materialIndex, variantIndex int) (float64, bool) {
	material, ok := c.Material(materialIndex)
	if !ok {
		return 0, false
	}
	if variantIndex < 0 || variantIndex >= len(material.Variants) {
		return 0, false
	}
	return material.Variants[variantIndex].Price, true
}

// PrintPrice finds the entry whose type and format both match exactly. The
// first match wins when the list carries duplicates.
func (c Catalog) PrintPrice(printType, format string) (float64, bool) {
	for _, p := range c.Prints {
		if p.Type == printType && p.Format == format {
			return p.Price, true
		}
	}
	return 0, false
}

// PerMinuteRate resolves the per-minute rate of the role at index.
func (c Catalog) PerMinuteRate(index int) (float64, bool) {
	role, ok := c.Role(index)
	if !ok {
		return 0, false
	}
	return role.PerMinute(), true
}

// PrintTypes lists the distinct print types in first-seen order.
func (c Catalog) PrintTypes() []string {
	seen := make(map[string]bool, len(c.Prints))
	types := make([]string, 0, len(c.Prints))
	for _, p := range c.Prints {
		if seen[p.Type] {
			continue
		}
		seen[p.Type] = true
		types = append(types, p.Type)
	}
	return types
}

// PrintFormats lists the formats offered for printType in first-seen order.
func (c Catalog) PrintFormats(printType string) []string {
	seen := make(map[string]bool)
	formats := make([]string, 0)
	for _, p := range c.Prints {
		if p.Type != printType || seen[p.Format] {
			continue
		}
		seen[p.Format] = true
		formats = append(formats, p.Format)
	}
	return formats
}

// Clone returns a deep copy suitable as an editor working copy.
func (c Catalog) Clone() Catalog {
	out := Catalog{
		Papers:    make([]PaperEntry, len(c.Papers)),
		Materials: make([]MaterialEntry, len(c.Materials)),
		Prints:    make([]PrintEntry, len(c.Prints)),
		Labor:     make([]LaborEntry, len(c.Labor)),
	}
	for i, p := range c.Papers {
		if p.SheetsPerPack != nil {
			n := *p.SheetsPerPack
			p.SheetsPerPack = &n
		}
		out.Papers[i] = p
	}
	for i, m := range c.Materials {
		variants := make([]MaterialVariant, len(m.Variants))
		copy(variants, m.Variants)
		out.Materials[i] = MaterialEntry{Name: m.Name, Variants: variants}
	}
	copy(out.Prints, c.Prints)
	copy(out.Labor, c.Labor)
	return out
}

// Editor defaults for freshly added rows.

func NewPaperEntry() PaperEntry {
	return PaperEntry{Name: "Novo Papel"}
}

func NewMaterialEntry() MaterialEntry {
	return MaterialEntry{Name: "Novo Material", Variants: []MaterialVariant{}}
}

func NewPrintEntry() PrintEntry {
	return PrintEntry{Type: "NOVO", Format: "A4"}
}

func NewLaborEntry() LaborEntry {
	return LaborEntry{Role: "NOVO PROFISSIONAL"}
}
