package main

import (
	"encoding/json"

	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/pricing"
)

// field records whether a JSON key was present, so that an explicit null can
// clear a selection while an absent key leaves it alone.
type field[T any] struct {
	Value T
	Set   bool
}

func (f *field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	return json.Unmarshal(data, &f.Value)
}

type paperPatch struct {
	PaperIndex field[pricing.Index]   `json:"paperIndex"`
	SizeTag    field[catalog.SizeTag] `json:"sizeTag"`
	Quantity   field[float64]         `json:"quantity"`
}

func (p paperPatch) edits() []pricing.PaperEdit {
	var edits []pricing.PaperEdit
	if p.PaperIndex.Set {
		edits = append(edits, pricing.SetPaperIndex(p.PaperIndex.Value))
	}
	if p.SizeTag.Set {
		edits = append(edits, pricing.SetSizeTag(p.SizeTag.Value))
	}
	if p.Quantity.Set {
		edits = append(edits, pricing.SetPaperQuantity(p.Quantity.Value))
	}
	return edits
}

type materialPatch struct {
	MaterialIndex field[pricing.Index] `json:"materialIndex"`
	VariantIndex  field[pricing.Index] `json:"variantIndex"`
	Quantity      field[float64]       `json:"quantity"`
}

// edits applies a material change before a variant change, so a request
// carrying both selects the variant within the new material.
func (p materialPatch) edits() []pricing.MaterialEdit {
	var edits []pricing.MaterialEdit
	if p.MaterialIndex.Set {
		edits = append(edits, pricing.SelectMaterial(p.MaterialIndex.Value))
	}
	if p.VariantIndex.Set {
		edits = append(edits, pricing.SetVariantIndex(p.VariantIndex.Value))
	}
	if p.Quantity.Set {
		edits = append(edits, pricing.SetMaterialQuantity(p.Quantity.Value))
	}
	return edits
}

type printPatch struct {
	Type     field[string]  `json:"type"`
	Format   field[string]  `json:"format"`
	Quantity field[float64] `json:"quantity"`
}

func (p printPatch) edits() []pricing.PrintEdit {
	var edits []pricing.PrintEdit
	if p.Type.Set {
		edits = append(edits, pricing.SetPrintType(p.Type.Value))
	}
	if p.Format.Set {
		edits = append(edits, pricing.SetPrintFormat(p.Format.Value))
	}
	if p.Quantity.Set {
		edits = append(edits, pricing.SetPrintQuantity(p.Quantity.Value))
	}
	return edits
}

type laborPatch struct {
	RoleIndex field[pricing.Index] `json:"roleIndex"`
	Minutes   field[float64]       `json:"minutes"`
}

func (p laborPatch) edits() []pricing.LaborEdit {
	var edits []pricing.LaborEdit
	if p.RoleIndex.Set {
		edits = append(edits, pricing.SetRoleIndex(p.RoleIndex.Value))
	}
	if p.Minutes.Set {
		edits = append(edits, pricing.SetMinutes(p.Minutes.Value))
	}
	return edits
}
