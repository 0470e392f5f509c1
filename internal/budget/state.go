// Package budget owns the quoting session state: job info, line items,
// reference images and the live catalog.
package budget

import (
	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/pricing"
)

// State is the full session document persisted after every change.
type State struct {
	Info    pricing.JobInfo `json:"info"`
	Items   pricing.Items   `json:"items"`
	Images  []string        `json:"images"`
	Catalog catalog.Catalog `json:"catalog"`
}

// DefaultState is what a first session starts from.
func DefaultState() State {
	return State{
		Info: pricing.JobInfo{
			TotalQuantity: 1,
			Technology:    pricing.Digital,
		},
		Items: pricing.Items{
			Papers:    []pricing.PaperItem{},
			Materials: []pricing.MaterialItem{},
			Prints:    []pricing.PrintItem{},
			Labor:     []pricing.LaborItem{},
		},
		Images:  []string{},
		Catalog: catalog.Default(),
	}
}

func (s State) Clone() State {
	return State{
		Info:    s.Info,
		Items:   s.Items.Clone(),
		Images:  append([]string{}, s.Images...),
		Catalog: s.Catalog.Clone(),
	}
}

// Totals recomputes the budget totals of s.
func (s State) Totals() pricing.Totals {
	return pricing.Calculate(s.Items, s.Info)
}
