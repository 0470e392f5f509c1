// Package pricing resolves budget line items against the price catalog and
// rolls them up into category subtotals, the offset surcharge and the per-unit
// job price.
package pricing

import "fmt"

// OffsetSurchargeRate is applied to the subtotal of offset jobs.
const OffsetSurchargeRate = 0.10

// Technology is the print technology of the whole job.
type Technology string

const (
	Offset  Technology = "OFFSET"
	Digital Technology = "DIGITAL"
)

func ParseTechnology(raw string) (Technology, error) {
	switch t := Technology(raw); t {
	case Offset, Digital:
		return t, nil
	}
	return "", fmt.Errorf("technology must be OFFSET or DIGITAL, got %q", raw)
}

// JobInfo represents the job-level inputs of a budget.
type JobInfo struct {
	TotalQuantity  int        `json:"totalQuantity"`
	FinalSize      string     `json:"finalSize"`
	Technology     Technology `json:"technology"`
	Description    string     `json:"description"`
	TechnicalNotes string     `json:"technicalNotes"`
}

// Totals contains the roll-up values of a budget. Values are never rounded;
// rounding happens when they are displayed.
type Totals struct {
	PaperSubtotal    float64 `json:"paperSubtotal"`
	MaterialSubtotal float64 `json:"materialSubtotal"`
	PrintSubtotal    float64 `json:"printSubtotal"`
	LaborSubtotal    float64 `json:"laborSubtotal"`
	Subtotal         float64 `json:"subtotal"`
	Surcharge        float64 `json:"surcharge"`
	GrandTotal       float64 `json:"grandTotal"`
	UnitPrice        float64 `json:"unitPrice"`
}

// Calculate recomputes every total from scratch.
func Calculate(items Items, info JobInfo) Totals {
	var t Totals

	for _, p := range items.Papers {
		t.PaperSubtotal += p.Quantity * p.UnitPrice
	}
	for _, m := range items.Materials {
		t.MaterialSubtotal += m.Quantity * m.UnitPrice
	}
	for _, p := range items.Prints {
		t.PrintSubtotal += p.Quantity * p.UnitPrice
	}
	for _, l := range items.Labor {
		t.LaborSubtotal += l.Minutes * l.PerMinuteRate
	}

	t.Subtotal = t.PaperSubtotal + t.MaterialSubtotal + t.PrintSubtotal + t.LaborSubtotal

	if info.Technology == Offset {
		t.Surcharge = t.Subtotal * OffsetSurchargeRate
	}
	t.GrandTotal = t.Subtotal + t.Surcharge

	// Only the divisor is clamped; the stored quantity is left as entered.
	t.UnitPrice = t.GrandTotal / float64(max(1, info.TotalQuantity))

	return t
}
