package pricing

import (
	"math"
	"testing"

	"github.com/Simplici0/printquote/internal/catalog"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestCalculate_SubtotalsPerCategory(t *testing.T) {
	items := Items{
		Papers:    []PaperItem{{Quantity: 100, UnitPrice: 0.06}, {Quantity: 10, UnitPrice: 0.5}},
		Materials: []MaterialItem{{Quantity: 2, UnitPrice: 3.57}},
		Prints:    []PrintItem{{Quantity: 50, UnitPrice: 0.25}},
		Labor:     []LaborItem{{Minutes: 30, PerMinuteRate: 0.6}},
	}

	totals := Calculate(items, JobInfo{TotalQuantity: 1, Technology: Digital})

	nearlyEqual(t, "paperSubtotal", totals.PaperSubtotal, 11)
	nearlyEqual(t, "materialSubtotal", totals.MaterialSubtotal, 7.14)
	nearlyEqual(t, "printSubtotal", totals.PrintSubtotal, 12.5)
	nearlyEqual(t, "laborSubtotal", totals.LaborSubtotal, 18)
	nearlyEqual(t, "subtotal", totals.Subtotal, 48.64)
	nearlyEqual(t, "grandTotal", totals.GrandTotal, 48.64)
}

func TestCalculate_SurchargeOffsetAndDigital(t *testing.T) {
	items := Items{Papers: []PaperItem{{Quantity: 1, UnitPrice: 100}}}

	offset := Calculate(items, JobInfo{TotalQuantity: 1, Technology: Offset})
	digital := Calculate(items, JobInfo{TotalQuantity: 1, Technology: Digital})

	nearlyEqual(t, "offset surcharge", offset.Surcharge, 10)
	nearlyEqual(t, "offset grandTotal", offset.GrandTotal, 110)
	nearlyEqual(t, "digital surcharge", digital.Surcharge, 0)
	nearlyEqual(t, "digital grandTotal", digital.GrandTotal, 100)
}

func TestCalculate_UnitPriceClampsDivisor(t *testing.T) {
	items := Items{Papers: []PaperItem{{Quantity: 1, UnitPrice: 100}}}

	for _, qty := range []int{0, -5, 1} {
		totals := Calculate(items, JobInfo{TotalQuantity: qty, Technology: Offset})
		nearlyEqual(t, "unitPrice", totals.UnitPrice, 110)
	}

	totals := Calculate(items, JobInfo{TotalQuantity: 4, Technology: Digital})
	nearlyEqual(t, "unitPrice qty=4", totals.UnitPrice, 25)
}

func TestCalculate_EmptyBudget(t *testing.T) {
	totals := Calculate(Items{}, JobInfo{Technology: Offset})

	if totals != (Totals{}) {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
}

func TestCalculate_EndToEndOffsetJob(t *testing.T) {
	cat := catalog.Default()
	var items Items

	paper := items.AddPaper()
	if _, ok := items.EditPaper(cat, paper.ID, SetPaperIndex(At(9)), SetSizeTag(catalog.SizeA4), SetPaperQuantity(100)); !ok {
		t.Fatalf("paper item not found")
	}

	labor := items.AddLabor()
	// IMPRESSOR DIGITAL, 36.00/h
	if _, ok := items.EditLabor(cat, labor.ID, SetRoleIndex(At(4)), SetMinutes(60)); !ok {
		t.Fatalf("labor item not found")
	}

	totals := Calculate(items, JobInfo{TotalQuantity: 10, Technology: Offset})

	nearlyEqual(t, "paperSubtotal", totals.PaperSubtotal, 6)
	nearlyEqual(t, "laborSubtotal", totals.LaborSubtotal, 36)
	nearlyEqual(t, "subtotal", totals.Subtotal, 42)
	nearlyEqual(t, "surcharge", totals.Surcharge, 4.2)
	nearlyEqual(t, "grandTotal", totals.GrandTotal, 46.2)
	nearlyEqual(t, "unitPrice", totals.UnitPrice, 4.62)
}

func TestParseTechnology(t *testing.T) {
	if tech, err := ParseTechnology("OFFSET"); err != nil || tech != Offset {
		t.Fatalf("ParseTechnology(OFFSET) = %q, %v", tech, err)
	}
	if _, err := ParseTechnology("offset"); err == nil {
		t.Fatalf("expected error for lowercase technology")
	}
}
