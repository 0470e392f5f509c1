package report

import (
	"fmt"
	"strings"

	"github.com/Simplici0/printquote/internal/budget"
	"github.com/Simplici0/printquote/internal/pricing"
)

// BudgetText renders a plain-text budget suitable for pasting into a chat or
// e-mail.
func BudgetText(state budget.State, totals pricing.Totals) string {
	var b strings.Builder

	b.WriteString("ORÇAMENTO\n")
	writeField(&b, "Descrição", state.Info.Description)
	writeField(&b, "Quantidade total", FormatQuantity(float64(state.Info.TotalQuantity)))
	writeField(&b, "Formato final", state.Info.FinalSize)
	writeField(&b, "Tecnologia", string(state.Info.Technology))
	writeField(&b, "Observações técnicas", state.Info.TechnicalNotes)

	var current category
	for _, l := range budgetLines(state) {
		if l.Category != current {
			current = l.Category
			fmt.Fprintf(&b, "\n%s\n", current)
		}
		fmt.Fprintf(&b, "- %s: %s %s x %s = %s\n",
			l.Description,
			FormatQuantity(l.Quantity),
			l.UnitLabel,
			FormatBRL(l.UnitPrice),
			FormatBRL(l.Total),
		)
	}

	b.WriteString("\nResumo Financeiro\n")
	for _, f := range summaryFigures(totals) {
		fmt.Fprintf(&b, "%s: %s\n", f.Label, FormatBRL(f.Value))
	}

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}
