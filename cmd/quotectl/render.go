package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/domain/pricing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Japanese)

func yen(v int64) string {
	return printer.Sprintf("¥%d", v)
}

func renderDocument(out io.Writer, plan entities.Plan, doc pricing.TaxSplit) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "%s\t\t%s\t\n", plan.Name, yen(plan.Price))
	for _, l := range doc.Lines {
		name := l.Name
		if l.NonTaxable {
			name += " (非課税)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", name, l.Detail, yen(l.Price))
	}
	fmt.Fprintf(w, "taxable subtotal\t\t%s\t\n", yen(doc.TaxableSubtotal))
	fmt.Fprintf(w, "tax\t\t%s\t\n", yen(doc.Tax))
	fmt.Fprintf(w, "non-taxable\t\t%s\t\n", yen(doc.NonTaxableSubtotal))
	fmt.Fprintf(w, "grand total\t\t%s\t\n", yen(doc.GrandTotal))
	_ = w.Flush()
}
