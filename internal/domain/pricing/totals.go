package pricing

import (
	"fmt"
	"math"

	"funeral_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ExemptionMode selects how non-taxable items are recognised.
type ExemptionMode string

const (
	// ExemptByName matches the item name against TaxPolicy.NonTaxableNames.
	ExemptByName ExemptionMode = "name"
	// ExemptByFlag uses CatalogItem.NonTaxable and is stable across renames.
	ExemptByFlag ExemptionMode = "flag"
)

// DefaultNonTaxableNames are exempt in name mode unless configured otherwise.
var DefaultNonTaxableNames = []string{"火葬料"}

// TaxPolicy carries the consumption-tax rate and the exemption rule.
type TaxPolicy struct {
	Rate            decimal.Decimal
	Mode            ExemptionMode
	NonTaxableNames []string
}

// DefaultTaxPolicy is 10% with name-based exemptions.
func DefaultTaxPolicy() TaxPolicy {
	return TaxPolicy{
		Rate:            decimal.RequireFromString("0.10"),
		Mode:            ExemptByName,
		NonTaxableNames: append([]string(nil), DefaultNonTaxableNames...),
	}
}

// IsNonTaxable reports whether the item is excluded from the taxable subtotal.
func (p TaxPolicy) IsNonTaxable(item entities.CatalogItem) bool {
	if p.Mode == ExemptByFlag {
		return item.NonTaxable
	}
	for _, n := range p.NonTaxableNames {
		if n == item.Name {
			return true
		}
	}
	return false
}

// Tax truncates subtotal × rate toward negative infinity. A tax that does not
// fit in int64 is 0.
func (p TaxPolicy) Tax(subtotal int64) int64 {
	tax := decimal.NewFromInt(subtotal).Mul(p.Rate).Floor()
	if tax.GreaterThan(maxPrice) || tax.LessThan(minPrice) {
		return 0
	}
	return tax.IntPart()
}

var (
	maxPrice = decimal.NewFromInt(math.MaxInt64)
	minPrice = decimal.NewFromInt(math.MinInt64)
)

// Line is one printed row of a quote or invoice.
type Line struct {
	ItemID     int               `json:"item_id"`
	Name       string            `json:"name"`
	Type       entities.ItemType `json:"type"`
	Detail     string            `json:"detail,omitempty"`
	Price      int64             `json:"price"`
	NonTaxable bool              `json:"non_taxable"`
}

// TaxSplit is the formal document total.
type TaxSplit struct {
	TaxableSubtotal    int64  `json:"taxable_subtotal"`
	Tax                int64  `json:"tax"`
	NonTaxableSubtotal int64  `json:"non_taxable_subtotal"`
	GrandTotal         int64  `json:"grand_total"`
	Lines              []Line `json:"lines"`
}

// ComputeTaxSplitTotals partitions the priced items into taxable and
// non-taxable buckets. The plan price is always taxable. Eligible items are
// listed when they carry a price, and included/free_input items are always
// listed. A line whose price would overflow a subtotal is listed at 0.
func ComputeTaxSplitTotals(plan entities.Plan, catalog entities.Catalog, state *entities.SelectionState, policy TaxPolicy) TaxSplit {
	split := TaxSplit{TaxableSubtotal: plan.Price, Lines: []Line{}}

	for _, it := range catalog.Items {
		if !IsItemEligible(it, plan.ID) {
			continue
		}
		price := PriceOf(it, state)
		if price == 0 && it.Type != entities.ItemTypeIncluded && it.Type != entities.ItemTypeFreeInput {
			continue
		}

		nonTaxable := policy.IsNonTaxable(it)
		var ok bool
		if nonTaxable {
			split.NonTaxableSubtotal, ok = addPrice(split.NonTaxableSubtotal, price)
		} else {
			split.TaxableSubtotal, ok = addPrice(split.TaxableSubtotal, price)
		}
		if !ok {
			price = 0
		}
		split.Lines = append(split.Lines, Line{
			ItemID:     it.ID,
			Name:       it.Name,
			Type:       it.Type,
			Detail:     lineDetail(it, state),
			Price:      price,
			NonTaxable: nonTaxable,
		})
	}

	split.Tax = policy.Tax(split.TaxableSubtotal)
	split.GrandTotal, _ = addPrice(split.TaxableSubtotal, split.Tax)
	split.GrandTotal, _ = addPrice(split.GrandTotal, split.NonTaxableSubtotal)
	return split
}

func lineDetail(item entities.CatalogItem, state *entities.SelectionState) string {
	if state == nil {
		return ""
	}
	switch item.Type {
	case entities.ItemTypeDropdown, entities.ItemTypeIncluded:
		if gradeID, ok := state.SelectedGrades[item.ID]; ok {
			if grade, ok := item.Grade(gradeID); ok {
				return grade.Name
			}
		}
	case entities.ItemTypeTierDependent:
		if state.AttendeeTier == entities.TierD {
			return fmt.Sprintf("%d × %d名", item.TierPrices[entities.TierD], state.ParsedAttendeeCount())
		}
		return string(state.AttendeeTier)
	case entities.ItemTypeCheckbox, entities.ItemTypeFreeInput:
	}
	return ""
}

// ItemView is an eligible catalog item with its live price, for the
// configurator screen.
type ItemView struct {
	Item           entities.CatalogItem   `json:"item"`
	Price          int64                  `json:"price"`
	Selected       bool                   `json:"selected"`
	SelectedGrade  string                 `json:"selected_grade,omitempty"`
	EligibleGrades []entities.GradeOption `json:"eligible_grades,omitempty"`
}

// PricedItems lists every item eligible for the selected plan with its price.
func PricedItems(catalog entities.Catalog, state *entities.SelectionState) []ItemView {
	if state == nil {
		return nil
	}
	items := EligibleItems(catalog, state.PlanID)
	out := make([]ItemView, 0, len(items))
	for _, it := range items {
		v := ItemView{
			Item:  it,
			Price: PriceOf(it, state),
		}
		switch it.Type {
		case entities.ItemTypeCheckbox, entities.ItemTypeTierDependent:
			v.Selected = state.SelectedOptions.Has(it.ID)
		case entities.ItemTypeDropdown, entities.ItemTypeIncluded:
			v.SelectedGrade = state.SelectedGrades[it.ID]
			v.Selected = v.SelectedGrade != ""
			if it.HasGrades() {
				v.EligibleGrades = EligibleGrades(it, state.PlanID)
			}
		case entities.ItemTypeFreeInput:
			v.Selected = true
		}
		out = append(out, v)
	}
	return out
}

// AttendeeLabel describes the selected tier; tier D carries the entered count.
func AttendeeLabel(catalog entities.Catalog, state *entities.SelectionState) string {
	if state == nil {
		return ""
	}
	label := string(state.AttendeeTier)
	if opt, ok := catalog.AttendeeOption(state.AttendeeTier); ok && opt.Label != "" {
		label = opt.Label
	}
	if state.AttendeeTier == entities.TierD {
		return fmt.Sprintf("%s（%s名）", label, state.CustomAttendeeCount)
	}
	return label
}
