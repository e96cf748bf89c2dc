package pricing

import (
	"math"

	"funeral_quote/internal/domain/entities"
)

// PriceOf is the item's contribution under the current selection.
func PriceOf(item entities.CatalogItem, state *entities.SelectionState) int64 {
	if state == nil || !IsItemEligible(item, state.PlanID) {
		return 0
	}

	switch item.Type {
	case entities.ItemTypeIncluded:
		if !item.UseDropdown {
			return 0
		}
		return gradePrice(item, state)
	case entities.ItemTypeCheckbox:
		if !state.SelectedOptions.Has(item.ID) {
			return 0
		}
		return item.BasePriceOrZero()
	case entities.ItemTypeDropdown:
		return gradePrice(item, state)
	case entities.ItemTypeTierDependent:
		if !state.SelectedOptions.Has(item.ID) {
			return 0
		}
		if state.AttendeeTier == entities.TierD {
			return mulPrice(item.TierPrices[entities.TierD], state.ParsedAttendeeCount())
		}
		return item.TierPrices[state.AttendeeTier]
	case entities.ItemTypeFreeInput:
		if v, ok := state.FreeInputValues[item.ID]; ok {
			return v
		}
		return item.BasePriceOrZero()
	}
	return 0
}

func gradePrice(item entities.CatalogItem, state *entities.SelectionState) int64 {
	gradeID, ok := state.SelectedGrades[item.ID]
	if !ok {
		return 0
	}
	grade, ok := item.Grade(gradeID)
	if !ok {
		return 0
	}
	return grade.Price
}

// ComputeGrandTotal is the live, untaxed running total: the plan price plus
// every eligible item's price. It intentionally differs from the taxed
// document total computed by ComputeTaxSplitTotals.
func ComputeGrandTotal(plan entities.Plan, catalog entities.Catalog, state *entities.SelectionState) int64 {
	total := plan.Price
	for _, it := range catalog.Items {
		if !IsItemEligible(it, plan.ID) {
			continue
		}
		total, _ = addPrice(total, PriceOf(it, state))
	}
	return total
}

// mulPrice is a*b, or 0 when the product does not fit in int64, matching how
// entities.ParseInteger treats an overflowing count.
func mulPrice(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0
	}
	return p
}

// addPrice adds v to total. An addend that would overflow contributes 0 and
// ok is false.
func addPrice(total, v int64) (sum int64, ok bool) {
	sum = total + v
	if (v > 0 && sum < total) || (v < 0 && sum > total) {
		return total, false
	}
	return sum, true
}
