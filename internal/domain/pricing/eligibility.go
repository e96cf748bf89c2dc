// Package pricing evaluates a selection against a catalog snapshot.
//
// Every function here is pure and total: unknown ids, missing pricing
// sub-structures and unparsable counts contribute zero instead of failing.
package pricing

import "funeral_quote/internal/domain/entities"

// IsItemEligible reports whether the item may be shown and priced on planID.
func IsItemEligible(item entities.CatalogItem, planID entities.PlanID) bool {
	return containsPlan(item.AllowedPlans, planID)
}

// IsGradeEligible reports whether the item offers gradeID on planID.
func IsGradeEligible(item entities.CatalogItem, gradeID string, planID entities.PlanID) bool {
	grade, ok := item.Grade(gradeID)
	if !ok {
		return false
	}
	return containsPlan(grade.AllowedPlans, planID)
}

// EligibleItems returns the catalog items available on planID, in catalog order.
func EligibleItems(catalog entities.Catalog, planID entities.PlanID) []entities.CatalogItem {
	out := make([]entities.CatalogItem, 0, len(catalog.Items))
	for _, it := range catalog.Items {
		if IsItemEligible(it, planID) {
			out = append(out, it)
		}
	}
	return out
}

// EligibleGrades returns the grade options of item offered on planID.
func EligibleGrades(item entities.CatalogItem, planID entities.PlanID) []entities.GradeOption {
	var out []entities.GradeOption
	for _, o := range item.Options {
		if containsPlan(o.AllowedPlans, planID) {
			out = append(out, o)
		}
	}
	return out
}

func containsPlan(plans []entities.PlanID, id entities.PlanID) bool {
	for _, p := range plans {
		if p == id {
			return true
		}
	}
	return false
}
