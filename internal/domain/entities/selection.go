package entities

import "sort"

// IDSet is a set of catalog item ids.
type IDSet map[int]struct{}

func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in ascending order.
func (s IDSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// SelectionState is the configuration under construction for one session.
//
// Mutate it only through its methods; they hold the cross-field rules
// (category reset, grade pruning on plan change).
type SelectionState struct {
	Category            Category
	PlanID              PlanID
	AttendeeTier        AttendeeTier
	CustomAttendeeCount string

	// SelectedOptions holds checkbox and tier_dependent item ids.
	SelectedOptions IDSet
	// SelectedGrades maps a dropdown (or included+useDropdown) item id to a grade id.
	SelectedGrades map[int]string
	// FreeInputValues maps a free_input item id to an override amount.
	FreeInputValues map[int]int64
}

// NewSelectionState returns the default state: funeral, first funeral plan,
// tier A and no selections.
func NewSelectionState(catalog Catalog) *SelectionState {
	return &SelectionState{
		Category:        CategoryFuneral,
		PlanID:          catalog.DefaultPlanID(CategoryFuneral),
		AttendeeTier:    TierA,
		SelectedOptions: IDSet{},
		SelectedGrades:  map[int]string{},
		FreeInputValues: map[int]int64{},
	}
}

// SetCategory switches category, resets the plan to the category default and
// clears option and grade selections. Free inputs and attendees are untouched.
func (s *SelectionState) SetCategory(catalog Catalog, category Category) {
	s.Category = category
	s.PlanID = catalog.DefaultPlanID(category)
	s.SelectedOptions = IDSet{}
	s.SelectedGrades = map[int]string{}
}

// SetPlan switches plan and drops grade selections whose grade is not offered
// on the new plan. Selections of items that became ineligible are kept; they
// are inert while the plan excludes them.
func (s *SelectionState) SetPlan(catalog Catalog, planID PlanID) {
	s.PlanID = planID
	s.ensure()
	for itemID, gradeID := range s.SelectedGrades {
		item, ok := catalog.ItemByID(itemID)
		if !ok || len(item.Options) == 0 {
			continue
		}
		grade, ok := item.Grade(gradeID)
		if !ok {
			continue
		}
		if !containsPlan(grade.AllowedPlans, planID) {
			delete(s.SelectedGrades, itemID)
		}
	}
}

// ToggleOption flips membership of itemID in the selected options.
func (s *SelectionState) ToggleOption(itemID int) {
	s.ensure()
	if s.SelectedOptions.Has(itemID) {
		delete(s.SelectedOptions, itemID)
		return
	}
	s.SelectedOptions[itemID] = struct{}{}
}

// SetGrade records a grade choice; an empty gradeID clears it.
func (s *SelectionState) SetGrade(itemID int, gradeID string) {
	s.ensure()
	if gradeID == "" {
		delete(s.SelectedGrades, itemID)
		return
	}
	s.SelectedGrades[itemID] = gradeID
}

// SetFreeInputValue overwrites the amount of a free_input item. Negative
// values are discounts.
func (s *SelectionState) SetFreeInputValue(itemID int, value int64) {
	s.ensure()
	s.FreeInputValues[itemID] = value
}

func (s *SelectionState) SetAttendeeTier(tier AttendeeTier) {
	s.AttendeeTier = tier
}

// SetCustomAttendeeCount stores the free-text headcount verbatim.
func (s *SelectionState) SetCustomAttendeeCount(text string) {
	s.CustomAttendeeCount = text
}

// ParsedAttendeeCount is the headcount used for tier D unit pricing.
func (s *SelectionState) ParsedAttendeeCount() int64 {
	return ParseInteger(s.CustomAttendeeCount)
}

// Clone returns a deep copy.
func (s *SelectionState) Clone() *SelectionState {
	out := *s
	out.SelectedOptions = make(IDSet, len(s.SelectedOptions))
	for id := range s.SelectedOptions {
		out.SelectedOptions[id] = struct{}{}
	}
	out.SelectedGrades = make(map[int]string, len(s.SelectedGrades))
	for k, v := range s.SelectedGrades {
		out.SelectedGrades[k] = v
	}
	out.FreeInputValues = make(map[int]int64, len(s.FreeInputValues))
	for k, v := range s.FreeInputValues {
		out.FreeInputValues[k] = v
	}
	return &out
}

func (s *SelectionState) ensure() {
	if s.SelectedOptions == nil {
		s.SelectedOptions = IDSet{}
	}
	if s.SelectedGrades == nil {
		s.SelectedGrades = map[int]string{}
	}
	if s.FreeInputValues == nil {
		s.FreeInputValues = map[int]int64{}
	}
}

func containsPlan(plans []PlanID, id PlanID) bool {
	for _, p := range plans {
		if p == id {
			return true
		}
	}
	return false
}
