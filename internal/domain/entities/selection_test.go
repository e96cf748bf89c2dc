package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectionCatalog() Catalog {
	return Catalog{
		Plans: []Plan{
			{ID: "a", Name: "二日葬", Price: 800000, Category: CategoryFuneral},
			{ID: "b", Name: "一日葬", Price: 600000, Category: CategoryFuneral},
			{ID: "c", Name: "家族葬", Price: 450000, Category: CategoryFuneral},
			{ID: "d", Name: "火葬式", Price: 200000, Category: CategoryCremation},
		},
		Items: []CatalogItem{
			{
				ID: 5, Name: "祭壇", Type: ItemTypeDropdown, AllowedPlans: []PlanID{"a", "b", "c"},
				Options: []GradeOption{
					{ID: "green", Name: "生花祭壇", Price: 300000, AllowedPlans: []PlanID{"a", "b"}},
					{ID: "white", Name: "白木祭壇", Price: 100000, AllowedPlans: []PlanID{"a", "b", "c", "d"}},
				},
			},
			{
				ID: 6, Name: "棺", Type: ItemTypeIncluded, UseDropdown: true, AllowedPlans: []PlanID{"a", "b", "c", "d"},
				Options: []GradeOption{
					{ID: "std", Name: "標準棺", AllowedPlans: []PlanID{"a"}},
				},
			},
			{ID: 7, Name: "返礼品", Type: ItemTypeCheckbox, BasePrice: Int64Ptr(50000), AllowedPlans: []PlanID{"a"}},
		},
	}
}

func TestNewSelectionState_Defaults(t *testing.T) {
	s := NewSelectionState(selectionCatalog())
	assert.Equal(t, CategoryFuneral, s.Category)
	assert.Equal(t, PlanID("a"), s.PlanID)
	assert.Equal(t, TierA, s.AttendeeTier)
	assert.Empty(t, s.SelectedOptions)
	assert.Empty(t, s.SelectedGrades)
	assert.Empty(t, s.FreeInputValues)
}

func TestSelectionState_SetCategory(t *testing.T) {
	cat := selectionCatalog()
	s := NewSelectionState(cat)
	s.ToggleOption(7)
	s.SetGrade(5, "green")
	s.SetFreeInputValue(30, -1000)
	s.SetAttendeeTier(TierD)
	s.SetCustomAttendeeCount("40")

	s.SetCategory(cat, CategoryCremation)

	assert.Equal(t, CategoryCremation, s.Category)
	assert.Equal(t, PlanID("d"), s.PlanID)
	assert.Empty(t, s.SelectedOptions)
	assert.Empty(t, s.SelectedGrades)
	assert.Equal(t, map[int]int64{30: -1000}, s.FreeInputValues)
	assert.Equal(t, TierD, s.AttendeeTier)
	assert.Equal(t, "40", s.CustomAttendeeCount)
}

func TestSelectionState_SetPlanPrunesGrades(t *testing.T) {
	cat := selectionCatalog()

	t.Run("grade not offered on new plan is removed", func(t *testing.T) {
		s := NewSelectionState(cat)
		s.SetGrade(5, "green")
		s.SetPlan(cat, "c")
		_, ok := s.SelectedGrades[5]
		assert.False(t, ok)
	})

	t.Run("grade offered on new plan is kept", func(t *testing.T) {
		s := NewSelectionState(cat)
		s.SetGrade(5, "green")
		s.SetPlan(cat, "b")
		assert.Equal(t, "green", s.SelectedGrades[5])
	})

	t.Run("item ineligible but grade compatible is kept", func(t *testing.T) {
		s := NewSelectionState(cat)
		s.SetGrade(5, "white")
		s.SetPlan(cat, "d")
		assert.Equal(t, "white", s.SelectedGrades[5])
	})

	t.Run("included dropdown grades are pruned too", func(t *testing.T) {
		s := NewSelectionState(cat)
		s.SetGrade(6, "std")
		s.SetPlan(cat, "b")
		assert.Empty(t, s.SelectedGrades)
	})

	t.Run("dangling ids are retained", func(t *testing.T) {
		s := NewSelectionState(cat)
		s.SetGrade(99, "gold")
		s.SetGrade(5, "unknown")
		s.SetPlan(cat, "c")
		assert.Equal(t, map[int]string{99: "gold", 5: "unknown"}, s.SelectedGrades)
	})

	t.Run("checkbox selections are not pruned", func(t *testing.T) {
		s := NewSelectionState(cat)
		s.ToggleOption(7)
		s.SetPlan(cat, "b")
		assert.True(t, s.SelectedOptions.Has(7))
	})
}

func TestSelectionState_ToggleOptionIdempotent(t *testing.T) {
	s := NewSelectionState(selectionCatalog())
	s.ToggleOption(3)
	before := s.Clone().SelectedOptions

	s.ToggleOption(7)
	s.ToggleOption(7)
	assert.Equal(t, before, s.SelectedOptions)

	s.ToggleOption(3)
	assert.False(t, s.SelectedOptions.Has(3))
}

func TestSelectionState_SetGrade(t *testing.T) {
	s := NewSelectionState(selectionCatalog())
	s.SetGrade(5, "white")
	assert.Equal(t, "white", s.SelectedGrades[5])
	s.SetGrade(5, "")
	_, ok := s.SelectedGrades[5]
	assert.False(t, ok)
	s.SetGrade(8, "")
	assert.Empty(t, s.SelectedGrades)
}

func TestSelectionState_CloneIsDeep(t *testing.T) {
	s := NewSelectionState(selectionCatalog())
	s.ToggleOption(7)
	s.SetGrade(5, "green")
	s.SetFreeInputValue(30, 10)

	c := s.Clone()
	c.ToggleOption(7)
	c.SetGrade(5, "white")
	c.SetFreeInputValue(30, 20)

	require.True(t, s.SelectedOptions.Has(7))
	assert.Equal(t, "green", s.SelectedGrades[5])
	assert.Equal(t, int64(10), s.FreeInputValues[30])
}

func TestSelectionState_ZeroValueIsUsable(t *testing.T) {
	var s SelectionState
	s.ToggleOption(1)
	s.SetGrade(2, "x")
	s.SetFreeInputValue(3, 4)
	s.SetPlan(Catalog{}, "a")
	assert.True(t, s.SelectedOptions.Has(1))
	assert.Equal(t, int64(0), s.ParsedAttendeeCount())
}

func TestIDSet_Sorted(t *testing.T) {
	assert.Equal(t, []int{1, 4, 9}, NewIDSet(9, 1, 4).Sorted())
	assert.Empty(t, IDSet{}.Sorted())
}
