package usecase

import (
	"context"
	"sync"

	"funeral_quote/internal/domain/entities"
)

func fixtureCatalog() entities.Catalog {
	return entities.Catalog{
		Plans: []entities.Plan{
			{ID: "a", Name: "二日葬", Price: 800000, Category: entities.CategoryFuneral},
			{ID: "b", Name: "一日葬", Price: 600000, Category: entities.CategoryFuneral},
			{ID: "c", Name: "家族葬", Price: 450000, Category: entities.CategoryFuneral},
			{ID: "d", Name: "火葬式", Price: 200000, Category: entities.CategoryCremation},
		},
		AttendeeOptions: []entities.AttendeeOption{
			{Tier: entities.TierA, Label: "〜30名"},
			{Tier: entities.TierB, Label: "〜50名"},
			{Tier: entities.TierC, Label: "〜100名"},
			{Tier: entities.TierD, Label: "自由入力"},
		},
		Items: []entities.CatalogItem{
			{ID: 1, Name: "寝台車", Type: entities.ItemTypeIncluded, AllowedPlans: []entities.PlanID{"a", "b", "c", "d"}},
			{
				ID: 5, Name: "祭壇", Type: entities.ItemTypeDropdown, AllowedPlans: []entities.PlanID{"a", "b", "c"},
				Options: []entities.GradeOption{
					{ID: "green", Name: "生花祭壇", Price: 300000, AllowedPlans: []entities.PlanID{"a", "b"}},
					{ID: "white", Name: "白木祭壇", Price: 100000, AllowedPlans: []entities.PlanID{"a", "b", "c"}},
				},
			},
			{ID: 10, Name: "返礼品", Type: entities.ItemTypeCheckbox, BasePrice: entities.Int64Ptr(50000), AllowedPlans: []entities.PlanID{"a", "b"}},
			{
				ID: 22, Name: "通夜料理", Type: entities.ItemTypeTierDependent, AllowedPlans: []entities.PlanID{"a"},
				TierPrices: entities.TierPrices{"A": 200000, "B": 500000, "C": 800000, "D": 1200000},
			},
			{ID: 30, Name: "火葬料", Type: entities.ItemTypeCheckbox, BasePrice: entities.Int64Ptr(75000), AllowedPlans: []entities.PlanID{"a", "b", "c", "d"}},
			{ID: 40, Name: "値引き", Type: entities.ItemTypeFreeInput, AllowedPlans: []entities.PlanID{"a", "b", "c", "d"}},
		},
	}
}

type memSessions struct {
	mu   sync.Mutex
	data map[string]entities.QuoteSession
	err  error
}

func newMemSessions() *memSessions {
	return &memSessions{data: map[string]entities.QuoteSession{}}
}

func (m *memSessions) Get(_ context.Context, id string) (entities.QuoteSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return entities.QuoteSession{}, m.err
	}
	s, ok := m.data[id]
	if !ok {
		return entities.QuoteSession{}, nil
	}
	return s.Clone(), nil
}

func (m *memSessions) Put(_ context.Context, s entities.QuoteSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data[s.ID] = s.Clone()
	return nil
}

type staticCatalog struct {
	c   entities.Catalog
	err error
}

func (s staticCatalog) GetCatalog(context.Context) (entities.Catalog, error) {
	return s.c, s.err
}
