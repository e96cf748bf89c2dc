package usecase

import (
	"context"
	"errors"
	"fmt"
	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrEmptyCatalog       = errors.New("catalog has no plans")
)

// ICatalogUseCase exposes the catalog snapshot used to start sessions.
type ICatalogUseCase interface {
	GetCatalog(ctx context.Context) (entities.Catalog, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) GetCatalog(ctx context.Context) (entities.Catalog, error) {
	if u.repo == nil {
		return entities.Catalog{}, ErrCatalogUnavailable
	}
	c, err := u.repo.Load(ctx)
	if err != nil {
		log.Errorf("[catalog][usecase] load failed err=%v", err)
		return entities.Catalog{}, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	if len(c.Plans) == 0 {
		return entities.Catalog{}, ErrEmptyCatalog
	}
	for _, f := range ValidateCatalog(c) {
		log.Warnf("[catalog][usecase] %s", f)
	}
	return c, nil
}

// ValidateCatalog reports authoring mistakes. The pricing engine tolerates all
// of them, so these are warnings for whoever maintains the catalog.
func ValidateCatalog(c entities.Catalog) []string {
	var findings []string

	plans := map[entities.PlanID]bool{}
	for _, p := range c.Plans {
		if plans[p.ID] {
			findings = append(findings, fmt.Sprintf("duplicate plan id %q", p.ID))
		}
		plans[p.ID] = true
		if !p.Category.Valid() {
			findings = append(findings, fmt.Sprintf("plan %q has unknown category %q", p.ID, p.Category))
		}
		if p.Price < 0 {
			findings = append(findings, fmt.Sprintf("plan %q has negative price", p.ID))
		}
	}
	for _, cat := range []entities.Category{entities.CategoryFuneral, entities.CategoryCremation} {
		if c.DefaultPlanID(cat) == "" {
			findings = append(findings, fmt.Sprintf("no plan in category %q", cat))
		}
	}

	items := map[int]bool{}
	for _, it := range c.Items {
		if items[it.ID] {
			findings = append(findings, fmt.Sprintf("duplicate item id %d", it.ID))
		}
		items[it.ID] = true

		if !it.Type.Valid() {
			findings = append(findings, fmt.Sprintf("item %d has unknown type %q", it.ID, it.Type))
		}
		itemPlans := map[entities.PlanID]bool{}
		for _, p := range it.AllowedPlans {
			itemPlans[p] = true
			if !plans[p] {
				findings = append(findings, fmt.Sprintf("item %d allows unknown plan %q", it.ID, p))
			}
		}

		switch it.Type {
		case entities.ItemTypeDropdown:
			if len(it.Options) == 0 {
				findings = append(findings, fmt.Sprintf("dropdown item %d has no options", it.ID))
			}
		case entities.ItemTypeTierDependent:
			for _, tier := range entities.AllTiers {
				if _, ok := it.TierPrices[tier]; !ok {
					findings = append(findings, fmt.Sprintf("item %d has no price for tier %s", it.ID, tier))
				}
			}
		case entities.ItemTypeIncluded:
			if it.UseDropdown && len(it.Options) == 0 {
				findings = append(findings, fmt.Sprintf("included item %d uses a dropdown without options", it.ID))
			}
		case entities.ItemTypeCheckbox, entities.ItemTypeFreeInput:
		}

		for _, o := range it.Options {
			for _, p := range o.AllowedPlans {
				if !itemPlans[p] {
					findings = append(findings, fmt.Sprintf("item %d grade %q allows plan %q the item does not", it.ID, o.ID, p))
				}
			}
		}
	}

	for _, tier := range entities.AllTiers {
		if _, ok := c.AttendeeOption(tier); !ok {
			findings = append(findings, fmt.Sprintf("no attendee option for tier %s", tier))
		}
	}
	return findings
}
