package entities

// Category groups plans a customer may choose between.
type Category string

const (
	CategoryFuneral   Category = "funeral"
	CategoryCremation Category = "cremation"
)

func (c Category) Valid() bool {
	return c == CategoryFuneral || c == CategoryCremation
}

// PlanID identifies a base plan (e.g. "a", "b", ...).
type PlanID string

// Plan is a top-level priced package. Price is in yen.
type Plan struct {
	ID          PlanID   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Price       int64    `json:"price" yaml:"price"`
	Category    Category `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
}

// AttendeeTier is a headcount band. A..C are fixed bands; D is a free-entry
// count and carries an explicit headcount in the selection state.
type AttendeeTier string

const (
	TierA AttendeeTier = "A"
	TierB AttendeeTier = "B"
	TierC AttendeeTier = "C"
	TierD AttendeeTier = "D"
)

// MaxAttendeeCount bounds the tier D headcount accepted from operators.
const MaxAttendeeCount = 100000

// AllTiers lists the tiers in rank order.
var AllTiers = []AttendeeTier{TierA, TierB, TierC, TierD}

func (t AttendeeTier) Valid() bool {
	switch t {
	case TierA, TierB, TierC, TierD:
		return true
	}
	return false
}

type AttendeeOption struct {
	Tier        AttendeeTier `json:"tier" yaml:"tier"`
	Label       string       `json:"label" yaml:"label"`
	Description string       `json:"description" yaml:"description"`
}

// ItemType is the discriminant of a CatalogItem. The set is closed: every
// switch over it in the pricing package must handle all five values.
type ItemType string

const (
	ItemTypeIncluded      ItemType = "included"
	ItemTypeCheckbox      ItemType = "checkbox"
	ItemTypeDropdown      ItemType = "dropdown"
	ItemTypeTierDependent ItemType = "tier_dependent"
	ItemTypeFreeInput     ItemType = "free_input"
)

var AllItemTypes = []ItemType{
	ItemTypeIncluded,
	ItemTypeCheckbox,
	ItemTypeDropdown,
	ItemTypeTierDependent,
	ItemTypeFreeInput,
}

func (t ItemType) Valid() bool {
	for _, v := range AllItemTypes {
		if v == t {
			return true
		}
	}
	return false
}

// GradeOption is one choice inside a dropdown item. It has its own plan gate.
type GradeOption struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Price        int64    `json:"price" yaml:"price"`
	AllowedPlans []PlanID `json:"allowedPlans" yaml:"allowed_plans"`
}

// TierPrices maps a tier to a flat price. The D entry is a per-attendee unit price.
type TierPrices map[AttendeeTier]int64

// CatalogItem is a priceable (or included) line of the configurator.
//
// Only the pricing fields relevant to Type are meaningful:
//   - checkbox, free_input: BasePrice
//   - dropdown: Options
//   - tier_dependent: TierPrices
//   - included: optionally UseDropdown + Options (zero-cost grade choice)
type CatalogItem struct {
	ID           int      `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	DisplayOrder int      `json:"displayOrder" yaml:"display_order"`
	Type         ItemType `json:"type" yaml:"type"`
	AllowedPlans []PlanID `json:"allowedPlans" yaml:"allowed_plans"`

	BasePrice   *int64        `json:"basePrice,omitempty" yaml:"base_price,omitempty"`
	Options     []GradeOption `json:"options,omitempty" yaml:"options,omitempty"`
	TierPrices  TierPrices    `json:"tierPrices,omitempty" yaml:"tier_prices,omitempty"`
	UseDropdown bool          `json:"useDropdown,omitempty" yaml:"use_dropdown,omitempty"`

	// NonTaxable is only consulted when the tax policy runs in flag mode.
	NonTaxable bool `json:"nonTaxable,omitempty" yaml:"non_taxable,omitempty"`
}

// HasGrades reports whether the item offers a grade choice.
func (it CatalogItem) HasGrades() bool {
	switch it.Type {
	case ItemTypeDropdown:
		return len(it.Options) > 0
	case ItemTypeIncluded:
		return it.UseDropdown && len(it.Options) > 0
	}
	return false
}

// Grade returns the grade option with the given id.
func (it CatalogItem) Grade(gradeID string) (GradeOption, bool) {
	for _, o := range it.Options {
		if o.ID == gradeID {
			return o, true
		}
	}
	return GradeOption{}, false
}

// BasePriceOrZero dereferences BasePrice.
func (it CatalogItem) BasePriceOrZero() int64 {
	if it.BasePrice == nil {
		return 0
	}
	return *it.BasePrice
}

// Catalog is a read-only snapshot of plans, items and attendee options.
// Items are kept in display order.
type Catalog struct {
	Plans           []Plan           `json:"plans" yaml:"plans"`
	Items           []CatalogItem    `json:"items" yaml:"items"`
	AttendeeOptions []AttendeeOption `json:"attendeeOptions" yaml:"attendee_options"`
}

func (c Catalog) PlanByID(id PlanID) (Plan, bool) {
	for _, p := range c.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

func (c Catalog) ItemByID(id int) (CatalogItem, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return CatalogItem{}, false
}

// PlansIn returns the plans of a category in catalog order.
func (c Catalog) PlansIn(category Category) []Plan {
	var out []Plan
	for _, p := range c.Plans {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// DefaultPlanID is the plan a selection falls back to when the category
// changes: the first plan of that category in catalog order.
func (c Catalog) DefaultPlanID(category Category) PlanID {
	for _, p := range c.Plans {
		if p.Category == category {
			return p.ID
		}
	}
	return ""
}

func (c Catalog) AttendeeOption(tier AttendeeTier) (AttendeeOption, bool) {
	for _, o := range c.AttendeeOptions {
		if o.Tier == tier {
			return o, true
		}
	}
	return AttendeeOption{}, false
}

// Int64Ptr is a helper for building catalogs in code.
func Int64Ptr(v int64) *int64 {
	return &v
}
