package repository

import (
	"context"
	"fmt"
	"sort"

	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPlansTableName           = "plans"
	defaultCatalogItemsTableName    = "catalog_items"
	defaultAttendeeOptionsTableName = "attendee_options"
)

type planRow struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Price        int64  `dynamodbav:"price"`
	Category     string `dynamodbav:"category"`
	Description  string `dynamodbav:"description"`
	DisplayOrder int    `dynamodbav:"display_order"`
}

type gradeRow struct {
	ID           string   `dynamodbav:"id"`
	Name         string   `dynamodbav:"name"`
	Price        int64    `dynamodbav:"price"`
	AllowedPlans []string `dynamodbav:"allowed_plans"`
}

type catalogItemRow struct {
	ID           int              `dynamodbav:"id"`
	Name         string           `dynamodbav:"name"`
	Description  string           `dynamodbav:"description"`
	DisplayOrder int              `dynamodbav:"display_order"`
	Type         string           `dynamodbav:"type"`
	AllowedPlans []string         `dynamodbav:"allowed_plans"`
	BasePrice    *int64           `dynamodbav:"base_price,omitempty"`
	Options      []gradeRow       `dynamodbav:"options,omitempty"`
	TierPrices   map[string]int64 `dynamodbav:"tier_prices,omitempty"`
	UseDropdown  bool             `dynamodbav:"use_dropdown"`
	NonTaxable   bool             `dynamodbav:"non_taxable"`
}

type attendeeOptionRow struct {
	Tier        string `dynamodbav:"tier"`
	Label       string `dynamodbav:"label"`
	Description string `dynamodbav:"description"`
}

// CatalogDynamoRepository reads the catalog from three small tables. Every
// Load scans them in full; the catalog is tens of rows.
type CatalogDynamoRepository struct {
	ddb            dynamoAPI
	plansTable     string
	itemsTable     string
	attendeesTable string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:            ddb,
		plansTable:     getenvDefault("PLANS_TABLE", defaultPlansTableName),
		itemsTable:     getenvDefault("CATALOG_ITEMS_TABLE", defaultCatalogItemsTableName),
		attendeesTable: getenvDefault("ATTENDEE_OPTIONS_TABLE", defaultAttendeeOptionsTableName),
	}
}

func (r *CatalogDynamoRepository) Load(ctx context.Context) (entities.Catalog, error) {
	var plans []planRow
	if err := r.scanAll(ctx, r.plansTable, &plans); err != nil {
		return entities.Catalog{}, fmt.Errorf("scan %s: %w", r.plansTable, err)
	}
	var items []catalogItemRow
	if err := r.scanAll(ctx, r.itemsTable, &items); err != nil {
		return entities.Catalog{}, fmt.Errorf("scan %s: %w", r.itemsTable, err)
	}
	var attendees []attendeeOptionRow
	if err := r.scanAll(ctx, r.attendeesTable, &attendees); err != nil {
		return entities.Catalog{}, fmt.Errorf("scan %s: %w", r.attendeesTable, err)
	}

	sort.SliceStable(plans, func(i, j int) bool {
		if plans[i].DisplayOrder != plans[j].DisplayOrder {
			return plans[i].DisplayOrder < plans[j].DisplayOrder
		}
		return plans[i].ID < plans[j].ID
	})
	sort.SliceStable(attendees, func(i, j int) bool { return attendees[i].Tier < attendees[j].Tier })

	c := entities.Catalog{}
	for _, p := range plans {
		c.Plans = append(c.Plans, entities.Plan{
			ID:          entities.PlanID(p.ID),
			Name:        p.Name,
			Price:       p.Price,
			Category:    entities.Category(p.Category),
			Description: p.Description,
		})
	}
	for _, it := range items {
		c.Items = append(c.Items, fromCatalogItemRow(it))
	}
	for _, a := range attendees {
		c.AttendeeOptions = append(c.AttendeeOptions, entities.AttendeeOption{
			Tier:        entities.AttendeeTier(a.Tier),
			Label:       a.Label,
			Description: a.Description,
		})
	}
	sortItems(c.Items)
	return c, nil
}

// scanAll follows LastEvaluatedKey until the table is exhausted.
func (r *CatalogDynamoRepository) scanAll(ctx context.Context, table string, out any) error {
	var rows []map[string]types.AttributeValue
	var start map[string]types.AttributeValue
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: start,
		})
		if err != nil {
			return err
		}
		rows = append(rows, page.Items...)
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		start = page.LastEvaluatedKey
	}
	return attributevalue.UnmarshalListOfMaps(rows, out)
}

func fromCatalogItemRow(row catalogItemRow) entities.CatalogItem {
	it := entities.CatalogItem{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		DisplayOrder: row.DisplayOrder,
		Type:         entities.ItemType(row.Type),
		AllowedPlans: toPlanIDs(row.AllowedPlans),
		BasePrice:    row.BasePrice,
		UseDropdown:  row.UseDropdown,
		NonTaxable:   row.NonTaxable,
	}
	for _, g := range row.Options {
		it.Options = append(it.Options, entities.GradeOption{
			ID:           g.ID,
			Name:         g.Name,
			Price:        g.Price,
			AllowedPlans: toPlanIDs(g.AllowedPlans),
		})
	}
	if len(row.TierPrices) > 0 {
		it.TierPrices = entities.TierPrices{}
		for tier, price := range row.TierPrices {
			it.TierPrices[entities.AttendeeTier(tier)] = price
		}
	}
	return it
}

func toPlanIDs(ids []string) []entities.PlanID {
	out := make([]entities.PlanID, 0, len(ids))
	for _, id := range ids {
		out = append(out, entities.PlanID(id))
	}
	return out
}

// sortItems orders items by display order, then id.
func sortItems(items []entities.CatalogItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DisplayOrder != items[j].DisplayOrder {
			return items[i].DisplayOrder < items[j].DisplayOrder
		}
		return items[i].ID < items[j].ID
	})
}
