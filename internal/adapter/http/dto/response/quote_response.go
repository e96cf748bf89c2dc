package response

import (
	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/domain/pricing"
	"funeral_quote/internal/usecase"
)

// SelectionResponse is the selection as JSON. Grade and free-input maps are
// keyed by item id.
type SelectionResponse struct {
	Category            string         `json:"category"`
	PlanID              string         `json:"plan_id"`
	AttendeeTier        string         `json:"attendee_tier"`
	CustomAttendeeCount string         `json:"custom_attendee_count"`
	SelectedOptions     []int          `json:"selected_options"`
	SelectedGrades      map[int]string `json:"selected_grades"`
	FreeInputValues     map[int]int64  `json:"free_input_values"`
}

type QuoteResponse struct {
	SessionID     string             `json:"session_id"`
	Selection     SelectionResponse  `json:"selection"`
	Plan          entities.Plan      `json:"plan"`
	Plans         []entities.Plan    `json:"plans"`
	Items         []pricing.ItemView `json:"items"`
	AttendeeLabel string             `json:"attendee_label"`
	LiveTotal     int64              `json:"live_total"`
	Document      pricing.TaxSplit   `json:"document"`
}

func FromSelection(s *entities.SelectionState) SelectionResponse {
	if s == nil {
		return SelectionResponse{SelectedOptions: []int{}, SelectedGrades: map[int]string{}, FreeInputValues: map[int]int64{}}
	}
	out := SelectionResponse{
		Category:            string(s.Category),
		PlanID:              string(s.PlanID),
		AttendeeTier:        string(s.AttendeeTier),
		CustomAttendeeCount: s.CustomAttendeeCount,
		SelectedOptions:     s.SelectedOptions.Sorted(),
		SelectedGrades:      make(map[int]string, len(s.SelectedGrades)),
		FreeInputValues:     make(map[int]int64, len(s.FreeInputValues)),
	}
	for k, v := range s.SelectedGrades {
		out.SelectedGrades[k] = v
	}
	for k, v := range s.FreeInputValues {
		out.FreeInputValues[k] = v
	}
	if out.SelectedOptions == nil {
		out.SelectedOptions = []int{}
	}
	return out
}

func FromQuoteView(v usecase.QuoteView) QuoteResponse {
	items := v.Items
	if items == nil {
		items = []pricing.ItemView{}
	}
	return QuoteResponse{
		SessionID:     v.SessionID,
		Selection:     FromSelection(v.State),
		Plan:          v.Plan,
		Plans:         v.Plans,
		Items:         items,
		AttendeeLabel: v.AttendeeLabel,
		LiveTotal:     v.LiveTotal,
		Document:      v.Document,
	}
}

type CatalogResponse struct {
	Plans           []entities.Plan           `json:"plans"`
	Items           []entities.CatalogItem    `json:"items"`
	AttendeeOptions []entities.AttendeeOption `json:"attendee_options"`
}

func FromCatalog(c entities.Catalog) CatalogResponse {
	return CatalogResponse{Plans: c.Plans, Items: c.Items, AttendeeOptions: c.AttendeeOptions}
}
