package response

import (
	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/domain/pricing"
	"funeral_quote/internal/domain/printdata"
	"funeral_quote/internal/usecase"
	"time"
)

type EstimateResponse struct {
	ID           int64                 `json:"id"`
	TotalPrice   int64                 `json:"total_price"`
	CustomerInfo entities.CustomerInfo `json:"customer_info,omitempty" swaggertype:"object"`
	CreatedAt    time.Time             `json:"created_at"`
}

// SnapshotResponse is a decoded print payload.
type SnapshotResponse struct {
	EstimateID    *int64                 `json:"estimate_id"`
	DocumentType  string                 `json:"document_type"`
	Plan          entities.Plan          `json:"plan"`
	Items         []entities.CatalogItem `json:"items"`
	Selection     SelectionResponse      `json:"selection"`
	TotalCost     int64                  `json:"total_cost"`
	AttendeeLabel string                 `json:"attendee_label"`
	CustomerInfo  entities.CustomerInfo  `json:"customer_info,omitempty" swaggertype:"object"`
}

type SavedEstimateResponse struct {
	Estimate   EstimateResponse `json:"estimate"`
	PrintReady bool             `json:"print_ready"`
}

type EstimateDetailResponse struct {
	Estimate EstimateResponse `json:"estimate"`
	Snapshot SnapshotResponse `json:"snapshot"`
}

// PrintResponse is the contract with the document renderer.
type PrintResponse struct {
	Snapshot SnapshotResponse `json:"snapshot"`
	Document pricing.TaxSplit `json:"document"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:           e.ID,
		TotalPrice:   e.TotalPrice,
		CustomerInfo: e.CustomerInfo,
		CreatedAt:    e.CreatedAt,
	}
}

func FromSnapshot(s printdata.Snapshot) SnapshotResponse {
	items := s.Items
	if items == nil {
		items = []entities.CatalogItem{}
	}
	return SnapshotResponse{
		EstimateID:    s.EstimateID,
		DocumentType:  string(s.DocumentType),
		Plan:          s.Plan,
		Items:         items,
		Selection:     FromSelection(s.Selection),
		TotalCost:     s.TotalCost,
		AttendeeLabel: s.AttendeeLabel,
		CustomerInfo:  s.CustomerInfo,
	}
}

func FromSavedEstimate(s usecase.SavedEstimate) SavedEstimateResponse {
	return SavedEstimateResponse{Estimate: FromEstimate(s.Estimate), PrintReady: s.PrintReady}
}

func FromEstimateDetail(e entities.Estimate, s printdata.Snapshot) EstimateDetailResponse {
	return EstimateDetailResponse{Estimate: FromEstimate(e), Snapshot: FromSnapshot(s)}
}

func FromPrintDocument(d usecase.PrintDocument) PrintResponse {
	return PrintResponse{Snapshot: FromSnapshot(d.Snapshot), Document: d.Document}
}
