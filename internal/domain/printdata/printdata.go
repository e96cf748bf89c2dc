// Package printdata converts a priced configuration to and from the text
// payload shared with the print view and stored as estimate content.
//
// The payload is JSON. Sets and maps have no JSON form that survives a round
// trip, so they cross the boundary as arrays: selected options as [id, ...],
// grades as [[itemId, "gradeId"], ...] and free inputs as [[itemId, amount], ...].
package printdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"funeral_quote/internal/domain/entities"
)

// ErrNoData means the payload is empty or cannot be decoded. Callers show
// "nothing to print" rather than failing.
var ErrNoData = errors.New("no print data")

// Snapshot is everything the document renderer needs, fully resolved.
// Items is the complete catalog at save time and is authoritative when the
// snapshot is rendered again.
type Snapshot struct {
	Plan          entities.Plan
	Items         []entities.CatalogItem
	Selection     *entities.SelectionState
	TotalCost     int64
	AttendeeLabel string
	CustomerInfo  entities.CustomerInfo
	EstimateID    *int64
	DocumentType  entities.DocumentType
}

// Catalog rebuilds a catalog view from the snapshot's plan and items.
func (s Snapshot) Catalog() entities.Catalog {
	return entities.Catalog{Plans: []entities.Plan{s.Plan}, Items: s.Items}
}

type payload struct {
	Plan                entities.Plan          `json:"plan"`
	Items               []entities.CatalogItem `json:"items"`
	Category            entities.Category      `json:"category,omitempty"`
	SelectedOptions     []int                  `json:"selectedOptions"`
	SelectedGrades      []gradeEntry           `json:"selectedGrades"`
	AttendeeTier        entities.AttendeeTier  `json:"attendeeTier"`
	CustomAttendeeCount string                 `json:"customAttendeeCount"`
	FreeInputValues     []freeInputEntry       `json:"freeInputValues"`
	TotalCost           int64                  `json:"totalCost"`
	AttendeeLabel       string                 `json:"attendeeLabel"`
	CustomerInfo        entities.CustomerInfo  `json:"customerInfo"`
	EstimateID          *int64                 `json:"estimateId"`
	DocumentType        entities.DocumentType  `json:"documentType"`
}

type gradeEntry struct {
	ItemID  int
	GradeID string
}

func (e gradeEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.ItemID, e.GradeID})
}

func (e *gradeEntry) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("grade entry: want 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.ItemID); err != nil {
		return fmt.Errorf("grade entry item id: %w", err)
	}
	if err := json.Unmarshal(pair[1], &e.GradeID); err != nil {
		return fmt.Errorf("grade entry grade id: %w", err)
	}
	return nil
}

type freeInputEntry struct {
	ItemID int
	Value  int64
}

func (e freeInputEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int64{int64(e.ItemID), e.Value})
}

func (e *freeInputEntry) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("free input entry: want 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.ItemID); err != nil {
		return fmt.Errorf("free input entry item id: %w", err)
	}
	if err := json.Unmarshal(pair[1], &e.Value); err != nil {
		return fmt.Errorf("free input entry value: %w", err)
	}
	return nil
}

// Serialize encodes the snapshot. Pair arrays are ordered by item id so equal
// snapshots always produce equal payloads.
func Serialize(s Snapshot) (string, error) {
	sel := s.Selection
	if sel == nil {
		sel = &entities.SelectionState{}
	}

	p := payload{
		Plan:                s.Plan,
		Items:               s.Items,
		Category:            sel.Category,
		SelectedOptions:     sel.SelectedOptions.Sorted(),
		SelectedGrades:      make([]gradeEntry, 0, len(sel.SelectedGrades)),
		AttendeeTier:        sel.AttendeeTier,
		CustomAttendeeCount: sel.CustomAttendeeCount,
		FreeInputValues:     make([]freeInputEntry, 0, len(sel.FreeInputValues)),
		TotalCost:           s.TotalCost,
		AttendeeLabel:       s.AttendeeLabel,
		CustomerInfo:        s.CustomerInfo,
		EstimateID:          s.EstimateID,
		DocumentType:        s.DocumentType,
	}
	for _, id := range sortedKeys(sel.SelectedGrades) {
		p.SelectedGrades = append(p.SelectedGrades, gradeEntry{ItemID: id, GradeID: sel.SelectedGrades[id]})
	}
	for _, id := range sortedKeys(sel.FreeInputValues) {
		p.FreeInputValues = append(p.FreeInputValues, freeInputEntry{ItemID: id, Value: sel.FreeInputValues[id]})
	}

	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal print data: %w", err)
	}
	return string(b), nil
}

// Deserialize decodes a payload written by Serialize. Any malformed input
// yields an error wrapping ErrNoData.
func Deserialize(raw string) (Snapshot, error) {
	if strings.TrimSpace(raw) == "" {
		return Snapshot{}, ErrNoData
	}

	// Customer info is arbitrary JSON; UseNumber keeps its numbers exact.
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var p payload
	if err := dec.Decode(&p); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Snapshot{}, fmt.Errorf("%w: trailing data after payload", ErrNoData)
	}
	if p.Plan.ID == "" {
		return Snapshot{}, fmt.Errorf("%w: missing plan", ErrNoData)
	}

	category := p.Category
	if category == "" {
		category = p.Plan.Category
	}
	sel := &entities.SelectionState{
		Category:            category,
		PlanID:              p.Plan.ID,
		AttendeeTier:        p.AttendeeTier,
		CustomAttendeeCount: p.CustomAttendeeCount,
		SelectedOptions:     entities.NewIDSet(p.SelectedOptions...),
		SelectedGrades:      make(map[int]string, len(p.SelectedGrades)),
		FreeInputValues:     make(map[int]int64, len(p.FreeInputValues)),
	}
	for _, e := range p.SelectedGrades {
		sel.SelectedGrades[e.ItemID] = e.GradeID
	}
	for _, e := range p.FreeInputValues {
		sel.FreeInputValues[e.ItemID] = e.Value
	}

	return Snapshot{
		Plan:          p.Plan,
		Items:         p.Items,
		Selection:     sel,
		TotalCost:     p.TotalCost,
		AttendeeLabel: p.AttendeeLabel,
		CustomerInfo:  p.CustomerInfo,
		EstimateID:    p.EstimateID,
		DocumentType:  p.DocumentType,
	}, nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
