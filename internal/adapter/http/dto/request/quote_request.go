package request

import (
	"bytes"
	"encoding/json"
	"strings"
)

type SetCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

type SetPlanRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

// SetAttendeesRequest selects a headcount tier. Count is only read for tier D
// and is kept as typed; it must parse to 0..entities.MaxAttendeeCount, and
// the text itself is capped at 16 characters.
type SetAttendeesRequest struct {
	Tier  string `json:"tier" binding:"required"`
	Count string `json:"count" binding:"max=16"`
}

// SetGradeRequest picks a grade. An empty grade_id clears the choice, so the
// field must be present but may be "".
type SetGradeRequest struct {
	GradeID *string `json:"grade_id" binding:"required"`
}

func (r SetGradeRequest) ResolveGradeID() string {
	if r.GradeID == nil {
		return ""
	}
	return strings.TrimSpace(*r.GradeID)
}

// SetFreeInputRequest carries the amount as the operator typed it. Both
// "value": "-50000" and "value": -50000 are accepted.
type SetFreeInputRequest struct {
	Value json.RawMessage `json:"value"`
}

func (r SetFreeInputRequest) ResolveText() string {
	raw := bytes.TrimSpace(r.Value)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
