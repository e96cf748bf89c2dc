package request

import (
	"encoding/json"
	"testing"
)

func TestSaveEstimateRequest_ResolveCustomerInfo(t *testing.T) {
	r := SaveEstimateRequest{CustomerInfo: json.RawMessage(`{" name ":" 山田 太郎 ","  ":"x","attendees":120,"member":true,"address":{"zip":"100-0001"}}`)}
	got, err := r.ResolveCustomerInfo()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 || got["name"] != "山田 太郎" || got["member"] != true {
		t.Fatalf("unexpected customer info: %+v", got)
	}
	if got["attendees"] != json.Number("120") {
		t.Fatalf("expected exact number, got %#v", got["attendees"])
	}
	if addr, ok := got["address"].(map[string]any); !ok || addr["zip"] != "100-0001" {
		t.Fatalf("expected nested object, got %#v", got["address"])
	}

	for _, raw := range []string{"", "null", `{}`, `{"":"x"}`} {
		info, err := (SaveEstimateRequest{CustomerInfo: json.RawMessage(raw)}).ResolveCustomerInfo()
		if err != nil || info != nil {
			t.Fatalf("%q: expected nil, got %+v, %v", raw, info, err)
		}
	}
	if _, err := (SaveEstimateRequest{CustomerInfo: json.RawMessage(`["x"]`)}).ResolveCustomerInfo(); err == nil {
		t.Fatalf("expected an error for a non-object customer_info")
	}
}

func TestSaveEstimateRequest_ResolveDocumentType(t *testing.T) {
	if got := (SaveEstimateRequest{DocumentType: " Invoice "}).ResolveDocumentType(); got != "invoice" {
		t.Fatalf("unexpected document type %q", got)
	}
	if got := (SaveEstimateRequest{}).ResolveDocumentType(); got != "" {
		t.Fatalf("expected empty document type, got %q", got)
	}
}

func TestSetFreeInputRequest_ResolveText(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"value":"-50000"}`, "-50000"},
		{`{"value":-50000}`, "-50000"},
		{`{"value":"１２,０００円"}`, "１２,０００円"},
		{`{"value":null}`, ""},
		{`{}`, ""},
	}
	for _, tc := range cases {
		var r SetFreeInputRequest
		if err := json.Unmarshal([]byte(tc.body), &r); err != nil {
			t.Fatalf("unexpected error for %s: %v", tc.body, err)
		}
		if got := r.ResolveText(); got != tc.want {
			t.Fatalf("body %s: expected %q, got %q", tc.body, tc.want, got)
		}
	}
}

func TestSetGradeRequest_ResolveGradeID(t *testing.T) {
	empty := ""
	green := " green "
	if (SetGradeRequest{}).ResolveGradeID() != "" {
		t.Fatalf("expected empty grade for missing field")
	}
	if (SetGradeRequest{GradeID: &empty}).ResolveGradeID() != "" {
		t.Fatalf("expected empty grade")
	}
	if (SetGradeRequest{GradeID: &green}).ResolveGradeID() != "green" {
		t.Fatalf("expected trimmed grade")
	}
}
