package request

import (
	"encoding/json"
	"funeral_quote/internal/domain/entities"
	"strings"
)

// SaveEstimateRequest saves the session's configuration. customer_info is a
// free-form JSON object (name, address, service date, headcount, ...).
type SaveEstimateRequest struct {
	CustomerInfo json.RawMessage `json:"customer_info" swaggertype:"object"`
	DocumentType string          `json:"document_type"`
}

// ResolveCustomerInfo decodes customer_info, drops blank keys and trims
// string values. Numbers keep their exact digits.
func (r SaveEstimateRequest) ResolveCustomerInfo() (entities.CustomerInfo, error) {
	info, err := entities.DecodeCustomerInfo(r.CustomerInfo)
	if err != nil || len(info) == 0 {
		return nil, err
	}
	out := make(entities.CustomerInfo, len(info))
	for k, v := range info {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if s, ok := v.(string); ok {
			v = strings.TrimSpace(s)
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func (r SaveEstimateRequest) ResolveDocumentType() string {
	return strings.ToLower(strings.TrimSpace(r.DocumentType))
}
