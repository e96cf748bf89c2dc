package entities

import (
	"bytes"
	"encoding/json"
	"time"
)

// DocumentType selects how a saved configuration is printed.
type DocumentType string

const (
	DocumentTypeQuote   DocumentType = "quote"
	DocumentTypeInvoice DocumentType = "invoice"
)

func (d DocumentType) Valid() bool {
	return d == DocumentTypeQuote || d == DocumentTypeInvoice
}

// CustomerInfo holds free-form customer fields (name, address, date, ...).
// Values are any JSON value; numbers are kept as json.Number.
type CustomerInfo map[string]any

// DecodeCustomerInfo reads a JSON object. Empty input and null yield nil.
func DecodeCustomerInfo(b []byte) (CustomerInfo, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var info CustomerInfo
	if err := dec.Decode(&info); err != nil {
		return nil, err
	}
	return info, nil
}

// Estimate is a saved configuration (見積).
//
// Storage model:
//   - PK: id (integer, assigned by the store on insert)
//   - Content: serialized print payload (catalog snapshot + selection + totals)
//   - TotalPrice and CustomerInfo are denormalized copies for listing.
//
// Rows are written once per save and never updated.
type Estimate struct {
	ID           int64        `json:"id"`
	Content      string       `json:"content"`
	TotalPrice   int64        `json:"total_price"`
	CustomerInfo CustomerInfo `json:"customer_info"`
	CreatedAt    time.Time    `json:"created_at"`
}
