package dto

import (
	"encoding/json"

	"clinic-records/internal/form"
)

// Request DTOs

// SubmitRequest is a filled-in form. Values are keyed by field name. A value
// may be a JSON string, number, boolean or null; bool fields also take
// "true" or "false".
type SubmitRequest struct {
	Variant string                     `json:"variant"`
	Values  map[string]json.RawMessage `json:"values"`
}

// Response DTOs

type FormResponse struct {
	Title    string            `json:"title"`
	Variant  string            `json:"variant"`
	Variants []string          `json:"variants"`
	Fields   []form.Field      `json:"fields"`
	Warnings map[string]string `json:"warnings,omitempty"`
}

type FilterResponse struct {
	Fields []form.Field `json:"fields"`
}

type RecordListResponse struct {
	Records any `json:"records"`
	Total   int `json:"total"`
}

type ScreenResponse struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Variants []string `json:"variants"`
}
