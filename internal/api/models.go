package api

import "subsidiaries-cli/internal/tabular"

// Envelope is the top-level response of the subsidiaries endpoint. It is
// valid only when Status is "success".
type Envelope struct {
	Status       string           `json:"status"`
	Count        int              `json:"count"`
	Subsidiaries []tabular.Record `json:"subsidiaries"`
}
