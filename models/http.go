package models

import "encoding/json"

// LabelRequest is the body of create and update calls.
type LabelRequest struct {
	Label string `json:"label"`
}

// OwnerResponse is the body returned by GET /users/{owner}.
//
// Todos is kept raw so the adapter can tell an array apart from any other
// JSON value before decoding it.
type OwnerResponse struct {
	Name  string          `json:"name,omitempty"`
	Todos json.RawMessage `json:"todos"`
}

// OwnerList is what the local stand-in server writes for GET /users/{owner}.
type OwnerList struct {
	Name  string `json:"name"`
	Todos []Task `json:"todos"`
}
