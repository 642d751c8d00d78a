package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.Task{ID: 1, Label: "a"}, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ErrorBody is the JSON error envelope written by [WriteJSONError].
type ErrorBody struct {
	Detail string `json:"detail"`
}

// WriteJSONError writes {"detail": msg} with statusCode.
func WriteJSONError(w http.ResponseWriter, msg string, statusCode int) {
	_, _ = WriteJSON(w, ErrorBody{Detail: msg}, statusCode)
}
