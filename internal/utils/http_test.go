// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type taskBody struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "object", data: taskBody{ID: 1, Label: "a"}, status: http.StatusCreated, wantBody: `{"id":1,"label":"a"}`},
		{name: "slice", data: []taskBody{}, status: http.StatusOK, wantBody: `[]`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if n != len(tt.wantBody) {
				t.Errorf("expected %d bytes written, got %d", len(tt.wantBody), n)
			}
			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("expected body %s, got %s", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WriteJSON(w, make(chan int), http.StatusOK); err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSONError(w, "task not found", http.StatusNotFound)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if w.Body.String() != `{"detail":"task not found"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}
