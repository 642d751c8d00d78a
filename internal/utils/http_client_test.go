package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}
	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_SetsTraceAndAcceptHeaders(t *testing.T) {
	var gotTrace, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTrace = r.Header.Get(TraceIDHeader)
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if _, err := NewHTTPClient().R().Get(srv.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uuid.Parse(gotTrace); err != nil {
		t.Errorf("expected a UUID trace id, got %q", gotTrace)
	}
	if gotAccept != "application/json" {
		t.Errorf("expected Accept application/json, got %q", gotAccept)
	}
}

func TestNewHTTPClient_KeepsCallerTraceID(t *testing.T) {
	var gotTrace string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTrace = r.Header.Get(TraceIDHeader)
	}))
	defer srv.Close()

	if _, err := NewHTTPClient().R().SetHeader(TraceIDHeader, "fixed").Get(srv.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTrace != "fixed" {
		t.Errorf("expected caller trace id to be kept, got %q", gotTrace)
	}
}

func TestNewTraceID_IsVersion7(t *testing.T) {
	id, err := uuid.Parse(NewTraceID())
	if err != nil {
		t.Fatalf("expected valid uuid: %v", err)
	}
	if id.Version() != 7 {
		t.Errorf("expected version 7, got %d", id.Version())
	}
}
