package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientScore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/text/analytics/v2.0/sentiment" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if key := r.Header.Get("Ocp-Apim-Subscription-Key"); key != "test-key" {
			t.Errorf("unexpected subscription key %q", key)
		}

		var payload analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(payload.Documents) != 1 {
			t.Fatalf("expected 1 document, got %d", len(payload.Documents))
		}
		if payload.Documents[0].Text != "lovely stuff" {
			t.Errorf("unexpected document text %q", payload.Documents[0].Text)
		}
		if payload.Documents[0].Language == "" {
			t.Error("document language not set")
		}

		json.NewEncoder(w).Encode(map[string]any{
			"documents": []map[string]any{{"id": "1", "score": 0.93}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "/text/analytics/v2.0/sentiment", "test-key")
	score, err := client.Score(context.Background(), "lovely stuff")
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if score != 0.93 {
		t.Errorf("Score() = %v, want 0.93", score)
	}
}

func TestClientScoreAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "/sentiment", "test-key")
	if _, err := client.Score(context.Background(), "anything"); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestClientScoreDocumentError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"documents": []map[string]any{},
			"errors":    []map[string]any{{"id": "1", "message": "unsupported language"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "/sentiment", "test-key")
	if _, err := client.Score(context.Background(), "anything"); err == nil {
		t.Fatal("expected error when response carries no documents")
	}
}

func TestClientScoreUnconfigured(t *testing.T) {
	client := NewClient("", "/sentiment", "")
	if _, err := client.Score(context.Background(), "anything"); err == nil {
		t.Fatal("expected error from unconfigured client")
	}
}
