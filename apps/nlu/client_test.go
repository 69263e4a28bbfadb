package nlu

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCategoryEntity(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   string
	}{
		{
			"composite category type",
			&Result{Entities: []Entity{{Value: "albums", Type: "category::Albums"}}},
			"Albums",
		},
		{
			"plain entity type",
			&Result{Entities: []Entity{{Value: "albums", Type: "category"}}},
			"",
		},
		{
			"no entities",
			&Result{Intent: IntentSearchBuy},
			"",
		},
		{
			"nil result",
			nil,
			"",
		},
		{
			"first entity wins",
			&Result{Entities: []Entity{
				{Type: "category::Vinyls"},
				{Type: "category::Albums"},
			}},
			"Vinyls",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.CategoryEntity(); got != tt.want {
				t.Errorf("CategoryEntity() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecognize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "i want to buy an album" {
			t.Errorf("unexpected utterance %q", got)
		}
		if got := r.URL.Query().Get("subscription-key"); got != "abc" {
			t.Errorf("model url query lost: subscription-key = %q", got)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"query": "i want to buy an album",
			"topScoringIntent": map[string]any{
				"intent": "SearchBuy",
				"score":  0.97,
			},
			"entities": []map[string]any{
				{"entity": "album", "type": "category::Albums", "score": 0.85},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL + "?subscription-key=abc")
	result := client.Recognize(context.Background(), "i want to buy an album")

	if result.Intent != IntentSearchBuy {
		t.Errorf("Intent = %q, want %q", result.Intent, IntentSearchBuy)
	}
	if result.Score != 0.97 {
		t.Errorf("Score = %v, want 0.97", result.Score)
	}
	if got := result.CategoryEntity(); got != "Albums" {
		t.Errorf("CategoryEntity() = %q, want Albums", got)
	}
}

func TestRecognizeDegradesToNone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result := client.Recognize(context.Background(), "hello there")

	if result.Intent != IntentNone {
		t.Errorf("Intent = %q, want %q on recognizer failure", result.Intent, IntentNone)
	}
	if result.Query != "hello there" {
		t.Errorf("Query = %q, want original utterance", result.Query)
	}
}

func TestRecognizeUnconfigured(t *testing.T) {
	client := NewClient("")
	result := client.Recognize(context.Background(), "anything")
	if result.Intent != IntentNone {
		t.Errorf("Intent = %q, want %q without a model url", result.Intent, IntentNone)
	}
}

func TestRecognizeEmptyIntentFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"query": "mumble"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result := client.Recognize(context.Background(), "mumble")
	if result.Intent != IntentNone {
		t.Errorf("Intent = %q, want %q for blank classification", result.Intent, IntentNone)
	}
}
