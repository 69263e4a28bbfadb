package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Known intents produced by the hosted recognizer
const (
	IntentSearchBuy = "SearchBuy"
	IntentNone      = "None"
)

// Entity is a structured value the recognizer extracted from the utterance.
// Category entities carry a composite type of the form "category::Albums".
type Entity struct {
	Value string  `json:"entity"`
	Type  string  `json:"type"`
	Score float64 `json:"score"`
}

// Result is the recognizer's classification of one utterance
type Result struct {
	Query    string   `json:"query"`
	Intent   string   `json:"intent"`
	Score    float64  `json:"score"`
	Entities []Entity `json:"entities"`
}

// CategoryEntity returns the category carried by the first entity, if any.
// The entity type is split on "::" and the second segment is the category name.
func (r *Result) CategoryEntity() string {
	if r == nil || len(r.Entities) == 0 {
		return ""
	}
	parts := strings.SplitN(r.Entities[0].Type, "::", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// recognizerResponse is the hosted service's wire format
type recognizerResponse struct {
	Query            string `json:"query"`
	TopScoringIntent struct {
		Intent string  `json:"intent"`
		Score  float64 `json:"score"`
	} `json:"topScoringIntent"`
	Entities []Entity `json:"entities"`
}

// Client queries the hosted intent recognizer
type Client struct {
	modelURL   string
	httpClient *http.Client
}

// NewClient creates a recognizer client. The model URL already carries the
// subscription key and verbosity flags; the utterance is appended as q=.
func NewClient(modelURL string) *Client {
	return &Client{
		modelURL: modelURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Recognize classifies one utterance. Any transport or decoding failure degrades
// to the None intent so the bot falls back to free chat instead of erroring out.
func (c *Client) Recognize(ctx context.Context, text string) *Result {
	fallback := &Result{Query: text, Intent: IntentNone}
	if c == nil || c.modelURL == "" {
		return fallback
	}

	result, err := c.recognize(ctx, text)
	if err != nil {
		return fallback
	}
	return result
}

func (c *Client) recognize(ctx context.Context, text string) (*Result, error) {
	endpoint := c.modelURL
	if strings.Contains(endpoint, "?") {
		endpoint += "&q=" + url.QueryEscape(text)
	} else {
		endpoint += "?q=" + url.QueryEscape(text)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recognizer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("recognizer returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded recognizerResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode recognizer response: %w", err)
	}

	intent := decoded.TopScoringIntent.Intent
	if intent == "" {
		intent = IntentNone
	}

	return &Result{
		Query:    decoded.Query,
		Intent:   intent,
		Score:    decoded.TopScoringIntent.Score,
		Entities: decoded.Entities,
	}, nil
}
