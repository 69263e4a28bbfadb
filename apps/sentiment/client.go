package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// document is one entry in the analysis request payload
type document struct {
	Language string `json:"language"`
	ID       string `json:"id"`
	Text     string `json:"text"`
}

// analyzeRequest is the sentiment endpoint's request body
type analyzeRequest struct {
	Documents []document `json:"documents"`
}

// analyzeResponse is the sentiment endpoint's response body
type analyzeResponse struct {
	Documents []struct {
		ID    string  `json:"id"`
		Score float64 `json:"score"`
	} `json:"documents"`
	Errors []struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Client calls the hosted sentiment-analysis endpoint
type Client struct {
	host       string
	path       string
	accessKey  string
	httpClient *http.Client
}

// NewClient creates a sentiment client. Calls go to https://{host}{path} with
// the subscription key header.
func NewClient(host, path, accessKey string) *Client {
	return &Client{
		host:      host,
		path:      path,
		accessKey: accessKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Score analyzes one piece of free text and returns its sentiment in [0,1].
// The document language is detected locally, falling back to English.
func (c *Client) Score(ctx context.Context, text string) (float64, error) {
	if c == nil || c.host == "" {
		return 0, fmt.Errorf("sentiment endpoint not configured")
	}

	payload := analyzeRequest{
		Documents: []document{
			{
				Language: DetectLanguage(text),
				ID:       "1",
				Text:     text,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal sentiment request: %w", err)
	}

	endpoint := "https://" + c.host + c.path
	if strings.Contains(c.host, "://") {
		// Host already carries a scheme (tests point at a local server)
		endpoint = strings.TrimRight(c.host, "/") + c.path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.accessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("sentiment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("sentiment API returned status %d: %s", resp.StatusCode, string(raw))
	}

	var decoded analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("failed to decode sentiment response: %w", err)
	}

	if len(decoded.Documents) == 0 {
		if len(decoded.Errors) > 0 {
			return 0, fmt.Errorf("sentiment API error: %s", decoded.Errors[0].Message)
		}
		return 0, fmt.Errorf("sentiment response carries no documents")
	}

	return decoded.Documents[0].Score, nil
}
