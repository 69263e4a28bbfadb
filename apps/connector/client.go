package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/getevo/evo/v2/lib/log"
)

// Client posts outbound activities to the messaging platform's connector service
type Client struct {
	credentials Credentials
	httpClient  *http.Client
}

// NewClient creates a connector client with an explicit timeout
func NewClient(credentials Credentials) *Client {
	return &Client{
		credentials: credentials,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SendActivity delivers one activity to its conversation. The target endpoint is
// {serviceUrl}/v3/conversations/{conversationId}/activities per the platform contract.
func (c *Client) SendActivity(ctx context.Context, activity Activity) error {
	if activity.ServiceURL == "" {
		return fmt.Errorf("activity has no service url")
	}
	if activity.Conversation.ID == "" {
		return fmt.Errorf("activity has no conversation id")
	}

	endpoint := fmt.Sprintf("%s/v3/conversations/%s/activities",
		strings.TrimRight(activity.ServiceURL, "/"),
		url.PathEscape(activity.Conversation.ID))

	payload, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("failed to marshal activity: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ShopBot-Connector/1.0")

	if c.credentials.Enabled() {
		token, err := c.credentials.OutboundToken()
		if err != nil {
			return fmt.Errorf("failed to mint outbound token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send activity: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Warning("Connector rejected activity %s: status %d body %s", activity.ID, resp.StatusCode, string(body))
		return fmt.Errorf("connector returned status %d", resp.StatusCode)
	}

	return nil
}

// SendAll delivers activities in order, stopping on the first failure
func (c *Client) SendAll(ctx context.Context, activities []Activity) error {
	for i := range activities {
		if err := c.SendActivity(ctx, activities[i]); err != nil {
			return err
		}
	}
	return nil
}
