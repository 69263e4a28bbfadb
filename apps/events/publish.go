package events

import (
	"encoding/json"
	"time"

	"github.com/getevo/evo/v2/lib/log"
)

// Bot lifecycle subjects
const (
	SubjectMessageReceived = "bot.message.received"
	SubjectMessageSent     = "bot.message.sent"
	SubjectOrderConfirmed  = "bot.order.confirmed"
	SubjectDialogCancelled = "bot.dialog.cancelled"
)

// Event is the envelope published on every bot subject
type Event struct {
	Subject        string         `json:"subject"`
	ConversationID string         `json:"conversation_id"`
	Timestamp      string         `json:"timestamp"`
	Data           map[string]any `json:"data,omitempty"`
}

// Publish broadcasts a bot event. Publishing is fire-and-forget: a missing or broken
// NATS connection never fails the originating request.
func Publish(subject, conversationID string, data map[string]any) {
	if !IsConnected() {
		return
	}

	event := Event{
		Subject:        subject,
		ConversationID: conversationID,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Data:           data,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error("Failed to marshal bot event: %v", err)
		return
	}

	if err := GetConnection().Publish(subject, payload); err != nil {
		log.Warning("Failed to publish %s: %v", subject, err)
	}
}
