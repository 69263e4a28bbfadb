package bot

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/getevo/evo/v2"
	"github.com/getevo/evo/v2/lib/db"
	"github.com/getevo/evo/v2/lib/log"
	"github.com/getevo/pagination"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/marketchat/shopbot-backend/apps/connector"
	"github.com/marketchat/shopbot-backend/apps/dialog"
	"github.com/marketchat/shopbot-backend/apps/events"
	"github.com/marketchat/shopbot-backend/apps/models"
	"github.com/marketchat/shopbot-backend/apps/nlu"
	"github.com/marketchat/shopbot-backend/lib/response"
	"gorm.io/datatypes"
)

// Controller handles webhook and admin endpoints
type Controller struct{}

var validate = validator.New()

// handleTimeout bounds one webhook turn end to end, recognizer and commerce
// calls included.
const handleTimeout = 30 * time.Second

// Messages receives one activity from the messaging platform, runs it through
// the dialog engine and delivers the replies back over the connector.
func (c Controller) Messages(request *evo.Request) any {
	if err := connector.DefaultCredentials.VerifyAuthHeader(request.Header("Authorization")); err != nil {
		log.Warning("Rejected webhook call from %s: %v", request.IP(), err)
		return response.Error(response.ErrInvalidToken)
	}

	var activity connector.Activity
	if err := request.BodyParser(&activity); err != nil {
		return response.Error(response.ErrInvalidActivity)
	}
	if err := validate.Struct(activity); err != nil {
		return response.Error(response.ErrInvalidActivity)
	}

	// Typing indicators, membership updates and the like are acknowledged
	// without entering the dialog engine.
	if activity.Type != connector.ActivityTypeMessage {
		return response.Message("ignored")
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	conversation, err := models.FindOrCreateConversation(
		activity.Conversation.ID, activity.ChannelID, activity.ServiceURL)
	if err != nil {
		// Transcripts are an audit trail, not a dependency of the dialog
		log.Error("Failed to load conversation %s: %v", activity.Conversation.ID, err)
	}
	models.AppendTranscript(conversation, activity.ID, models.DirectionInbound, activity.Text, nil)
	events.Publish(events.SubjectMessageReceived, activity.Conversation.ID, map[string]any{
		"channel_id": activity.ChannelID,
		"text":       activity.Text,
	})

	intent := nlu.DefaultClient.Recognize(ctx, activity.Text)

	outcome, err := dialog.DefaultEngine.Handle(ctx, &activity, intent)
	if err != nil {
		log.Error("Dialog engine failed for %s: %v", activity.Conversation.ID, err)
		return response.Error(response.ErrInternalError)
	}

	if err := connector.DefaultClient.SendAll(ctx, outcome.Replies); err != nil {
		log.Error("Failed to deliver replies for %s: %v", activity.Conversation.ID, err)
		return response.Error(response.AppError{
			Code:       response.ErrorCodeUpstreamError,
			Message:    "Failed to deliver replies",
			StatusCode: http.StatusBadGateway,
		})
	}

	c.recordOutbound(conversation, activity.Conversation.ID, outcome.Replies)

	if outcome.ConfirmedOrder != nil {
		c.recordOrder(activity.Conversation.ID, outcome)
	}
	if outcome.Cancelled {
		events.Publish(events.SubjectDialogCancelled, activity.Conversation.ID, nil)
	}

	return response.OK(map[string]any{
		"replies": len(outcome.Replies),
	})
}

// recordOutbound appends delivered replies to the transcript and publishes the
// sent events. Typing indicators are delivered but not recorded.
func (c Controller) recordOutbound(conversation *models.Conversation, conversationID string, replies []connector.Activity) {
	for i := range replies {
		reply := &replies[i]
		if reply.Type != connector.ActivityTypeMessage {
			continue
		}

		var attachments datatypes.JSON
		if len(reply.Attachments) > 0 {
			if raw, err := json.Marshal(reply.Attachments); err == nil {
				attachments = raw
			}
		}
		models.AppendTranscript(conversation, reply.ID, models.DirectionOutbound, reply.Text, attachments)

		events.Publish(events.SubjectMessageSent, conversationID, map[string]any{
			"activity_id": reply.ID,
			"text":        reply.Text,
			"attachments": len(reply.Attachments),
		})
	}
}

// recordOrder writes the bot-side receipt for a confirmed purchase
func (c Controller) recordOrder(conversationID string, outcome *dialog.Outcome) {
	product := outcome.ConfirmedOrder
	receipt := models.OrderReceipt{
		ReceiptNumber:  uuid.New(),
		ConversationID: conversationID,
		ProductID:      product.ID,
		ProductName:    product.Name,
		DisplayPrice:   product.DisplayPrice,
	}
	if err := db.Create(&receipt).Error; err != nil {
		log.Error("Failed to write order receipt for %s: %v", conversationID, err)
		return
	}

	events.Publish(events.SubjectOrderConfirmed, conversationID, map[string]any{
		"receipt_number": receipt.ReceiptNumber.String(),
		"product_id":     product.ID,
		"product_name":   product.Name,
		"display_price":  product.DisplayPrice,
	})
}

// ListConversations returns transcript conversations, newest first
func (c Controller) ListConversations(request *evo.Request) any {
	var conversations []models.Conversation

	query := db.Model(&models.Conversation{})
	if channel := request.Query("channel_id").String(); channel != "" {
		query = query.Where("channel_id = ?", channel)
	}
	query = query.Order("updated_at DESC")

	p, err := pagination.New(query, request, &conversations, pagination.Options{MaxSize: 100})
	if err != nil {
		return response.Error(response.ErrInternalError)
	}

	return response.OKWithMeta(conversations, &response.Meta{
		Page:       p.CurrentPage,
		Limit:      p.Size,
		Total:      int64(p.Records),
		TotalPages: p.Pages,
	})
}

// GetConversation returns one conversation with its full transcript
func (c Controller) GetConversation(request *evo.Request) any {
	conversationID := request.Param("id").String()
	if conversationID == "" {
		return response.Error(response.ErrInvalidInput)
	}

	var conversation models.Conversation
	err := db.Where("conversation_id = ?", conversationID).
		Preload("Messages").
		First(&conversation).Error
	if err != nil {
		return response.Error(response.ErrConversationNotFound)
	}

	return response.OK(conversation)
}

// ListReceipts returns confirmed orders, newest first
func (c Controller) ListReceipts(request *evo.Request) any {
	var receipts []models.OrderReceipt

	query := db.Model(&models.OrderReceipt{}).Order("created_at DESC")
	if conversationID := request.Query("conversation_id").String(); conversationID != "" {
		query = query.Where("conversation_id = ?", conversationID)
	}

	p, err := pagination.New(query, request, &receipts, pagination.Options{MaxSize: 100})
	if err != nil {
		return response.Error(response.ErrInternalError)
	}

	return response.OKWithMeta(receipts, &response.Meta{
		Page:       p.CurrentPage,
		Limit:      p.Size,
		Total:      int64(p.Records),
		TotalPages: p.Pages,
	})
}
