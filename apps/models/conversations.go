package models

import (
	"time"

	"github.com/getevo/evo/v2/lib/db"
	"github.com/getevo/evo/v2/lib/log"
	"github.com/getevo/restify"
	"gorm.io/datatypes"
)

// Message direction constants
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Conversation mirrors one messaging-platform conversation. The platform owns the
// conversation identity; we keep a transcript row per conversation for auditing.
type Conversation struct {
	ID             uint      `gorm:"column:id;primaryKey" json:"id"`
	ConversationID string    `gorm:"column:conversation_id;size:255;uniqueIndex;not null" json:"conversation_id"`
	ChannelID      string    `gorm:"column:channel_id;size:50;index" json:"channel_id"`
	ServiceURL     string    `gorm:"column:service_url;size:512" json:"service_url"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	Messages []TranscriptMessage `gorm:"foreignKey:ConversationID;references:ID" json:"messages,omitempty"`

	restify.API
}

// TranscriptMessage is one inbound or outbound activity recorded verbatim.
type TranscriptMessage struct {
	ID             uint           `gorm:"column:id;primaryKey" json:"id"`
	ConversationID uint           `gorm:"column:conversation_id;not null;index;fk:conversations" json:"conversation_id"`
	ActivityID     string         `gorm:"column:activity_id;size:64;index" json:"activity_id"`
	Direction      string         `gorm:"column:direction;size:10;not null;check:direction IN ('inbound','outbound')" json:"direction"`
	Body           string         `gorm:"column:body;type:text" json:"body"`
	Attachments    datatypes.JSON `gorm:"column:attachments;type:json" json:"attachments,omitempty"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// Relationships
	Conversation Conversation `gorm:"foreignKey:ConversationID;references:ID" json:"conversation,omitempty"`

	restify.API
}

// FindOrCreateConversation returns the transcript row for a platform conversation id,
// creating it on first contact.
func FindOrCreateConversation(conversationID, channelID, serviceURL string) (*Conversation, error) {
	var conversation Conversation
	err := db.Where("conversation_id = ?", conversationID).First(&conversation).Error
	if err == nil {
		return &conversation, nil
	}

	conversation = Conversation{
		ConversationID: conversationID,
		ChannelID:      channelID,
		ServiceURL:     serviceURL,
	}
	if err := db.Create(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

// AppendTranscript stores one activity on the conversation transcript. Transcript
// failures never block message handling, they are logged and dropped.
func AppendTranscript(conversation *Conversation, activityID, direction, body string, attachments datatypes.JSON) {
	if conversation == nil {
		return
	}
	message := TranscriptMessage{
		ConversationID: conversation.ID,
		ActivityID:     activityID,
		Direction:      direction,
		Body:           body,
		Attachments:    attachments,
	}
	if err := db.Create(&message).Error; err != nil {
		log.Error("Failed to append transcript message: %v", err)
	}
}
