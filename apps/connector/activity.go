package connector

import (
	"time"

	"github.com/google/uuid"
)

// Activity types
const (
	ActivityTypeMessage = "message"
	ActivityTypeTyping  = "typing"
)

// Attachment content types
const (
	ContentTypeHeroCard      = "application/vnd.microsoft.card.hero"
	ContentTypeVideoCard     = "application/vnd.microsoft.card.video"
	ContentTypeAnimationCard = "application/vnd.microsoft.card.animation"
)

// Attachment layouts
const (
	LayoutCarousel = "carousel"
	LayoutList     = "list"
)

// ChannelAccount identifies a user or bot on the messaging platform
type ChannelAccount struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// ConversationAccount identifies the conversation an activity belongs to
type ConversationAccount struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Activity is the messaging platform's wire unit, inbound and outbound
type Activity struct {
	Type             string              `json:"type" validate:"required"`
	ID               string              `json:"id,omitempty"`
	Timestamp        string              `json:"timestamp,omitempty"`
	ChannelID        string              `json:"channelId,omitempty"`
	ServiceURL       string              `json:"serviceUrl,omitempty"`
	From             ChannelAccount      `json:"from"`
	Recipient        ChannelAccount      `json:"recipient"`
	Conversation     ConversationAccount `json:"conversation" validate:"required"`
	Text             string              `json:"text,omitempty"`
	AttachmentLayout string              `json:"attachmentLayout,omitempty"`
	Attachments      []Attachment        `json:"attachments,omitempty"`
	SuggestedActions *SuggestedActions   `json:"suggestedActions,omitempty"`
	ReplyToID        string              `json:"replyToId,omitempty"`
}

// Attachment carries a rich card payload
type Attachment struct {
	ContentType string `json:"contentType"`
	Content     any    `json:"content"`
}

// SuggestedActions renders a row of tappable buttons under a message
type SuggestedActions struct {
	Actions []CardAction `json:"actions"`
}

// CardAction is a button on a card or a suggested action
type CardAction struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Value string `json:"value"`
}

// CardImage is an image slot on a card
type CardImage struct {
	URL string `json:"url"`
}

// MediaURL is a playable media slot on a media card
type MediaURL struct {
	URL string `json:"url"`
}

// HeroCard is a large card with one image, text and optional buttons
type HeroCard struct {
	Title    string       `json:"title,omitempty"`
	Subtitle string       `json:"subtitle,omitempty"`
	Text     string       `json:"text,omitempty"`
	Images   []CardImage  `json:"images,omitempty"`
	Buttons  []CardAction `json:"buttons,omitempty"`
}

// VideoCard embeds a playable video with a poster image
type VideoCard struct {
	Title    string       `json:"title,omitempty"`
	Subtitle string       `json:"subtitle,omitempty"`
	Text     string       `json:"text,omitempty"`
	Image    *CardImage   `json:"image,omitempty"`
	Media    []MediaURL   `json:"media,omitempty"`
	Buttons  []CardAction `json:"buttons,omitempty"`
}

// AnimationCard embeds a looping animation (gif) with a poster image
type AnimationCard struct {
	Title    string     `json:"title,omitempty"`
	Subtitle string     `json:"subtitle,omitempty"`
	Image    *CardImage `json:"image,omitempty"`
	Media    []MediaURL `json:"media,omitempty"`
}

// Reply builds an outbound activity addressed back to the sender of inbound
func Reply(inbound *Activity) Activity {
	return Activity{
		Type:         ActivityTypeMessage,
		ID:           uuid.New().String(),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		ChannelID:    inbound.ChannelID,
		ServiceURL:   inbound.ServiceURL,
		From:         inbound.Recipient,
		Recipient:    inbound.From,
		Conversation: inbound.Conversation,
		ReplyToID:    inbound.ID,
	}
}

// TextMessage builds a plain text reply
func TextMessage(inbound *Activity, text string) Activity {
	activity := Reply(inbound)
	activity.Text = text
	return activity
}

// ChoicePrompt builds a text reply with one suggested-action button per option
func ChoicePrompt(inbound *Activity, text string, options []string) Activity {
	activity := Reply(inbound)
	activity.Text = text

	actions := make([]CardAction, 0, len(options))
	for _, option := range options {
		actions = append(actions, CardAction{
			Type:  "imBack",
			Title: option,
			Value: option,
		})
	}
	activity.SuggestedActions = &SuggestedActions{Actions: actions}
	return activity
}

// Carousel builds a reply carrying the attachments in a horizontally scrollable layout
func Carousel(inbound *Activity, attachments []Attachment) Activity {
	activity := Reply(inbound)
	activity.AttachmentLayout = LayoutCarousel
	activity.Attachments = attachments
	return activity
}

// CardMessage builds a reply carrying a single attachment
func CardMessage(inbound *Activity, attachment Attachment) Activity {
	activity := Reply(inbound)
	activity.Attachments = []Attachment{attachment}
	return activity
}

// Typing builds a typing indicator reply
func Typing(inbound *Activity) Activity {
	activity := Reply(inbound)
	activity.Type = ActivityTypeTyping
	return activity
}
