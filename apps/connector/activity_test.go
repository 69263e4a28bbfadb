package connector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testInbound() *Activity {
	return &Activity{
		Type:         ActivityTypeMessage,
		ID:           "activity-1",
		ChannelID:    "emulator",
		ServiceURL:   "https://smba.example.com",
		From:         ChannelAccount{ID: "user-1", Name: "Alex"},
		Recipient:    ChannelAccount{ID: "bot-1", Name: "ShopBot"},
		Conversation: ConversationAccount{ID: "conv-1"},
		Text:         "hello",
	}
}

func TestReplyAddressing(t *testing.T) {
	inbound := testInbound()
	reply := Reply(inbound)

	if reply.Type != ActivityTypeMessage {
		t.Errorf("Type = %q, want message", reply.Type)
	}
	if reply.From != inbound.Recipient {
		t.Errorf("From = %+v, want the bot account", reply.From)
	}
	if reply.Recipient != inbound.From {
		t.Errorf("Recipient = %+v, want the user account", reply.Recipient)
	}
	if reply.Conversation != inbound.Conversation {
		t.Errorf("Conversation = %+v, want the inbound conversation", reply.Conversation)
	}
	if reply.ServiceURL != inbound.ServiceURL {
		t.Errorf("ServiceURL = %q, want %q", reply.ServiceURL, inbound.ServiceURL)
	}
	if reply.ReplyToID != inbound.ID {
		t.Errorf("ReplyToID = %q, want %q", reply.ReplyToID, inbound.ID)
	}
	if reply.ID == "" || reply.Timestamp == "" {
		t.Error("reply must carry its own id and timestamp")
	}
}

func TestChoicePrompt(t *testing.T) {
	inbound := testInbound()
	prompt := ChoicePrompt(inbound, "Pick one", []string{"Albums", "Vinyls"})

	if prompt.Text != "Pick one" {
		t.Errorf("Text = %q", prompt.Text)
	}
	if prompt.SuggestedActions == nil {
		t.Fatal("prompt carries no suggested actions")
	}
	actions := prompt.SuggestedActions.Actions
	if len(actions) != 2 {
		t.Fatalf("got %d actions, want 2", len(actions))
	}
	for i, want := range []string{"Albums", "Vinyls"} {
		if actions[i].Type != "imBack" {
			t.Errorf("action %d type = %q, want imBack", i, actions[i].Type)
		}
		if actions[i].Title != want || actions[i].Value != want {
			t.Errorf("action %d = %+v, want title and value %q", i, actions[i], want)
		}
	}
}

func TestCarouselLayout(t *testing.T) {
	inbound := testInbound()
	attachments := []Attachment{
		{ContentType: ContentTypeHeroCard, Content: HeroCard{Title: "AM"}},
		{ContentType: ContentTypeHeroCard, Content: HeroCard{Title: "Humbug"}},
	}
	carousel := Carousel(inbound, attachments)

	if carousel.AttachmentLayout != LayoutCarousel {
		t.Errorf("AttachmentLayout = %q, want carousel", carousel.AttachmentLayout)
	}
	if len(carousel.Attachments) != 2 {
		t.Errorf("got %d attachments, want 2", len(carousel.Attachments))
	}
}

func TestTypingIndicator(t *testing.T) {
	typing := Typing(testInbound())
	if typing.Type != ActivityTypeTyping {
		t.Errorf("Type = %q, want typing", typing.Type)
	}
	if typing.Text != "" {
		t.Errorf("typing indicator carries text %q", typing.Text)
	}
}

func TestActivityWireFormat(t *testing.T) {
	reply := TextMessage(testInbound(), "hi")
	raw, err := json.Marshal(reply)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	// The platform contract uses camelCase field names
	for _, field := range []string{"type", "channelId", "serviceUrl", "conversation", "replyToId"} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("wire format is missing field %q", field)
		}
	}
}

func TestClientSendActivity(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	inbound := testInbound()
	inbound.ServiceURL = server.URL
	activity := TextMessage(inbound, "hi")

	client := NewClient(Credentials{AppID: "bot-1", AppPassword: "secret"})
	if err := client.SendActivity(context.Background(), activity); err != nil {
		t.Fatalf("SendActivity() error = %v", err)
	}

	if gotPath != "/v3/conversations/conv-1/activities" {
		t.Errorf("posted to %q", gotPath)
	}
	if gotAuth == "" {
		t.Error("request carries no bearer token")
	}
}

func TestClientSendActivityRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	inbound := testInbound()
	inbound.ServiceURL = server.URL
	activity := TextMessage(inbound, "hi")

	client := NewClient(Credentials{})
	if err := client.SendActivity(context.Background(), activity); err == nil {
		t.Fatal("expected error on rejected delivery")
	}
}

func TestClientSendActivityMissingTarget(t *testing.T) {
	client := NewClient(Credentials{})

	activity := Activity{Type: ActivityTypeMessage, Conversation: ConversationAccount{ID: "conv-1"}}
	if err := client.SendActivity(context.Background(), activity); err == nil {
		t.Error("expected error without a service url")
	}

	activity = Activity{Type: ActivityTypeMessage, ServiceURL: "https://example.com"}
	if err := client.SendActivity(context.Background(), activity); err == nil {
		t.Error("expected error without a conversation id")
	}
}
