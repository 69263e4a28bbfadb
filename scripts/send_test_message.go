package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// Posts a sample message activity to the local webhook so the bot can be
// exercised without a messaging platform. Usage:
//
//	go run scripts/send_test_message.go "i want to buy an album"
func main() {
	text := "hello"
	if len(os.Args) > 1 {
		text = os.Args[1]
	}

	endpoint := "http://127.0.0.1:3978/api/messages"
	if v := os.Getenv("BOT_ENDPOINT"); v != "" {
		endpoint = v
	}

	activity := map[string]any{
		"type":         "message",
		"id":           fmt.Sprintf("test-%d", time.Now().UnixNano()),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"channelId":    "emulator",
		"serviceUrl":   "http://127.0.0.1:3978",
		"from":         map[string]any{"id": "test-user", "name": "Test User"},
		"recipient":    map[string]any{"id": "test-bot", "name": "ShopBot"},
		"conversation": map[string]any{"id": "test-conversation"},
		"text":         text,
	}

	payload, err := json.Marshal(activity)
	if err != nil {
		log.Fatal(err)
	}

	resp, err := http.Post(endpoint, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("status: %d\n%s\n", resp.StatusCode, string(body))
}
