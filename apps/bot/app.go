package bot

import (
	"github.com/getevo/evo/v2"
	"github.com/getevo/evo/v2/lib/log"
)

// App represents the Bot application
type App struct{}

// Register initializes the Bot app
func (a App) Register() error {
	log.Info("Registering bot app...")
	return nil
}

// Router sets up the Bot API routes
func (a App) Router() error {
	controller := &Controller{}

	// Webhook endpoint the messaging platform delivers activities to
	evo.Post("/api/messages", controller.Messages)

	// Admin transcript browsing - protected by ADMIN.ACCESS_TOKEN
	evo.Use("/api/admin", AdminAuthMiddleware)
	evo.Get("/api/admin/conversations", controller.ListConversations)
	evo.Get("/api/admin/conversations/:id", controller.GetConversation)
	evo.Get("/api/admin/receipts", controller.ListReceipts)

	return nil
}

// WhenReady is called when the app is ready
func (a App) WhenReady() error {
	return nil
}

// Name returns the app name
func (a App) Name() string {
	return "bot"
}
