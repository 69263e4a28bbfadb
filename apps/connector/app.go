package connector

import (
	"github.com/getevo/evo/v2/lib/log"
)

// App represents the messaging connector application
type App struct{}

var (
	// DefaultCredentials is loaded at registration and shared by the bot app
	DefaultCredentials Credentials

	// DefaultClient posts outbound activities on behalf of the bot
	DefaultClient *Client
)

// Register loads credentials and prepares the outbound client
func (a App) Register() error {
	DefaultCredentials = LoadCredentials()
	DefaultClient = NewClient(DefaultCredentials)

	if !DefaultCredentials.Enabled() {
		log.Warning("BOT.APP_PASSWORD not configured - inbound token verification disabled")
	}
	return nil
}

// Router sets up connector routes (none; the bot app owns the webhook endpoint)
func (a App) Router() error {
	return nil
}

// WhenReady is called when the app is ready
func (a App) WhenReady() error {
	return nil
}

// Name returns the app name
func (a App) Name() string {
	return "connector"
}
