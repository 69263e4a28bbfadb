package sentiment

import (
	"github.com/getevo/evo/v2/lib/log"
	"github.com/getevo/evo/v2/lib/settings"
)

// App represents the sentiment analysis application
type App struct{}

// DefaultClient is the process-wide sentiment client
var DefaultClient *Client

// Register initializes the sentiment client from settings
func (a App) Register() error {
	host := settings.Get("SENTIMENT.HOST").String()
	path := settings.Get("SENTIMENT.PATH", "/text/analytics/v2.0/sentiment").String()
	accessKey := settings.Get("SENTIMENT.ACCESS_KEY").String()

	if host == "" {
		log.Warning("SENTIMENT.HOST not configured - free chat replies will use the fallback line")
	}

	DefaultClient = NewClient(host, path, accessKey)
	return nil
}

// Router sets up routes (none for sentiment)
func (a App) Router() error {
	return nil
}

// WhenReady is called when the app is ready
func (a App) WhenReady() error {
	return nil
}

// Name returns the app name
func (a App) Name() string {
	return "sentiment"
}
