package nlu

import (
	"github.com/getevo/evo/v2/lib/log"
	"github.com/getevo/evo/v2/lib/settings"
)

// App represents the intent recognition application
type App struct{}

// DefaultClient is the process-wide recognizer client
var DefaultClient *Client

// Register initializes the recognizer client from settings
func (a App) Register() error {
	modelURL := settings.Get("NLU.MODEL_URL").String()
	if modelURL == "" {
		log.Warning("NLU.MODEL_URL not configured - every utterance will fall back to the None intent")
	}
	DefaultClient = NewClient(modelURL)
	return nil
}

// Router sets up routes (none for nlu)
func (a App) Router() error {
	return nil
}

// WhenReady is called when the app is ready
func (a App) WhenReady() error {
	return nil
}

// Name returns the app name
func (a App) Name() string {
	return "nlu"
}
