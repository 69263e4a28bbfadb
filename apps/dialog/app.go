package dialog

import (
	"time"

	"github.com/getevo/evo/v2/lib/log"
	"github.com/getevo/evo/v2/lib/settings"
	"github.com/marketchat/shopbot-backend/apps/commerce"
	"github.com/marketchat/shopbot-backend/apps/redisdb"
	"github.com/marketchat/shopbot-backend/apps/sentiment"
)

// App represents the dialog engine application
type App struct{}

// DefaultEngine is the process-wide dialog engine, built once the redis and
// commerce apps have finished their own initialization.
var DefaultEngine *Engine

// Register initializes the dialog app
func (a App) Register() error {
	return nil
}

// Router sets up routes (none; the bot app owns the webhook endpoint)
func (a App) Router() error {
	return nil
}

// WhenReady wires the engine against the shared clients and the state store
func (a App) WhenReady() error {
	ttl, err := settings.Get("DIALOG.TTL", "30m").Duration()
	if err != nil || ttl <= 0 {
		ttl = 30 * time.Minute
	}

	var store Store
	if redisdb.Client != nil {
		store = NewRedisStore(redisdb.Client, ttl)
	} else {
		store = NewMemoryStore()
		log.Warning("Dialog state store running in process memory")
	}

	DefaultEngine = NewEngine(
		store,
		func() Catalog { return commerce.Categories() },
		commerce.DefaultClient,
		sentiment.DefaultClient,
	)

	log.Info("Dialog engine ready (state ttl %s)", ttl)
	return nil
}

// Name returns the app name
func (a App) Name() string {
	return "dialog"
}
