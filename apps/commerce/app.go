package commerce

import (
	"context"
	"sync"
	"time"

	"github.com/getevo/evo/v2/lib/log"
	"github.com/getevo/evo/v2/lib/settings"
)

// App represents the commerce API application
type App struct{}

var (
	// DefaultClient is the process-wide commerce API client
	DefaultClient *Client

	snapshot     = EmptySnapshot()
	snapshotOnce sync.Once
)

// Register initializes the commerce client from settings
func (a App) Register() error {
	endpoint := settings.Get("COMMERCE.ENDPOINT", "https://api.marketcloud.it/v0").String()
	publicKey := settings.Get("COMMERCE.PUBLIC_KEY").String()
	secretKey := settings.Get("COMMERCE.SECRET_KEY").String()

	if publicKey == "" {
		log.Warning("COMMERCE.PUBLIC_KEY not configured - catalog lookups will fail")
	}

	DefaultClient = NewClient(endpoint, publicKey, secretKey)
	return nil
}

// Router sets up routes (none for commerce)
func (a App) Router() error {
	return nil
}

// WhenReady fetches the category snapshot, exactly once per process start
func (a App) WhenReady() error {
	snapshotOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		loaded, err := LoadSnapshot(ctx, DefaultClient)
		if err != nil {
			// No retry: purchase resolution fails closed until restart
			log.Warning("Category fetch failed, purchase flow degrades to invalid-only: %v", err)
		} else {
			log.Info("Category snapshot loaded: %d categories", loaded.Len())
		}
		snapshot = loaded
	})
	return nil
}

// Name returns the app name
func (a App) Name() string {
	return "commerce"
}

// Categories returns the immutable category snapshot
func Categories() *Snapshot {
	return snapshot
}
