package events

import (
	"sync"
	"time"

	"github.com/getevo/evo/v2/lib/log"
	"github.com/nats-io/nats.go"
)

var (
	nc *nats.Conn
	mu sync.RWMutex
)

// NATSConfig holds NATS connection configuration
type NATSConfig struct {
	URL            string        `yaml:"URL"`
	MaxReconnects  int           `yaml:"MAX_RECONNECTS"`
	ReconnectWait  time.Duration `yaml:"RECONNECT_WAIT"`
	PingInterval   time.Duration `yaml:"PING_INTERVAL"`
	MaxPingsOut    int           `yaml:"MAX_PINGS_OUT"`
	AllowReconnect bool          `yaml:"ALLOW_RECONNECT"`
	DrainTimeout   time.Duration `yaml:"DRAIN_TIMEOUT"`
}

// Connect establishes a fault-tolerant connection to NATS
func Connect(config NATSConfig) error {
	opts := []nats.Option{
		nats.Name("shopbot-backend"),
		nats.MaxReconnects(config.MaxReconnects),
		nats.ReconnectWait(config.ReconnectWait),
		nats.PingInterval(config.PingInterval),
		nats.MaxPingsOutstanding(config.MaxPingsOut),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.Warning("NATS disconnected: %v", err)
			} else {
				log.Warning("NATS disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconnected to %s", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			if nc.LastError() != nil {
				log.Error("NATS connection closed: %v", nc.LastError())
			} else {
				log.Info("NATS connection closed")
			}
		}),
	}

	if !config.AllowReconnect {
		opts = append(opts, nats.NoReconnect())
	}

	conn, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return err
	}

	mu.Lock()
	nc = conn
	mu.Unlock()

	log.Info("Connected to NATS at %s", conn.ConnectedUrl())
	return nil
}

// GetConnection returns the active NATS connection, or nil when not connected
func GetConnection() *nats.Conn {
	mu.RLock()
	defer mu.RUnlock()
	return nc
}

// IsConnected reports whether the NATS connection is usable
func IsConnected() bool {
	conn := GetConnection()
	return conn != nil && conn.IsConnected()
}

// Close drains and closes the NATS connection
func Close(drainTimeout time.Duration) error {
	conn := GetConnection()
	if conn == nil {
		return nil
	}

	if err := conn.Drain(); err != nil {
		log.Warning("Error draining NATS connection: %v", err)
		conn.Close()
		return err
	}

	select {
	case <-time.After(drainTimeout):
		log.Warning("Drain timeout exceeded, forcing close")
		conn.Close()
	case <-time.After(100 * time.Millisecond):
	}

	return nil
}
