package redisdb

import (
	"context"
	"strings"
	"time"

	"github.com/getevo/evo/v2/lib/log"
	"github.com/getevo/evo/v2/lib/settings"
	"github.com/redis/go-redis/v9"
)

// Client is the universal Redis client that works with both single nodes and clusters.
// It backs the dialog-state store; when nil, dialog state is kept in process memory.
var Client redis.UniversalClient

// RedisConfig holds the Redis configuration
type RedisConfig struct {
	Addresses    []string      `json:"addresses"`
	Password     string        `json:"password"`
	DB           int           `json:"db"`
	MaxRetries   int           `json:"max_retries"`
	DialTimeout  time.Duration `json:"dial_timeout"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	PoolSize     int           `json:"pool_size"`
	MinIdleConns int           `json:"min_idle_conns"`
}

// Initialize creates a new Redis universal client connection
//
// Example config.yml:
//
//	REDIS:
//	  ADDRESS: "localhost:6379"
//	  PASSWORD: ""
//	  DB: 0
func Initialize() error {
	config := loadConfig()

	// Skip initialization if no addresses configured
	if len(config.Addresses) == 0 {
		log.Warning("Redis not configured. Dialog state will be kept in process memory.")
		return nil
	}

	opts := &redis.UniversalOptions{
		Addrs:        config.Addresses,
		Password:     config.Password,
		DB:           config.DB,
		MaxRetries:   config.MaxRetries,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		PoolSize:     config.PoolSize,
		MinIdleConns: config.MinIdleConns,
	}

	Client = redis.NewUniversalClient(opts)

	// Test connection
	testCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(testCtx).Err(); err != nil {
		log.Warning("Redis connection failed: %v. Dialog state will be kept in process memory.", err)
		Client = nil
		return nil // Don't fail startup if Redis is unavailable
	}

	log.Info("Redis connected (%s)", strings.Join(config.Addresses, ","))
	return nil
}

// loadConfig reads Redis configuration from settings
func loadConfig() RedisConfig {
	config := RedisConfig{
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	}

	addr := settings.Get("REDIS.ADDRESS").String()
	if addr != "" {
		for _, part := range strings.Split(addr, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				config.Addresses = append(config.Addresses, part)
			}
		}
	}

	config.Password = settings.Get("REDIS.PASSWORD").String()
	config.DB = int(settings.Get("REDIS.DB", 0).Int64())

	return config
}

// Close shuts down the Redis connection
func Close() error {
	if Client == nil {
		return nil
	}
	return Client.Close()
}
