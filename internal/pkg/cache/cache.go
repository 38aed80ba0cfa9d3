package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	redisstorage "github.com/gofiber/storage/redis"
	"github.com/redis/go-redis/v9"

	"github.com/ManuelReschke/pagesdemo/internal/pkg/config"
)

// pageCacheDB keeps cached pages apart from anything else on the server
const pageCacheDB = 1

const pingTimeout = 2 * time.Second

var ErrCacheDisabled = errors.New("cache disabled")

var (
	client  *redis.Client
	storage fiber.Storage
)

// SetupCache connects to the redis cache server when one is configured.
// An unreachable server is logged and the page cache falls back to memory;
// the client is kept so health checks report the cache as unreachable.
func SetupCache(cfg *config.Config) {
	Close()
	if !cfg.CacheEnabled() {
		fiberlog.Info("[Cache] No CACHE_HOST configured, using in-memory page cache")
		return
	}

	addr := fmt.Sprintf("%s:%s", cfg.CacheHost, cfg.CachePort)
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.CachePassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	client = c
	pong, err := c.Ping(ctx).Result()
	if err != nil {
		fiberlog.Warnf("[Cache] Could not connect to cache at %s, using in-memory page cache: %v", addr, err)
		return
	}
	fiberlog.Infof("[Cache] Successfully connected to cache: %s", pong)

	port, err := strconv.Atoi(cfg.CachePort)
	if err != nil {
		fiberlog.Errorf("[Cache] Invalid CACHE_PORT %q: %v", cfg.CachePort, err)
		return
	}
	storage = redisstorage.New(redisstorage.Config{
		Host:     cfg.CacheHost,
		Port:     port,
		Password: cfg.CachePassword,
		Database: pageCacheDB,
		Reset:    false,
	})
}

// GetClient returns the redis client, or nil when no cache is configured
func GetClient() *redis.Client {
	return client
}

// PageStorage returns the store for cached pages. A nil store makes the
// fiber cache middleware keep entries in memory.
func PageStorage() fiber.Storage {
	return storage
}

// Ping checks the cache server
func Ping(ctx context.Context) error {
	if client == nil {
		return ErrCacheDisabled
	}
	return client.Ping(ctx).Err()
}

// Close releases the cache connections
func Close() {
	if storage != nil {
		if err := storage.Close(); err != nil {
			fiberlog.Warnf("[Cache] Failed to close page storage: %v", err)
		}
		storage = nil
	}
	if client != nil {
		if err := client.Close(); err != nil {
			fiberlog.Warnf("[Cache] Failed to close client: %v", err)
		}
		client = nil
	}
}
