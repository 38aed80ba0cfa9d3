package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	fibercache "github.com/gofiber/fiber/v2/middleware/cache"
)

// PageCache caches rendered pages for ttl in storage, or in memory when
// storage is nil. A zero ttl disables caching. Response headers are not
// stored, so per-request headers like X-Request-ID stay fresh on a hit;
// headers that belong to the page must be set before this handler.
func PageCache(ttl time.Duration, storage fiber.Storage) fiber.Handler {
	if ttl <= 0 {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return fibercache.New(fibercache.Config{
		Expiration:   ttl,
		CacheHeader:  "X-Cache",
		CacheControl: true,
		Storage:      storage,
	})
}
