package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/pagesdemo/internal/pkg/cache"
)

const healthCheckTimeout = time.Second

// HandleHealth reports liveness. The cache is optional, so an unreachable
// cache is reported but does not fail the check.
func HandleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	cacheStatus := "ok"
	if err := cache.Ping(ctx); err != nil {
		if errors.Is(err, cache.ErrCacheDisabled) {
			cacheStatus = "disabled"
		} else {
			fiberlog.Warnf("[Health] Cache ping failed: %v", err)
			cacheStatus = "unreachable"
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
		"cache":  cacheStatus,
	})
}
