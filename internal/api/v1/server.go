package apiv1

import (
	"github.com/gofiber/fiber/v2"
)

// Pong defines model for Pong.
type Pong struct {
	Ping string `json:"ping"`
}

// Route defines model for Route.
type Route struct {
	Path     string `json:"path"`
	ViewName string `json:"view_name"`
}

// RouteList defines model for RouteList.
type RouteList struct {
	Routes []Route `json:"routes"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Health check
	// (GET /ping)
	GetPing(c *fiber.Ctx) error
	// List page routes
	// (GET /routes)
	GetRoutes(c *fiber.Ctx) error
}

// RegisterHandlers binds the server handlers to the routes in openapi.yml.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	router.Get("/ping", si.GetPing)
	router.Get("/routes", si.GetRoutes)
}
