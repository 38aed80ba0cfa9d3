package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/pagesdemo/internal/pkg/pages"
)

// APIServer implements the ServerInterface
type APIServer struct {
	table *pages.Table
}

// NewAPIServer creates a new API server instance over the page route table
func NewAPIServer(table *pages.Table) *APIServer {
	return &APIServer{table: table}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetRoutes lists the registered page routes in registration order
func (s *APIServer) GetRoutes(c *fiber.Ctx) error {
	routes := s.table.Routes()
	response := RouteList{Routes: make([]Route, 0, len(routes))}
	for _, r := range routes {
		response.Routes = append(response.Routes, Route{Path: r.Path, ViewName: r.ViewName})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
