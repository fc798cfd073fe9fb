package handlers

import (
	"github.com/gofiber/fiber/v2"

	"catalog/internal/services"
)

// SeedHandler exposes the destructive seed workflow. It is meant for
// controlled environments only; callers are expected to gate access to it.
type SeedHandler struct {
	service *services.SeedService
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(service *services.SeedService) *SeedHandler {
	return &SeedHandler{
		service: service,
	}
}

// RegisterRoutes registers the seed route with the Fiber app.
func (h *SeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/seed", h.HandleRunSeed)
}

// HandleRunSeed wipes the catalog and repopulates it from the seed data.
func (h *SeedHandler) HandleRunSeed(c *fiber.Ctx) error {
	if err := h.service.Run(); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "seed executed",
		"products": h.service.Count(),
	})
}
