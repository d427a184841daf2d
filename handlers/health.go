package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unishare/api/database"
	"github.com/unishare/api/utils/response"
)

// HealthHandler reports service and database liveness
type HealthHandler struct {
	store database.Storage
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store database.Storage) *HealthHandler {
	return &HealthHandler{
		store: store,
	}
}

// Check handles GET /api/health
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := h.store.HealthCheck(); err != nil {
		dbStatus = "unreachable"
	}

	payload := fiber.Map{
		"status":   "ok",
		"database": dbStatus,
	}

	if dbStatus != "ok" {
		payload["status"] = "degraded"
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"data":    payload,
		})
	}

	return response.Success(c, payload)
}
