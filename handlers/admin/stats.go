package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unishare/api/services"
	"github.com/unishare/api/utils/response"
	"gorm.io/gorm"
)

// StatsHandler exposes usage statistics for the admin dashboard
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{
		statsService: services.NewStatsService(db),
	}
}

// Overview handles GET /api/admin/stats/overview
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.statsService.GetOverview(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch statistics")
	}
	return response.Success(c, overview)
}

// ResourcesByCourse handles GET /api/admin/stats/resources-by-course
func (h *StatsHandler) ResourcesByCourse(c *fiber.Ctx) error {
	counts, err := h.statsService.GetResourcesByCourse(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch statistics")
	}
	return response.Success(c, counts)
}

// ResourcesByUser handles GET /api/admin/stats/resources-by-user
func (h *StatsHandler) ResourcesByUser(c *fiber.Ctx) error {
	counts, err := h.statsService.GetResourcesByUser(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch statistics")
	}
	return response.Success(c, counts)
}
