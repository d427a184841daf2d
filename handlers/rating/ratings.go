package rating

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unishare/api/model"
	"github.com/unishare/api/services"
	"github.com/unishare/api/utils/middleware"
	"github.com/unishare/api/utils/response"
	"gorm.io/gorm"
)

// RatingHandler handles rating requests scoped to a resource
type RatingHandler struct {
	db            *gorm.DB
	ratingService *services.RatingService
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(db *gorm.DB, ratingService *services.RatingService) *RatingHandler {
	return &RatingHandler{
		db:            db,
		ratingService: ratingService,
	}
}

// SetRatingRequest is the rating payload
type SetRatingRequest struct {
	Rating int `json:"rating" validate:"required,gte=1,lte=5"`
}

// GetRating handles GET /api/resources/:id/rating
func (h *RatingHandler) GetRating(c *fiber.Ctx) error {
	resourceID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid resource ID")
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	summary, err := h.ratingService.Get(c.Context(), uint(resourceID), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch rating")
	}

	return response.Success(c, summary)
}

// SetRating handles POST /api/resources/:id/rating
func (h *RatingHandler) SetRating(c *fiber.Ctx) error {
	resourceID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid resource ID")
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req SetRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if !model.IsValidRating(req.Rating) {
		return response.BadRequest(c, "Rating must be between 1 and 5")
	}

	// Resource must exist before accepting a rating for it
	var resource model.Resource
	if err := h.db.First(&resource, resourceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Resource not found")
		}
		return response.InternalServerError(c, "Failed to fetch resource")
	}

	summary, err := h.ratingService.Set(c.Context(), uint(resourceID), userID, req.Rating)
	if err != nil {
		return response.InternalServerError(c, "Failed to save rating")
	}

	return response.Success(c, summary)
}
