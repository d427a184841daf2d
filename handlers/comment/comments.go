package comment

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/unishare/api/model"
	"github.com/unishare/api/utils/middleware"
	"github.com/unishare/api/utils/response"
	"gorm.io/gorm"
)

// CommentHandler handles comment requests scoped to a resource
type CommentHandler struct {
	db *gorm.DB
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{
		db: db,
	}
}

// AddCommentRequest is the create payload
type AddCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// CommentResponse is a comment joined with its author's display name
type CommentResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UserName  *string   `json:"user_name"`
}

// ListComments handles GET /api/resources/:id/comments, newest first
func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	resourceID := c.Params("id")

	var comments []CommentResponse
	err := h.db.Model(&model.Comment{}).
		Select("comments.id, comments.content, comments.created_at, users.full_name AS user_name").
		Joins("LEFT JOIN users ON users.id = comments.user_id").
		Where("comments.resource_id = ?", resourceID).
		Order("comments.created_at DESC").
		Scan(&comments).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch comments")
	}

	return response.Success(c, comments)
}

// AddComment handles POST /api/resources/:id/comments
func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	resourceID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid resource ID")
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Content) == "" {
		return response.BadRequest(c, "Comment content is required")
	}

	comment := model.Comment{
		ResourceID: uint(resourceID),
		UserID:     &userID,
		Content:    req.Content,
	}

	if err := h.db.Create(&comment).Error; err != nil {
		return response.InternalServerError(c, "Failed to add comment")
	}

	return response.Created(c, comment)
}
