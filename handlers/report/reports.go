package report

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/unishare/api/model"
	"github.com/unishare/api/utils/middleware"
	"github.com/unishare/api/utils/response"
	"gorm.io/gorm"
)

// ReportHandler handles moderation reports against resources
type ReportHandler struct {
	db *gorm.DB
}

// NewReportHandler creates a new report handler
func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{
		db: db,
	}
}

// CreateReportRequest is the report payload
type CreateReportRequest struct {
	Reason  string `json:"reason" validate:"required"`
	Details string `json:"details"`
}

// ReportResponse is a report joined with its author's name and email
type ReportResponse struct {
	ID        uint      `json:"id"`
	Reason    string    `json:"reason"`
	Details   *string   `json:"details"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"user_full_name"`
	UserEmail string    `json:"user_email"`
}

// CreateReport handles POST /api/resources/:id/reports
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	resourceID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid resource ID")
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return response.BadRequest(c, "Report reason is required")
	}

	var details *string
	if d := strings.TrimSpace(req.Details); d != "" {
		details = &d
	}

	report := model.Report{
		ResourceID: uint(resourceID),
		UserID:     userID,
		Reason:     reason,
		Details:    details,
	}

	if err := h.db.Create(&report).Error; err != nil {
		return response.InternalServerError(c, "Failed to create report")
	}

	return response.Created(c, report)
}

// ListReports handles GET /api/resources/:id/reports (admin only), newest first
func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	resourceID := c.Params("id")

	var reports []ReportResponse
	err := h.db.Model(&model.Report{}).
		Select("reports.id, reports.reason, reports.details, reports.created_at, users.full_name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = reports.user_id").
		Where("reports.resource_id = ?", resourceID).
		Order("reports.created_at DESC").
		Scan(&reports).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch reports")
	}

	return response.Success(c, reports)
}
