package resource

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/unishare/api/model"
	"github.com/unishare/api/services/storage"
	"github.com/unishare/api/utils/middleware"
	"github.com/unishare/api/utils/pdfvalidation"
	"github.com/unishare/api/utils/response"
	"github.com/unishare/api/utils/validation"
	"gorm.io/gorm"
)

// Non-PDF uploads are only size-capped.
const maxUploadSize = 50 * 1024 * 1024 // 50MB

// ResourceHandler handles resource catalog requests
type ResourceHandler struct {
	db        *gorm.DB
	validator *validation.Validator
	files     storage.FileStorage
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(db *gorm.DB, files storage.FileStorage) *ResourceHandler {
	return &ResourceHandler{
		db:        db,
		validator: validation.NewValidator(),
		files:     files,
	}
}

// CreateResourceRequest is the JSON create payload (file already hosted)
type CreateResourceRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Course      *string `json:"course"`
	Cycle       *string `json:"cycle"`
	Teacher     *string `json:"teacher"`
	FileURL     string  `json:"file_url" validate:"required"`
	FileType    string  `json:"file_type"`
}

// ListResources handles GET /api/resources
// Filters: q (title OR description), course, teacher, cycle. All are
// case-insensitive substring matches and compose with AND.
func (h *ResourceHandler) ListResources(c *fiber.Ctx) error {
	query := h.db.Model(&model.Resource{})

	if q := c.Query("q"); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if course := c.Query("course"); course != "" {
		query = query.Where("course ILIKE ?", "%"+course+"%")
	}
	if teacher := c.Query("teacher"); teacher != "" {
		query = query.Where("teacher ILIKE ?", "%"+teacher+"%")
	}
	if cycle := c.Query("cycle"); cycle != "" {
		query = query.Where("cycle ILIKE ?", "%"+cycle+"%")
	}

	var resources []model.Resource
	if err := query.Order("created_at DESC").Find(&resources).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch resources")
	}

	return response.Success(c, resources)
}

// GetResource handles GET /api/resources/:id
func (h *ResourceHandler) GetResource(c *fiber.Ctx) error {
	id := c.Params("id")

	var resource model.Resource
	if err := h.db.First(&resource, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Resource not found")
		}
		return response.InternalServerError(c, "Failed to fetch resource")
	}

	return response.Success(c, resource)
}

// CreateResource handles POST /api/resources (JSON body, file already hosted)
func (h *ResourceHandler) CreateResource(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req CreateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "Title and file_url are required")
	}

	resource := model.Resource{
		Title:       req.Title,
		Description: req.Description,
		Course:      req.Course,
		Cycle:       req.Cycle,
		Teacher:     req.Teacher,
		FileURL:     req.FileURL,
		FileType:    req.FileType,
		UserID:      &userID,
	}

	if err := h.db.Create(&resource).Error; err != nil {
		return response.InternalServerError(c, "Failed to create resource")
	}

	return response.Created(c, resource)
}

// UploadResource handles POST /api/resources/upload (multipart: file + metadata)
func (h *ResourceHandler) UploadResource(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return response.BadRequest(c, "Title is required")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "File is required")
	}

	fileContent, err := file.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to open file")
	}
	defer fileContent.Close()

	content, err := io.ReadAll(fileContent)
	if err != nil {
		return response.InternalServerError(c, "Failed to read file")
	}

	if strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		result, err := pdfvalidation.ValidatePDFBytes(content, pdfvalidation.UploadLimits)
		if err != nil {
			return response.InternalServerError(c, "Failed to validate PDF")
		}
		if !result.Valid {
			return response.BadRequest(c, result.Error)
		}
	} else if file.Size > maxUploadSize {
		return response.BadRequest(c, "File size exceeds maximum allowed size of 50MB")
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.New().String()[:8], filepath.Base(file.Filename))
	fileURL, err := h.files.Save(c.Context(), key, bytes.NewReader(content), contentType)
	if err != nil {
		return response.InternalServerError(c, "Failed to store file")
	}

	course := optionalFormValue(c, "course")
	cycle := optionalFormValue(c, "cycle")
	teacher := optionalFormValue(c, "teacher")

	resource := model.Resource{
		Title:       title,
		Description: strings.TrimSpace(c.FormValue("description")),
		Course:      course,
		Cycle:       cycle,
		Teacher:     teacher,
		FileURL:     fileURL,
		FileType:    contentType,
		UserID:      &userID,
	}

	if err := h.db.Create(&resource).Error; err != nil {
		// The row is authoritative; without it the stored file is garbage
		if delErr := h.files.Delete(c.Context(), fileURL); delErr != nil {
			log.Printf("failed to remove file after create error: %v", delErr)
		}
		return response.InternalServerError(c, "Failed to create resource")
	}

	return response.Created(c, resource)
}

// DeleteResource handles DELETE /api/resources/:id (admin only). The row
// delete is authoritative; removing the backing file is fire-and-forget.
func (h *ResourceHandler) DeleteResource(c *fiber.Ctx) error {
	id := c.Params("id")

	var resource model.Resource
	if err := h.db.First(&resource, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Resource not found")
		}
		return response.InternalServerError(c, "Failed to fetch resource")
	}

	if err := h.db.Delete(&resource).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete resource")
	}

	fileURL := resource.FileURL
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := h.files.Delete(ctx, fileURL); err != nil {
			log.Printf("failed to remove file for deleted resource %d: %v", resource.ID, err)
		}
	}()

	return response.Success(c, fiber.Map{"message": "Resource deleted successfully"})
}

func optionalFormValue(c *fiber.Ctx, name string) *string {
	v := strings.TrimSpace(c.FormValue(name))
	if v == "" {
		return nil
	}
	return &v
}
