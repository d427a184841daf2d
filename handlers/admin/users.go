package admin

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/unishare/api/model"
	"github.com/unishare/api/utils/middleware"
	"github.com/unishare/api/utils/response"
	"gorm.io/gorm"
)

// UserHandler handles admin user management
type UserHandler struct {
	db *gorm.DB
}

// NewUserHandler creates a new admin user handler
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{
		db: db,
	}
}

// UserResponse is the admin view of a user account
type UserResponse struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ListUsers handles GET /api/admin/users
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	var users []model.User
	if err := h.db.Order("full_name ASC").Find(&users).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch users")
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}

	return response.Success(c, out)
}

// ToggleAdminRole handles POST /api/admin/users/:id/toggle-admin.
// Admins cannot demote their own account.
func (h *UserHandler) ToggleAdminRole(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	if callerID == uint(targetID) {
		return response.BadRequest(c, "You cannot change your own admin role")
	}

	var user model.User
	if err := h.db.First(&user, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to fetch user")
	}

	if user.Role == model.RoleAdmin {
		user.Role = model.RoleUser
	} else {
		user.Role = model.RoleAdmin
	}

	if err := h.db.Model(&user).Update("role", user.Role).Error; err != nil {
		return response.InternalServerError(c, "Failed to update user role")
	}

	return response.Success(c, toUserResponse(&user))
}
