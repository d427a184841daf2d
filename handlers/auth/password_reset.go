package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/unishare/api/model"
	authutil "github.com/unishare/api/utils/auth"
	"github.com/unishare/api/utils/response"
)

// ResetTokenTTL is how long a password reset token stays usable.
const ResetTokenTTL = 15 * time.Minute

const forgotPasswordMessage = "If the email exists, a password reset link will be sent"

// ForgotPasswordRequest represents a password reset request
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest represents a password reset with token
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// ForgotPassword handles POST /api/auth/forgot-password. The response is the
// same whether or not the email exists.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "Email is required")
	}

	var user model.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return response.Success(c, fiber.Map{"message": forgotPasswordMessage})
	}

	resetToken := uuid.New().String()
	expiresAt := time.Now().Add(ResetTokenTTL)

	err := h.db.Model(&user).Updates(map[string]interface{}{
		"reset_token":      resetToken,
		"reset_expires_at": expiresAt,
	}).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to create reset token")
	}

	// Mail delivery is out of scope; the token is only logged
	log.Printf("password reset token for %s: %s", user.Email, resetToken)

	return response.Success(c, fiber.Map{"message": forgotPasswordMessage})
}

// ResetPassword handles POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "Token and new password are required")
	}

	var user model.User
	if err := h.db.Where("reset_token = ?", req.Token).First(&user).Error; err != nil {
		return response.BadRequest(c, "Invalid reset token")
	}

	if user.ResetExpiresAt == nil || time.Now().After(*user.ResetExpiresAt) {
		return response.BadRequest(c, "Reset token has expired")
	}

	hashedPassword, err := authutil.HashPassword(req.NewPassword)
	if err != nil {
		return response.InternalServerError(c, "Failed to process password")
	}

	// New hash and token cleanup land in one UPDATE
	err = h.db.Model(&user).Updates(map[string]interface{}{
		"password_hash":    hashedPassword,
		"reset_token":      nil,
		"reset_expires_at": nil,
	}).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to update password")
	}

	return response.Success(c, fiber.Map{"message": "Password updated successfully"})
}
