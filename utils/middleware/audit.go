package middleware

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/unishare/api/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminAuditLog creates an audit log entry for admin write actions. It runs
// after RequireAdmin, captures the prior state of the target row where one
// exists, and persists the entry asynchronously so the response never waits
// on audit bookkeeping.
func AdminAuditLog(db *gorm.DB, action, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, ok := GetUserID(c)
		if !ok {
			return c.Next()
		}

		// Parse resource ID from params if available
		var resourceID uint
		if id := c.Params("id"); id != "" {
			if parsedID, err := strconv.ParseUint(id, 10, 32); err == nil {
				resourceID = uint(parsedID)
			}
		}

		var oldValue, newValue []byte

		if len(c.Body()) > 0 {
			// Keep only bodies that are valid JSON
			var probe interface{}
			if json.Unmarshal(c.Body(), &probe) == nil {
				newValue = append([]byte(nil), c.Body()...)
			}
		}

		if resourceID > 0 {
			switch resource {
			case "users":
				var user model.User
				if err := db.First(&user, resourceID).Error; err == nil {
					oldValue, _ = json.Marshal(user)
				}
			case "resources":
				var res model.Resource
				if err := db.First(&res, resourceID).Error; err == nil {
					oldValue, _ = json.Marshal(res)
				}
			}
		}

		ip := c.IP()
		userAgent := c.Get("User-Agent")
		description := c.Method() + " " + c.Path()

		err := c.Next()

		go func() {
			entry := model.AdminAuditLog{
				AdminID:     adminID,
				Action:      action,
				Resource:    resource,
				ResourceID:  resourceID,
				OldValue:    datatypes.JSON(oldValue),
				NewValue:    datatypes.JSON(newValue),
				IPAddress:   ip,
				UserAgent:   userAgent,
				Description: description,
			}
			db.Create(&entry)
		}()

		return err
	}
}
