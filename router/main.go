package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/unishare/api/config"
	"github.com/unishare/api/database"
	"github.com/unishare/api/handlers"
	"github.com/unishare/api/handlers/admin"
	authhandler "github.com/unishare/api/handlers/auth"
	"github.com/unishare/api/handlers/comment"
	"github.com/unishare/api/handlers/rating"
	"github.com/unishare/api/handlers/report"
	"github.com/unishare/api/handlers/resource"
	"github.com/unishare/api/services"
	"github.com/unishare/api/services/storage"
	"github.com/unishare/api/utils/auth"
	"github.com/unishare/api/utils/cache"
	"github.com/unishare/api/utils/middleware"
	"github.com/unishare/api/utils/response"
	"gorm.io/gorm"
)

// SetupRoutes wires every API endpoint onto the Fiber app
func SetupRoutes(app *fiber.App, store database.Storage, files storage.FileStorage, env *config.EnvironmentVariable) error {
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		return ErrUnsupportedStore
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: env.JWT_SECRET,
		Issuer: env.JWT_ISSUER,
	})
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// Login brute-force tracking degrades gracefully when Redis is absent
	var bruteForce *middleware.BruteForceProtection
	if env.REDIS_URL != "" {
		redisCache, err := cache.NewRedisCache(env.REDIS_URL)
		if err != nil {
			log.Printf("redis unavailable, login lockouts disabled: %v", err)
		} else {
			bruteForce = middleware.NewBruteForceProtection(redisCache)
		}
	}

	authHandler := authhandler.NewAuthHandler(db, jwtManager, env.ALLOWED_EMAIL_DOMAIN, bruteForce)
	resourceHandler := resource.NewResourceHandler(db, files)
	commentHandler := comment.NewCommentHandler(db)
	ratingHandler := rating.NewRatingHandler(db, services.NewRatingService(db))
	reportHandler := report.NewReportHandler(db)
	statsHandler := admin.NewStatsHandler(db)
	userHandler := admin.NewUserHandler(db)
	healthHandler := handlers.NewHealthHandler(store)

	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Authentication
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	if bruteForce != nil {
		authGroup.Post("/login", bruteForce.CheckLockout(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Resource catalog
	resources := api.Group("/resources")
	resources.Get("/", resourceHandler.ListResources)
	resources.Get("/:id", resourceHandler.GetResource)
	resources.Post("/", authMiddleware.Required(), resourceHandler.CreateResource)
	resources.Post("/upload", authMiddleware.Required(), resourceHandler.UploadResource)
	resources.Delete("/:id", authMiddleware.Required(), authMiddleware.RequireAdmin(),
		middleware.AdminAuditLog(db, "delete", "resources"), resourceHandler.DeleteResource)

	// Comments
	resources.Get("/:id/comments", commentHandler.ListComments)
	resources.Post("/:id/comments", authMiddleware.Required(), commentHandler.AddComment)

	// Ratings
	resources.Get("/:id/rating", authMiddleware.Required(), ratingHandler.GetRating)
	resources.Post("/:id/rating", authMiddleware.Required(), ratingHandler.SetRating)

	// Reports
	resources.Post("/:id/reports", authMiddleware.Required(), reportHandler.CreateReport)
	resources.Get("/:id/reports", authMiddleware.Required(), authMiddleware.RequireAdmin(), reportHandler.ListReports)

	// Admin
	adminGroup := api.Group("/admin", authMiddleware.Required(), authMiddleware.RequireAdmin())
	adminGroup.Get("/stats/overview", statsHandler.Overview)
	adminGroup.Get("/stats/resources-by-course", statsHandler.ResourcesByCourse)
	adminGroup.Get("/stats/resources-by-user", statsHandler.ResourcesByUser)
	adminGroup.Get("/users", userHandler.ListUsers)
	adminGroup.Post("/users/:id/toggle-admin",
		middleware.AdminAuditLog(db, "toggle-admin", "users"), userHandler.ToggleAdminRole)

	// Serve uploaded files when they live on local disk
	if local, ok := files.(*storage.LocalStorage); ok {
		app.Static(storage.URLPrefix, local.Dir())
	}

	app.Use(func(c *fiber.Ctx) error {
		return response.NotFound(c, "Route not found")
	})

	return nil
}
