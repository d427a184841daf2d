package app

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/unishare/api/api"
	"github.com/unishare/api/config"
	"github.com/unishare/api/database"
	"github.com/unishare/api/router"
	"github.com/unishare/api/services/cron"
	"github.com/unishare/api/services/storage"
	"github.com/unishare/api/utils/middleware"
	"gorm.io/gorm"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		log.Println("Check whether Postgres is running and DB_* variables are set")
		return err
	}

	if err := store.Init(); err != nil {
		log.Println("Error running migrations")
		return err
	}

	// Pick the file storage backend
	files, localUploads, err := setupFileStorage(getEnv)
	if err != nil {
		return err
	}

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		db, ok := store.GetDB().(*gorm.DB)
		if !ok {
			log.Println("Warning: failed to get database connection for cron jobs")
		} else {
			cronManager = cron.NewCronManager(db, localUploads)
			if err := cronManager.Start(); err != nil {
				log.Printf("Warning: failed to start cron jobs: %v", err)
				// Don't fail the app, just log the warning
			}
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Attach Middleware
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    getEnv.ALLOWED_ORIGINS,
		RateLimitRequests: 300,
		RateLimitWindow:   time.Minute,
	})

	// Setup Routes
	if err := router.SetupRoutes(app, store, files, getEnv); err != nil {
		return err
	}

	// Get the PORT & Start the Server
	return server.Run()
}

// setupFileStorage returns the configured backend. The local store is also
// returned separately so cron cleanup knows where uploads live on disk.
func setupFileStorage(env *config.EnvironmentVariable) (storage.FileStorage, *storage.LocalStorage, error) {
	switch env.STORAGE_DRIVER {
	case config.StorageDriverSpaces:
		spaces, err := storage.NewSpacesStorage(storage.SpacesConfig{
			AccessKey: env.SPACES_KEY,
			SecretKey: env.SPACES_SECRET,
			Bucket:    env.SPACES_BUCKET,
			Region:    env.SPACES_REGION,
			Endpoint:  env.SPACES_ENDPOINT,
			CDNURL:    env.SPACES_CDN_URL,
		})
		if err != nil {
			return nil, nil, err
		}
		return spaces, nil, nil
	case config.StorageDriverLocal:
		local, err := storage.NewLocalStorage(env.UPLOAD_DIR)
		if err != nil {
			return nil, nil, err
		}
		return local, local, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", env.STORAGE_DRIVER)
	}
}
