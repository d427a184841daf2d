package cron

import (
	"log"

	"github.com/robfig/cron/v3"
	"github.com/unishare/api/services/storage"
	"gorm.io/gorm"
)

// CronManager manages the scheduled hygiene jobs
type CronManager struct {
	cron    *cron.Cron
	db      *gorm.DB
	uploads *storage.LocalStorage
}

// NewCronManager creates a new cron manager. uploads may be nil when the app
// runs on remote storage; the orphan sweep is skipped in that case.
func NewCronManager(db *gorm.DB, uploads *storage.LocalStorage) *CronManager {
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:    c,
		db:      db,
		uploads: uploads,
	}
}

// Start registers and starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs and waits for running ones to finish
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

func (m *CronManager) registerJobs() error {
	// Hourly: drop expired password reset tokens
	_, err := m.cron.AddFunc("0 0 * * * *", func() {
		log.Println("[cron] running cleanup_expired_reset_tokens")
		m.CleanupExpiredResetTokens()
	})
	if err != nil {
		return err
	}

	// Daily at 03:30: remove upload files with no backing resource row
	if m.uploads != nil {
		_, err = m.cron.AddFunc("0 30 3 * * *", func() {
			log.Println("[cron] running cleanup_orphaned_uploads")
			m.CleanupOrphanedUploads()
		})
		if err != nil {
			return err
		}
	}

	return nil
}
