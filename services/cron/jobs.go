package cron

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/unishare/api/model"
)

// CleanupExpiredResetTokens clears reset tokens whose expiry has passed.
// Reset tokens are single-use and short-lived; stale ones are just noise in
// the users table.
func (m *CronManager) CleanupExpiredResetTokens() {
	result := m.db.Model(&model.User{}).
		Where("reset_token IS NOT NULL AND reset_expires_at < ?", time.Now()).
		Updates(map[string]interface{}{
			"reset_token":      nil,
			"reset_expires_at": nil,
		})

	if result.Error != nil {
		log.Printf("[cron] cleanup_expired_reset_tokens failed: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[cron] cleared %d expired reset tokens", result.RowsAffected)
	}
}

// CleanupOrphanedUploads removes files in the uploads directory that no
// resource row references. Orphans appear when a resource delete wins but
// its fire-and-forget file removal loses.
func (m *CronManager) CleanupOrphanedUploads() {
	entries, err := os.ReadDir(m.uploads.Dir())
	if err != nil {
		log.Printf("[cron] cleanup_orphaned_uploads failed to list uploads: %v", err)
		return
	}

	var fileURLs []string
	if err := m.db.Model(&model.Resource{}).Pluck("file_url", &fileURLs).Error; err != nil {
		log.Printf("[cron] cleanup_orphaned_uploads failed to list resources: %v", err)
		return
	}

	referenced := make(map[string]bool, len(fileURLs))
	for _, u := range fileURLs {
		referenced[filepath.Base(u)] = true
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}

		// Skip files younger than an hour: an in-flight upload writes the
		// file before its resource row exists.
		info, err := entry.Info()
		if err != nil || time.Since(info.ModTime()) < time.Hour {
			continue
		}

		if err := os.Remove(filepath.Join(m.uploads.Dir(), entry.Name())); err != nil {
			log.Printf("[cron] failed to remove orphaned file %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Printf("[cron] removed %d orphaned upload files", removed)
	}
}
