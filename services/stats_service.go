package services

import (
	"context"
	"fmt"

	"github.com/unishare/api/model"
	"gorm.io/gorm"
)

// UncategorizedCourse groups resources whose uploader left the course blank.
const UncategorizedCourse = "Sin curso"

// StatsService computes the read-only aggregates behind the admin dashboard.
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a new stats service
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

// Overview holds the platform-wide totals.
//
// GlobalAverageRating is the mean of per-resource cached averages, not the
// mean over all individual ratings. That matches the production dashboard;
// the two differ whenever resources have unequal vote counts.
type Overview struct {
	TotalUsers          int64   `json:"totalUsers"`
	TotalResources      int64   `json:"totalResources"`
	TotalComments       int64   `json:"totalComments"`
	GlobalAverageRating float64 `json:"globalAverageRating"`
}

// GetOverview retrieves platform-wide totals
func (s *StatsService) GetOverview(ctx context.Context) (*Overview, error) {
	stats := &Overview{}
	db := s.db.WithContext(ctx)

	if err := db.Model(&model.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	if err := db.Model(&model.Resource{}).Count(&stats.TotalResources).Error; err != nil {
		return nil, fmt.Errorf("failed to count resources: %w", err)
	}

	if err := db.Model(&model.Comment{}).Count(&stats.TotalComments).Error; err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	var avg *float64
	err := db.Model(&model.Resource{}).
		Select("AVG(avg_rating)").
		Where("avg_rating IS NOT NULL").
		Scan(&avg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to average ratings: %w", err)
	}
	if avg != nil {
		stats.GlobalAverageRating = *avg
	}

	return stats, nil
}

// CourseCount is one row of the resources-by-course breakdown.
type CourseCount struct {
	Course string `json:"course"`
	Count  int64  `json:"count"`
}

// GetResourcesByCourse groups resource counts per course, busiest first.
func (s *StatsService) GetResourcesByCourse(ctx context.Context) ([]CourseCount, error) {
	var rows []CourseCount

	err := s.db.WithContext(ctx).Model(&model.Resource{}).
		Select("COALESCE(course, ?) AS course, COUNT(*) AS count", UncategorizedCourse).
		Group("course").
		Order("count DESC, course ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group resources by course: %w", err)
	}

	return rows, nil
}

// UserCount is one row of the resources-by-user breakdown.
type UserCount struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Count    int64  `json:"count"`
}

// GetResourcesByUser counts uploads per user. Users with zero uploads are
// included (left join).
func (s *StatsService) GetResourcesByUser(ctx context.Context) ([]UserCount, error) {
	var rows []UserCount

	err := s.db.WithContext(ctx).Model(&model.User{}).
		Select("users.id, users.full_name, users.email, COUNT(resources.id) AS count").
		Joins("LEFT JOIN resources ON resources.user_id = users.id").
		Group("users.id, users.full_name, users.email").
		Order("count DESC, users.full_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group resources by user: %w", err)
	}

	return rows, nil
}
