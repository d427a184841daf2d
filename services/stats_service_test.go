package services

import (
	"context"
	"math"
	"testing"

	"github.com/unishare/api/model"
)

func strPtr(s string) *string { return &s }

func TestStatsResourcesByCourseGroupsBlanksTogether(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	resources := []model.Resource{
		{Title: "a", FileURL: "/uploads/a.pdf", Course: strPtr("Cálculo I")},
		{Title: "b", FileURL: "/uploads/b.pdf", Course: strPtr("Cálculo I")},
		{Title: "c", FileURL: "/uploads/c.pdf"},
		{Title: "d", FileURL: "/uploads/d.pdf", Course: strPtr("Física")},
	}
	if err := db.Create(&resources).Error; err != nil {
		t.Fatalf("failed to seed resources: %v", err)
	}

	rows, err := NewStatsService(db).GetResourcesByCourse(ctx)
	if err != nil {
		t.Fatalf("GetResourcesByCourse failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 course groups, got %d: %v", len(rows), rows)
	}

	// Busiest course first, ties broken alphabetically
	if rows[0].Course != "Cálculo I" || rows[0].Count != 2 {
		t.Errorf("expected Cálculo I with 2 first, got %+v", rows[0])
	}

	foundBlank := false
	for _, row := range rows {
		if row.Course == UncategorizedCourse {
			foundBlank = true
			if row.Count != 1 {
				t.Errorf("expected 1 uncategorized resource, got %d", row.Count)
			}
		}
	}
	if !foundBlank {
		t.Errorf("expected a %q bucket, got %v", UncategorizedCourse, rows)
	}
}

func TestStatsResourcesByUserIncludesZeroUploads(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := []model.User{
		{FullName: "Ana Torres", Email: "ana@ulima.edu.pe", PasswordHash: "x"},
		{FullName: "Luis Quispe", Email: "luis@ulima.edu.pe", PasswordHash: "x"},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}

	resource := model.Resource{Title: "a", FileURL: "/uploads/a.pdf", UserID: &users[0].ID}
	if err := db.Create(&resource).Error; err != nil {
		t.Fatalf("failed to seed resource: %v", err)
	}

	rows, err := NewStatsService(db).GetResourcesByUser(ctx)
	if err != nil {
		t.Fatalf("GetResourcesByUser failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected both users in the breakdown, got %d rows", len(rows))
	}
	if rows[0].FullName != "Ana Torres" || rows[0].Count != 1 {
		t.Errorf("expected Ana Torres with 1 upload first, got %+v", rows[0])
	}
	if rows[1].FullName != "Luis Quispe" || rows[1].Count != 0 {
		t.Errorf("expected Luis Quispe with 0 uploads, got %+v", rows[1])
	}
}

func TestStatsOverviewAveragesCachedResourceAverages(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := []model.User{
		{FullName: "Ana Torres", Email: "ana@ulima.edu.pe", PasswordHash: "x"},
		{FullName: "Luis Quispe", Email: "luis@ulima.edu.pe", PasswordHash: "x"},
		{FullName: "María Soto", Email: "maria@ulima.edu.pe", PasswordHash: "x"},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}

	resources := []model.Resource{
		{Title: "a", FileURL: "/uploads/a.pdf"},
		{Title: "b", FileURL: "/uploads/b.pdf"},
	}
	if err := db.Create(&resources).Error; err != nil {
		t.Fatalf("failed to seed resources: %v", err)
	}

	ratingService := NewRatingService(db)
	// Resource a: votes 5, 5, 2 -> average 4. Resource b: vote 1 -> average 1.
	for _, v := range []struct {
		user  uint
		value int
	}{{users[0].ID, 5}, {users[1].ID, 5}, {users[2].ID, 2}} {
		if _, err := ratingService.Set(ctx, resources[0].ID, v.user, v.value); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}
	if _, err := ratingService.Set(ctx, resources[1].ID, users[0].ID, 1); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	overview, err := NewStatsService(db).GetOverview(ctx)
	if err != nil {
		t.Fatalf("GetOverview failed: %v", err)
	}

	if overview.TotalUsers != 3 || overview.TotalResources != 2 {
		t.Errorf("unexpected totals: %+v", overview)
	}

	// Mean of per-resource averages: (4 + 1) / 2, NOT the mean of all
	// four individual votes (which would be 3.25).
	if math.Abs(overview.GlobalAverageRating-2.5) > 1e-9 {
		t.Errorf("expected global average 2.5, got %v", overview.GlobalAverageRating)
	}
}
