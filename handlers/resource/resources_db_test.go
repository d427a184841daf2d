package resource

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/unishare/api/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// brokenStorage fails every operation, standing in for an unreachable backend.
type brokenStorage struct{}

func (brokenStorage) Save(context.Context, string, io.Reader, string) (string, error) {
	return "", errors.New("storage unavailable")
}

func (brokenStorage) Delete(context.Context, string) error {
	return errors.New("storage unavailable")
}

func openResourceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("Skipping integration test. Set TEST_DATABASE_URL to run")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Resource{}); err != nil {
		t.Fatalf("failed to migrate test tables: %v", err)
	}

	if err := db.Exec("TRUNCATE resources, users RESTART IDENTITY CASCADE").Error; err != nil {
		t.Fatalf("failed to reset test tables: %v", err)
	}

	return db
}

// The resource row is authoritative: once deleted, the resource is gone from
// the catalog even when the backing file cannot be removed.
func TestDeleteResourceSurvivesFileRemovalFailure(t *testing.T) {
	db := openResourceTestDB(t)

	resource := model.Resource{Title: "Apuntes de cálculo", FileURL: "/uploads/calc.pdf"}
	if err := db.Create(&resource).Error; err != nil {
		t.Fatalf("failed to seed resource: %v", err)
	}

	handler := NewResourceHandler(db, brokenStorage{})
	app := fiber.New()
	app.Get("/api/resources", handler.ListResources)
	app.Get("/api/resources/:id", handler.GetResource)
	app.Delete("/api/resources/:id", handler.DeleteResource)

	del := httptest.NewRequest("DELETE", "/api/resources/1", nil)
	resp, err := app.Test(del)
	if err != nil {
		t.Fatalf("delete request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 despite the broken storage, got %d", resp.StatusCode)
	}

	get := httptest.NewRequest("GET", "/api/resources/1", nil)
	resp, err = app.Test(get)
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("expected 404 for the deleted resource, got %d", resp.StatusCode)
	}

	list := httptest.NewRequest("GET", "/api/resources", nil)
	resp, err = app.Test(list)
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Data []model.Resource `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode list response: %v", err)
	}
	if len(payload.Data) != 0 {
		t.Errorf("expected an empty catalog after the delete, got %d rows", len(payload.Data))
	}
}

func TestDeleteResourceNotFound(t *testing.T) {
	db := openResourceTestDB(t)

	handler := NewResourceHandler(db, brokenStorage{})
	app := fiber.New()
	app.Delete("/api/resources/:id", handler.DeleteResource)

	req := httptest.NewRequest("DELETE", "/api/resources/999", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}
