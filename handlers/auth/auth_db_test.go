package auth

import (
	"bytes"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/unishare/api/model"
	authutil "github.com/unishare/api/utils/auth"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openAuthTestDB(t *testing.T) *gorm.DB {
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

	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("failed to migrate test tables: %v", err)
	}

	if err := db.Exec("TRUNCATE users RESTART IDENTITY CASCADE").Error; err != nil {
		t.Fatalf("failed to reset test tables: %v", err)
	}

	return db
}

func doLogin(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	return resp.StatusCode, payload
}

// A failed login must not reveal whether the account exists: wrong password
// and unknown email produce byte-identical responses.
func TestLoginDoesNotRevealAccountExistence(t *testing.T) {
	db := openAuthTestDB(t)

	hash, err := authutil.HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	user := model.User{FullName: "Ana Torres", Email: "ana@ulima.edu.pe", PasswordHash: hash, Role: model.RoleUser}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	jwtManager := authutil.NewJWTManager(authutil.JWTConfig{Secret: "test-secret"})
	handler := NewAuthHandler(db, jwtManager, "@ulima.edu.pe", nil)

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)

	wrongPasswordStatus, wrongPasswordBody := doLogin(t, app,
		`{"email":"ana@ulima.edu.pe","password":"wrong horse"}`)
	unknownEmailStatus, unknownEmailBody := doLogin(t, app,
		`{"email":"nobody@ulima.edu.pe","password":"secret1"}`)

	if wrongPasswordStatus != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for a wrong password, got %d", wrongPasswordStatus)
	}
	if unknownEmailStatus != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for an unknown email, got %d", unknownEmailStatus)
	}
	if !bytes.Equal(wrongPasswordBody, unknownEmailBody) {
		t.Errorf("failure responses differ:\nwrong password: %s\nunknown email:  %s",
			wrongPasswordBody, unknownEmailBody)
	}
}

func TestLoginSucceedsWithCorrectCredentials(t *testing.T) {
	db := openAuthTestDB(t)

	hash, err := authutil.HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	user := model.User{FullName: "Ana Torres", Email: "ana@ulima.edu.pe", PasswordHash: hash, Role: model.RoleUser}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	jwtManager := authutil.NewJWTManager(authutil.JWTConfig{Secret: "test-secret"})
	handler := NewAuthHandler(db, jwtManager, "@ulima.edu.pe", nil)

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)

	status, body := doLogin(t, app, `{"email":"ana@ulima.edu.pe","password":"secret1"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if !bytes.Contains(body, []byte(`"token"`)) {
		t.Errorf("expected a session token in the response, got %s", body)
	}
}
