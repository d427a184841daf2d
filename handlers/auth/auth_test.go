package auth

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	authutil "github.com/unishare/api/utils/auth"
)

// The registration gate runs before any database access, so these paths are
// testable with no backing store.
func newTestApp() *fiber.App {
	jwtManager := authutil.NewJWTManager(authutil.JWTConfig{Secret: "test-secret"})
	handler := NewAuthHandler(nil, jwtManager, "@ulima.edu.pe", nil)

	app := fiber.New()
	app.Post("/api/auth/register", handler.Register)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.StatusCode, payload
}

func TestRegisterRejectsNonInstitutionalEmail(t *testing.T) {
	app := newTestApp()

	status, payload := postJSON(t, app, "/api/auth/register",
		`{"full_name":"Jane Doe","email":"jane@gmail.com","password":"secret1"}`)

	if status != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if success, _ := payload["success"].(bool); success {
		t.Error("expected success=false in the envelope")
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	app := newTestApp()

	cases := []string{
		`{}`,
		`{"full_name":"Jane Doe"}`,
		`{"full_name":"Jane Doe","email":"jane@ulima.edu.pe"}`,
		`{"email":"jane@ulima.edu.pe","password":"secret1"}`,
	}

	for _, body := range cases {
		status, _ := postJSON(t, app, "/api/auth/register", body)
		if status != fiber.StatusBadRequest {
			t.Errorf("expected 400 for body %s, got %d", body, status)
		}
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	app := newTestApp()

	status, _ := postJSON(t, app, "/api/auth/register",
		`{"full_name":"Jane Doe","email":"jane@ulima.edu.pe","password":"123"}`)

	if status != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
}
